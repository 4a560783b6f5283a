package vellum

import (
	"image"
	"unicode/utf8"
)

// TextFieldResult is the outcome of one TextField update.
type TextFieldResult struct {
	changed   bool
	submitted bool
}

// Changed reports whether the field's text was edited during the update.
func (r TextFieldResult) Changed() bool { return r.changed }

// Submitted reports whether Enter was pressed during the update.
func (r TextFieldResult) Submitted() bool { return r.submitted }

// TextField is a single-line text input component. While it is the active
// component, printable key presses append to its text and Backspace deletes
// the last character. Like MessageBox it is meant to persist across frames.
type TextField struct {
	baseWidget
	text        string
	placeholder string
}

// NewTextField creates a text field showing placeholder while empty.
func NewTextField(placeholder string) *TextField {
	return &TextField{baseWidget: newBaseWidget(), placeholder: placeholder}
}

func (t *TextField) IsComponent() bool { return true }

// Text returns the current contents of the field.
func (t *TextField) Text() string { return t.text }

// SetText replaces the contents of the field.
func (t *TextField) SetText(s string) { t.text = s }

// Update consumes the events routed to the field for one frame.
func (t *TextField) Update(events []Event) TextFieldResult {
	var res TextFieldResult
	for _, ev := range events {
		if ev.Type != EventKeyDown || ev.Key.Ctrl || ev.Key.Alt {
			continue
		}
		switch key := ev.Key.Key; {
		case key == "Enter":
			res.submitted = true
		case key == "Backspace":
			if len(t.text) > 0 {
				_, n := utf8.DecodeLastRuneInString(t.text)
				t.text = t.text[:len(t.text)-n]
				res.changed = true
			}
		case utf8.RuneCountInString(key) == 1:
			// Printable keys carry the character itself as the key value.
			t.text += key
			res.changed = true
		}
	}
	return res
}

func (t *TextField) Draw(rect image.Rectangle, theme *Theme, d *Draw2D, _ *image.Point, active bool) {
	fill := theme.ButtonFillColor
	if active {
		fill = theme.ButtonActiveFillColor
	}
	d.FillRect(rect, fill)
	d.OutlineRect(rect, theme.ButtonBorderColor, 1)

	shown := t.text
	if shown == "" && !active {
		shown = t.placeholder
	}
	d.DrawText(theme.Font, shown, rect.Min.Add(buttonTextOffset), theme.ButtonTextColor)

	if active {
		// Caret after the last character.
		caretX := rect.Min.X + buttonTextOffset.X + theme.Font.StringWidth(t.text)
		top := [2]float32{float32(caretX), float32(rect.Min.Y + buttonTextOffset.Y)}
		bottom := [2]float32{float32(caretX), float32(rect.Max.Y - buttonTextOffset.Y)}
		d.DrawLine(top, bottom, theme.ButtonTextColor, 1)
	}
}

func (t *TextField) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	shown := t.text
	if theme.Font.StringWidth(t.placeholder) > theme.Font.StringWidth(shown) {
		shown = t.placeholder
	}
	return theme.Font.StringSize(shown).Add(buttonMargin)
}
