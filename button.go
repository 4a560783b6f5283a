package vellum

import "image"

// buttonTextOffset and buttonMargin leave room for the 1px border plus a
// little breathing space around the text.
var (
	buttonTextOffset = image.Point{X: 2, Y: 1}
	buttonMargin     = image.Point{X: 4, Y: 2}
)

// ButtonResult is the outcome of one Button update.
type ButtonResult struct {
	pressed bool
}

// Pressed reports whether the button was pressed during the update.
func (r ButtonResult) Pressed() bool { return r.pressed }

// Button is a clickable component. It is pressed by a primary mouse click
// inside its rectangle, or by Enter or Space while it is the active
// component.
type Button struct {
	baseWidget
	text string
}

// NewButton creates a button with the given label.
func NewButton(text string) *Button {
	return &Button{baseWidget: newBaseWidget(), text: text}
}

func (b *Button) IsComponent() bool { return true }

// Update consumes the events routed to the button for one frame.
func (b *Button) Update(events []Event) ButtonResult {
	for _, ev := range events {
		switch ev.Type {
		case EventMouseDown:
			if ev.Button == MouseButtonLeft {
				return ButtonResult{pressed: true}
			}
		case EventKeyDown:
			if ev.Key.Key == "Enter" || ev.Key.Key == " " {
				return ButtonResult{pressed: true}
			}
		}
	}
	return ButtonResult{}
}

func (b *Button) Draw(rect image.Rectangle, theme *Theme, d *Draw2D, cursorPos *image.Point, active bool) {
	fill := theme.ButtonFillColor
	switch {
	case cursorPos != nil && cursorPos.In(rect):
		fill = theme.ButtonSelectedFillColor
	case active:
		fill = theme.ButtonActiveFillColor
	}
	d.FillRect(rect, fill)
	d.OutlineRect(rect, theme.ButtonBorderColor, 1)
	d.DrawText(theme.Font, b.text, rect.Min.Add(buttonTextOffset), theme.ButtonTextColor)
}

func (b *Button) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	return theme.Font.StringSize(b.text).Add(buttonMargin)
}
