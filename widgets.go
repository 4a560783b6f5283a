package vellum

import (
	"image"
	"image/color"
	"strings"
)

// ============================================================================
// Label
// ============================================================================

// Label is a single line of text in the theme's label color.
type Label struct {
	baseWidget
	text string
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{baseWidget: newBaseWidget(), text: text}
}

func (l *Label) Draw(rect image.Rectangle, theme *Theme, d *Draw2D, _ *image.Point, _ bool) {
	d.DrawText(theme.Font, l.text, rect.Min, theme.LabelColor)
}

func (l *Label) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	return theme.Font.StringSize(l.text)
}

// ============================================================================
// TextBox
// ============================================================================

// TextBox renders multi-line text. Lines are split on '\n' at construction.
type TextBox struct {
	baseWidget
	text      string
	lines     []string
	textColor color.NRGBA
}

// NewTextBox creates a text box with the given text.
func NewTextBox(text string) *TextBox {
	return &TextBox{
		baseWidget: newBaseWidget(),
		text:       text,
		lines:      strings.Split(text, "\n"),
		textColor:  color.NRGBA{A: 0xFF},
	}
}

// TextColor overrides the default black text color and returns the widget
// for chaining.
func (t *TextBox) TextColor(c color.NRGBA) *TextBox {
	t.textColor = c
	return t
}

func (t *TextBox) Draw(rect image.Rectangle, theme *Theme, d *Draw2D, _ *image.Point, _ bool) {
	advanceY := theme.Font.AdvanceY()
	for i, line := range t.lines {
		pos := rect.Min.Add(image.Point{Y: advanceY * i})
		d.DrawText(theme.Font, line, pos, t.textColor)
	}
}

func (t *TextBox) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	maxWidth := 0
	for _, line := range t.lines {
		if w := theme.Font.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return image.Point{X: maxWidth, Y: theme.Font.AdvanceY() * len(t.lines)}
}

// ============================================================================
// MessageBox
// ============================================================================

type messageLine struct {
	text  string
	color color.NRGBA
}

// MessageBox is a scrolling log of colored lines capped at a maximum count.
// Unlike most widgets it is intended to persist across frames; keep one
// around and put it in each frame's tree.
type MessageBox struct {
	baseWidget
	lines    []messageLine
	maxLines int
}

// NewMessageBox creates a message box that retains at most maxLines lines.
func NewMessageBox(maxLines int) *MessageBox {
	return &MessageBox{baseWidget: newBaseWidget(), maxLines: maxLines}
}

// AddLine appends a line, evicting the oldest one once the box is full.
func (m *MessageBox) AddLine(c color.NRGBA, line string) {
	m.lines = append(m.lines, messageLine{text: line, color: c})
	if len(m.lines) > m.maxLines {
		m.lines = m.lines[1:]
	}
}

// Len returns the number of retained lines.
func (m *MessageBox) Len() int { return len(m.lines) }

func (m *MessageBox) Draw(rect image.Rectangle, theme *Theme, d *Draw2D, _ *image.Point, _ bool) {
	advanceY := theme.Font.AdvanceY()
	for i, line := range m.lines {
		pos := rect.Min.Add(image.Point{Y: advanceY * i})
		d.DrawText(theme.Font, line.text, pos, line.color)
	}
}

func (m *MessageBox) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	maxWidth := 0
	for _, line := range m.lines {
		if w := theme.Font.StringWidth(line.text); w > maxWidth {
			maxWidth = w
		}
	}
	return image.Point{X: maxWidth, Y: theme.Font.AdvanceY() * len(m.lines)}
}
