package ebitengine

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vellumui/vellum"
)

// inputReader turns Ebitengine's polled input into vellum's event stream.
// It keeps just enough state to emit edges: keys and buttons come from
// inpututil's just-pressed/released queries, cursor motion from comparing
// positions between frames.
type inputReader struct {
	keys      []ebiten.Key
	chars     []rune
	cursorPos image.Point
}

// mouseButtons lists the buttons in a fixed order so simultaneous presses
// within one frame are emitted deterministically.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	vb vellum.MouseButton
}{
	{ebiten.MouseButtonLeft, vellum.MouseButtonLeft},
	{ebiten.MouseButtonRight, vellum.MouseButtonRight},
	{ebiten.MouseButtonMiddle, vellum.MouseButtonMiddle},
	{ebiten.MouseButton3, vellum.MouseButtonBack},
	{ebiten.MouseButton4, vellum.MouseButtonForward},
}

type modifiers struct {
	shift, ctrl, alt bool
}

// readInto pushes the events of one frame into the loop. Called once per
// Update.
func (r *inputReader) readInto(loop *vellum.Loop) {
	mods := modifiers{
		shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
	}

	chars := ebiten.AppendInputChars(r.chars[:0])
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		var key vellum.Key
		key, chars = translateKey(k, mods, chars)
		loop.PushEvent(vellum.KeyDown(key))
	}
	r.keys = inpututil.AppendJustReleasedKeys(r.keys[:0])
	for _, k := range r.keys {
		key, _ := translateKey(k, mods, nil)
		loop.PushEvent(vellum.KeyUp(key))
	}

	x, y := ebiten.CursorPosition()
	pos := image.Point{X: x, Y: y}
	if pos != r.cursorPos {
		r.cursorPos = pos
		loop.PushEvent(vellum.MouseMove(pos))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			loop.PushEvent(vellum.MouseDown(b.vb, pos))
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			loop.PushEvent(vellum.MouseUp(b.vb, pos))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		loop.PushEvent(vellum.Scroll(image.Point{X: int(wx * wheelStep), Y: int(wy * wheelStep)}))
	}
}

// wheelStep converts Ebitengine's wheel ticks to scroll pixels.
const wheelStep = 16

// translateKey builds a vellum.Key for an Ebitengine key. The physical code
// follows the KeyboardEvent vocabulary. For keys that produce a character
// the logical value is taken from the frame's typed characters, so keyboard
// layout and shift state are honored for punctuation too; the consumed
// character is dropped from the returned remainder. Without a typed
// character the value falls back to a name-derived guess.
func translateKey(k ebiten.Key, mods modifiers, chars []rune) (vellum.Key, []rune) {
	name := k.String()
	key := vellum.Key{
		Key:   name,
		Code:  name,
		Shift: mods.shift,
		Ctrl:  mods.ctrl,
		Alt:   mods.alt,
	}
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		key.Code = "Key" + name
		if mods.shift {
			key.Key = name
		} else {
			key.Key = strings.ToLower(name)
		}
	case strings.HasPrefix(name, "Digit") && len(name) == 6:
		key.Key = name[5:]
	case name == "Space":
		key.Key = " "
	}
	if printableKey(name) && len(chars) > 0 && !mods.ctrl && !mods.alt {
		key.Key = string(chars[0])
		chars = chars[1:]
	}
	return key, chars
}

// printableKey reports whether the named key normally produces a character.
func printableKey(name string) bool {
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return true
	}
	if strings.HasPrefix(name, "Digit") {
		return true
	}
	switch name {
	case "Space", "Comma", "Period", "Slash", "Semicolon", "Quote",
		"BracketLeft", "BracketRight", "Backslash", "Backquote",
		"Minus", "Equal":
		return true
	}
	return false
}
