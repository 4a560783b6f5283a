package vellum

import "image"

// EventType identifies the kind of input event.
type EventType uint8

const (
	EventKeyDown EventType = iota + 1
	EventKeyUp
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventMouseEnter
	EventMouseLeave
	EventFocusGained
	EventFocusLost
	EventWindowResized
	EventPointerLocked
	EventPointerUnlocked
	EventScroll
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseEnter:
		return "MouseEnter"
	case EventMouseLeave:
		return "MouseLeave"
	case EventFocusGained:
		return "FocusGained"
	case EventFocusLost:
		return "FocusLost"
	case EventWindowResized:
		return "WindowResized"
	case EventPointerLocked:
		return "PointerLocked"
	case EventPointerUnlocked:
		return "PointerUnlocked"
	case EventScroll:
		return "Scroll"
	}
	return "Unknown"
}

// Keycode names a physical key, independent of keyboard layout.
// Values follow the KeyboardEvent.code vocabulary ("KeyA", "Tab", ...).
type Keycode = string

// Key describes one keyboard event.
type Key struct {
	// Key is the logical value produced by the key. For printable keys this
	// is the character itself ("a", "A", " "); for the rest it is a named
	// value such as "Enter", "Tab" or "ArrowDown".
	Key string
	// Code is the physical key code.
	Code  Keycode
	Shift bool
	Ctrl  bool
	Alt   bool
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

// Event is one input occurrence. Events are plain values and cheap to copy;
// the field set used depends on Type.
type Event struct {
	Type EventType

	// Key for EventKeyDown and EventKeyUp.
	Key Key

	// Button for EventMouseDown and EventMouseUp.
	Button MouseButton

	// Pos for mouse events. Events produced by the input collaborator carry
	// surface coordinates; events delivered to a component carry coordinates
	// local to the component's rectangle.
	Pos image.Point

	// Size for EventWindowResized.
	Size image.Point

	// Delta for EventScroll.
	Delta image.Point
}

// KeyDown builds a key-press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp builds a key-release event.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// MouseDown builds a button-press event at a surface position.
func MouseDown(b MouseButton, pos image.Point) Event {
	return Event{Type: EventMouseDown, Button: b, Pos: pos}
}

// MouseUp builds a button-release event at a surface position.
func MouseUp(b MouseButton, pos image.Point) Event {
	return Event{Type: EventMouseUp, Button: b, Pos: pos}
}

// MouseMove builds a cursor-motion event.
func MouseMove(pos image.Point) Event {
	return Event{Type: EventMouseMove, Pos: pos}
}

// WindowResized builds a resize event carrying the new surface size.
func WindowResized(size image.Point) Event {
	return Event{Type: EventWindowResized, Size: size}
}

// Scroll builds a wheel event carrying the scroll delta in pixels.
func Scroll(delta image.Point) Event {
	return Event{Type: EventScroll, Delta: delta}
}
