package vellum

import "image"

// EventState folds a stream of events into the current input-device state:
// which keys and mouse buttons are held, where the cursor is, and whether
// the pointer is locked. Focus loss and the cursor leaving the window reset
// the parts of the state that can no longer be trusted.
type EventState struct {
	pressedKeys    map[Keycode]struct{}
	pressedButtons map[MouseButton]struct{}
	cursorPos      *image.Point
	pointerLocked  bool
}

// NewEventState creates an empty state: nothing pressed, cursor unknown.
func NewEventState() *EventState {
	return &EventState{
		pressedKeys:    make(map[Keycode]struct{}),
		pressedButtons: make(map[MouseButton]struct{}),
	}
}

// Apply folds one event into the state.
func (s *EventState) Apply(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		s.pressedKeys[ev.Key.Code] = struct{}{}
	case EventKeyUp:
		delete(s.pressedKeys, ev.Key.Code)
	case EventMouseDown:
		s.pressedButtons[ev.Button] = struct{}{}
	case EventMouseUp:
		delete(s.pressedButtons, ev.Button)
	case EventMouseMove:
		pos := ev.Pos
		s.cursorPos = &pos
	case EventMouseLeave:
		// Button releases outside the window are never delivered.
		clear(s.pressedButtons)
		s.cursorPos = nil
	case EventFocusLost:
		clear(s.pressedKeys)
		clear(s.pressedButtons)
	case EventPointerLocked:
		s.pointerLocked = true
	case EventPointerUnlocked:
		s.pointerLocked = false
	}
}

// KeyPressed reports whether the key with the given physical code is held.
func (s *EventState) KeyPressed(code Keycode) bool {
	_, ok := s.pressedKeys[code]
	return ok
}

// ButtonPressed reports whether the given mouse button is held.
func (s *EventState) ButtonPressed(b MouseButton) bool {
	_, ok := s.pressedButtons[b]
	return ok
}

// CursorPos returns the last known cursor position, or nil when the cursor
// is outside the window or has never entered it.
func (s *EventState) CursorPos() *image.Point {
	return s.cursorPos
}

// PointerLocked reports whether the pointer is currently locked.
func (s *EventState) PointerLocked() bool {
	return s.pointerLocked
}
