package vellum

// Event routing walks the widget tree in pre-order and offers each event to
// the first component willing to accept it. Acceptance rules by event type:
//
//   - KeyDown/KeyUp: only the active component accepts.
//   - MouseDown/MouseUp/MouseMove: a component accepts when the event
//     position lies inside its rectangle from the last drawn frame; the
//     delivered copy carries coordinates local to that rectangle.
//   - FocusGained/FocusLost/WindowResized/Scroll: the first component in
//     traversal order accepts unconditionally.
//   - MouseEnter/MouseLeave/PointerLocked/PointerUnlocked: no component
//     accepts these; they are informational for the application.
//
// The first accepting component consumes the event: it is appended to that
// component's bucket and the search stops. Nothing is broadcast to siblings
// or to nested components, which is why nesting components is disallowed.

// routeEvent delivers one event against the previous frame's rect map.
// It returns the id of the consuming component, if any.
func routeEvent(w Widget, ev Event, rects RectMap, buckets map[WidgetID][]Event, activeID WidgetID, hasActive bool) (WidgetID, bool) {
	if w.IsComponent() {
		rect := mustRect(rects, w.ID())
		active := hasActive && activeID == w.ID()

		accepted := false
		delivered := ev
		switch ev.Type {
		case EventKeyDown, EventKeyUp:
			accepted = active
		case EventMouseDown, EventMouseUp, EventMouseMove:
			if ev.Pos.In(rect) {
				accepted = true
				delivered.Pos = ev.Pos.Sub(rect.Min)
			}
		case EventFocusGained, EventFocusLost, EventWindowResized, EventScroll:
			accepted = true
		}
		if accepted {
			buckets[w.ID()] = append(buckets[w.ID()], delivered)
			return w.ID(), true
		}
	}
	for _, child := range w.Children() {
		if id, ok := routeEvent(child, ev, rects, buckets, activeID, hasActive); ok {
			return id, true
		}
	}
	return 0, false
}

// navDirection classifies a key-down event as focus navigation.
// Tab and the right/down arrows advance; Shift+Tab and the left/up arrows
// retreat. Any other key is not navigation.
func navDirection(ev Event) (forward bool, ok bool) {
	if ev.Type != EventKeyDown {
		return false, false
	}
	switch key := ev.Key; key.Key {
	case "ArrowDown", "ArrowRight":
		return true, true
	case "ArrowUp", "ArrowLeft":
		return false, true
	case "Tab":
		return !key.Shift, true
	}
	return false, false
}
