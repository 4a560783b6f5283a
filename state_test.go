package vellum

import (
	"image"
	"testing"
)

func TestEventStateKeysAndButtons(t *testing.T) {
	s := NewEventState()

	s.Apply(KeyDown(Key{Key: "a", Code: "KeyA"}))
	s.Apply(MouseDown(MouseButtonLeft, image.Point{X: 3, Y: 4}))

	if !s.KeyPressed("KeyA") {
		t.Error("KeyA should be pressed")
	}
	if !s.ButtonPressed(MouseButtonLeft) {
		t.Error("left button should be pressed")
	}

	s.Apply(KeyUp(Key{Key: "a", Code: "KeyA"}))
	s.Apply(MouseUp(MouseButtonLeft, image.Point{X: 3, Y: 4}))

	if s.KeyPressed("KeyA") || s.ButtonPressed(MouseButtonLeft) {
		t.Error("release events should clear pressed state")
	}
}

func TestEventStateCursor(t *testing.T) {
	s := NewEventState()
	if s.CursorPos() != nil {
		t.Fatal("cursor should start unknown")
	}

	s.Apply(MouseMove(image.Point{X: 10, Y: 20}))
	if got := s.CursorPos(); got == nil || *got != (image.Point{X: 10, Y: 20}) {
		t.Errorf("cursor = %v, want (10,20)", got)
	}

	s.Apply(Event{Type: EventMouseLeave})
	if s.CursorPos() != nil {
		t.Error("cursor should be unknown after leaving the window")
	}
}

func TestEventStateFocusLossClearsPressed(t *testing.T) {
	s := NewEventState()
	s.Apply(KeyDown(Key{Key: "a", Code: "KeyA"}))
	s.Apply(MouseDown(MouseButtonLeft, image.Point{}))

	s.Apply(Event{Type: EventFocusLost})

	if s.KeyPressed("KeyA") {
		t.Error("keys must reset on focus loss; their releases are never seen")
	}
	if s.ButtonPressed(MouseButtonLeft) {
		t.Error("buttons must reset on focus loss")
	}
}

func TestEventStateMouseLeaveClearsButtons(t *testing.T) {
	s := NewEventState()
	s.Apply(KeyDown(Key{Key: "a", Code: "KeyA"}))
	s.Apply(MouseDown(MouseButtonLeft, image.Point{}))

	s.Apply(Event{Type: EventMouseLeave})

	if s.ButtonPressed(MouseButtonLeft) {
		t.Error("buttons must reset when the cursor leaves the window")
	}
	if !s.KeyPressed("KeyA") {
		t.Error("keys are unaffected by the cursor leaving")
	}
}

func TestEventStatePointerLock(t *testing.T) {
	s := NewEventState()
	if s.PointerLocked() {
		t.Fatal("pointer should start unlocked")
	}
	s.Apply(Event{Type: EventPointerLocked})
	if !s.PointerLocked() {
		t.Error("pointer should be locked")
	}
	s.Apply(Event{Type: EventPointerUnlocked})
	if s.PointerLocked() {
		t.Error("pointer should be unlocked again")
	}
}

// loopApp records what the Loop feeds it.
type loopApp struct {
	immediate []Event
	batches   [][]Event
}

func (a *loopApp) HandleEvent(ev Event) { a.immediate = append(a.immediate, ev) }

func (a *loopApp) RenderFrame(events []Event, _ *EventState, _ float64) {
	a.batches = append(a.batches, events)
}

func TestLoopDeliversEventsTwice(t *testing.T) {
	app := &loopApp{}
	l := NewLoop(app)

	l.PushEvent(KeyDown(Key{Key: "a", Code: "KeyA"}))
	l.PushEvent(MouseMove(image.Point{X: 1, Y: 2}))

	if len(app.immediate) != 2 {
		t.Fatalf("immediate deliveries = %d, want 2", len(app.immediate))
	}
	if len(app.batches) != 0 {
		t.Fatal("no frame should have run yet")
	}
	if !l.State().KeyPressed("KeyA") {
		t.Error("loop state should fold pushed events")
	}

	l.Tick(1.0 / 60)
	if len(app.batches) != 1 || len(app.batches[0]) != 2 {
		t.Fatalf("frame batches = %v, want one batch of 2", app.batches)
	}

	l.Tick(1.0 / 60)
	if got := app.batches[1]; len(got) != 0 {
		t.Errorf("second frame batch = %v, want empty (queue drained)", got)
	}
}
