package vellum

// App is the interface a program implements to be driven by a Loop. A
// backend pushes raw events as they arrive and ticks the loop once per
// frame; the app sees every event immediately through HandleEvent and again,
// batched, in the next RenderFrame.
type App interface {
	// HandleEvent is called for every event as it is pushed, before the
	// frame that will deliver it. Useful for work that must not wait a
	// frame, such as pointer-lock requests that browsers only honor inside
	// the input callback.
	HandleEvent(ev Event)

	// RenderFrame is called once per tick with the events pushed since the
	// previous tick, the folded input state, and the elapsed time in
	// seconds. This is where the app rebuilds its widget tree, routes the
	// events and draws.
	RenderFrame(events []Event, state *EventState, dt float64)
}

// Loop shuttles events from a backend to an App one frame at a time,
// maintaining the folded EventState along the way. It is not safe for
// concurrent use; backends call PushEvent and Tick from the frame callback.
type Loop struct {
	app    App
	state  *EventState
	queued []Event
}

// NewLoop creates a loop driving the given app.
func NewLoop(app App) *Loop {
	return &Loop{app: app, state: NewEventState()}
}

// PushEvent hands one event to the app and queues it for the next Tick.
func (l *Loop) PushEvent(ev Event) {
	l.app.HandleEvent(ev)
	l.state.Apply(ev)
	l.queued = append(l.queued, ev)
}

// Tick delivers the queued events to the app's RenderFrame and clears the
// queue. dt is the time elapsed since the previous tick, in seconds.
func (l *Loop) Tick(dt float64) {
	events := l.queued
	l.queued = nil
	l.app.RenderFrame(events, l.state, dt)
}

// State returns the folded input state. The returned value is live; it
// changes as further events are pushed.
func (l *Loop) State() *EventState {
	return l.state
}
