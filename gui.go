package vellum

import "image"

// Surface is the drawable area the tree is laid out into. The backend's
// render target implements it.
type Surface interface {
	// Size returns the surface extent in pixels.
	Size() image.Point
}

// GuiResult is the outcome of one Draw call.
type GuiResult struct {
	renderedSize image.Point
}

// RenderedSize returns the actual rendered size of the root widget.
func (r GuiResult) RenderedSize() image.Point { return r.renderedSize }

// GuiEventResult partitions one batch of events into per-component buckets
// plus the events no component accepted. Buckets preserve arrival order.
type GuiEventResult struct {
	componentEvents map[WidgetID][]Event
	unhandled       []Event
}

// UnhandledEvents removes and returns the events that no component accepted
// and that were not focus-navigation keys.
func (r *GuiEventResult) UnhandledEvents() []Event {
	events := r.unhandled
	r.unhandled = nil
	return events
}

// UpdateComponent feeds a component the events routed to it, removing them
// from the result, and returns the component's outcome. A component whose
// bucket is empty is updated with no events.
func UpdateComponent[R any](r *GuiEventResult, c Component[R]) R {
	events := r.componentEvents[c.ID()]
	delete(r.componentEvents, c.ID())
	return c.Update(events)
}

// activeComponent records which component holds keyboard focus, both as an
// ordinal into the caller-supplied ordered-component list and as the
// component's id.
type activeComponent struct {
	index int
	id    WidgetID
}

// renderedGui is the previous frame's snapshot: the tree that was drawn and
// the rectangles it was drawn into. Event routing always works against this
// snapshot, never against a tree that has not been rendered yet.
type renderedGui struct {
	root  Widget
	rects RectMap
}

// Gui is a retained session. It owns the active-component focus state and
// the last rendered tree, so that events arriving between frames are routed
// against the geometry the user saw.
//
// A Gui is confined to a single goroutine; all methods must be called from
// the frame loop.
type Gui struct {
	active     *activeComponent
	lastRender *renderedGui
}

// NewGui creates a session with no active component and nothing rendered.
func NewGui() *Gui {
	return &Gui{}
}

// Draw lays the tree out into the surface and renders it.
//
// It runs the bottom-up measurement pass, the top-down rect pass seeded with
// the full surface rectangle, then draws every widget in pre-order (parents
// before children) through d. The tree and its rect map replace the stored
// snapshot used by HandleEvents. Queued geometry still has to be flushed by
// the caller with d.Flush once the frame is complete.
func (g *Gui) Draw(surface Surface, theme *Theme, d *Draw2D, cursorPos *image.Point, root Widget) GuiResult {
	size := surface.Size()
	minSizes := make(SizeMap)
	rects := make(RectMap)

	computeMinSizes(root, theme, minSizes, size)
	root.ComputeRects(image.Rectangle{Max: size}, theme, minSizes, rects)

	var activeID WidgetID
	hasActive := false
	if g.active != nil {
		activeID, hasActive = g.active.id, true
	}
	drawWidget(root, theme, d, rects, cursorPos, activeID, hasActive)

	res := GuiResult{renderedSize: mustRect(rects, root.ID()).Size()}
	g.lastRender = &renderedGui{root: root, rects: rects}
	return res
}

// drawWidget renders a widget and then its children, so children appear on
// top of their parent.
func drawWidget(w Widget, theme *Theme, d *Draw2D, rects RectMap, cursorPos *image.Point, activeID WidgetID, hasActive bool) {
	rect := mustRect(rects, w.ID())
	w.Draw(rect, theme, d, cursorPos, hasActive && activeID == w.ID())
	for _, child := range w.Children() {
		drawWidget(child, theme, d, rects, cursorPos, activeID, hasActive)
	}
}

// HandleEvents routes a batch of events against the most recently drawn
// tree. orderedComponents must list component ids that were part of that
// tree, in tab order; it defines both the focus cycle and the indices
// recorded in the active-component state.
//
// Events are processed strictly in order. Navigation key-downs move focus
// (Tab/arrows forward, Shift+Tab/arrows backward, modulo the component
// count) and are never delivered to a component. Any other event a component
// accepts lands in that component's bucket; the rest end up unhandled. A
// primary-button press accepted by a listed component makes it the active
// component.
//
// Before any tree has been drawn, every event is returned unhandled.
func (g *Gui) HandleEvents(events []Event, orderedComponents []WidgetID) GuiEventResult {
	res := GuiEventResult{componentEvents: make(map[WidgetID][]Event)}
	if g.lastRender == nil {
		res.unhandled = append(res.unhandled, events...)
		return res
	}

	// Keyboard navigation needs a starting point: with components present
	// and none active yet, the first one becomes active.
	if g.active == nil && len(orderedComponents) > 0 {
		g.active = &activeComponent{index: 0, id: orderedComponents[0]}
	}

	for _, ev := range events {
		// Navigation keys are intercepted before routing. Routed key-downs
		// are consumed by the active component, so checking afterwards would
		// leave Tab dead as soon as anything holds focus.
		if g.active != nil && len(orderedComponents) > 0 {
			if forward, ok := navDirection(ev); ok {
				n := len(orderedComponents)
				if forward {
					g.active.index = (g.active.index + 1) % n
				} else {
					g.active.index = (g.active.index - 1 + n) % n
				}
				g.active.id = orderedComponents[g.active.index]
				continue
			}
		}

		var activeID WidgetID
		hasActive := false
		if g.active != nil {
			activeID, hasActive = g.active.id, true
		}

		consumer, consumed := routeEvent(g.lastRender.root, ev, g.lastRender.rects, res.componentEvents, activeID, hasActive)
		if consumed {
			if ev.Type == EventMouseDown && ev.Button == MouseButtonLeft {
				g.focusComponent(consumer, orderedComponents)
			}
			continue
		}

		res.unhandled = append(res.unhandled, ev)
	}
	return res
}

// focusComponent makes the clicked component active, if it is part of the
// ordered list. Clicks on components outside the list leave focus alone.
func (g *Gui) focusComponent(id WidgetID, orderedComponents []WidgetID) {
	for i, candidate := range orderedComponents {
		if candidate == id {
			g.active = &activeComponent{index: i, id: id}
			return
		}
	}
}

// ActiveComponent returns the id of the component holding keyboard focus.
func (g *Gui) ActiveComponent() (WidgetID, bool) {
	if g.active == nil {
		return 0, false
	}
	return g.active.id, true
}
