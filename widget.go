// Package vellum is a retained-mode widget layout and event-routing engine.
//
// Each frame the application builds a widget tree and hands it to a Gui
// session. The session negotiates rectangles in two passes (bottom-up minimum
// sizes, top-down rect assignment with flex-weighted space distribution),
// renders every widget through an external DrawTarget, and keeps the tree and
// its rect map around so that the next batch of input events can be routed
// against the geometry the user actually saw.
package vellum

import (
	"image"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget within a tree snapshot.
// IDs are stable for the lifetime of a widget object, so a widget that is
// reused across frames keeps its focus and event linkage.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// SizeMap holds the computed minimum size of each widget in a tree.
// It is filled by the bottom-up measurement pass and read by the rect pass.
type SizeMap map[WidgetID]image.Point

// RectMap holds the screen-space rectangle assigned to each widget.
// The Gui session persists the map across frames: events arriving before the
// next Draw are hit-tested against these rectangles.
type RectMap map[WidgetID]image.Rectangle

// Widget is the capability contract every tree node implements.
type Widget interface {
	// ID returns the widget's stable identity.
	ID() WidgetID

	// IsComponent reports whether this widget is the root of a component,
	// i.e. a focus- and event-receiving unit.
	//
	// Nesting a component inside another component is a disallowed
	// configuration: the outer component receives all events due to
	// first-match routing, but that behavior is not guaranteed.
	IsComponent() bool

	// Draw renders only this widget's own visuals into rect. Children are
	// drawn automatically afterwards, in Children() order. cursorPos is nil
	// when the cursor is outside the surface; active is true when this
	// widget is the active component.
	Draw(rect image.Rectangle, theme *Theme, d *Draw2D, cursorPos *image.Point, active bool)

	// MinSize computes the widget's intrinsic minimum size. By the time it
	// is called, minSizes contains an entry for every child. Implementations
	// may read child entries but must not mutate the map.
	MinSize(theme *Theme, minSizes SizeMap, windowSize image.Point) image.Point

	// Children returns the child widgets in traversal, draw and event order.
	Children() []Widget

	// ComputeRects must insert this widget's rectangle into rects and invoke
	// ComputeRects on each child with whatever sub-rectangle it allocates.
	// Widgets with children must override the default leaf behavior, which
	// only records the widget's own rect.
	ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap)
}

// Component is a widget that owns persistent state and consumes the input
// events routed to it. R is the result of one update; a button's result says
// whether it was pressed, a text field's whether its text changed.
type Component[R any] interface {
	Widget

	// Update applies the events routed to this component since the last
	// frame and returns the outcome. Called via UpdateComponent, not
	// directly.
	Update(events []Event) R
}

// baseWidget provides the identity and leaf defaults shared by all widgets.
// Embedders override Children and ComputeRects when they have children.
type baseWidget struct {
	id WidgetID
}

func newBaseWidget() baseWidget {
	return baseWidget{id: newWidgetID()}
}

func (b *baseWidget) ID() WidgetID { return b.id }

func (b *baseWidget) IsComponent() bool { return false }

func (b *baseWidget) Children() []Widget { return nil }

func (b *baseWidget) Draw(image.Rectangle, *Theme, *Draw2D, *image.Point, bool) {}

// ComputeRects records the widget's own rect. Containers must override this
// and recurse into their children.
func (b *baseWidget) ComputeRects(rect image.Rectangle, _ *Theme, _ SizeMap, rects RectMap) {
	rects[b.id] = rect
}
