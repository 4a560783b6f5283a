package vellum

import (
	"fmt"
	"image"
)

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// computeMinSizes runs the bottom-up measurement pass: a post-order traversal
// that records every widget's minimum size in minSizes. Children are measured
// before their parent, so a parent's MinSize can rely on its children's
// entries being present.
func computeMinSizes(w Widget, theme *Theme, minSizes SizeMap, windowSize image.Point) {
	for _, child := range w.Children() {
		computeMinSizes(child, theme, minSizes, windowSize)
	}
	minSizes[w.ID()] = w.MinSize(theme, minSizes, windowSize)
}

// mustMinSize looks up a widget's measured size. A missing entry means the
// measurement pass never visited the widget, which is a contract violation
// by the caller, so it aborts.
func mustMinSize(minSizes SizeMap, id WidgetID) image.Point {
	size, ok := minSizes[id]
	if !ok {
		panic(fmt.Sprintf("vellum: widget %d has no measured min size; was it part of the measured tree?", id))
	}
	return size
}

// mustRect looks up a widget's assigned rectangle, aborting on a missing
// entry for the same reason as mustMinSize.
func mustRect(rects RectMap, id WidgetID) image.Rectangle {
	rect, ok := rects[id]
	if !ok {
		panic(fmt.Sprintf("vellum: widget %d has no rect; was it part of the last drawn tree?", id))
	}
	return rect
}

// Axis selects the main direction of a stacking container. Row stacks along
// Horizontal, Col along Vertical; the cross axis is the other one.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// main returns the component of p along the axis.
func (a Axis) main(p image.Point) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// cross returns the component of p across the axis.
func (a Axis) cross(p image.Point) int {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

// point assembles a point from main- and cross-axis components.
func (a Axis) point(main, cross int) image.Point {
	if a == Horizontal {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

// flexChild pairs a stacked child with its flex weight. The weight controls
// how much of the container's leftover main-axis space the child receives.
type flexChild struct {
	widget Widget
	flex   float64
}

// stackMinSize implements the measurement policy shared by Row and Col:
// the sum of child extents along the main axis, the maximum across it.
func stackMinSize(axis Axis, children []flexChild, minSizes SizeMap) image.Point {
	var main, cross int
	for _, c := range children {
		childSize := mustMinSize(minSizes, c.widget.ID())
		main += axis.main(childSize)
		if cc := axis.cross(childSize); cc > cross {
			cross = cc
		}
	}
	return axis.point(main, cross)
}

// stackComputeRects implements the rect-assignment policy shared by Row and
// Col. With a total flex weight of zero the container collapses to its
// minimum extent along the main axis and no extra space is distributed.
// Otherwise the container fills rect and each child receives its minimum
// extent plus floor(extra*flex/total). The floor truncation means the
// children may underfill the container by up to one pixel per child; that
// deficit is deliberate (see the layout tests).
func stackComputeRects(axis Axis, id WidgetID, children []flexChild, rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	totalFlex := 0.0
	for _, c := range children {
		totalFlex += c.flex
	}

	minSize := mustMinSize(minSizes, id)
	cross := axis.cross(rect.Size())

	ownRect := rect
	if totalFlex == 0 {
		ownRect = image.Rectangle{
			Min: rect.Min,
			Max: rect.Min.Add(axis.point(axis.main(minSize), cross)),
		}
		totalFlex = 1 // avoid dividing by zero; all shares are zero anyway
	}
	rects[id] = ownRect

	extra := axis.main(rect.Size()) - axis.main(minSize)
	next := rect.Min
	for _, c := range children {
		childMin := mustMinSize(minSizes, c.widget.ID())
		share := int(float64(extra) * c.flex / totalFlex)
		extent := axis.main(childMin) + share
		childRect := image.Rectangle{
			Min: next,
			Max: next.Add(axis.point(extent, cross)),
		}
		debugLog("stack child %d: extent=%d share=%d rect=%v", c.widget.ID(), extent, share, childRect)
		next = next.Add(axis.point(extent, 0))
		c.widget.ComputeRects(childRect, theme, minSizes, rects)
	}
}
