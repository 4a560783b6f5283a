package vellum

import "image"

// ============================================================================
// Stacking containers
// ============================================================================

// Col lays its children out top to bottom. Leftover vertical space is
// divided among children in proportion to their flex weights.
type Col struct {
	baseWidget
	children []flexChild
}

// NewCol creates an empty vertical stack.
func NewCol() *Col {
	return &Col{baseWidget: newBaseWidget()}
}

// Child appends a child with the given flex weight and returns the container
// for chaining. A weight of zero keeps the child at its minimum height.
func (c *Col) Child(flex float64, w Widget) *Col {
	c.children = append(c.children, flexChild{widget: w, flex: flex})
	return c
}

func (c *Col) Children() []Widget {
	return flexWidgets(c.children)
}

func (c *Col) MinSize(_ *Theme, minSizes SizeMap, _ image.Point) image.Point {
	return stackMinSize(Vertical, c.children, minSizes)
}

func (c *Col) ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	stackComputeRects(Vertical, c.id, c.children, rect, theme, minSizes, rects)
}

// Row lays its children out left to right. Leftover horizontal space is
// divided among children in proportion to their flex weights.
type Row struct {
	baseWidget
	children []flexChild
}

// NewRow creates an empty horizontal stack.
func NewRow() *Row {
	return &Row{baseWidget: newBaseWidget()}
}

// Child appends a child with the given flex weight and returns the container
// for chaining. A weight of zero keeps the child at its minimum width.
func (r *Row) Child(flex float64, w Widget) *Row {
	r.children = append(r.children, flexChild{widget: w, flex: flex})
	return r
}

func (r *Row) Children() []Widget {
	return flexWidgets(r.children)
}

func (r *Row) MinSize(_ *Theme, minSizes SizeMap, _ image.Point) image.Point {
	return stackMinSize(Horizontal, r.children, minSizes)
}

func (r *Row) ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	stackComputeRects(Horizontal, r.id, r.children, rect, theme, minSizes, rects)
}

func flexWidgets(children []flexChild) []Widget {
	ws := make([]Widget, len(children))
	for i, c := range children {
		ws[i] = c.widget
	}
	return ws
}

// ============================================================================
// Overlap
// ============================================================================

// Overlap layers its children on top of each other: every child receives the
// container's full rectangle. Children are drawn in order, so later children
// appear above earlier ones.
type Overlap struct {
	baseWidget
	children []Widget
}

// NewOverlap creates an empty overlap container.
func NewOverlap() *Overlap {
	return &Overlap{baseWidget: newBaseWidget()}
}

// Child appends a layer and returns the container for chaining.
func (o *Overlap) Child(w Widget) *Overlap {
	o.children = append(o.children, w)
	return o
}

func (o *Overlap) Children() []Widget { return o.children }

func (o *Overlap) MinSize(_ *Theme, minSizes SizeMap, _ image.Point) image.Point {
	var size image.Point
	for _, child := range o.children {
		childSize := mustMinSize(minSizes, child.ID())
		if childSize.X > size.X {
			size.X = childSize.X
		}
		if childSize.Y > size.Y {
			size.Y = childSize.Y
		}
	}
	return size
}

func (o *Overlap) ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	rects[o.id] = rect
	for _, child := range o.children {
		child.ComputeRects(rect, theme, minSizes, rects)
	}
}

// ============================================================================
// Wrappers
// ============================================================================

// Inset surrounds its child with the theme padding on all four sides.
type Inset struct {
	baseWidget
	child Widget
}

// NewInset wraps a child in theme padding.
func NewInset(child Widget) *Inset {
	return &Inset{baseWidget: newBaseWidget(), child: child}
}

func (in *Inset) Children() []Widget { return []Widget{in.child} }

func (in *Inset) MinSize(theme *Theme, minSizes SizeMap, _ image.Point) image.Point {
	pad := image.Point{X: theme.Padding * 2, Y: theme.Padding * 2}
	return mustMinSize(minSizes, in.child.ID()).Add(pad)
}

func (in *Inset) ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	rects[in.id] = rect
	in.child.ComputeRects(rect.Inset(theme.Padding), theme, minSizes, rects)
}

// NoFill clips its child to the child's minimum size rather than letting it
// fill whatever rectangle the parent hands down.
type NoFill struct {
	baseWidget
	child Widget
}

// NewNoFill wraps a child so it is laid out at its minimum size.
func NewNoFill(child Widget) *NoFill {
	return &NoFill{baseWidget: newBaseWidget(), child: child}
}

func (n *NoFill) Children() []Widget { return []Widget{n.child} }

func (n *NoFill) MinSize(_ *Theme, minSizes SizeMap, _ image.Point) image.Point {
	return mustMinSize(minSizes, n.child.ID())
}

func (n *NoFill) ComputeRects(rect image.Rectangle, theme *Theme, minSizes SizeMap, rects RectMap) {
	clipped := image.Rectangle{
		Min: rect.Min,
		Max: rect.Min.Add(mustMinSize(minSizes, n.id)),
	}
	rects[n.id] = clipped
	n.child.ComputeRects(clipped, theme, minSizes, rects)
}

// ============================================================================
// Spacers
// ============================================================================

// Empty is a zero-size spacer. Give it a flex weight inside a Row or Col to
// soak up leftover space.
type Empty struct {
	baseWidget
}

// NewEmpty creates a zero-size spacer.
func NewEmpty() *Empty {
	return &Empty{baseWidget: newBaseWidget()}
}

func (e *Empty) MinSize(*Theme, SizeMap, image.Point) image.Point {
	return image.Point{}
}

// Padding is a fixed spacer one theme padding wide and tall.
type Padding struct {
	baseWidget
}

// NewPadding creates a theme-padding-sized spacer.
func NewPadding() *Padding {
	return &Padding{baseWidget: newBaseWidget()}
}

func (p *Padding) MinSize(theme *Theme, _ SizeMap, _ image.Point) image.Point {
	return image.Point{X: theme.Padding, Y: theme.Padding}
}
