package vellum

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
)

// Vertex is one corner of a batched triangle, in pixel coordinates with the
// origin at the top-left of the surface.
type Vertex struct {
	X, Y  float32
	Color color.NRGBA
}

// DrawTarget is the external rendering collaborator. The engine only ever
// asks it to rasterize triangle batches, images and text; mesh, shader and
// texture lifetime are the target's concern.
type DrawTarget interface {
	// FillTriangles rasterizes the given triangle list. Every three indices
	// form one triangle.
	FillTriangles(vertices []Vertex, indices []uint16)

	// DrawImage draws img with its top-left corner at pos, scaled uniformly.
	DrawImage(img image.Image, pos image.Point, scale float64)

	// DrawText draws one line of text with the baseline starting at dot.
	DrawText(face font.Face, s string, dot image.Point, col color.NRGBA)
}

// RenderTarget is what a backend hands to an application: somewhere to draw
// with a known pixel size.
type RenderTarget interface {
	DrawTarget
	Surface
}

// Draw2D queues 2D shapes into a shared triangle batch so a frame's worth of
// rectangles and lines becomes a single FillTriangles call. Text and images
// are forwarded to the target immediately.
type Draw2D struct {
	target   DrawTarget
	vertices []Vertex
	indices  []uint16
}

// NewDraw2D creates a draw queue over the given target.
func NewDraw2D(target DrawTarget) *Draw2D {
	return &Draw2D{target: target}
}

// Flush sends all queued shapes to the target and clears the queue. Until
// Flush is called nothing queued is actually rendered; call it once per
// frame after the tree has been drawn.
func (d *Draw2D) Flush() {
	if len(d.indices) > 0 {
		d.target.FillTriangles(d.vertices, d.indices)
	}
	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
}

func (d *Draw2D) vert(x, y float32, col color.NRGBA) uint16 {
	d.vertices = append(d.vertices, Vertex{X: x, Y: y, Color: col})
	return uint16(len(d.vertices) - 1)
}

// FillPoly queues a filled convex polygon. Fewer than three vertices is a
// programming error and panics.
func (d *Draw2D) FillPoly(verts [][2]float32, col color.NRGBA) {
	if len(verts) < 3 {
		panic("vellum: FillPoly needs at least 3 vertices")
	}
	a := d.vert(verts[0][0], verts[0][1], col)
	b := d.vert(verts[1][0], verts[1][1], col)
	for _, v := range verts[2:] {
		c := d.vert(v[0], v[1], col)
		d.indices = append(d.indices, a, b, c)
		b = c
	}
}

// DrawLineStrip queues a line strip of the given width. Fewer than two
// vertices is a programming error and panics.
func (d *Draw2D) DrawLineStrip(verts [][2]float32, col color.NRGBA, width float32) {
	if len(verts) < 2 {
		panic("vellum: DrawLineStrip needs at least 2 vertices")
	}
	half := width * 0.5
	for i := 0; i+1 < len(verts); i++ {
		ax, ay := verts[i][0], verts[i][1]
		bx, by := verts[i+1][0], verts[i+1][1]

		// Unit perpendicular, 90 degrees counterclockwise from a->b.
		px, py := by-ay, -(bx - ax)
		length := float32(math.Hypot(float64(px), float64(py)))
		if length == 0 {
			continue
		}
		px, py = px/length*half, py/length*half

		va := d.vert(ax+px, ay+py, col)
		vb := d.vert(ax-px, ay-py, col)
		vc := d.vert(bx+px, by+py, col)
		vd := d.vert(bx-px, by-py, col)
		d.indices = append(d.indices, va, vb, vc, vb, vc, vd)
	}
}

// DrawLine queues a single line segment.
func (d *Draw2D) DrawLine(a, b [2]float32, col color.NRGBA, width float32) {
	d.DrawLineStrip([][2]float32{a, b}, col, width)
}

// FillRect queues a filled rectangle.
func (d *Draw2D) FillRect(rect image.Rectangle, col color.NRGBA) {
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	d.FillPoly([][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, col)
}

// OutlineRect queues a rectangle outline. Coordinates are nudged by half a
// pixel so odd line widths land on pixel centers.
func (d *Draw2D) OutlineRect(rect image.Rectangle, col color.NRGBA, width float32) {
	x0, y0 := float32(rect.Min.X)+0.5, float32(rect.Min.Y)+0.5
	x1, y1 := float32(rect.Max.X)+0.5, float32(rect.Max.Y)+0.5
	d.DrawLineStrip([][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}, col, width)
}

// DrawText draws one line of text with its top-left corner at pos. Queued
// triangles are flushed first so shapes and text stay in draw order.
func (d *Draw2D) DrawText(f *Font, s string, pos image.Point, col color.NRGBA) {
	if s == "" {
		return
	}
	d.Flush()
	d.target.DrawText(f.Face(), s, pos.Add(image.Point{Y: f.Ascent()}), col)
}

// DrawImage draws an image with its top-left corner at pos, scaled
// uniformly. Queued triangles are flushed first, as for DrawText.
func (d *Draw2D) DrawImage(img image.Image, pos image.Point, scale float64) {
	d.Flush()
	d.target.DrawImage(img, pos, scale)
}
