// Package ebitengine runs a vellum.App inside an Ebitengine window. It owns
// the window loop, translates Ebitengine input into vellum events, and
// implements vellum.RenderTarget on top of the frame's screen image.
package ebitengine

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vellumui/vellum"
)

// Triangle batches are textured with a uniform white pixel. A 1x1 interior
// subimage of a 3x3 image avoids bleeding at the texture edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Config describes the window to open.
type Config struct {
	Title      string
	WindowSize image.Point
}

// Run opens a window and drives the app built by newApp until the window is
// closed. newApp receives the render target the app should draw to; the
// target stays valid for the lifetime of the window.
func Run(cfg Config, newApp func(target vellum.RenderTarget) vellum.App) error {
	size := cfg.WindowSize
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{X: 800, Y: 600}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{target: &target{size: size}}
	g.loop = vellum.NewLoop(newApp(g.target))
	g.input.cursorPos = image.Point{X: -1, Y: -1}
	return ebiten.RunGame(g)
}

type game struct {
	loop     *vellum.Loop
	target   *target
	input    inputReader
	lastTick time.Time
}

func (g *game) Update() error {
	g.input.readInto(g.loop)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	now := time.Now()
	dt := 0.0
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	g.target.screen = screen
	g.loop.Tick(dt)
	g.target.screen = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Point{X: outsideWidth, Y: outsideHeight}
	if size != g.target.size {
		g.target.size = size
		g.loop.PushEvent(vellum.WindowResized(size))
	}
	return size.X, size.Y
}

// target implements vellum.RenderTarget. screen is only set while the app's
// RenderFrame runs; drawing outside a frame is a programming error.
type target struct {
	screen *ebiten.Image
	size   image.Point
}

func (t *target) Size() image.Point {
	return t.size
}

func (t *target) FillTriangles(vertices []vellum.Vertex, indices []uint16) {
	vs := make([]ebiten.Vertex, len(vertices))
	for i, v := range vertices {
		vs[i] = ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255,
		}
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	t.screen.DrawTriangles(vs, indices, whiteSubImage, op)
}

func (t *target) DrawImage(img image.Image, pos image.Point, scale float64) {
	src, ok := img.(*ebiten.Image)
	if !ok {
		src = ebiten.NewImageFromImage(img)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	t.screen.DrawImage(src, op)
}

func (t *target) DrawText(face font.Face, s string, dot image.Point, col color.NRGBA) {
	text.Draw(t.screen, s, face, dot.X, dot.Y, col)
}
