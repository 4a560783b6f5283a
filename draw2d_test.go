package vellum

import (
	"image"
	"image/color"
	"testing"
)

var testColor = color.NRGBA{R: 0xFF, A: 0xFF}

func TestFillRectBatchesTwoTriangles(t *testing.T) {
	target := &recordingTarget{}
	d := NewDraw2D(target)

	d.FillRect(image.Rect(0, 0, 10, 10), testColor)

	if target.triangleCalls != 0 {
		t.Fatal("nothing should reach the target before Flush")
	}
	d.Flush()
	if target.triangleCalls != 1 {
		t.Fatalf("FillTriangles calls = %d, want 1", target.triangleCalls)
	}
	if target.vertices != 4 {
		t.Errorf("vertices = %d, want 4 (two triangles via fan)", target.vertices)
	}
}

func TestFlushBatchesAcrossShapes(t *testing.T) {
	target := &recordingTarget{}
	d := NewDraw2D(target)

	d.FillRect(image.Rect(0, 0, 10, 10), testColor)
	d.OutlineRect(image.Rect(0, 0, 10, 10), testColor, 1)
	d.DrawLine([2]float32{0, 0}, [2]float32{5, 5}, testColor, 2)
	d.Flush()

	if target.triangleCalls != 1 {
		t.Errorf("FillTriangles calls = %d, want 1 (shapes share a batch)", target.triangleCalls)
	}

	d.Flush()
	if target.triangleCalls != 1 {
		t.Error("an empty flush must not call the target")
	}
}

func TestDrawTextFlushesQueuedShapes(t *testing.T) {
	target := &recordingTarget{}
	d := NewDraw2D(target)
	f := testTheme().Font

	d.FillRect(image.Rect(0, 0, 10, 10), testColor)
	d.DrawText(f, "hi", image.Point{X: 2, Y: 1}, testColor)

	// The fill must reach the target before the text so the text stays on
	// top.
	if target.triangleCalls != 1 {
		t.Errorf("FillTriangles calls = %d, want 1 (flushed by DrawText)", target.triangleCalls)
	}
	if len(target.texts) != 1 || target.texts[0] != "hi" {
		t.Errorf("texts = %v, want [hi]", target.texts)
	}
}

func TestDrawTextSkipsEmptyString(t *testing.T) {
	target := &recordingTarget{}
	d := NewDraw2D(target)

	d.DrawText(testTheme().Font, "", image.Point{}, testColor)
	if len(target.texts) != 0 {
		t.Errorf("texts = %v, want none", target.texts)
	}
}

func TestFillPolyRequiresThreeVertices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 2-vertex polygon")
		}
	}()
	NewDraw2D(&recordingTarget{}).FillPoly([][2]float32{{0, 0}, {1, 1}}, testColor)
}

func TestDrawLineStripRequiresTwoVertices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 1-vertex line strip")
		}
	}()
	NewDraw2D(&recordingTarget{}).DrawLineStrip([][2]float32{{0, 0}}, testColor, 1)
}

func TestDrawLineStripSkipsZeroLengthSegments(t *testing.T) {
	target := &recordingTarget{}
	d := NewDraw2D(target)

	d.DrawLineStrip([][2]float32{{5, 5}, {5, 5}}, testColor, 1)
	d.Flush()

	if target.triangleCalls != 0 {
		t.Error("a degenerate segment must not produce triangles")
	}
}
