package vellum

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFontMetrics(t *testing.T) {
	f := NewFont(basicfont.Face7x13)

	if got := f.StringWidth("hello"); got != 35 {
		t.Errorf("StringWidth = %d, want 35", got)
	}
	if got, want := f.StringSize("hello"), (image.Point{X: 35, Y: 13}); got != want {
		t.Errorf("StringSize = %v, want %v", got, want)
	}
	if got := f.AdvanceY(); got != 13 {
		t.Errorf("AdvanceY = %d, want 13", got)
	}
	if got := f.Ascent(); got != 11 {
		t.Errorf("Ascent = %d, want 11", got)
	}
	if got := f.StringWidth(""); got != 0 {
		t.Errorf("StringWidth of empty string = %d, want 0", got)
	}
}

func TestFontStringWidthCached(t *testing.T) {
	f := NewFont(basicfont.Face7x13)

	first := f.StringWidth("cached")
	second := f.StringWidth("cached")
	if first != second {
		t.Errorf("cached width %d differs from first measurement %d", second, first)
	}
}

func TestMeasureCacheEvictsOldest(t *testing.T) {
	c := newMeasureCache(2)
	c.put("a", 1)
	c.put("b", 2)
	c.put("c", 3)

	if _, ok := c.get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	for key, want := range map[string]int{"b": 2, "c": 3} {
		if got, ok := c.get(key); !ok || got != want {
			t.Errorf("get(%q) = %d, %t, want %d, true", key, got, ok, want)
		}
	}
}

func TestMeasureCacheMoveToFront(t *testing.T) {
	c := newMeasureCache(2)
	c.put("a", 1)
	c.put("b", 2)
	c.get("a") // refresh
	c.put("c", 3)

	if _, ok := c.get("a"); !ok {
		t.Error("recently used entry should survive eviction")
	}
	if _, ok := c.get("b"); ok {
		t.Error("least recently used entry should have been evicted")
	}
}
