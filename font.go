package vellum

import (
	"container/list"
	"image"
	"sync"

	"golang.org/x/image/font"
)

// measureCache is an LRU cache for string width measurements. Layout
// measures the same strings every frame, so caching keeps the font shaping
// cost off the hot path.
type measureCache struct {
	mu      sync.Mutex
	maxSize int
	cache   map[string]*list.Element
	lru     *list.List // Front = most recently used
}

type measureEntry struct {
	key   string
	width int
}

func newMeasureCache(maxSize int) *measureCache {
	return &measureCache{
		maxSize: maxSize,
		cache:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *measureCache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*measureEntry).width, true
	}
	return 0, false
}

func (c *measureCache) put(key string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*measureEntry).width = width
		return
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.cache, oldest.Value.(*measureEntry).key)
		}
	}

	elem := c.lru.PushFront(&measureEntry{key: key, width: width})
	c.cache[key] = elem
}

// measureCacheSize bounds per-font memory; 10k entries covers even very
// text-heavy UIs.
const measureCacheSize = 10000

// Font wraps a font.Face with the integer metrics the layout engine needs.
// All vertical metrics are derived once at construction.
type Font struct {
	face     font.Face
	ascent   int
	advanceY int
	cache    *measureCache
}

// NewFont wraps a face for use in a Theme.
func NewFont(face font.Face) *Font {
	metrics := face.Metrics()
	return &Font{
		face:     face,
		ascent:   metrics.Ascent.Ceil(),
		advanceY: metrics.Height.Ceil(),
		cache:    newMeasureCache(measureCacheSize),
	}
}

// Face returns the wrapped face for the draw target.
func (f *Font) Face() font.Face { return f.face }

// StringWidth returns the advance of s in whole pixels.
func (f *Font) StringWidth(s string) int {
	if s == "" {
		return 0
	}
	if w, ok := f.cache.get(s); ok {
		return w
	}
	w := font.MeasureString(f.face, s).Ceil()
	f.cache.put(s, w)
	return w
}

// StringSize returns the size of the rectangle occupied by one line of s.
func (f *Font) StringSize(s string) image.Point {
	return image.Point{X: f.StringWidth(s), Y: f.advanceY}
}

// AdvanceY returns the vertical distance between successive baselines.
func (f *Font) AdvanceY() int { return f.advanceY }

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() int { return f.ascent }
