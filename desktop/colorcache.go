package desktop

import "github.com/ttk-go/ttk/grid"

// colorCache caches the normalized [4]float32 RGBA a grid.RGB resolves to,
// keyed by (r,g,b) (spec.md §4.3, capacity ~256). The conversion itself is
// cheap, but every background- and text-run draw call looks it up once per
// run, and a plain map-with-manual-eviction would grow unbounded across a
// long session repainting many transient colors (e.g. a 256-color palette
// cycling through highlight states), so it rides the same lru type the
// attribute-dict cache uses.
type colorCache struct {
	lru *lru[grid.RGB, [4]float32]
}

func newColorCache() *colorCache {
	return &colorCache{lru: newLRU[grid.RGB, [4]float32](256, nil)}
}

func (c *colorCache) Lookup(rgb grid.RGB) [4]float32 {
	if v, ok := c.lru.Get(rgb); ok {
		return v
	}
	v := [4]float32{
		float32(rgb.R) / 255,
		float32(rgb.G) / 255,
		float32(rgb.B) / 255,
		1.0,
	}
	c.lru.Put(rgb, v)
	return v
}
