package desktop

import (
	"testing"

	"github.com/ttk-go/ttk/grid"
)

func TestColorCacheNormalizesToUnitRange(t *testing.T) {
	c := newColorCache()
	got := c.Lookup(grid.RGB{R: 255, G: 128, B: 0})
	want := [4]float32{1.0, 128.0 / 255.0, 0.0, 1.0}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestColorCacheHitsReturnSameValue(t *testing.T) {
	c := newColorCache()
	rgb := grid.RGB{R: 10, G: 20, B: 30}
	first := c.Lookup(rgb)
	second := c.Lookup(rgb)
	if first != second {
		t.Errorf("cached lookups diverged: %v vs %v", first, second)
	}
	if c.lru.Len() != 1 {
		t.Errorf("expected a single cache entry for repeated lookups, got %d", c.lru.Len())
	}
}

func TestAttributeCacheBuildsAndReusesDict(t *testing.T) {
	a := newAttributeCache()
	colors := newColorCache()
	variant := &fontVariant{charWidth: 8, charHeight: 16, ascent: 12}
	key := attrKey{variant: fontKey{family: "mono", size: 14, bold: true}, rgb: grid.RGB{R: 1, G: 2, B: 3}, underline: true}

	d1 := a.Lookup(key, variant, colors)
	d2 := a.Lookup(key, variant, colors)
	if d1.variant != d2.variant || d1.rgba != d2.rgba || d1.underline != d2.underline {
		t.Errorf("expected identical cached dicts, got %+v vs %+v", d1, d2)
	}
	if !d1.underline {
		t.Error("underline flag should carry through from the key")
	}
}
