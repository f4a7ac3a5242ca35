package desktop

import "github.com/ttk-go/ttk/grid"

// attrKey is the attribute-dictionary cache's lookup key: the font variant
// a run resolved to (by its (family,size,bold) identity), the run's
// foreground color, and whether it's underlined (spec.md §4.3).
type attrKey struct {
	variant   fontKey
	rgb       grid.RGB
	underline bool
}

// attrDict is the precomputed draw state for a text run sharing attrKey:
// which font variant to sample glyphs from, the resolved RGBA tint, and
// the underline flag. On platforms with a native "attributed string"
// object (e.g. an NSDictionary of text attributes) this is exactly what
// that dictionary holds and what must be released on eviction; here the
// payload is plain Go values with nothing to explicitly release, so the
// cache's lru is built with a nil onEvict callback.
type attrDict struct {
	variant   *fontVariant
	rgba      [4]float32
	underline bool
}

// attributeCache caches built attrDicts, capacity ~100 (spec.md §4.3).
type attributeCache struct {
	lru *lru[attrKey, attrDict]
}

func newAttributeCache() *attributeCache {
	return &attributeCache{lru: newLRU[attrKey, attrDict](100, nil)}
}

func (a *attributeCache) Lookup(key attrKey, variant *fontVariant, colors *colorCache) attrDict {
	if d, ok := a.lru.Get(key); ok {
		return d
	}
	d := attrDict{
		variant:   variant,
		rgba:      colors.Lookup(key.rgb),
		underline: key.underline,
	}
	a.lru.Put(key, d)
	return d
}

func (a *attributeCache) Clear() {
	a.lru = newLRU[attrKey, attrDict](100, nil)
}
