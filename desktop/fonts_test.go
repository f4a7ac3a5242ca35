package desktop

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fakeFace is a minimal font.Face stub for exercising verifyMonospace
// without a real rasterized font.
type fakeFace struct {
	advances map[rune]fixed.Int26_6
}

func (f *fakeFace) Close() error { return nil }
func (f *fakeFace) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}
func (f *fakeFace) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	return fixed.Rectangle26_6{}, 0, false
}
func (f *fakeFace) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	a, ok := f.advances[r]
	return a, ok
}
func (f *fakeFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }
func (f *fakeFace) Metrics() font.Metrics          { return font.Metrics{} }

func newMonospaceFace(width fixed.Int26_6) *fakeFace {
	return &fakeFace{advances: map[rune]fixed.Int26_6{
		'i': width, 'W': width, 'M': width, '1': width, ' ': width,
	}}
}
