package desktop

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ttk-go/ttk/ttkerr"
)

const atlasSize = 1024

// glyphRect is a glyph's location in its variant's atlas texture, normalized
// to 0-1, plus its pixel size for centering math.
type glyphRect struct {
	u0, v0, u1, v1 float32
	pixelWidth     int
}

// fontVariant is one loaded, rasterized (family, size, bold) combination:
// a GL atlas texture plus the glyph rects baked into it, and the metrics
// spec.md §4.4 requires (char_width, char_height, font_ascent).
type fontVariant struct {
	face font.Face

	atlasTex   uint32
	glyphs     map[rune]glyphRect
	charWidth  int
	charHeight int
	ascent     int
}

func (v *fontVariant) destroy() {
	if v.atlasTex != 0 {
		gl.DeleteTextures(1, &v.atlasTex)
	}
	v.face.Close()
}

// fontKey is the font cache's lookup key (spec.md §4.3: "keyed by
// (family, size, bold)").
type fontKey struct {
	family string
	size   float64
	bold   bool
}

// fontCache loads and caches font variants plus the fallback cascade used
// when the base font lacks a glyph. It is a plain map with no capacity
// limit and no eviction: variants stay loaded until Clear. The set of
// (family, size, bold) combinations a single session uses is bounded by
// config, not by cell content.
type fontCache struct {
	variants map[fontKey]*fontVariant
	sources  map[string][]byte // family name -> raw font bytes, registered by the caller
	cascade  []string          // family names consulted in order for a missing glyph
}

func newFontCache() *fontCache {
	return &fontCache{
		variants: make(map[fontKey]*fontVariant),
		sources:  make(map[string][]byte),
	}
}

// RegisterFont makes raw font bytes available under family for later
// lookup. The toolkit never embeds font assets (the pack carries none);
// the application supplies them, typically read from disk at startup.
func (c *fontCache) RegisterFont(family string, data []byte) {
	c.sources[family] = data
}

// SetCascade sets the ordered list of family names consulted when the
// base font can't represent a glyph (spec.md §4.3 "Font cascade").
func (c *fontCache) SetCascade(families []string) {
	c.cascade = families
}

// Variant returns the loaded variant for key, parsing and rasterizing it on
// first use.
func (c *fontCache) Variant(key fontKey) (*fontVariant, error) {
	if v, ok := c.variants[key]; ok {
		return v, nil
	}
	data, ok := c.sources[key.family]
	if !ok {
		return nil, fmt.Errorf("%w: font family %q not registered", ttkerr.FontNotFound, key.family)
	}
	v, err := buildFontVariant(data, key.size)
	if err != nil {
		return nil, err
	}
	c.variants[key] = v
	return v, nil
}

// GlyphFace walks the cascade to find a variant that can render r, starting
// from the base (family, size, bold) and falling through the registered
// cascade families at the same size/weight. Returns the winning variant, or
// the base variant when no cascade member has r; the error is non-nil only
// when the base variant itself cannot be loaded.
func (c *fontCache) GlyphFace(base fontKey, r rune) (*fontVariant, error) {
	v, err := c.Variant(base)
	if err != nil {
		return nil, err
	}
	if _, ok := v.glyphs[r]; ok || r == ' ' {
		return v, nil
	}
	for _, family := range c.cascade {
		fv, err := c.Variant(fontKey{family: family, size: base.size, bold: base.bold})
		if err != nil {
			continue
		}
		if _, ok := fv.glyphs[r]; ok {
			return fv, nil
		}
	}
	return v, nil // no cascade member has it either; caller draws .notdef via the base
}

func (c *fontCache) Clear() {
	for k, v := range c.variants {
		v.destroy()
		delete(c.variants, k)
	}
}

// verifyMonospace measures five diverse characters and requires their
// advances to agree within half a pixel (spec.md §4.4), returning
// ttkerr.FontNotMonospace otherwise.
func verifyMonospace(face font.Face) error {
	const halfPixel = fixed.Int26_6(32) // 0.5px in 26.6 fixed-point units
	samples := []rune{'i', 'W', 'M', '1', ' '}
	var first fixed.Int26_6
	for i, r := range samples {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		if i == 0 {
			first = adv
			continue
		}
		diff := adv - first
		if diff < 0 {
			diff = -diff
		}
		if diff > halfPixel {
			return ttkerr.FontNotMonospace
		}
	}
	return nil
}

func buildFontVariant(data []byte, size float64) (*fontVariant, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ttkerr.ResourceFailure, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating font face: %v", ttkerr.ResourceFailure, err)
	}
	if err := verifyMonospace(face); err != nil {
		face.Close()
		return nil, err
	}

	metrics := face.Metrics()
	charHeight := (metrics.Ascent + metrics.Descent).Ceil()
	advance, _ := face.GlyphAdvance('M')
	charWidth := advance.Ceil()

	atlas := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(atlas, atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: atlas, Src: image.White, Face: face}

	glyphs := make(map[rune]glyphRect)
	ranges := []struct{ start, end rune }{
		{32, 126}, {160, 255},
		{0x2500, 0x257F}, {0x2580, 0x259F}, {0x25A0, 0x25FF},
		{0x2600, 0x26FF}, {0x2700, 0x27BF},
	}
	x, y := 0, metrics.Ascent.Ceil()
	for _, rg := range ranges {
		for r := rg.start; r <= rg.end; r++ {
			if _, ok := face.GlyphAdvance(r); !ok {
				continue
			}
			if x+charWidth > atlasSize {
				x = 0
				y += charHeight
			}
			if y+charHeight > atlasSize {
				break
			}
			drawer.Dot = fixed.P(x, y)
			drawer.DrawString(string(r))
			glyphs[r] = glyphRect{
				u0:         float32(x) / atlasSize,
				v0:         float32(y-metrics.Ascent.Ceil()) / atlasSize,
				u1:         float32(x+charWidth) / atlasSize,
				v1:         float32(y-metrics.Ascent.Ceil()+charHeight) / atlasSize,
				pixelWidth: charWidth,
			}
			x += charWidth
		}
	}

	alpha := make([]byte, atlasSize*atlasSize)
	for i := 0; i < atlasSize*atlasSize; i++ {
		alpha[i] = atlas.Pix[i*4+3]
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasSize, atlasSize, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(alpha))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &fontVariant{
		face:       face,
		atlasTex:   tex,
		glyphs:     glyphs,
		charWidth:  charWidth,
		charHeight: charHeight,
		ascent:     metrics.Ascent.Ceil(),
	}, nil
}
