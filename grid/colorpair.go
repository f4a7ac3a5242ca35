package grid

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ttk-go/ttk/ttkerr"
)

// RGB is a packed 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ColorPair is a named (foreground, background) RGB pair.
type ColorPair struct {
	Fg RGB
	Bg RGB
}

// DefaultColorPair is pair 0: white on black, reserved and not user-settable.
func DefaultColorPair() ColorPair {
	return ColorPair{Fg: RGB{255, 255, 255}, Bg: RGB{0, 0, 0}}
}

// ColorPairTable maps pair ids 1-255 to (fg,bg) RGB pairs. Pair 0 is the
// reserved default and resolves without a map lookup. Missing entries in
// 1-255 also resolve to the default, per spec.md §4.6.
type ColorPairTable struct {
	pairs [256]ColorPair
	set   [256]bool
}

// NewColorPairTable returns a table with pair 0 initialized to the default;
// all other entries unset.
func NewColorPairTable() *ColorPairTable {
	t := &ColorPairTable{}
	t.pairs[0] = DefaultColorPair()
	t.set[0] = true
	return t
}

// Init validates and stores pair id (1-255) with fg/bg components each in
// 0-255. Overwriting an existing entry is allowed. Pair 0 is rejected with
// ttkerr.InvalidArgument; any component outside 0-255 likewise.
func (t *ColorPairTable) Init(id int, fg, bg [3]int) error {
	if id <= 0 || id > 255 {
		return fmt.Errorf("color pair id %d out of range [1,255]: %w", id, ttkerr.InvalidArgument)
	}
	fgRGB, err := toRGB(fg)
	if err != nil {
		return err
	}
	bgRGB, err := toRGB(bg)
	if err != nil {
		return err
	}
	t.pairs[id] = ColorPair{Fg: fgRGB, Bg: bgRGB}
	t.set[id] = true
	return nil
}

func toRGB(c [3]int) (RGB, error) {
	for _, v := range c {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("rgb component %d out of range [0,255]: %w", v, ttkerr.InvalidArgument)
		}
	}
	return RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}, nil
}

// Lookup resolves a pair id to its (fg,bg). Missing entries (including 0
// before any Init, and any id never passed to Init) resolve to the default.
// reverse swaps fg/bg at lookup time without mutating the table.
func (t *ColorPairTable) Lookup(id uint16, reverse bool) ColorPair {
	var cp ColorPair
	if id < 256 && t.set[id] {
		cp = t.pairs[id]
	} else {
		cp = DefaultColorPair()
	}
	if reverse {
		cp.Fg, cp.Bg = cp.Bg, cp.Fg
	}
	return cp
}

// Clear resets the table to its just-constructed state (pair 0 = default,
// all others unset). Called from Renderer.shutdown().
func (t *ColorPairTable) Clear() {
	*t = *NewColorPairTable()
}

// Colorful returns c as a go-colorful Color for perceptual color
// comparisons. No code in this module calls it; the desktop renderer's
// cursor is a fixed translucent white.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
