package grid

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// RuneWidth returns the display width of a rune (0, 1, or 2 cells).
// 0 = zero-width (combining marks, null, non-printable)
// 1 = normal single-width character
// 2 = wide character (CJK, emoji, etc.)
func RuneWidth(r rune) int {
	// Null character has zero width
	if r == '\x00' {
		return 0
	}

	// Non-printable characters have zero width
	if !unicode.IsPrint(r) {
		return 0
	}

	// Combining characters have zero width
	// Mn = Mark, Nonspacing
	// Me = Mark, Enclosing
	// Mc = Mark, Spacing Combining
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}

	// Use East Asian Width properties from x/text/width
	k := width.LookupRune(r)
	switch k.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringWidth returns the total display width of a string, one grapheme
// cluster at a time (see Graphemes) so a base rune plus its combining marks
// is measured once, not once per code point.
func StringWidth(s string) int {
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w += graphemeWidth(gr.Runes())
	}
	return w
}

// Graphemes splits s into its grapheme clusters, the unit spec.md's Cell and
// Char event model calls a "grapheme" (one user-perceived character however
// many code points it takes — a base letter plus combining accents, or a
// flag emoji made of two regional-indicator code points).
func Graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// GraphemeWidth returns the display width (0, 1, or 2) of a single grapheme
// cluster, taking the widest constituent rune the way a terminal would.
func GraphemeWidth(cluster string) int {
	var runes []rune
	for _, r := range cluster {
		runes = append(runes, r)
	}
	return graphemeWidth(runes)
}

func graphemeWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		if rw := RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}
