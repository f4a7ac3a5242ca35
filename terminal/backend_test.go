package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ttk-go/ttk/grid"
)

func TestStyleForAppliesReverseSwap(t *testing.T) {
	colors := grid.NewColorPairTable()
	if err := colors.Init(7, [3]int{255, 0, 0}, [3]int{0, 0, 255}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cell := grid.Cell{Char: "X", ColorPair: 7, Attrs: grid.AttrReverse}
	style := styleFor(colors, cell)
	fg, bg, _ := style.Decompose()

	wantFg := tcell.NewRGBColor(0, 0, 255)
	wantBg := tcell.NewRGBColor(255, 0, 0)
	if fg != wantFg || bg != wantBg {
		t.Errorf("got fg=%v bg=%v, want fg=%v bg=%v (swapped)", fg, bg, wantFg, wantBg)
	}
}

func TestStyleForBoldUnderline(t *testing.T) {
	colors := grid.NewColorPairTable()
	cell := grid.Cell{Char: "X", Attrs: grid.AttrBold | grid.AttrUnderline}
	style := styleFor(colors, cell)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bold attribute")
	}
	if attrs&tcell.AttrUnderline == 0 {
		t.Error("expected underline attribute")
	}
}
