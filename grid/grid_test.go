package grid

import (
	"errors"
	"testing"

	"github.com/ttk-go/ttk/ttkerr"
)

func TestNewGridAllEmpty(t *testing.T) {
	g := NewGrid(3, 10)
	rows, cols := g.Dimensions()
	if rows != 3 || cols != 10 {
		t.Fatalf("dimensions: got (%d,%d), want (3,10)", rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.At(r, c).IsEmpty() {
				t.Fatalf("cell (%d,%d) not empty: %+v", r, c, g.At(r, c))
			}
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawText(0, 0, "hi", 1, AttrBold)
	g.Clear()
	g.Clear()
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if !g.At(r, c).IsEmpty() {
				t.Fatalf("cell (%d,%d) not empty after clear: %+v", r, c, g.At(r, c))
			}
		}
	}
}

func TestDrawTextOnEmptyGrid(t *testing.T) {
	g := NewGrid(3, 10)
	g.DrawText(1, 2, "abc", 5, AttrUnderline)
	want := []Cell{
		{Char: "a", ColorPair: 5, Attrs: AttrUnderline},
		{Char: "b", ColorPair: 5, Attrs: AttrUnderline},
		{Char: "c", ColorPair: 5, Attrs: AttrUnderline},
	}
	for i, w := range want {
		got := g.At(1, 2+i)
		if got != w {
			t.Errorf("cell (1,%d): got %+v, want %+v", 2+i, got, w)
		}
	}
	if !g.At(0, 0).IsEmpty() || !g.At(2, 9).IsEmpty() {
		t.Errorf("cells outside the written span should remain empty")
	}
}

func TestDrawTextNegativeColClipsLeadingChars(t *testing.T) {
	g := NewGrid(1, 10)
	g.DrawText(0, -2, "hello", 0, 0)
	// "he" discarded while col < 0, "llo" written starting at col 0.
	if g.At(0, 0).Char != "l" || g.At(0, 1).Char != "l" || g.At(0, 2).Char != "o" {
		t.Fatalf("unexpected row: %q %q %q", g.At(0, 0).Char, g.At(0, 1).Char, g.At(0, 2).Char)
	}
}

func TestDrawTextOutOfRangeRowIsNoOp(t *testing.T) {
	g := NewGrid(3, 10)
	g.DrawText(-1, 0, "x", 0, 0)
	g.DrawText(3, 0, "x", 0, 0)
	for r := 0; r < 3; r++ {
		for c := 0; c < 10; c++ {
			if !g.At(r, c).IsEmpty() {
				t.Fatalf("expected no writes, got %+v at (%d,%d)", g.At(r, c), r, c)
			}
		}
	}
}

func TestWideCharacterPlaceholderInvariant(t *testing.T) {
	g := NewGrid(1, 10)
	g.DrawText(0, 0, "あいう", 0, 0)

	wantLead := []int{0, 2, 4}
	for _, c := range wantLead {
		cell := g.At(0, c)
		if !cell.Wide || cell.Char == "" {
			t.Fatalf("col %d expected wide lead, got %+v", c, cell)
		}
	}
	for _, c := range []int{1, 3, 5} {
		cell := g.At(0, c)
		if !cell.IsPlaceholder() {
			t.Fatalf("col %d expected placeholder, got %+v", c, cell)
		}
		lead := g.At(0, c-1)
		if !lead.Wide || lead.Char == "" {
			t.Fatalf("col %d placeholder has no wide lead at col %d: %+v", c, c-1, lead)
		}
	}
}

func TestWideCharacterOverwriteRepairsLeadCell(t *testing.T) {
	// Scenario from spec.md §8: a dialog hline overdraws the right half of a
	// wide character; the stale lead must repair to a space in its own
	// color, not bleed the original glyph across the new content.
	g := NewGrid(3, 10)
	g.DrawText(0, 0, "あいう", 0, 0)
	g.DrawHLine(0, 1, " ", 4, 5)

	if got, want := g.At(0, 0), (Cell{Char: " "}); got != want {
		t.Errorf("col 0: got %+v, want %+v (repaired lead keeps its own color pair)", got, want)
	}
	for c := 1; c <= 3; c++ {
		got := g.At(0, c)
		want := Cell{Char: " ", ColorPair: 5}
		if got != want {
			t.Errorf("col %d: got %+v, want %+v", c, got, want)
		}
	}
	lead := g.At(0, 4)
	if lead.Char != " " || lead.Wide {
		t.Errorf("col 4 lead is overwritten by the hline and should be a plain space, got %+v", lead)
	}
	if g.At(0, 4).ColorPair != 5 {
		t.Errorf("col 4 should carry the hline's color pair 5, got %+v", g.At(0, 4))
	}
}

func TestNarrowOverwriteOfLeadRepairsPlaceholder(t *testing.T) {
	// A narrow write that lands on a wide lead's column but doesn't reach
	// its placeholder column must still collapse that placeholder, or the
	// grid ends up with char=="" next to a non-wide neighbor.
	g := NewGrid(1, 10)
	g.DrawText(0, 5, "あ", 0, 0)
	g.DrawText(0, 5, "x", 0, 0)

	lead := g.At(0, 5)
	if lead.Char != "x" || lead.Wide {
		t.Errorf("col 5: got %+v, want plain narrow 'x'", lead)
	}
	orphan := g.At(0, 6)
	if orphan.IsPlaceholder() {
		t.Errorf("col 6: left as orphaned placeholder %+v", orphan)
	}
	if orphan.Char != " " || orphan.Wide {
		t.Errorf("col 6: got %+v, want repaired plain space", orphan)
	}
}

func TestClearRegionOverwriteOfLeadRepairsPlaceholder(t *testing.T) {
	g := NewGrid(1, 10)
	g.DrawText(0, 5, "あ", 0, 0)
	g.ClearRegion(0, 5, 1, 1)

	orphan := g.At(0, 6)
	if orphan.IsPlaceholder() {
		t.Errorf("col 6: left as orphaned placeholder %+v", orphan)
	}
}

func TestPlaceholderInvariantWholeGrid(t *testing.T) {
	g := NewGrid(4, 8)
	g.DrawText(1, 0, "漢字テスト", 0, 0)
	g.DrawText(2, 3, "ab漢cd", 1, 0)
	assertNoOrphanPlaceholders(t, g)
}

func assertNoOrphanPlaceholders(t *testing.T, g *Grid) {
	t.Helper()
	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.At(r, c)
			if cell.Wide && cell.Char != "" && c+1 < cols {
				right := g.At(r, c+1)
				if !right.IsPlaceholder() {
					t.Errorf("(%d,%d) is a wide lead but (%d,%d) is not a placeholder: %+v", r, c, r, c+1, right)
				}
			}
			if cell.IsPlaceholder() {
				if c == 0 {
					t.Errorf("(%d,%d) is an orphan placeholder at col 0", r, c)
					continue
				}
				left := g.At(r, c-1)
				if !left.Wide || left.Char == "" {
					t.Errorf("(%d,%d) is a placeholder with no wide lead at (%d,%d): %+v", r, c, r, c-1, left)
				}
			}
		}
	}
}

func TestDrawRectFilled(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawRect(1, 1, 2, 2, 3, true)
	for r := 1; r < 3; r++ {
		for c := 1; c < 3; c++ {
			if g.At(r, c) != (Cell{Char: " ", ColorPair: 3}) {
				t.Errorf("(%d,%d): got %+v", r, c, g.At(r, c))
			}
		}
	}
}

func TestDrawRectOutlineGeometries(t *testing.T) {
	g := NewGrid(6, 6)
	g.DrawRect(0, 0, 1, 1, 0, false)
	if g.At(0, 0).Char != boxTopLeft {
		t.Errorf("1x1 rect: got %q", g.At(0, 0).Char)
	}

	g2 := NewGrid(6, 6)
	g2.DrawRect(0, 0, 1, 4, 0, false)
	if g2.At(0, 0).Char != boxTopLeft || g2.At(0, 3).Char != boxTopRight {
		t.Errorf("1xN rect corners wrong: %q %q", g2.At(0, 0).Char, g2.At(0, 3).Char)
	}
	if g2.At(0, 1).Char != boxHorizontal {
		t.Errorf("1xN rect body wrong: %q", g2.At(0, 1).Char)
	}

	g3 := NewGrid(6, 6)
	g3.DrawRect(0, 0, 4, 1, 0, false)
	if g3.At(0, 0).Char != boxTopLeft || g3.At(3, 0).Char != boxBottomLeft {
		t.Errorf("Nx1 rect corners wrong: %q %q", g3.At(0, 0).Char, g3.At(3, 0).Char)
	}

	g4 := NewGrid(6, 6)
	g4.DrawRect(0, 0, 3, 3, 0, false)
	corners := map[[2]int]string{
		{0, 0}: boxTopLeft, {0, 2}: boxTopRight,
		{2, 0}: boxBottomLeft, {2, 2}: boxBottomRight,
	}
	for pos, want := range corners {
		if got := g4.At(pos[0], pos[1]).Char; got != want {
			t.Errorf("corner %v: got %q, want %q", pos, got, want)
		}
	}
}

func TestDrawRectZeroDimensionIsNoOp(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawRect(1, 1, 0, 3, 1, true)
	g.DrawRect(1, 1, 3, 0, 1, true)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if !g.At(r, c).IsEmpty() {
				t.Fatalf("expected no-op, got %+v at (%d,%d)", g.At(r, c), r, c)
			}
		}
	}
}

func TestMoveCursorClamps(t *testing.T) {
	g := NewGrid(10, 20)
	g.MoveCursor(-5, -5)
	if r, c, _ := g.Cursor(); r != 0 || c != 0 {
		t.Errorf("got (%d,%d), want (0,0)", r, c)
	}
	g.MoveCursor(100, 100)
	if r, c, _ := g.Cursor(); r != 9 || c != 19 {
		t.Errorf("got (%d,%d), want (9,19)", r, c)
	}
}

func TestMoveCursorEmptyGridCollapsesToZero(t *testing.T) {
	g := NewGrid(0, 0)
	g.MoveCursor(5, 5)
	if r, c, _ := g.Cursor(); r != 0 || c != 0 {
		t.Errorf("got (%d,%d), want (0,0)", r, c)
	}
}

func TestResizePreservesContentAndClampsCursor(t *testing.T) {
	g := NewGrid(24, 80)
	g.DrawText(0, 0, "Hello", 0, 0)
	g.MoveCursor(23, 79)

	g.Resize(40, 100)
	rows, cols := g.Dimensions()
	if rows != 40 || cols != 100 {
		t.Fatalf("dimensions: got (%d,%d)", rows, cols)
	}
	for i, want := range "Hello" {
		if g.At(0, i).Char != string(want) {
			t.Errorf("col %d: got %q, want %q", i, g.At(0, i).Char, string(want))
		}
	}
	for c := 5; c < 100; c++ {
		if !g.At(0, c).IsEmpty() {
			t.Errorf("col %d should be empty after resize, got %+v", c, g.At(0, c))
		}
	}
	if r, c, _ := g.Cursor(); r != 23 || c != 79 {
		t.Errorf("cursor: got (%d,%d), want clamped into new bounds", r, c)
	}
}

func TestRefreshRegionUnionsDirtyRect(t *testing.T) {
	g := NewGrid(10, 10)
	g.ClearDirty()
	g.RefreshRegion(2, 2, 2, 2)
	g.RefreshRegion(5, 5, 1, 1)
	row, col, h, w, ok := g.DirtyRect()
	if !ok {
		t.Fatal("expected a dirty region")
	}
	if row != 2 || col != 2 || row+h != 6 || col+w != 6 {
		t.Errorf("unioned rect: row=%d col=%d h=%d w=%d", row, col, h, w)
	}
}

func TestColorPairRoundTrip(t *testing.T) {
	table := NewColorPairTable()
	if err := table.Init(7, [3]int{255, 0, 0}, [3]int{0, 0, 255}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cp := table.Lookup(7, false)
	if cp.Fg != (RGB{255, 0, 0}) || cp.Bg != (RGB{0, 0, 255}) {
		t.Fatalf("got %+v", cp)
	}
	reversed := table.Lookup(7, true)
	if reversed.Fg != (RGB{0, 0, 255}) || reversed.Bg != (RGB{255, 0, 0}) {
		t.Fatalf("reverse swap: got %+v", reversed)
	}
}

func TestColorPairMissingFallsBackToDefault(t *testing.T) {
	table := NewColorPairTable()
	got := table.Lookup(42, false)
	if got != DefaultColorPair() {
		t.Fatalf("got %+v, want default", got)
	}
}

func TestInitColorPairRejectsPairZero(t *testing.T) {
	table := NewColorPairTable()
	err := table.Init(0, [3]int{1, 1, 1}, [3]int{1, 1, 1})
	if !errors.Is(err, ttkerr.InvalidArgument) {
		t.Fatalf("got %v, want ttkerr.InvalidArgument", err)
	}
}

func TestInitColorPairRejectsOutOfRangeComponent(t *testing.T) {
	table := NewColorPairTable()
	err := table.Init(1, [3]int{-1, 0, 0}, [3]int{0, 0, 0})
	if !errors.Is(err, ttkerr.InvalidArgument) {
		t.Fatalf("got %v, want ttkerr.InvalidArgument", err)
	}
}

func TestInitColorPairIdempotentOverwrite(t *testing.T) {
	table := NewColorPairTable()
	if err := table.Init(3, [3]int{1, 2, 3}, [3]int{4, 5, 6}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := table.Init(3, [3]int{1, 2, 3}, [3]int{4, 5, 6}); err != nil {
		t.Fatalf("Init (overwrite): %v", err)
	}
	got := table.Lookup(3, false)
	if got.Fg != (RGB{1, 2, 3}) || got.Bg != (RGB{4, 5, 6}) {
		t.Fatalf("got %+v", got)
	}
}
