// Package grid implements the backend-neutral character grid: a dense
// rectangular array of cells with clamped drawing primitives, the
// wide-character placeholder invariant, and a dirty-region tracker consumed
// by a backend's paint cycle.
package grid

// Grid is a single-threaded, single-owner cell buffer. Per spec.md §5, all
// mutation happens on the thread that owns the backend instance; Grid holds
// no lock.
type Grid struct {
	cells []Cell
	rows  int
	cols  int

	cursorRow int
	cursorCol int
	cursorVis bool

	dirty    bool
	dirtyRow int
	dirtyCol int
	dirtyH   int
	dirtyW   int
}

// NewGrid returns a grid of the given size, every cell set to EmptyCell.
// Negative dimensions are clamped to 0.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([]Cell, rows*cols)
	g.Clear()
	return g
}

// Dimensions returns the current (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r, c), or the empty cell if out of bounds.
func (g *Grid) At(r, c int) Cell {
	if !g.inBounds(r, c) {
		return EmptyCell()
	}
	return g.cells[g.index(r, c)]
}

func (g *Grid) set(r, c int, cell Cell) {
	if !g.inBounds(r, c) {
		return
	}
	g.cells[g.index(r, c)] = cell
}

// markDirty unions (r,c,h,w), clipped to the grid, into the pending dirty
// rectangle. Multiple calls before the next paint are unioned per spec.md
// §4.3 "Dirty region".
func (g *Grid) markDirty(r, c, h, w int) {
	r, c, h, w = clipRect(r, c, h, w, g.rows, g.cols)
	if h <= 0 || w <= 0 {
		return
	}
	if !g.dirty {
		g.dirtyRow, g.dirtyCol, g.dirtyH, g.dirtyW = r, c, h, w
		g.dirty = true
		return
	}
	r2, c2 := g.dirtyRow+g.dirtyH, g.dirtyCol+g.dirtyW
	nr2, nc2 := r+h, c+w
	if r < g.dirtyRow {
		g.dirtyRow = r
	}
	if c < g.dirtyCol {
		g.dirtyCol = c
	}
	if nr2 > r2 {
		r2 = nr2
	}
	if nc2 > c2 {
		c2 = nc2
	}
	g.dirtyH = r2 - g.dirtyRow
	g.dirtyW = c2 - g.dirtyCol
}

// DirtyRect returns the unioned dirty rectangle and whether any region is
// pending repaint.
func (g *Grid) DirtyRect() (row, col, h, w int, ok bool) {
	return g.dirtyRow, g.dirtyCol, g.dirtyH, g.dirtyW, g.dirty
}

// ClearDirty resets the dirty tracker; called by the backend after a paint.
func (g *Grid) ClearDirty() {
	g.dirty = false
	g.dirtyRow, g.dirtyCol, g.dirtyH, g.dirtyW = 0, 0, 0, 0
}

func clipRect(r, c, h, w, rows, cols int) (int, int, int, int) {
	if c < 0 {
		w += c
		c = 0
	}
	if r < 0 {
		h += r
		r = 0
	}
	if c+w > cols {
		w = cols - c
	}
	if r+h > rows {
		h = rows - r
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return r, c, h, w
}

// repairIfPlaceholder repairs cell (r,c) before it is overwritten, per
// spec.md §4.2: if (r,c) is currently the placeholder half of a wide lead at
// (r,c-1), the lead is reset to a space carrying its own color pair and
// attributes, preventing a stale wide glyph from bleeding across the new
// content.
func (g *Grid) repairIfPlaceholder(r, c int) {
	if !g.inBounds(r, c) || c == 0 {
		return
	}
	if !g.At(r, c).IsPlaceholder() {
		return
	}
	lead := g.At(r, c-1)
	if !lead.Wide || lead.Char == "" {
		return
	}
	g.set(r, c-1, Cell{Char: " ", ColorPair: lead.ColorPair, Attrs: lead.Attrs})
}

// repairRightNeighborIfLead repairs the far side of a wide span. It is called
// with the column just right of a wide character about to be placed, the
// column that becomes the new placeholder: if (r,c) is itself currently a
// wide lead, that lead's own placeholder at (r,c+1) must first collapse to a
// space, and the lead becomes a space too. Both sides of a wide-cell span are
// repaired symmetrically (spec.md §4.2).
func (g *Grid) repairRightNeighborIfLead(r, c int) {
	if !g.inBounds(r, c) {
		return
	}
	cell := g.At(r, c)
	if !cell.Wide || cell.Char == "" {
		return
	}
	if g.inBounds(r, c+1) && g.At(r, c+1).IsPlaceholder() {
		g.set(r, c+1, Cell{Char: " ", ColorPair: cell.ColorPair, Attrs: cell.Attrs})
	}
	g.set(r, c, Cell{Char: " ", ColorPair: cell.ColorPair, Attrs: cell.Attrs})
}

// repairLeadIfOverwritten repairs the near side of a wide span: if (r,c) is
// currently a wide lead and the incoming cell does not itself continue as a
// wide lead at the same position, (r,c)'s placeholder at (r,c+1) is about to
// be orphaned, so it collapses to a space carrying the old lead's color pair
// and attributes. Symmetric to repairIfPlaceholder, which handles the
// placeholder being overwritten directly instead of the lead.
func (g *Grid) repairLeadIfOverwritten(r, c int, next Cell) {
	old := g.At(r, c)
	if !old.Wide || old.Char == "" {
		return
	}
	if next.Wide && next.Char != "" {
		return
	}
	if g.inBounds(r, c+1) && g.At(r, c+1).IsPlaceholder() {
		g.set(r, c+1, Cell{Char: " ", ColorPair: old.ColorPair, Attrs: old.Attrs})
	}
}

// writeCell performs the repair-then-write sequence shared by every
// primitive that touches a single cell.
func (g *Grid) writeCell(r, c int, cell Cell) {
	if !g.inBounds(r, c) {
		return
	}
	g.repairIfPlaceholder(r, c)
	g.repairLeadIfOverwritten(r, c, cell)
	g.set(r, c, cell)
}

// Clear sets every cell to the empty cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = EmptyCell()
	}
	g.markDirty(0, 0, g.rows, g.cols)
}

// ClearRegion sets every cell in the clipped rectangle to the empty cell.
// Out-of-range arguments are clipped, never errored.
func (g *Grid) ClearRegion(row, col, height, width int) {
	row, col, height, width = clipRect(row, col, height, width, g.rows, g.cols)
	if height <= 0 || width <= 0 {
		return
	}
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			g.repairIfPlaceholder(r, c)
			g.repairLeadIfOverwritten(r, c, EmptyCell())
			g.set(r, c, EmptyCell())
		}
	}
	g.markDirty(row, col, height, width)
}

// DrawText writes text starting at (row, col), one grapheme cluster per
// cell, advancing by 1 for narrow graphemes and 2 (with a placeholder) for
// wide ones. A negative col discards leading graphemes until col reaches 0;
// writing stops at cols. Out-of-range rows are a no-op.
func (g *Grid) DrawText(row, col int, text string, colorPair uint16, attrs Attr) {
	if row < 0 || row >= g.rows {
		return
	}
	clusters := Graphemes(text)
	c := col
	startCol, endCol := col, col
	wroteAny := false
	for _, cl := range clusters {
		w := GraphemeWidth(cl)
		if w == 0 {
			w = 1
		}
		if c < 0 {
			c += w
			continue
		}
		if c >= g.cols {
			break
		}
		if !wroteAny {
			startCol = c
			wroteAny = true
		}
		if w >= 2 {
			g.repairRightNeighborIfLead(row, c+1)
			g.writeCell(row, c, Cell{Char: cl, ColorPair: colorPair, Attrs: attrs, Wide: true})
			if c+1 < g.cols {
				g.writeCell(row, c+1, Cell{Char: "", ColorPair: colorPair, Attrs: attrs})
			}
			c += 2
		} else {
			g.writeCell(row, c, Cell{Char: cl, ColorPair: colorPair, Attrs: attrs})
			c++
		}
		if c > endCol {
			endCol = c
		}
	}
	if wroteAny {
		g.markDirty(row, startCol, 1, endCol-startCol)
	}
}

// DrawHLine fills length cells of row starting at col with ch, repairing the
// placeholder invariant at both ends.
func (g *Grid) DrawHLine(row, col int, ch string, length int, colorPair uint16) {
	if row < 0 || row >= g.rows || length <= 0 {
		return
	}
	start, end := col, col+length
	if start < 0 {
		start = 0
	}
	if end > g.cols {
		end = g.cols
	}
	if start >= end {
		return
	}
	for c := start; c < end; c++ {
		g.writeCell(row, c, Cell{Char: ch, ColorPair: colorPair})
	}
	g.markDirty(row, start, 1, end-start)
}

// DrawVLine fills length cells of col starting at row with ch.
func (g *Grid) DrawVLine(row, col int, ch string, length int, colorPair uint16) {
	if col < 0 || col >= g.cols || length <= 0 {
		return
	}
	start, end := row, row+length
	if start < 0 {
		start = 0
	}
	if end > g.rows {
		end = g.rows
	}
	if start >= end {
		return
	}
	for r := start; r < end; r++ {
		g.writeCell(r, col, Cell{Char: ch, ColorPair: colorPair})
	}
	g.markDirty(start, col, end-start, 1)
}

const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// DrawRect draws a height x width rectangle at (row, col): filled writes
// spaces, outlined draws box-drawing corners/edges with special cases for
// 1x1, 1xN, and Nx1 geometries. height or width <= 0 is a no-op.
func (g *Grid) DrawRect(row, col, height, width int, colorPair uint16, filled bool) {
	if height <= 0 || width <= 0 {
		return
	}
	if filled {
		g.ClearRegion(row, col, height, width)
		row, col, height, width = clipRect(row, col, height, width, g.rows, g.cols)
		if height <= 0 || width <= 0 {
			return
		}
		for r := row; r < row+height; r++ {
			g.DrawHLine(r, col, " ", width, colorPair)
		}
		return
	}

	switch {
	case height == 1 && width == 1:
		g.writeCell(row, col, Cell{Char: boxTopLeft, ColorPair: colorPair})
		g.markDirty(row, col, 1, 1)
	case height == 1:
		g.DrawHLine(row, col, boxHorizontal, width, colorPair)
		g.writeCell(row, col, Cell{Char: boxTopLeft, ColorPair: colorPair})
		g.writeCell(row, col+width-1, Cell{Char: boxTopRight, ColorPair: colorPair})
		g.markDirty(row, col, 1, width)
	case width == 1:
		g.DrawVLine(row, col, boxVertical, height, colorPair)
		g.writeCell(row, col, Cell{Char: boxTopLeft, ColorPair: colorPair})
		g.writeCell(row+height-1, col, Cell{Char: boxBottomLeft, ColorPair: colorPair})
		g.markDirty(row, col, height, 1)
	default:
		g.DrawHLine(row, col, boxHorizontal, width, colorPair)
		g.DrawHLine(row+height-1, col, boxHorizontal, width, colorPair)
		g.DrawVLine(row, col, boxVertical, height, colorPair)
		g.DrawVLine(row, col+width-1, boxVertical, height, colorPair)
		g.writeCell(row, col, Cell{Char: boxTopLeft, ColorPair: colorPair})
		g.writeCell(row, col+width-1, Cell{Char: boxTopRight, ColorPair: colorPair})
		g.writeCell(row+height-1, col, Cell{Char: boxBottomLeft, ColorPair: colorPair})
		g.writeCell(row+height-1, col+width-1, Cell{Char: boxBottomRight, ColorPair: colorPair})
		g.markDirty(row, col, height, width)
	}
}

// Refresh marks the whole grid dirty.
func (g *Grid) Refresh() {
	g.markDirty(0, 0, g.rows, g.cols)
}

// RefreshRegion marks a clipped rectangle dirty.
func (g *Grid) RefreshRegion(row, col, height, width int) {
	g.markDirty(row, col, height, width)
}

// Cursor returns the current cursor position and visibility.
func (g *Grid) Cursor() (row, col int, visible bool) {
	return g.cursorRow, g.cursorCol, g.cursorVis
}

// MoveCursor clamps (row, col) into [0,rows-1]x[0,cols-1] (collapsing to 0
// if the grid is empty) and updates cursor state. Refreshes the old and new
// cursor cells if the cursor is visible.
func (g *Grid) MoveCursor(row, col int) {
	row = clampCoord(row, g.rows)
	col = clampCoord(col, g.cols)
	oldRow, oldCol := g.cursorRow, g.cursorCol
	g.cursorRow, g.cursorCol = row, col
	if g.cursorVis {
		g.markDirty(oldRow, oldCol, 1, 1)
		g.markDirty(row, col, 1, 1)
	}
}

func clampCoord(v, size int) int {
	if size <= 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}

// SetCursorVisibility sets cursor visibility and refreshes its cell.
func (g *Grid) SetCursorVisibility(visible bool) {
	g.cursorVis = visible
	g.markDirty(g.cursorRow, g.cursorCol, 1, 1)
}

// Resize changes the grid to (rows, cols), preserving the overlapping
// region of the old content and clamping the cursor into the new bounds.
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	next := make([]Cell, rows*cols)
	for i := range next {
		next[i] = EmptyCell()
	}
	overlapRows := min(rows, g.rows)
	overlapCols := min(cols, g.cols)
	for r := 0; r < overlapRows; r++ {
		for c := 0; c < overlapCols; c++ {
			next[r*cols+c] = g.cells[r*g.cols+c]
		}
	}
	g.cells = next
	g.rows, g.cols = rows, cols
	g.cursorRow = clampCoord(g.cursorRow, rows)
	g.cursorCol = clampCoord(g.cursorCol, cols)
	g.markDirty(0, 0, rows, cols)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
