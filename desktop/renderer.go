package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ttk-go/ttk/grid"
)

// cellMetrics is what pass 1/2 need to convert cell coordinates to pixel
// coordinates (spec.md §4.3 "Inputs per frame").
type cellMetrics struct {
	charWidth, charHeight, fontAscent int
	offsetX, offsetY                  int
}

// markedText is IME composition state (spec.md §4.3 "Marked text"); it
// lives on the backend, not the grid.
type markedText struct {
	text           string
	selectedOffset int
	selectedLength int
}

// frameRenderer runs the two-pass batching pipeline over a grid's dirty
// rectangle: pass 1 batches background color runs, pass 2 batches text
// runs by (font variant, foreground, underline), then draws the cursor and
// any IME marked text on top. It draws through glPipeline's two programs,
// which is the same minimal ortho-projected quad/glyph-quad shader setup
// the teacher's cell-by-cell renderer used — the addition here, the part
// that didn't exist in the teacher, is the run-batching logic itself.
type frameRenderer struct {
	pipeline *glPipeline
	fonts    *fontCache
	colors   *colorCache
	attrs    *attributeCache
	baseFont fontKey
}

func newFrameRenderer(fonts *fontCache, baseFont fontKey) (*frameRenderer, error) {
	pipeline, err := newGLPipeline()
	if err != nil {
		return nil, err
	}
	return &frameRenderer{
		pipeline: pipeline,
		fonts:    fonts,
		colors:   newColorCache(),
		attrs:    newAttributeCache(),
		baseFont: baseFont,
	}, nil
}

func (r *frameRenderer) destroy() {
	r.pipeline.destroy()
}

func (r *frameRenderer) ClearCaches() {
	r.colors = newColorCache()
	r.attrs.Clear()
}

type bgRun struct {
	startCol int
	bg       grid.RGB
	width    int
}

type textRun struct {
	startCol  int
	endCol    int
	key       attrKey
	wide      []bool
	graphemes []string
}

// Render draws one frame: backgrounds, then text, then cursor and marked
// text, over the grid's dirty rectangle (or the whole grid when nothing is
// marked dirty). viewWidth/viewHeight are the framebuffer's pixel dimensions, used
// to build the orthographic projection matching the flipped coordinate
// system spec.md §4.3 specifies.
func (r *frameRenderer) Render(g *grid.Grid, colors *grid.ColorPairTable, m cellMetrics, marked *markedText, viewWidth, viewHeight int) {
	rows, cols := g.Dimensions()
	row, col, h, w, ok := g.DirtyRect()
	if !ok {
		row, col, h, w = 0, 0, rows, cols
	}

	proj := orthoMatrix(0, float32(viewWidth), float32(viewHeight), 0, -1, 1)

	gl.Viewport(0, 0, int32(viewWidth), int32(viewHeight))

	r.renderBackgrounds(g, colors, m, proj, row, col, h, w)
	r.renderText(g, colors, m, proj, row, col, h, w)
	r.renderCursor(g, colors, m, proj)
	if marked != nil && marked.text != "" {
		r.renderMarkedText(g, colors, m, proj, *marked)
	}

	g.ClearDirty()
}

func pixelRect(m cellMetrics, row, col, h, w int, rows int) (x1, y1, x2, y2 float32) {
	x1 = float32(col*m.charWidth + m.offsetX)
	y2 = float32((rows-row-1)*m.charHeight + m.offsetY + m.charHeight)
	x2 = x1 + float32(w*m.charWidth)
	y1 = y2 - float32(h*m.charHeight)
	return
}

func (r *frameRenderer) renderBackgrounds(g *grid.Grid, colors *grid.ColorPairTable, m cellMetrics, proj [16]float32, startRow, startCol, h, w int) {
	rows, _ := g.Dimensions()
	for row := startRow; row < startRow+h; row++ {
		var run *bgRun
		flush := func(endCol int) {
			if run == nil {
				return
			}
			x1, y1, x2, y2 := pixelRect(m, row, run.startCol, 1, endCol-run.startCol, rows)
			rgba := r.colors.Lookup(run.bg)
			r.pipeline.drawQuad(proj, x1, y1, x2, y2, rgba)
			run = nil
		}
		for col := startCol; col < startCol+w; col++ {
			cell := g.At(row, col)
			if cell.IsPlaceholder() {
				continue
			}
			if cell.IsEmpty() {
				flush(col)
				continue
			}
			pair := colors.Lookup(cell.ColorPair, cell.Attrs&grid.AttrReverse != 0)
			if run != nil && run.bg == pair.Bg && run.startCol+run.width == col {
				run.width++
				continue
			}
			flush(col)
			run = &bgRun{startCol: col, bg: pair.Bg, width: 1}
		}
		flush(startCol + w)
	}
}

func (r *frameRenderer) variantKeyFor(bold bool) fontKey {
	k := r.baseFont
	k.bold = bold
	return k
}

func (r *frameRenderer) renderText(g *grid.Grid, colors *grid.ColorPairTable, m cellMetrics, proj [16]float32, startRow, startCol, h, w int) {
	rows, _ := g.Dimensions()
	for row := startRow; row < startRow+h; row++ {
		var run *textRun
		flush := func() {
			if run == nil {
				return
			}
			r.drawTextRun(m, proj, row, rows, *run)
			run = nil
		}
		col := startCol
		for col < startCol+w {
			cell := g.At(row, col)
			if cell.IsPlaceholder() || cell.IsEmpty() {
				flush()
				col++
				continue
			}
			pair := colors.Lookup(cell.ColorPair, cell.Attrs&grid.AttrReverse != 0)
			key := attrKey{
				variant:   r.variantKeyFor(cell.Attrs&grid.AttrBold != 0),
				rgb:       pair.Fg,
				underline: cell.Attrs&grid.AttrUnderline != 0,
			}
			width := 1
			if cell.Wide {
				width = 2
			}
			if run != nil && run.key == key && col == run.endCol {
				run.graphemes = append(run.graphemes, cell.Char)
				run.wide = append(run.wide, cell.Wide)
				run.endCol = col + width
			} else {
				flush()
				run = &textRun{startCol: col, endCol: col + width, key: key}
				run.graphemes = append(run.graphemes, cell.Char)
				run.wide = append(run.wide, cell.Wide)
			}
			col += width
		}
		flush()
	}
}

func (r *frameRenderer) drawTextRun(m cellMetrics, proj [16]float32, row, rows int, run textRun) {
	variant, err := r.fonts.Variant(run.key.variant)
	if err != nil {
		return
	}
	dict := r.attrs.Lookup(run.key, variant, r.colors)
	r.drawGlyphRun(proj, run.key.variant, variant, run.graphemes, run.wide, row, run.startCol, rows, m, dict.rgba, dict.underline)
}

// drawGlyphRun draws one run of graphemes through the font cascade, centering
// each glyph in its (possibly double-wide) cell the same way for committed
// text and IME marked text alike (spec.md §4.3). underline draws a one-pixel
// bar under every glyph in the run; callers that want a single bar spanning
// the whole run (marked text) pass underline=false and draw their own.
func (r *frameRenderer) drawGlyphRun(proj [16]float32, base fontKey, fallback *fontVariant, graphemes []string, wide []bool, row, startCol, rows int, m cellMetrics, rgba [4]float32, underline bool) {
	baseY := float32((rows-row-1)*m.charHeight+m.offsetY) + float32(m.charHeight-m.fontAscent)
	col := startCol
	for i, gph := range graphemes {
		width := 1
		if i < len(wide) && wide[i] {
			width = 2
		}
		runes := []rune(gph)
		if len(runes) == 0 {
			col += width
			continue
		}
		glyphRune := runes[0]
		cellWidth := m.charWidth * width
		face, _ := r.fonts.GlyphFace(base, glyphRune)
		if face == nil {
			face = fallback
		}
		if face == nil {
			col += width
			continue
		}
		advance := face.charWidth
		if a, ok := face.face.GlyphAdvance(glyphRune); ok {
			advance = a.Ceil()
		}
		offsetX := (cellWidth - advance) / 2
		x1 := float32(col*m.charWidth+m.offsetX) + float32(offsetX)
		gr, ok := face.glyphs[glyphRune]
		if ok {
			x2 := x1 + float32(gr.pixelWidth)
			y1 := baseY - float32(face.ascent)
			y2 := y1 + float32(face.charHeight)
			r.pipeline.drawGlyphQuad(proj, face.atlasTex, x1, y1, x2, y2, gr.u0, gr.v0, gr.u1, gr.v1, rgba)
		}
		if underline {
			ux1 := float32(col * m.charWidth)
			ux2 := ux1 + float32(cellWidth)
			uy := baseY + 1
			r.pipeline.drawQuad(proj, ux1, uy, ux2, uy+1, rgba)
		}
		col += width
	}
}

func (r *frameRenderer) renderCursor(g *grid.Grid, colors *grid.ColorPairTable, m cellMetrics, proj [16]float32) {
	row, col, visible := g.Cursor()
	if !visible {
		return
	}
	rows, cols := g.Dimensions()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}
	x1, y1, x2, y2 := pixelRect(m, row, col, 1, 1, rows)
	r.pipeline.drawQuad(proj, x1, y1, x2, y2, [4]float32{1, 1, 1, 0.8})
}

// markedTextColor is the fixed foreground tint for IME composition glyphs;
// unlike committed text it has no grid cell and so no color pair of its own.
var markedTextColor = [4]float32{0.9, 0.9, 0.9, 1.0}

func (r *frameRenderer) renderMarkedText(g *grid.Grid, colors *grid.ColorPairTable, m cellMetrics, proj [16]float32, marked markedText) {
	row, col, visible := g.Cursor()
	if !visible {
		return
	}
	rows, _ := g.Dimensions()
	graphemes := grid.Graphemes(marked.text)
	wide := make([]bool, len(graphemes))
	totalWidth := 0
	for i, gph := range graphemes {
		w := grid.GraphemeWidth(gph)
		wide[i] = w == 2
		totalWidth += w
	}

	c := col
	for i := range graphemes {
		width := 1
		if wide[i] {
			width = 2
		}
		bg := [4]float32{0.15, 0.15, 0.15, 1.0}
		if i >= marked.selectedOffset && i < marked.selectedOffset+marked.selectedLength {
			bg = [4]float32{0.35, 0.35, 0.35, 1.0}
		}
		x1, y1, x2, y2 := pixelRect(m, row, c, 1, width, rows)
		r.pipeline.drawQuad(proj, x1, y1, x2, y2, bg)
		c += width
	}

	variant, err := r.fonts.Variant(r.baseFont)
	if err == nil {
		r.drawGlyphRun(proj, r.baseFont, variant, graphemes, wide, row, col, rows, m, markedTextColor, false)
	}

	uy := float32((rows-row-1)*m.charHeight+m.offsetY) + float32(m.charHeight)
	ux1 := float32(col * m.charWidth)
	ux2 := ux1 + float32(totalWidth*m.charWidth)
	r.pipeline.drawQuad(proj, ux1, uy, ux2, uy+1, markedTextColor)
}
