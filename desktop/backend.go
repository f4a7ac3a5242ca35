// Package desktop implements the GPU-backed desktop Renderer: a GLFW
// window and OpenGL context, the two-pass batching frame renderer, font
// and attribute caches, and GLFW input translation into event.Callback
// deliveries.
package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ttk-go/ttk/event"
	"github.com/ttk-go/ttk/grid"
)

// FontSource is the font bytes and family name the application supplies at
// construction; the toolkit never embeds a font asset.
type FontSource struct {
	Family string
	Data   []byte
	Bold   bool // not read by Initialize: fonts are registered by Family only, so a later source with the same Family replaces an earlier one, and bold variants are rasterized from that same data
}

// Options configures a Backend before Initialize.
type Options struct {
	Title      string
	Width      int
	Height     int
	FontFamily string
	FontSize   float64
	Fonts      []FontSource
	Cascade    []string // fallback family names, registered via Fonts
	IconSVG    []byte
}

// Backend implements backend.Renderer on a native GLFW/OpenGL window.
type Backend struct {
	opts Options

	win    *window
	grid   *grid.Grid
	colors *grid.ColorPairTable

	fonts    *fontCache
	renderer *frameRenderer
	metrics  cellMetrics
	baseKey  fontKey

	marked markedText
	cb     event.Callback

	clipboard string
}

// New constructs a Backend; Initialize does the actual window/GL/font
// setup.
func New(opts Options) *Backend {
	return &Backend{opts: opts, colors: grid.NewColorPairTable()}
}

func (b *Backend) Initialize() error {
	cfg := windowConfig{Width: b.opts.Width, Height: b.opts.Height, Title: b.opts.Title}
	if cfg.Width == 0 {
		cfg = defaultWindowConfig()
	}
	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	b.win = win

	if len(b.opts.IconSVG) > 0 {
		icons, err := DecodeSVGIconSizes(b.opts.IconSVG, []int{16, 32, 48, 64, 128, 256})
		if err == nil {
			b.win.SetIcon(icons)
		}
	}

	b.fonts = newFontCache()
	for _, f := range b.opts.Fonts {
		b.fonts.RegisterFont(f.Family, f.Data)
	}
	b.fonts.SetCascade(b.opts.Cascade)

	b.baseKey = fontKey{family: b.opts.FontFamily, size: b.opts.FontSize, bold: false}
	variant, err := b.fonts.Variant(b.baseKey)
	if err != nil {
		return err
	}
	b.metrics = cellMetrics{
		charWidth:  variant.charWidth,
		charHeight: variant.charHeight,
		fontAscent: variant.ascent,
	}
	b.win.SetCellMetrics(b.metrics.charWidth, b.metrics.charHeight)

	renderer, err := newFrameRenderer(b.fonts, b.baseKey)
	if err != nil {
		return err
	}
	b.renderer = renderer

	fw, fh := b.win.FramebufferSize()
	rows, cols := b.gridDimensions(fw, fh)
	b.grid = grid.NewGrid(rows, cols)

	b.installCallbacks()

	return nil
}

func (b *Backend) gridDimensions(fw, fh int) (rows, cols int) {
	cols, rows = b.win.SnapToCells(fw, fh)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows, cols
}

func (b *Backend) installCallbacks() {
	gw := b.win.GLFW()
	gw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		b.dispatchKey(key, mods)
	})
	gw.SetCharCallback(func(w *glfw.Window, r rune) {
		b.dispatchChar(r)
	})
	gw.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		b.win.NotifySizeChanged()
		b.handleResize(width, height)
	})
	gw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		b.dispatchScroll(xoff, yoff)
	})
	gw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b.dispatchMouseButton(button, action)
	})
	gw.SetCloseCallback(func(w *glfw.Window) {
		if b.cb != nil {
			b.cb.OnSystemEvent(event.System{Kind: event.SystemClose})
		}
	})
}

func (b *Backend) dispatchKey(key glfw.Key, mods glfw.ModifierKey) {
	if b.cb == nil {
		return
	}
	ev, ok := event.TranslateGLFWKey(key, mods)
	if !ok {
		return
	}
	b.cb.OnKeyEvent(ev)
	// Committed text arrives separately via SetCharCallback, which GLFW
	// invokes only for printable input already filtered through the
	// platform's IME (spec.md §4.5 "Desktop backend"). The return value of
	// OnKeyEvent is not used: a consumed key does not suppress that Char.
}

func (b *Backend) dispatchChar(r rune) {
	if b.cb == nil {
		return
	}
	b.cb.OnCharEvent(event.Char{Char: string(r)})
}

func (b *Backend) dispatchScroll(xoff, yoff float64) {
	if b.cb == nil {
		return
	}
	action := event.MouseMove
	button := uint8(0)
	if yoff > 0 {
		button = 4
	} else if yoff < 0 {
		button = 5
	}
	b.cb.OnMouseEvent(event.Mouse{Button: button, Action: action})
}

func (b *Backend) dispatchMouseButton(button glfw.MouseButton, action glfw.Action) {
	if b.cb == nil {
		return
	}
	x, y := b.win.GLFW().GetCursorPos()
	col := int(x) / max(1, b.metrics.charWidth)
	row := int(y) / max(1, b.metrics.charHeight)
	act := event.MouseRelease
	if action == glfw.Press {
		act = event.MousePress
	}
	b.cb.OnMouseEvent(event.Mouse{X: col, Y: row, Button: uint8(button) + 1, Action: act})
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (b *Backend) handleResize(width, height int) {
	rows, cols := b.gridDimensions(width, height)
	oldRows, oldCols := b.grid.Dimensions()
	if rows == oldRows && cols == oldCols {
		return
	}
	b.grid.Resize(rows, cols)
	b.win.SetViewport(width, height)
	if b.cb != nil {
		b.cb.OnSystemEvent(event.System{Kind: event.SystemResize})
	}
	b.grid.Refresh()
}

func (b *Backend) Shutdown() {
	if b.renderer != nil {
		b.renderer.destroy()
		b.renderer = nil
	}
	if b.fonts != nil {
		b.fonts.Clear()
		b.fonts = nil
	}
	if b.win != nil {
		b.win.Destroy()
		b.win = nil
	}
	b.colors.Clear()
	b.grid = grid.NewGrid(0, 0)
	b.metrics = cellMetrics{}
}

func (b *Backend) Dimensions() (rows, cols int) { return b.grid.Dimensions() }

func (b *Backend) Clear() { b.grid.Clear() }

func (b *Backend) ClearRegion(row, col, height, width int) { b.grid.ClearRegion(row, col, height, width) }

func (b *Backend) DrawText(row, col int, text string, colorPair uint16, attrs grid.Attr) {
	b.grid.DrawText(row, col, text, colorPair, attrs)
}

func (b *Backend) DrawHLine(row, col int, ch string, length int, colorPair uint16) {
	b.grid.DrawHLine(row, col, ch, length, colorPair)
}

func (b *Backend) DrawVLine(row, col int, ch string, length int, colorPair uint16) {
	b.grid.DrawVLine(row, col, ch, length, colorPair)
}

func (b *Backend) DrawRect(row, col, height, width int, colorPair uint16, filled bool) {
	b.grid.DrawRect(row, col, height, width, colorPair, filled)
}

func (b *Backend) Refresh() { b.grid.Refresh() }

func (b *Backend) RefreshRegion(row, col, height, width int) {
	b.grid.RefreshRegion(row, col, height, width)
}

func (b *Backend) InitColorPair(id int, fg, bg [3]int) error {
	return b.colors.Init(id, fg, bg)
}

func (b *Backend) SetCursorVisibility(visible bool) { b.grid.SetCursorVisibility(visible) }

func (b *Backend) MoveCursor(row, col int) { b.grid.MoveCursor(row, col) }

func (b *Backend) SetEventCallback(cb event.Callback) { b.cb = cb }

// SetMarkedText records the IME composition state reported by the
// platform (spec.md §4.3 "Marked text"); offset/length are in grapheme
// counts within text.
func (b *Backend) SetMarkedText(text string, selectedOffset, selectedLength int) {
	b.marked = markedText{text: text, selectedOffset: selectedOffset, selectedLength: selectedLength}
	row, col, _ := b.grid.Cursor()
	_, cols := b.grid.Dimensions()
	width := len([]rune(text))
	if col+width > cols {
		width = cols - col
	}
	if width > 0 {
		b.grid.RefreshRegion(row, col, 1, width)
	}
}

// ClearCaches drops the color and attribute-dict caches (spec.md §4.3
// "Lifecycles": "cleared on explicit clear_caches() or font change").
func (b *Backend) ClearCaches() {
	if b.renderer != nil {
		b.renderer.ClearCaches()
	}
}

func (b *Backend) RunEventLoopIteration(timeoutMs int) error {
	switch {
	case timeoutMs < 0:
		glfw.WaitEvents()
	case timeoutMs == 0:
		glfw.PollEvents()
	default:
		glfw.WaitEventsTimeout(float64(timeoutMs) / 1000.0)
	}
	if b.win.ShouldClose() {
		return nil
	}
	b.paint()
	return nil
}

func (b *Backend) paint() {
	fw, fh := b.win.FramebufferSize()
	theme := [4]float32{0, 0, 0, 1}
	b.win.Clear(theme[0], theme[1], theme[2], theme[3])
	b.renderer.Render(b.grid, b.colors, b.metrics, &b.marked, fw, fh)
	b.win.SwapBuffers()
}

func (b *Backend) SupportsClipboard() bool { return true }

func (b *Backend) GetClipboardText() string {
	return b.win.GLFW().GetClipboardString()
}

func (b *Backend) SetClipboardText(text string) bool {
	b.win.GLFW().SetClipboardString(text)
	return true
}
