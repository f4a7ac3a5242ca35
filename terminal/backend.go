// Package terminal implements the backend.Renderer contract on top of a
// real text terminal via tcell. It owns the same cell grid the desktop
// backend uses, which doubles as the "mirror grid" spec.md §4.2 requires:
// the terminal's native read-back API is 8-bit lossy, so the grid itself
// (not a round trip through the terminal) is the source of truth the
// placeholder-repair logic inspects before every draw.
package terminal

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/ttk-go/ttk/event"
	"github.com/ttk-go/ttk/grid"
	"github.com/ttk-go/ttk/ttkerr"
)

// Backend drives a curses-like text terminal through tcell.
type Backend struct {
	screen tcell.Screen
	grid   *grid.Grid
	colors *grid.ColorPairTable
	cb     event.Callback

	events chan tcell.Event
	done   chan struct{}
}

// New returns an uninitialized Backend. Call Initialize before use.
func New() *Backend {
	return &Backend{}
}

// Initialize creates the tcell screen, sizes the grid to the terminal's
// current dimensions, and sets color pair 0 to white-on-black.
func (b *Backend) Initialize() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal: %w", ttkerr.UnsupportedPlatform)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w: %v", ttkerr.ResourceFailure, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w: %v", ttkerr.ResourceFailure, err)
	}
	screen.EnableMouse()

	cols, rows := screen.Size()
	b.screen = screen
	b.grid = grid.NewGrid(rows, cols)
	b.colors = grid.NewColorPairTable()
	b.events = make(chan tcell.Event, 64)
	b.done = make(chan struct{})

	go b.pump()
	return nil
}

func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Shutdown is idempotent.
func (b *Backend) Shutdown() {
	if b.screen == nil {
		return
	}
	close(b.done)
	b.screen.Fini()
	b.screen = nil
	b.grid = grid.NewGrid(0, 0)
	b.colors = grid.NewColorPairTable()
}

func (b *Backend) Dimensions() (rows, cols int) {
	return b.grid.Dimensions()
}

func (b *Backend) Clear() {
	b.grid.Clear()
}

func (b *Backend) ClearRegion(row, col, height, width int) {
	b.grid.ClearRegion(row, col, height, width)
}

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

// Refresh paints the whole grid to the terminal immediately — a text
// terminal has no separate vsync-driven paint cycle to defer to.
func (b *Backend) Refresh() {
	b.grid.Refresh()
	b.paint()
}

func (b *Backend) RefreshRegion(row, col, height, width int) {
	b.grid.RefreshRegion(row, col, height, width)
	b.paint()
}

func (b *Backend) InitColorPair(id int, fg, bg [3]int) error {
	return b.colors.Init(id, fg, bg)
}

func (b *Backend) SetCursorVisibility(visible bool) {
	b.grid.SetCursorVisibility(visible)
	b.paint()
}

func (b *Backend) MoveCursor(row, col int) {
	b.grid.MoveCursor(row, col)
	b.paint()
}

func (b *Backend) SetEventCallback(cb event.Callback) {
	b.cb = cb
}

func (b *Backend) SupportsClipboard() bool    { return false }
func (b *Backend) GetClipboardText() string   { return "" }
func (b *Backend) SetClipboardText(string) bool { return false }

// paint walks the grid's dirty rectangle and pushes it to the terminal via
// tcell's SetContent, then Show. Placeholder cells are skipped: tcell
// reserves the following column itself once a wide rune is set.
func (b *Backend) paint() {
	row, col, h, w, ok := b.grid.DirtyRect()
	if !ok {
		return
	}
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			cell := b.grid.At(r, c)
			if cell.IsPlaceholder() {
				continue
			}
			runes := []rune(cell.Char)
			if len(runes) == 0 {
				continue
			}
			style := styleFor(b.colors, cell)
			b.screen.SetContent(c, r, runes[0], runes[1:], style)
		}
	}
	cursorRow, cursorCol, visible := b.grid.Cursor()
	if visible {
		b.screen.ShowCursor(cursorCol, cursorRow)
	} else {
		b.screen.HideCursor()
	}
	b.screen.Show()
	b.grid.ClearDirty()
}

func styleFor(colors *grid.ColorPairTable, cell grid.Cell) tcell.Style {
	cp := colors.Lookup(cell.ColorPair, cell.Attrs&grid.AttrReverse != 0)
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(cp.Fg.R), int32(cp.Fg.G), int32(cp.Fg.B))).
		Background(tcell.NewRGBColor(int32(cp.Bg.R), int32(cp.Bg.G), int32(cp.Bg.B)))
	if cell.Attrs&grid.AttrBold != 0 {
		style = style.Bold(true)
	}
	if cell.Attrs&grid.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	return style
}

// RunEventLoopIteration pumps one batch of terminal events. A negative
// timeout blocks indefinitely, 0 polls without blocking, positive blocks
// up to timeoutMs milliseconds.
func (b *Backend) RunEventLoopIteration(timeoutMs int) error {
	switch {
	case timeoutMs < 0:
		select {
		case ev := <-b.events:
			b.dispatch(ev)
		case <-b.done:
		}
	case timeoutMs == 0:
		select {
		case ev := <-b.events:
			b.dispatch(ev)
		default:
		}
	default:
		timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
		defer timer.Stop()
		select {
		case ev := <-b.events:
			b.dispatch(ev)
		case <-timer.C:
		case <-b.done:
		}
	}
	return nil
}

func (b *Backend) dispatch(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		b.dispatchKey(e)
	case *tcell.EventResize:
		cols, rows := e.Size()
		b.grid.Resize(rows, cols)
		b.emitSystem(event.SystemResize)
	case *tcell.EventMouse:
		b.dispatchMouse(e)
	}
}

// dispatchKey implements spec.md §4.5's terminal delivery discipline: one
// Key delivery, then a Char delivery only if the key was not consumed and
// is printable.
func (b *Backend) dispatchKey(e *tcell.EventKey) {
	k, ok := translateKey(e)
	if !ok {
		return
	}
	consumed := false
	if b.cb != nil {
		consumed = b.cb.OnKeyEvent(k)
	}
	if consumed {
		return
	}
	if k.Char != 0 && event.IsPrintable(k.Char) && !k.Modifiers.Has(event.ModControl) && !k.Modifiers.Has(event.ModCommand) {
		if b.cb != nil {
			b.cb.OnCharEvent(event.Char{Char: string(k.Char)})
		}
	}
}

func (b *Backend) dispatchMouse(e *tcell.EventMouse) {
	if b.cb == nil {
		return
	}
	x, y := e.Position()
	buttons := e.Buttons()
	var button uint8
	action := event.MouseRelease
	switch {
	case buttons&tcell.Button1 != 0:
		button, action = 1, event.MousePress
	case buttons&tcell.Button2 != 0:
		button, action = 2, event.MousePress
	case buttons&tcell.Button3 != 0:
		button, action = 3, event.MousePress
	case buttons == tcell.ButtonNone:
		action = event.MouseRelease
	}
	b.cb.OnMouseEvent(event.Mouse{X: x, Y: y, Button: button, Action: action})
}

func (b *Backend) emitSystem(kind event.SystemKind) {
	if b.cb == nil {
		return
	}
	b.cb.OnSystemEvent(event.System{Kind: kind})
}
