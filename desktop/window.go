package desktop

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ttk-go/ttk/ttkerr"
)

func init() {
	runtime.LockOSThread()
}

// resizeEndDelay is how long NotifySizeChanged waits without another
// GLFW size notification before deciding an interactive resize drag has
// ended. GLFW has no native drag-end event, so this is a quiescence
// heuristic, not a real signal.
const resizeEndDelay = 150 * time.Millisecond

// windowConfig configures the native top-level window created on
// initialize().
type windowConfig struct {
	Width  int
	Height int
	Title  string
}

func defaultWindowConfig() windowConfig {
	return windowConfig{Width: 900, Height: 600, Title: "ttk"}
}

// window wraps a GLFW window and its OpenGL context, plus the cell-grid
// size snapping spec.md §4.4 describes: every size notification lands the
// window on whole-cell boundaries. There is no unsnapped state: a size
// change after a drag has ended, such as maximize or tile, starts a new
// resize and is snapped too.
type window struct {
	glfw *glfw.Window

	charWidth, charHeight int
	resizing              bool
	resizeEndTimer         *time.Timer

	isFullscreen                            bool
	savedX, savedY, savedWidth, savedHeight int
}

func newWindow(cfg windowConfig) (*window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: initializing glfw: %v", ttkerr.ResourceFailure, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	glfw.WindowHintString(glfw.X11ClassName, "ttk")
	glfw.WindowHintString(glfw.X11InstanceName, "ttk")

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: creating window: %v", ttkerr.ResourceFailure, err)
	}

	gw.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: initializing opengl: %v", ttkerr.ResourceFailure, err)
	}

	glfw.SwapInterval(1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w := &window{glfw: gw}

	gw.SetSizeLimits(glfw.DontCare, glfw.DontCare, glfw.DontCare, glfw.DontCare)

	return w, nil
}

func (w *window) GLFW() *glfw.Window { return w.glfw }

func (w *window) Size() (int, int) { return w.glfw.GetSize() }

func (w *window) FramebufferSize() (int, int) { return w.glfw.GetFramebufferSize() }

func (w *window) ShouldClose() bool { return w.glfw.ShouldClose() }

func (w *window) SwapBuffers() { w.glfw.SwapBuffers() }

func (w *window) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (w *window) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetCellMetrics records the current font's cell size so resize snapping
// can compute increments; must be called whenever the font changes.
func (w *window) SetCellMetrics(charWidth, charHeight int) {
	w.charWidth, w.charHeight = charWidth, charHeight
}

// BeginResize is invoked once, at the start of an interactive resize drag
// (the first GLFW size notification after a quiet period), and does a
// one-shot snap of whatever frame the drag started from onto a whole-cell
// boundary.
func (w *window) BeginResize() {
	w.resizing = true
	w.snapToCurrentSize()
}

// EndResize marks the drag as over. It does not lift snapping: the next
// size notification, including one from a window-manager maximize, tile or
// snap gesture, goes through BeginResize and is quantized to cell
// multiples.
func (w *window) EndResize() {
	w.resizing = false
}

// quantizedSize rounds width/height down to the nearest whole number of
// cells, floored at one cell in each dimension.
func (w *window) quantizedSize(width, height int) (int, int) {
	if w.charWidth <= 0 || w.charHeight <= 0 {
		return width, height
	}
	cols := width / w.charWidth
	if cols < 1 {
		cols = 1
	}
	rows := height / w.charHeight
	if rows < 1 {
		rows = 1
	}
	return cols * w.charWidth, rows * w.charHeight
}

// snapToCurrentSize quantizes the window's current size and, if that
// differs from what it is now, forces it with SetSize. GLFW exposes no
// resize-increment hint, so snapping during a drag means repeatedly
// calling SetSize as size notifications arrive.
func (w *window) snapToCurrentSize() {
	width, height := w.glfw.GetSize()
	qw, qh := w.quantizedSize(width, height)
	if qw != width || qh != height {
		w.glfw.SetSize(qw, qh)
	}
}

// NotifySizeChanged is driven by the backend's framebuffer-size callback
// on every GLFW size change. It starts a resize (snapping the misaligned
// starting frame) if one isn't already in progress, re-snaps on every
// subsequent notification, and arms a quiescence timer that calls
// EndResize once notifications stop arriving for resizeEndDelay — the
// closest approximation to a drag-end event GLFW allows.
func (w *window) NotifySizeChanged() {
	if !w.resizing {
		w.BeginResize()
	} else {
		w.snapToCurrentSize()
	}
	if w.resizeEndTimer != nil {
		w.resizeEndTimer.Stop()
	}
	w.resizeEndTimer = time.AfterFunc(resizeEndDelay, w.EndResize)
}

// SnapToCells rounds a raw framebuffer size down to the nearest whole
// number of cells, used by the backend's resize handler to derive the
// grid's new row/column count.
func (w *window) SnapToCells(width, height int) (cols, rows int) {
	if w.charWidth <= 0 || w.charHeight <= 0 {
		return 0, 0
	}
	return width / w.charWidth, height / w.charHeight
}

func (w *window) ToggleFullscreen() {
	if w.isFullscreen {
		w.glfw.SetMonitor(nil, w.savedX, w.savedY, w.savedWidth, w.savedHeight, 0)
		w.isFullscreen = false
		return
	}
	w.savedX, w.savedY = w.glfw.GetPos()
	w.savedWidth, w.savedHeight = w.glfw.GetSize()
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.glfw.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.isFullscreen = true
}

func (w *window) IsFullscreen() bool { return w.isFullscreen }

func (w *window) SetIcon(icons []image.Image) {
	if len(icons) > 0 {
		w.glfw.SetIcon(icons)
	}
}

func (w *window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}

// PollEvents processes pending GLFW events for all live windows.
func PollEvents() { glfw.PollEvents() }

// WaitEventsTimeout blocks until an event arrives or the timeout elapses.
func WaitEventsTimeout(seconds float64) { glfw.WaitEventsTimeout(seconds) }
