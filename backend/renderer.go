// Package backend defines the Renderer contract shared by the terminal and
// desktop backends (spec.md §4.1): a single polymorphic interface the
// application drives without branching on platform.
package backend

import (
	"github.com/ttk-go/ttk/event"
	"github.com/ttk-go/ttk/grid"
)

// Renderer is the backend-agnostic surface an application programs
// against. All operations are synchronous; all coordinates are in cells;
// drawing failures are local and never fatal (spec.md §7).
type Renderer interface {
	// Initialize allocates grid and window/terminal resources and sets
	// color pair 0 to white-on-black. Returns ttkerr.UnsupportedPlatform
	// if no viable backend exists on this platform, or
	// ttkerr.FontNotFound/ttkerr.FontNotMonospace if a desktop font is
	// rejected.
	Initialize() error

	// Shutdown is idempotent: releases window/view/font/grid/color-pair
	// resources and resets dimensions and cursor to zero.
	Shutdown()

	// Dimensions returns the current (rows, cols).
	Dimensions() (rows, cols int)

	Clear()
	ClearRegion(row, col, height, width int)

	DrawText(row, col int, text string, colorPair uint16, attrs grid.Attr)
	DrawHLine(row, col int, ch string, length int, colorPair uint16)
	DrawVLine(row, col int, ch string, length int, colorPair uint16)
	DrawRect(row, col, height, width int, colorPair uint16, filled bool)

	Refresh()
	RefreshRegion(row, col, height, width int)

	// InitColorPair validates and stores fg/bg for pair id in [1,255].
	InitColorPair(id int, fg, bg [3]int) error

	SetCursorVisibility(visible bool)
	MoveCursor(row, col int)

	// SetEventCallback registers the application's event handler. A nil
	// callback disables dispatch.
	SetEventCallback(cb event.Callback)

	// RunEventLoopIteration pumps one batch of OS events. A negative
	// timeout blocks indefinitely, 0 polls without blocking, and a
	// positive timeout blocks up to that many milliseconds.
	RunEventLoopIteration(timeoutMs int) error

	Clipboard
}

// Clipboard is the optional pasteboard capability (spec.md §6). The
// terminal backend always reports false/empty/false; the desktop backend
// integrates with the OS pasteboard.
type Clipboard interface {
	SupportsClipboard() bool
	GetClipboardText() string
	SetClipboardText(text string) bool
}
