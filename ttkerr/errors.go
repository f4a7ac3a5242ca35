// Package ttkerr defines the error kinds the renderer contract can return.
//
// All four are sentinel errors meant to be wrapped with fmt.Errorf("...: %w", ...)
// at the point of failure and inspected with errors.Is/errors.As by callers.
package ttkerr

import "errors"

var (
	// InvalidArgument is returned immediately at an API boundary for an
	// out-of-range color pair id, an RGB component outside 0-255, or a
	// rejected font name. Never raised mid-frame.
	InvalidArgument = errors.New("ttk: invalid argument")

	// UnsupportedPlatform is returned at construction time when the
	// requested backend (or capability, e.g. clipboard on the terminal
	// backend) has no viable implementation on the current platform.
	UnsupportedPlatform = errors.New("ttk: unsupported platform")

	// ResourceFailure is returned from initialize() when the window, view,
	// or font could not be created.
	ResourceFailure = errors.New("ttk: resource failure")

	// TransientDrawFailure marks a single drawing call that hit a platform
	// error. Callers should log and continue; backend state remains
	// consistent and no frame is ever left half-drawn.
	TransientDrawFailure = errors.New("ttk: transient draw failure")
)

// FontNotFound and FontNotMonospace are specific to desktop font loading
// (spec.md §4.1, §4.4). They are sentinels of their own: errors.Is does not
// match them against InvalidArgument or ResourceFailure.
var (
	FontNotFound     = errors.New("ttk: font not found")
	FontNotMonospace = errors.New("ttk: font is not monospace")
)
