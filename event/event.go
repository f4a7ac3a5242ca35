// Package event defines the backend-neutral input event model: a tagged
// union delivered to an application-supplied Callback, special key and
// modifier constants, and the mouse/system event variants.
package event

// Kind identifies which fields of an Event are valid.
type Kind uint8

const (
	KindKey Kind = iota
	KindChar
	KindMouse
	KindSystem
)

// SpecialKey identifies a non-printable key. Values >= 1000 are the
// backend-independent special keys (arrows, function keys, navigation);
// ENTER, TAB, ESCAPE, and BACKSPACE reuse their ASCII control codes since
// those never collide with a printable code point.
type SpecialKey uint32

const (
	KeyEnter     SpecialKey = 10
	KeyTab       SpecialKey = 9
	KeyEscape    SpecialKey = 27
	KeyBackspace SpecialKey = 127
)

const (
	KeyUp SpecialKey = 1000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyResize
)

// Modifiers is a combinable bitfield of held modifier keys.
type Modifiers uint8

const (
	ModNone    Modifiers = 0
	ModShift   Modifiers = 1 << 0
	ModControl Modifiers = 1 << 1
	ModAlt     Modifiers = 1 << 2
	ModCommand Modifiers = 1 << 3
)

// Has reports whether m includes every bit set in other.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// MouseAction identifies the phase of a mouse event.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// SystemKind identifies the variant of a System event.
type SystemKind uint8

const (
	SystemResize SystemKind = iota
	SystemClose
	SystemFocusGained
	SystemFocusLost
)

// Key is a non-text key press. Code is either a SpecialKey or, for
// printable keys without a dedicated constant, the key's own rune value.
// Char holds the rune the key produces with Shift applied (an uppercase
// letter for Shift+A), or 0 if the key has no text representation (e.g. F5);
// the terminal backend also reports 0 for Ctrl+letter, and its own control
// code for ENTER/TAB/ESCAPE/BACKSPACE.
type Key struct {
	Code      SpecialKey
	Modifiers Modifiers
	Char      rune
}

// Char is exactly one grapheme cluster of committed text input.
type Char struct {
	Char string
}

// Mouse is a pointer event in cell coordinates.
type Mouse struct {
	X, Y   int
	Button uint8
	Action MouseAction
}

// System is a window/session-level notification.
type System struct {
	Kind SystemKind
}

// Event is the tagged union delivered through Callback. Only the field
// named by Kind is meaningful.
type Event struct {
	Kind   Kind
	Key    Key
	Char   Char
	Mouse  Mouse
	System System
}

// Callback is implemented by the application. Each method returns whether
// the event was consumed. On the terminal backend an unconsumed printable
// Key without Control or Command is followed by a Char. On the desktop
// backend Char events come from GLFW's character callback and are delivered
// whether or not the preceding Key was consumed.
//
// OnMouseEvent is an addition beyond the three callback methods spec.md
// §4.5 names explicitly: the spec also defines a Mouse event variant
// (§3) with no stated delivery path, so mouse events get their own
// callback method rather than silently going undelivered.
type Callback interface {
	OnKeyEvent(Key) bool
	OnCharEvent(Char) bool
	OnMouseEvent(Mouse) bool
	OnSystemEvent(System) bool
}

// IsPrintable reports whether r falls in the printable ASCII range or is a
// multibyte rune that forms one grapheme on its own — the terminal
// backend's test for whether an unconsumed Key should synthesize a Char
// (spec.md §4.5).
func IsPrintable(r rune) bool {
	if r == 0 {
		return false
	}
	if r >= 32 && r <= 126 {
		return true
	}
	return r > 127
}
