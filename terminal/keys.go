package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ttk-go/ttk/event"
)

var tcellSpecialKeys = map[tcell.Key]event.SpecialKey{
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyF1:         event.KeyF1,
	tcell.KeyF2:         event.KeyF2,
	tcell.KeyF3:         event.KeyF3,
	tcell.KeyF4:         event.KeyF4,
	tcell.KeyF5:         event.KeyF5,
	tcell.KeyF6:         event.KeyF6,
	tcell.KeyF7:         event.KeyF7,
	tcell.KeyF8:         event.KeyF8,
	tcell.KeyF9:         event.KeyF9,
	tcell.KeyF10:        event.KeyF10,
	tcell.KeyF11:        event.KeyF11,
	tcell.KeyF12:        event.KeyF12,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
	tcell.KeyInsert:     event.KeyInsert,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyEscape:     event.KeyEscape,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
}

func translateModifiers(m tcell.ModMask) event.Modifiers {
	var out event.Modifiers
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModControl
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= event.ModCommand
	}
	return out
}

// translateKey converts a tcell key event to an event.Key. ok is false only
// for key codes this toolkit has no mapping for at all.
func translateKey(e *tcell.EventKey) (event.Key, bool) {
	mods := translateModifiers(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		return event.Key{Code: event.SpecialKey(r), Modifiers: mods, Char: r}, true
	}
	if special, found := tcellSpecialKeys[e.Key()]; found {
		k := event.Key{Code: special, Modifiers: mods}
		if special < 1000 {
			// ENTER/TAB/ESCAPE/BACKSPACE carry their own char code, with or
			// without modifiers; the terminal backend still won't emit a Char
			// for them because event.IsPrintable rejects control codes.
			k.Char = rune(special)
		}
		return k, true
	}
	// Ctrl+letter arrives as a distinct control-code key (e.g. KeyCtrlA);
	// tcell names these KeyCtrlA..KeyCtrlZ == 0x01..0x1A.
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		letter := rune(e.Key()-tcell.KeyCtrlA) + 'a'
		return event.Key{Code: event.SpecialKey(letter), Modifiers: mods | event.ModControl, Char: 0}, true
	}
	return event.Key{}, false
}
