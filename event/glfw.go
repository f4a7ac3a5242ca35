package event

import "github.com/go-gl/glfw/v3.3/glfw"

// TranslateGLFWModifiers maps glfw's modifier bitmask to Modifiers.
func TranslateGLFWModifiers(mods glfw.ModifierKey) Modifiers {
	var m Modifiers
	if mods&glfw.ModShift != 0 {
		m |= ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= ModCommand
	}
	return m
}

var glfwSpecialKeys = map[glfw.Key]SpecialKey{
	glfw.KeyUp:       KeyUp,
	glfw.KeyDown:     KeyDown,
	glfw.KeyLeft:     KeyLeft,
	glfw.KeyRight:    KeyRight,
	glfw.KeyF1:       KeyF1,
	glfw.KeyF2:       KeyF2,
	glfw.KeyF3:       KeyF3,
	glfw.KeyF4:       KeyF4,
	glfw.KeyF5:       KeyF5,
	glfw.KeyF6:       KeyF6,
	glfw.KeyF7:       KeyF7,
	glfw.KeyF8:       KeyF8,
	glfw.KeyF9:       KeyF9,
	glfw.KeyF10:      KeyF10,
	glfw.KeyF11:      KeyF11,
	glfw.KeyF12:      KeyF12,
	glfw.KeyHome:     KeyHome,
	glfw.KeyEnd:      KeyEnd,
	glfw.KeyPageUp:   KeyPageUp,
	glfw.KeyPageDown: KeyPageDown,
	glfw.KeyInsert:   KeyInsert,
	glfw.KeyDelete:   KeyDelete,
	glfw.KeyEnter:    KeyEnter,
	glfw.KeyKPEnter:  KeyEnter,
	glfw.KeyTab:      KeyTab,
	glfw.KeyEscape:   KeyEscape,
	glfw.KeyBackspace: KeyBackspace,
}

// TranslateGLFWKey builds a Key event from a GLFW key-callback invocation.
// ok is false for keys this toolkit has no special or printable mapping
// for (modifier keys pressed alone, menu key, etc.) — the caller should
// not dispatch OnKeyEvent in that case.
func TranslateGLFWKey(key glfw.Key, mods glfw.ModifierKey) (Key, bool) {
	m := TranslateGLFWModifiers(mods)
	if special, found := glfwSpecialKeys[key]; found {
		return Key{Code: special, Modifiers: m}, true
	}
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		r := rune(key-glfw.KeyA) + 'a'
		if m.Has(ModShift) {
			r = rune(key-glfw.KeyA) + 'A'
		}
		return Key{Code: SpecialKey(r), Modifiers: m, Char: r}, true
	}
	if key >= glfw.Key0 && key <= glfw.Key9 {
		r := rune(key-glfw.Key0) + '0'
		return Key{Code: SpecialKey(r), Modifiers: m, Char: r}, true
	}
	if key == glfw.KeySpace {
		return Key{Code: SpecialKey(' '), Modifiers: m, Char: ' '}, true
	}
	return Key{}, false
}
