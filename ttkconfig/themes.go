package ttkconfig

import "strings"

// Theme is a named palette: a default foreground/background, plus chrome
// colors the application may use around the grid (a title bar, a cursor
// tint). Components are floats in 0-1 for direct use as OpenGL uniforms.
// The desktop backend does not read themes: color pair 0 always resolves to
// white-on-black and the cursor is a fixed translucent white.
type Theme struct {
	Background [4]float32
	Foreground [4]float32
	Cursor     [4]float32
	Chrome     [4]float32
	ChromeText [4]float32
	Selection  [4]float32
}

// ThemeOption describes an available theme for a settings UI.
type ThemeOption struct {
	Name  string
	Label string
}

// ThemeOptions lists the catalog's theme names in display order.
func ThemeOptions() []ThemeOption {
	return []ThemeOption{
		{Name: "raven-blue", Label: "Raven Blue"},
		{Name: "crow-black", Label: "Crow Black"},
		{Name: "magpie-black-white-grey", Label: "Magpie Black/White/Grey"},
		{Name: "catppuccin-mocha", Label: "Catppuccin Mocha"},
	}
}

// ThemeLabel returns the display label for a theme name, falling back to
// the name itself for an unrecognized one; an empty name yields the default
// theme's label, "Raven Blue".
func ThemeLabel(name string) string {
	for _, opt := range ThemeOptions() {
		if opt.Name == name {
			return opt.Label
		}
	}
	if name == "" {
		return "Raven Blue"
	}
	return name
}

// ThemeByName returns the named theme, falling back to raven-blue.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crow-black":
		return Theme{
			Background: [4]float32{0.020, 0.020, 0.020, 1.0},
			Foreground: [4]float32{0.902, 0.902, 0.902, 1.0},
			Cursor:     [4]float32{0.965, 0.965, 0.965, 1.0},
			Chrome:     [4]float32{0.000, 0.000, 0.000, 1.0},
			ChromeText: [4]float32{0.702, 0.702, 0.702, 1.0},
			Selection:  [4]float32{0.702, 0.702, 0.702, 0.35},
		}
	case "magpie-black-white-grey", "magpie-black-and-white-grey":
		return Theme{
			Background: [4]float32{0.067, 0.067, 0.067, 1.0},
			Foreground: [4]float32{0.961, 0.961, 0.961, 1.0},
			Cursor:     [4]float32{1.000, 1.000, 1.000, 1.0},
			Chrome:     [4]float32{0.039, 0.039, 0.039, 1.0},
			ChromeText: [4]float32{0.816, 0.816, 0.816, 1.0},
			Selection:  [4]float32{0.816, 0.816, 0.816, 0.35},
		}
	case "catppuccin-mocha", "catppuccin", "catpuccin":
		return Theme{
			Background: [4]float32{0.118, 0.118, 0.180, 1.0},
			Foreground: [4]float32{0.804, 0.839, 0.957, 1.0},
			Cursor:     [4]float32{0.961, 0.761, 0.906, 1.0},
			Chrome:     [4]float32{0.094, 0.094, 0.145, 1.0},
			ChromeText: [4]float32{0.537, 0.706, 0.980, 1.0},
			Selection:  [4]float32{0.537, 0.706, 0.980, 0.35},
		}
	case "raven-blue":
		fallthrough
	default:
		return Theme{
			Background: [4]float32{0.051, 0.063, 0.102, 1.0},
			Foreground: [4]float32{0.910, 0.929, 0.969, 1.0},
			Cursor:     [4]float32{0.635, 0.878, 0.780, 1.0},
			Chrome:     [4]float32{0.039, 0.047, 0.078, 1.0},
			ChromeText: [4]float32{0.455, 0.714, 1.0, 1.0},
			Selection:  [4]float32{0.455, 0.714, 1.0, 0.35},
		}
	}
}
