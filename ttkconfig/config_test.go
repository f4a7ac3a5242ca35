package ttkconfig

import "testing"

func TestThemeByNameFallsBackToRavenBlue(t *testing.T) {
	got := ThemeByName("not-a-real-theme")
	want := ThemeByName("raven-blue")
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestThemeByNameCaseInsensitive(t *testing.T) {
	if ThemeByName("Crow-Black") != ThemeByName("crow-black") {
		t.Error("theme lookup should be case-insensitive")
	}
}

func TestThemeLabelUnknownReturnsName(t *testing.T) {
	if got := ThemeLabel("custom-theme"); got != "custom-theme" {
		t.Errorf("got %q, want %q", got, "custom-theme")
	}
}

func TestThemeLabelEmptyReturnsDefault(t *testing.T) {
	if got := ThemeLabel(""); got != "Raven Blue" {
		t.Errorf("got %q, want %q", got, "Raven Blue")
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FontSize <= 0 {
		t.Error("default font size must be positive")
	}
	if cfg.Theme == "" {
		t.Error("default theme must be set")
	}
}
