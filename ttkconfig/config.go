// Package ttkconfig loads and saves the desktop backend's on-disk
// configuration (font, theme, window geometry) and its theme catalog.
package ttkconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk, user-editable configuration for a desktop-backed
// application built on this toolkit.
type Config struct {
	FontFamily string `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
	Theme      string `toml:"theme"`
	WindowW    int    `toml:"window_width"`
	WindowH    int    `toml:"window_height"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists yet.
func DefaultConfig() *Config {
	return &Config{
		FontFamily: "jetbrains",
		FontSize:   15.0,
		Theme:      "raven-blue",
		WindowW:    900,
		WindowH:    600,
	}
}

// Path returns the location of the config file, creating its parent
// directory if necessary.
func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "ttk.toml"
	}
	dir := filepath.Join(homeDir, ".config", "ttk")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ttk.toml")
}

// Load reads the config file, returning defaults if it does not exist.
func Load() (*Config, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to the config file.
func (c *Config) Save() error {
	path := Path()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
