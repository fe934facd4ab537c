// Package config loads the optional bottree configuration file.
//
// The file lives at ~/.config/bottree/config.toml (XDG-aware) and holds
// editor-side preferences: layout spacing, the default document author,
// and the library directory. A missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/agatho/bottree/pkg/layout"
)

// appName is the directory name used under the XDG config home.
const appName = "bottree"

// LayoutConfig mirrors layout.Config for the TOML file.
type LayoutConfig struct {
	HorizontalSpacing float64 `toml:"horizontal_spacing"`
	VerticalSpacing   float64 `toml:"vertical_spacing"`
}

// Config holds all file-configurable settings.
type Config struct {
	Author     string       `toml:"author"`
	LibraryDir string       `toml:"library_dir"`
	Layout     LayoutConfig `toml:"layout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	lc := layout.DefaultConfig()
	return Config{
		Layout: LayoutConfig{
			HorizontalSpacing: lc.HorizontalSpacing,
			VerticalSpacing:   lc.VerticalSpacing,
		},
	}
}

// LayoutConfig converts the file settings into a layout.Config,
// substituting defaults for unset or nonsensical values.
func (c Config) LayoutConfig() layout.Config {
	lc := layout.DefaultConfig()
	if c.Layout.HorizontalSpacing > 0 {
		lc.HorizontalSpacing = c.Layout.HorizontalSpacing
	}
	if c.Layout.VerticalSpacing > 0 {
		lc.VerticalSpacing = c.Layout.VerticalSpacing
	}
	return lc
}

// DefaultPath returns the config file path using the XDG standard
// (~/.config/bottree/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error:
// the defaults are returned. A malformed file is an error, since
// silently ignoring a user's config invites confusion.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default path.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}
