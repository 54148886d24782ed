// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the preview configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/gioplay/styledbutton/internal/f32color"
	"github.com/gioplay/styledbutton/style"
)

// ErrInvalidSize is returned for non-positive window sizes.
var ErrInvalidSize = errors.New("invalid window size")

// Theme overrides the colors of a button preset.
type Theme struct {
	Background  string `toml:"background"`
	Highlighted string `toml:"highlighted"`
	Foreground  string `toml:"foreground"`
}

// Icons sets the icon tints.
type Icons struct {
	Tint         string `toml:"tint"`
	SelectedTint string `toml:"selected_tint"`
}

// Config is the preview configuration as written in the file.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Fonts      string `toml:"fonts"`
	Light      Theme  `toml:"light"`
	Dark       Theme  `toml:"dark"`
	Icons      Icons  `toml:"icons"`
}

// Preview is a Config with colors resolved.
type Preview struct {
	Width, Height int
	Background    color.NRGBA
	Fonts         string
	Light, Dark   style.StyleConfig
	Tint          color.NRGBA
	SelectedTint  color.NRGBA
}

// Canvas is the default preview background.
var Canvas = color.NRGBA{R: 209, G: 227, B: 235, A: 0xff}

const (
	defaultTint         = "#8A91B4"
	defaultSelectedTint = "#F04949"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:      500,
		Height:     600,
		Background: f32color.ToHex(Canvas),
		Icons:      Icons{Tint: defaultTint, SelectedTint: defaultSelectedTint},
	}
}

// Load reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string, logger *log.Logger) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
	}
	if logger != nil {
		for _, k := range md.Undecoded() {
			logger.Warn("unknown config key", "file", path, "key", k.String())
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that have no sensible fallback.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}

// Resolve parses the colors of c. Malformed or missing colors keep the
// preset value and are logged.
func (c Config) Resolve(logger *log.Logger) Preview {
	if logger == nil {
		logger = log.Default()
	}
	parse := func(key, s string, fallback color.NRGBA) color.NRGBA {
		if s == "" {
			return fallback
		}
		col, err := f32color.HexOr(s, fallback)
		if err != nil {
			logger.Warn("using default color", "key", key, "err", err)
		}
		return col
	}
	theme := func(name string, t Theme, preset style.StyleConfig) style.StyleConfig {
		preset.Background = parse(name+".background", t.Background, preset.Background)
		preset.HighlightedBackground = parse(name+".highlighted", t.Highlighted, preset.HighlightedBackground)
		preset.Foreground = parse(name+".foreground", t.Foreground, preset.Foreground)
		return preset
	}
	return Preview{
		Width:        c.Width,
		Height:       c.Height,
		Background:   parse("background", c.Background, Canvas),
		Fonts:        c.Fonts,
		Light:        theme("light", c.Light, style.Light()),
		Dark:         theme("dark", c.Dark, style.Dark()),
		Tint:         parse("icons.tint", c.Icons.Tint, f32color.MustHex(defaultTint)),
		SelectedTint: parse("icons.selected_tint", c.Icons.SelectedTint, f32color.MustHex(defaultSelectedTint)),
	}
}
