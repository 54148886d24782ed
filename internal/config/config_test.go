// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/gioplay/styledbutton/internal/f32color"
	"github.com/gioplay/styledbutton/style"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preview.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	p := cfg.Resolve(log.New(&bytes.Buffer{}))
	if diff := cmp.Diff(style.Light(), p.Light, cmp.Comparer(func(a, b *style.Icon) bool { return a == b })); diff != "" {
		t.Errorf("light preset changed (-want +got):\n%s", diff)
	}
	if p.Background != Canvas {
		t.Errorf("background %v, want canvas %v", p.Background, Canvas)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
width = 320
background = "#000000"
fonts = "/opt/fonts"

[dark]
background = "#101010"

[icons]
selected_tint = "#00FF00"
`)
	var buf bytes.Buffer
	cfg, err := Load(path, log.New(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 600 {
		t.Errorf("size %dx%d, want 320x600", cfg.Width, cfg.Height)
	}
	p := cfg.Resolve(log.New(&buf))
	if p.Fonts != "/opt/fonts" {
		t.Errorf("fonts %q", p.Fonts)
	}
	if got := f32color.ToHex(p.Dark.Background); got != "#101010" {
		t.Errorf("dark background %s", got)
	}
	if p.Dark.HighlightedBackground != style.Dark().HighlightedBackground {
		t.Error("unset key overrode the preset")
	}
	if got := f32color.ToHex(p.SelectedTint); got != "#00FF00" {
		t.Errorf("selected tint %s", got)
	}
	if got := f32color.ToHex(p.Tint); got != defaultTint {
		t.Errorf("tint %s, want default", got)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected warnings: %s", buf.String())
	}
}

func TestResolveMalformedColor(t *testing.T) {
	cfg := Default()
	cfg.Light.Foreground = "#nothex"
	var buf bytes.Buffer
	p := cfg.Resolve(log.New(&buf))
	if p.Light.Foreground != style.Light().Foreground {
		t.Errorf("malformed color not replaced: %v", p.Light.Foreground)
	}
	if !strings.Contains(buf.String(), "light.foreground") {
		t.Errorf("fallback not logged: %q", buf.String())
	}

	// A single stray character must not slip through as a different color.
	cfg = Default()
	cfg.Dark.Background = "#1E223G"
	buf.Reset()
	p = cfg.Resolve(log.New(&buf))
	if p.Dark.Background != style.Dark().Background {
		t.Errorf("typo color not replaced: %v", p.Dark.Background)
	}
	if !strings.Contains(buf.String(), "dark.background") {
		t.Errorf("typo color fallback not logged: %q", buf.String())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil); err == nil {
		t.Error("missing file loaded")
	}
	if _, err := Load(writeConfig(t, "width = ["), nil); err == nil {
		t.Error("malformed TOML loaded")
	}
	_, err := Load(writeConfig(t, "height = 0"), nil)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero height error = %v, want ErrInvalidSize", err)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Load(writeConfig(t, "colour = \"#fff\""), log.New(&buf)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "colour") {
		t.Errorf("unknown key not reported: %q", buf.String())
	}
}
