// SPDX-License-Identifier: Unlicense OR MIT

// Package brand registers the branded button fonts and falls back to the
// Go fonts when they are unavailable.
package brand

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gioui.org/font"
	"gioui.org/font/opentype"
	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gioplay/styledbutton/style"
)

// Files maps the branded font files to the weight they provide.
var Files = []struct {
	Name   string
	Weight font.Weight
}{
	{"Inter-Medium.otf", font.Medium},
	{"Inter-Regular.otf", font.Normal},
	{"Inter-Bold.otf", font.Bold},
}

var (
	once       sync.Once
	collection []font.FontFace
	registered string
)

// Register loads the branded fonts from dir, once per process. Later
// calls return the first result regardless of dir. Missing or broken
// font files are replaced by the matching Go font and logged.
func Register(dir string, logger *log.Logger) []font.FontFace {
	if logger == nil {
		logger = log.Default()
	}
	once.Do(func() {
		registered = dir
		collection = load(dir, logger)
	})
	if dir != registered {
		logger.Debug("fonts already registered", "dir", registered, "ignored", dir)
	}
	return collection
}

// Font returns the branded font of weight w.
func Font(w font.Weight) font.Font {
	return font.Font{Typeface: style.BrandTypeface, Weight: w}
}

func load(dir string, logger *log.Logger) []font.FontFace {
	var faces []font.FontFace
	for _, f := range Files {
		face, err := loadFace(dir, f.Name, f.Weight)
		if err != nil {
			logger.Warn("using fallback font", "font", f.Name, "err", err)
			face = fallback(f.Weight)
		}
		faces = append(faces, face)
	}
	return faces
}

func loadFace(dir, name string, w font.Weight) (font.FontFace, error) {
	if dir == "" {
		return font.FontFace{}, fmt.Errorf("brand: no font directory for %s", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return font.FontFace{}, fmt.Errorf("brand: %w", err)
	}
	return parse(data, name, w)
}

func parse(data []byte, name string, w font.Weight) (font.FontFace, error) {
	faces, err := opentype.ParseCollection(data)
	if err != nil {
		return font.FontFace{}, fmt.Errorf("brand: parsing %s: %w", name, err)
	}
	if len(faces) == 0 {
		return font.FontFace{}, fmt.Errorf("brand: %s holds no faces", name)
	}
	face := faces[0]
	face.Font.Typeface = style.BrandTypeface
	face.Font.Weight = w
	return face, nil
}

// fallback returns the Go font standing in for weight w under the
// branded typeface name.
func fallback(w font.Weight) font.FontFace {
	src := goregular.TTF
	switch {
	case w >= font.Bold:
		src = gobold.TTF
	case w >= font.Medium:
		src = gomedium.TTF
	}
	face, err := parse(src, "gofont", w)
	if err != nil {
		panic(err)
	}
	return face
}
