// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color parses and blends the sRGB colors used by the button styles.
package f32color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned for strings that are not #RGB or #RRGGBB colors.
var ErrInvalidHex = errors.New("invalid hex color")

const hexDigits = "0123456789abcdefABCDEF"

// Hex parses s as an opaque color. The leading '#' is optional.
func Hex(s string) (color.NRGBA, error) {
	h := strings.TrimSpace(s)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 4 && len(h) != 7 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	// colorful.Hex stops scanning at the first non-hex digit without
	// reporting it.
	if strings.Trim(h[1:], hexDigits) != "" {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(strings.ToLower(h))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is like Hex but panics on malformed input. It is meant for
// package level literals.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexOr parses s, returning fallback and the parse error if s is malformed.
func HexOr(s string, fallback color.NRGBA) (color.NRGBA, error) {
	c, err := Hex(s)
	if err != nil {
		return fallback, err
	}
	return c, nil
}

// ToHex formats c as #RRGGBB, ignoring alpha.
func ToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lerp blends from a to b by t, clamped to [0, 1]. Channels are blended
// in sRGB space.
func Lerp(a, b color.NRGBA, t float32) color.NRGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, cb := toColorful(a), toColorful(b)
	r, g, bl := ca.BlendRgb(cb, float64(t)).Clamped().RGB255()
	alpha := float32(a.A) + (float32(b.A)-float32(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(float64(alpha)))}
}

// Scale multiplies the color channels of c by f, keeping alpha.
func Scale(c color.NRGBA, f float32) color.NRGBA {
	r, g, b := toColorful(c).Clamped().RGB255()
	mul := func(v uint8) uint8 {
		return uint8(math.Round(math.Min(255, math.Max(0, float64(v)*float64(f)))))
	}
	return color.NRGBA{R: mul(r), G: mul(g), B: mul(b), A: c.A}
}

// MulAlpha scales the alpha of c by f.
func MulAlpha(c color.NRGBA, f float32) color.NRGBA {
	a := math.Min(255, math.Max(0, float64(c.A)*float64(f)))
	c.A = uint8(math.Round(a))
	return c
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
