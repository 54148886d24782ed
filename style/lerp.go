// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"github.com/gioplay/styledbutton/internal/f32color"
)

// EaseOut is a cubic ease-out curve mapping [0, 1] onto [0, 1].
func EaseOut(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp interpolates every animatable property of a towards b.
func (a Appearance) Lerp(b Appearance, t float32) Appearance {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Appearance{
		Background: f32color.Lerp(a.Background, b.Background, t),
		Shadow:     a.Shadow.Lerp(b.Shadow, t),
		TranslateY: lerp(a.TranslateY, b.TranslateY, t),
	}
}

// Lerp interpolates the shadow parameters of s towards o.
func (s ShadowStyle) Lerp(o ShadowStyle, t float32) ShadowStyle {
	if t <= 0 {
		return s
	}
	if t >= 1 {
		return o
	}
	s.Offset.X = lerp(s.Offset.X, o.Offset.X, t)
	s.Offset.Y = lerp(s.Offset.Y, o.Offset.Y, t)
	s.Radius = lerp(s.Radius, o.Radius, t)
	s.Color = f32color.Lerp(s.Color, o.Color, t)
	s.Opacity = lerp(s.Opacity, o.Opacity, t)
	return s
}
