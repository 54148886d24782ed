// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style maps the visual state of a styled button to the colors,
shadow and offset it is drawn with.

Appearance is a pure function of a StyleConfig and the pressed state;
the selected state only chooses between the normal and selected icon.
*/
package style

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/unit"
	"golang.org/x/exp/shiny/iconvg"

	"github.com/gioplay/styledbutton/internal/f32color"
)

// Icon is an image shown at the leading edge of a button. Buttons
// rasterize Data themselves; an Icon only describes it.
type Icon struct {
	// Data is the icon in IconVG format.
	Data []byte
	// Color tints the icon.
	Color color.NRGBA
	// Size is the natural size of the icon. Icons are never scaled to
	// fit the button.
	Size unit.Dp
}

// NewIcon returns an icon for the IconVG data, tinted col and sized sz.
func NewIcon(data []byte, col color.NRGBA, sz unit.Dp) (*Icon, error) {
	if _, err := iconvg.DecodeMetadata(data); err != nil {
		return nil, fmt.Errorf("style: icon: %w", err)
	}
	return &Icon{Data: data, Color: col, Size: sz}, nil
}

// StyleConfig holds the colors and icons of one button theme. Treat it
// as immutable once handed to a button; derive variants by copying a
// preset and overriding Icon or SelectedIcon.
type StyleConfig struct {
	Background            color.NRGBA
	HighlightedBackground color.NRGBA
	Foreground            color.NRGBA
	Icon                  *Icon
	// SelectedIcon replaces Icon while the button is selected. A nil
	// SelectedIcon leaves Icon in place.
	SelectedIcon *Icon
}

// ShadowStyle describes a drop shadow.
type ShadowStyle struct {
	Offset f32.Point
	Radius float32
	Color  color.NRGBA
	// Opacity scales the alpha of Color.
	Opacity float32
}

// VisualState is the pair of state bits tracked for a button.
type VisualState struct {
	// Pressed is transient and driven by input.
	Pressed bool
	// Selected is set by the owner of the button and persists.
	Selected bool
}

// Appearance is the state dependent part of a button's look.
type Appearance struct {
	Background color.NRGBA
	Shadow     ShadowStyle
	// TranslateY moves the whole button down, in dp.
	TranslateY float32
}

var shadowColor = f32color.MustHex("#001384")

// Light is the light button theme.
func Light() StyleConfig {
	return StyleConfig{
		Background:            f32color.MustHex("#FFFFFF"),
		HighlightedBackground: f32color.MustHex("#FAFBFF"),
		Foreground:            f32color.MustHex("#404660"),
	}
}

// Dark is the dark button theme.
func Dark() StyleConfig {
	return StyleConfig{
		Background:            f32color.MustHex("#1E2235"),
		HighlightedBackground: f32color.MustHex("#171827"),
		Foreground:            f32color.MustHex("#F9FAFF"),
	}
}

// ShadowStandard is the shadow of a resting button.
func ShadowStandard() ShadowStyle {
	return ShadowStyle{Offset: f32.Pt(0, 2), Radius: 3, Color: shadowColor, Opacity: 0.2}
}

// ShadowPressed is the shadow of a pressed button.
func ShadowPressed() ShadowStyle {
	return ShadowStyle{Offset: f32.Pt(0, 1), Radius: 1, Color: shadowColor, Opacity: 0.2}
}

// ComputeAppearance returns the appearance of a button with config c.
func ComputeAppearance(c StyleConfig, pressed bool) Appearance {
	if pressed {
		return Appearance{
			Background: c.HighlightedBackground,
			Shadow:     ShadowPressed(),
			TranslateY: 1,
		}
	}
	return Appearance{
		Background: c.Background,
		Shadow:     ShadowStandard(),
		TranslateY: 0,
	}
}

// IconFor returns the icon to display in state s, or nil.
func IconFor(c StyleConfig, s VisualState) *Icon {
	if s.Selected && c.SelectedIcon != nil {
		return c.SelectedIcon
	}
	return c.Icon
}

// Static is the state independent part of a button's look.
type Static struct {
	CornerRadius unit.Dp
	TitleColor   color.NRGBA
	TitleFont    font.Font
	TitleSize    unit.Sp
	// IconMargin is the distance between the leading edge and the icon.
	IconMargin unit.Dp
	// MinSize is the intrinsic size of the button.
	MinSize image.Point
}

// BrandTypeface is the typeface buttons ask the shaper for.
const BrandTypeface font.Typeface = "Inter"

// StaticFor returns the static look for config c.
func StaticFor(c StyleConfig) Static {
	return Static{
		CornerRadius: 6,
		TitleColor:   c.Foreground,
		TitleFont:    font.Font{Typeface: BrandTypeface, Weight: font.Medium},
		TitleSize:    14,
		IconMargin:   20,
		MinSize:      image.Pt(140, 40),
	}
}

// ImageRect places an icon of size sz inside the content rectangle
// content: margin from the leading edge, centered vertically, unscaled.
func ImageRect(content image.Rectangle, sz image.Point, margin int) image.Rectangle {
	y := content.Min.Y + (content.Dy()-sz.Y)/2
	x := content.Min.X + margin
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sz.X, y+sz.Y)}
}

// TitleRect is the part of content left for the title once an icon
// occupies icon. An empty icon leaves all of content.
func TitleRect(content, icon image.Rectangle) image.Rectangle {
	if icon.Empty() || icon.Max.X <= content.Min.X {
		return content
	}
	r := content
	r.Min.X = icon.Max.X
	if r.Min.X > r.Max.X {
		r.Min.X = r.Max.X
	}
	return r
}
