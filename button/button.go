// SPDX-License-Identifier: Unlicense OR MIT

// Package button implements a Gio button drawn with the styles from
// package style. It reads the pressed state from a widget.Clickable and
// animates between the resting and pressed appearance.
package button

import (
	"image"
	"image/color"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/gioplay/styledbutton/internal/f32color"
	"github.com/gioplay/styledbutton/style"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// defaultIconSize is used for icons that leave Size unset.
const defaultIconSize = unit.Dp(24)

// StyledButton is the state of a styled button. Create it with New.
type StyledButton struct {
	// Title is the text drawn on the button.
	Title string

	click  widget.Clickable
	cfg    style.StyleConfig
	static style.Static
	state  style.VisualState
	trans  style.Transition
	// icons caches the rasterizable form of the config icons.
	icons map[*style.Icon]*widget.Icon
	// clicks are clicks seen by Layout but not yet reported by Clicked.
	clicks int
}

// New returns a button styled by cfg.
func New(cfg style.StyleConfig, title string) *StyledButton {
	b := &StyledButton{Title: title}
	b.SetConfig(cfg)
	return b
}

// SetConfig replaces the style of the button. The static look is
// rebuilt and the appearance jumps to the one for the current press
// state.
func (b *StyledButton) SetConfig(cfg style.StyleConfig) {
	b.cfg = cfg
	b.static = style.StaticFor(cfg)
	b.icons = make(map[*style.Icon]*widget.Icon)
	for _, ic := range []*style.Icon{cfg.Icon, cfg.SelectedIcon} {
		if ic == nil || b.icons[ic] != nil {
			continue
		}
		// Data that fails to decode is left undrawn.
		if wi, err := widget.NewIcon(ic.Data); err == nil {
			b.icons[ic] = wi
		}
	}
	b.trans.Snap(style.ComputeAppearance(cfg, b.state.Pressed))
}

// Config returns the style of the button.
func (b *StyledButton) Config() style.StyleConfig {
	return b.cfg
}

// SetPressed updates the press state. A change animates from the
// appearance displayed at now.
func (b *StyledButton) SetPressed(now time.Time, pressed bool) {
	if pressed == b.state.Pressed {
		return
	}
	b.state.Pressed = pressed
	b.trans.Retarget(now, style.ComputeAppearance(b.cfg, pressed))
}

// Pressed reports whether the button is pressed.
func (b *StyledButton) Pressed() bool {
	return b.state.Pressed
}

// SetSelected sets the selected state. Selection only changes the icon.
func (b *StyledButton) SetSelected(selected bool) {
	b.state.Selected = selected
}

// Selected reports whether the button is selected.
func (b *StyledButton) Selected() bool {
	return b.state.Selected
}

// Appearance returns the appearance displayed at now.
func (b *StyledButton) Appearance(now time.Time) style.Appearance {
	return b.trans.At(now)
}

// Icon returns the icon displayed in the current state, or nil.
func (b *StyledButton) Icon() *style.Icon {
	return style.IconFor(b.cfg, b.state)
}

// Clicked reports whether the button was clicked since the last call.
func (b *StyledButton) Clicked(gtx C) bool {
	b.update(gtx)
	if b.clicks == 0 {
		return false
	}
	b.clicks--
	return true
}

// update drains input events and follows the press state.
func (b *StyledButton) update(gtx C) {
	for {
		_, ok := b.click.Update(gtx)
		if !ok {
			break
		}
		b.clicks++
	}
	b.SetPressed(gtx.Now, b.click.Pressed())
}

// Layout draws the button using th for text shaping.
func (b *StyledButton) Layout(gtx C, th *material.Theme) D {
	b.update(gtx)
	a := b.trans.At(gtx.Now)
	if b.trans.Animating(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	size := gtx.Constraints.Constrain(image.Pt(
		gtx.Dp(unit.Dp(b.static.MinSize.X)),
		gtx.Dp(unit.Dp(b.static.MinSize.Y)),
	))
	bounds := image.Rectangle{Max: size}
	radius := gtx.Dp(b.static.CornerRadius)

	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(0, dp(gtx, a.TranslateY)))).Push(gtx.Ops).Pop()
	drawShadow(gtx, bounds, radius, a.Shadow)
	paint.FillShape(gtx.Ops, a.Background, clip.UniformRRect(bounds, radius).Op(gtx.Ops))

	gtx.Constraints = layout.Exact(size)
	b.click.Layout(gtx, func(gtx C) D {
		ir, wi := b.iconRect(gtx, bounds)
		if wi != nil {
			layoutIcon(gtx, ir, wi, b.Icon().Color)
		}
		tr := style.TitleRect(bounds, ir)
		lbl := material.Label(th, b.static.TitleSize, b.Title)
		lbl.Color = b.static.TitleColor
		lbl.Font = b.static.TitleFont
		lbl.Alignment = text.Middle
		lbl.MaxLines = 1
		defer op.Offset(tr.Min).Push(gtx.Ops).Pop()
		gtx.Constraints = layout.Exact(tr.Size())
		layout.Center.Layout(gtx, lbl.Layout)
		return D{Size: size}
	})
	return D{Size: size}
}

// iconRect returns where the current icon goes inside content, and the
// icon to draw there. Without a drawable icon the rectangle is empty.
func (b *StyledButton) iconRect(gtx C, content image.Rectangle) (image.Rectangle, *widget.Icon) {
	ic := b.Icon()
	if ic == nil || b.icons[ic] == nil {
		return image.Rectangle{}, nil
	}
	isz := ic.Size
	if isz == 0 {
		isz = defaultIconSize
	}
	px := gtx.Dp(isz)
	return style.ImageRect(content, image.Pt(px, px), gtx.Dp(b.static.IconMargin)), b.icons[ic]
}

// layoutIcon draws wi unscaled in r.
func layoutIcon(gtx C, r image.Rectangle, wi *widget.Icon, col color.NRGBA) {
	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	wi.Layout(gtx, col)
}

// drawShadow approximates a blurred drop shadow with stacked rounded
// rectangles of decreasing opacity.
func drawShadow(gtx C, bounds image.Rectangle, radius int, s style.ShadowStyle) {
	col := f32color.MulAlpha(s.Color, s.Opacity)
	if col.A == 0 {
		return
	}
	off := image.Pt(int(dp(gtx, s.Offset.X)+.5), int(dp(gtx, s.Offset.Y)+.5))
	blur := int(dp(gtx, s.Radius) + .5)
	if blur < 1 {
		blur = 1
	}
	layer := f32color.MulAlpha(col, 1/float32(blur+1))
	for i := blur; i >= 0; i-- {
		r := bounds.Add(off).Inset(-i)
		paint.FillShape(gtx.Ops, layer, clip.UniformRRect(r, radius+i).Op(gtx.Ops))
	}
}

func dp(gtx C, v float32) float32 {
	return v * nonZero(gtx.Metric.PxPerDp)
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
