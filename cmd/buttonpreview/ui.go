// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"gioui.org/font"
	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/gioplay/styledbutton/button"
	"github.com/gioplay/styledbutton/font/brand"
	"github.com/gioplay/styledbutton/internal/config"
	"github.com/gioplay/styledbutton/internal/f32color"
	"github.com/gioplay/styledbutton/style"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// labelShade darkens the canvas color for the labels below each button.
const labelShade = 0.8

type item struct {
	label string
	btn   *button.StyledButton
	// toggle makes clicks flip the selected state.
	toggle bool
}

type preview struct {
	th    *material.Theme
	bg    color.NRGBA
	items []*item
}

func newPreview(p config.Preview, faces []font.FontFace) (*preview, error) {
	icon, err := style.NewIcon(icons.ActionBookmarkBorder, p.Tint, 24)
	if err != nil {
		return nil, fmt.Errorf("bookmark icon: %w", err)
	}
	selected, err := style.NewIcon(icons.ActionBookmark, p.SelectedTint, 24)
	if err != nil {
		return nil, fmt.Errorf("bookmark icon: %w", err)
	}
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(faces))

	light := p.Light
	light.Icon = icon
	lightSel := light
	lightSel.SelectedIcon = selected
	dark := p.Dark
	dark.Icon = icon
	darkSel := dark
	darkSel.SelectedIcon = selected

	ui := &preview{th: th, bg: p.Background}
	add := func(label string, cfg style.StyleConfig, sel bool) {
		b := button.New(cfg, "Bookmark")
		b.SetSelected(sel)
		ui.items = append(ui.items, &item{label: label, btn: b, toggle: cfg.SelectedIcon != nil})
	}
	add("Light | normal", light, false)
	add("Light | selected", lightSel, true)
	add("Dark | normal", dark, false)
	add("Dark | selected", darkSel, true)
	return ui, nil
}

func (p *preview) Layout(gtx C) D {
	for _, it := range p.items {
		for it.btn.Clicked(gtx) {
			if it.toggle {
				it.btn.SetSelected(!it.btn.Selected())
			}
		}
	}
	paint.Fill(gtx.Ops, p.bg)
	children := make([]layout.FlexChild, 0, 2*len(p.items))
	for i, it := range p.items {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Height: unit.Dp(30)}.Layout))
		}
		children = append(children, layout.Rigid(func(gtx C) D {
			return p.labeled(gtx, it)
		}))
	}
	return layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

// labeled draws the button of it with its label centered below.
func (p *preview) labeled(gtx C, it *item) D {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return it.btn.Layout(gtx, p.th)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx C) D {
			l := material.Label(p.th, unit.Sp(16), it.label)
			l.Font = brand.Font(font.Bold)
			l.Color = f32color.Scale(p.bg, labelShade)
			return l.Layout(gtx)
		}),
	)
}

// screenshot renders a single frame of p offscreen and writes it to out
// as PNG.
func screenshot(p *preview, width, height int, out string) error {
	sz := image.Pt(width, height)
	win, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer win.Release()
	var ops op.Ops
	gtx := C{
		Ops:         &ops,
		Now:         time.Now(),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(sz),
	}
	p.Layout(gtx)
	if err := win.Frame(&ops); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := win.Screenshot(img); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}
	return f.Close()
}
