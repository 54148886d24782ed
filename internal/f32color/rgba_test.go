// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"errors"
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FFFFFF", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#FAFBFF", color.NRGBA{R: 0xfa, G: 0xfb, B: 0xff, A: 0xff}},
		{"1E2235", color.NRGBA{R: 0x1e, G: 0x22, B: 0x35, A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{" #001384 ", color.NRGBA{R: 0x00, G: 0x13, B: 0x84, A: 0xff}},
	}
	for _, tc := range tests {
		got, err := Hex(tc.in)
		if err != nil {
			t.Errorf("Hex(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Hex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#GGGGGG", "blue", "#1234567", "#12345G", "#12 456", "#FFFFFG", "#-12345", "#f0g"} {
		if _, err := Hex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("Hex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestHexOr(t *testing.T) {
	fallback := MustHex("#123456")
	got, err := HexOr("nope", fallback)
	if err == nil {
		t.Error("HexOr accepted malformed input")
	}
	if got != fallback {
		t.Errorf("HexOr = %v, want fallback %v", got, fallback)
	}
	got, err = HexOr("#404660", fallback)
	if err != nil || got != MustHex("#404660") {
		t.Errorf("HexOr(#404660) = %v, %v", got, err)
	}
}

func TestToHexRoundtrip(t *testing.T) {
	for _, s := range []string{"#FFFFFF", "#1E2235", "#F04949", "#000000"} {
		if got := ToHex(MustHex(s)); got != s {
			t.Errorf("ToHex(MustHex(%q)) = %q", s, got)
		}
	}
}

func TestLerp(t *testing.T) {
	a, b := MustHex("#000000"), MustHex("#FFFFFF")
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp(-1) = %v", got)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R < 127 || mid.R > 128 || mid.R != mid.G || mid.G != mid.B || mid.A != 0xff {
		t.Errorf("Lerp(0.5) = %v", mid)
	}
	half := Lerp(color.NRGBA{A: 0}, color.NRGBA{A: 200}, 0.5)
	if half.A != 100 {
		t.Errorf("alpha blend = %d, want 100", half.A)
	}
}

func TestScale(t *testing.T) {
	got := Scale(color.NRGBA{R: 100, G: 200, B: 250, A: 0x80}, 0.8)
	want := color.NRGBA{R: 80, G: 160, B: 200, A: 0x80}
	if got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got := MulAlpha(MustHex("#001384"), 0.2); got.A != 51 {
		t.Errorf("MulAlpha alpha = %d, want 51", got.A)
	}
}
