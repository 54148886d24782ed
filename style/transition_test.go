// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"testing"
	"time"
)

func TestEaseOut(t *testing.T) {
	if EaseOut(0) != 0 || EaseOut(1) != 1 {
		t.Fatalf("EaseOut endpoints: %v %v", EaseOut(0), EaseOut(1))
	}
	prev := float32(0)
	for i := 1; i < 100; i++ {
		x := float32(i) / 100
		y := EaseOut(x)
		if y < prev {
			t.Errorf("EaseOut not monotonic at %v", x)
		}
		if y <= x {
			t.Errorf("EaseOut(%v) = %v, not above linear", x, y)
		}
		prev = y
	}
}

func TestTransition(t *testing.T) {
	c := Light()
	rest, pressed := ComputeAppearance(c, false), ComputeAppearance(c, true)
	var tr Transition
	tr.Snap(rest)
	t0 := time.Unix(1000, 0)
	if got := tr.At(t0); got != rest {
		t.Fatalf("snapped transition shows %+v", got)
	}
	tr.Retarget(t0, pressed)
	if got := tr.At(t0); got != rest {
		t.Errorf("transition start shows %+v, want resting appearance", got)
	}
	if !tr.Animating(t0.Add(50 * time.Millisecond)) {
		t.Error("transition finished early")
	}
	mid := tr.At(t0.Add(50 * time.Millisecond))
	if mid.TranslateY <= 0 || mid.TranslateY >= 1 {
		t.Errorf("mid translation %v not between endpoints", mid.TranslateY)
	}
	if mid.Shadow.Radius <= 1 || mid.Shadow.Radius >= 3 {
		t.Errorf("mid shadow radius %v not between endpoints", mid.Shadow.Radius)
	}
	end := t0.Add(TransitionDuration)
	if got := tr.At(end); got != pressed {
		t.Errorf("transition end shows %+v, want pressed appearance", got)
	}
	if tr.Animating(end) {
		t.Error("transition still animating after its duration")
	}
}

func TestTransitionBeginsFromCurrentState(t *testing.T) {
	c := Dark()
	rest, pressed := ComputeAppearance(c, false), ComputeAppearance(c, true)
	var tr Transition
	tr.Snap(rest)
	t0 := time.Unix(1000, 0)
	tr.Retarget(t0, pressed)
	t1 := t0.Add(30 * time.Millisecond)
	shown := tr.At(t1)
	tr.Retarget(t1, rest)
	if got := tr.At(t1); got != shown {
		t.Errorf("retarget jumped from %+v to %+v", shown, got)
	}
	if got := tr.At(t1.Add(TransitionDuration)); got != rest {
		t.Errorf("retargeted transition ends at %+v, want resting appearance", got)
	}
}
