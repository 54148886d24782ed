// SPDX-License-Identifier: Unlicense OR MIT

package style

import "time"

// TransitionDuration is how long a press state change animates.
const TransitionDuration = 100 * time.Millisecond

// Transition animates between appearances. The zero Transition shows the
// zero Appearance; use Snap to give it a starting value.
type Transition struct {
	from, to Appearance
	start    time.Time
}

// Snap shows a immediately, dropping any animation in flight.
func (t *Transition) Snap(a Appearance) {
	t.from, t.to = a, a
	t.start = time.Time{}
}

// Retarget starts animating towards a from whatever is displayed at now.
func (t *Transition) Retarget(now time.Time, a Appearance) {
	cur := t.At(now)
	t.from, t.to = cur, a
	t.start = now
}

// progress returns the eased progress at now.
func (t *Transition) progress(now time.Time) float32 {
	if t.start.IsZero() {
		return 1
	}
	d := now.Sub(t.start)
	if d >= TransitionDuration {
		return 1
	}
	if d <= 0 {
		return 0
	}
	return EaseOut(float32(d) / float32(TransitionDuration))
}

// At returns the appearance displayed at now.
func (t *Transition) At(now time.Time) Appearance {
	return t.from.Lerp(t.to, t.progress(now))
}

// Animating reports whether the displayed value still changes after now.
func (t *Transition) Animating(now time.Time) bool {
	return t.progress(now) < 1
}
