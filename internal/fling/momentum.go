// SPDX-License-Identifier: Unlicense OR MIT

// Package fling implements the momentum that keeps a scroll
// container moving after a drag is released.
package fling

const (
	// decay is the per-frame velocity retention.
	decay = 0.95
	// threshold is the speed below which momentum stops.
	threshold = 0.1
	// minDistance is the drag distance in pixels a fling must
	// exceed.
	minDistance = 10
	// timeScale converts drag seconds into frames of momentum.
	timeScale = 25
	// minDuration bounds the drag duration of a release in the
	// same frame as its press.
	minDuration = 1.0 / 60
)

// Momentum is the velocity, in pixels per frame, of a single
// scroll axis.
type Momentum struct {
	Velocity float32
}

// Seed starts a fling from a drag that moved distance pixels over
// duration seconds. It reports whether the drag was long enough to
// fling; short drags leave m unchanged.
func (m *Momentum) Seed(distance, duration float32) bool {
	if distance >= -minDistance && distance <= minDistance {
		return false
	}
	if duration < minDuration {
		duration = minDuration
	}
	m.Velocity = distance / (duration * timeScale)
	return true
}

// Step returns the displacement for the current frame and decays
// the velocity. An interrupted step, such as one where the wheel
// scrolled explicitly, stops the fling after applying it.
func (m *Momentum) Step(interrupted bool) float32 {
	d := m.Velocity
	m.Velocity *= decay
	if interrupted || (m.Velocity > -threshold && m.Velocity < threshold) {
		m.Velocity = 0
	}
	return d
}

// Active reports whether m is moving.
func (m Momentum) Active() bool {
	return m.Velocity != 0
}

// Stop any remaining fling movement.
func (m *Momentum) Stop() {
	m.Velocity = 0
}
