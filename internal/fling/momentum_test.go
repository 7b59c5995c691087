// SPDX-License-Identifier: Unlicense OR MIT

package fling

import "testing"

func TestSeed(t *testing.T) {
	var m Momentum
	if m.Seed(9, 0.1) {
		t.Fatal("short drag started a fling")
	}
	if m.Seed(10, 0.1) || m.Seed(-10, 0.1) {
		t.Fatal("drag of exactly the minimum distance started a fling")
	}
	if m.Active() {
		t.Fatal("short drag left momentum")
	}
	if !m.Seed(-50, 0.2) {
		t.Fatal("long drag did not fling")
	}
	if got, want := m.Velocity, float32(-10); !approx(got, want) {
		t.Errorf("velocity: got %v; want %v", got, want)
	}
}

func TestSeedInstantRelease(t *testing.T) {
	var m Momentum
	m.Seed(100, 0)
	if got, want := m.Velocity, float32(240); !approx(got, want) {
		t.Errorf("velocity: got %v; want %v", got, want)
	}
}

func TestStepDecays(t *testing.T) {
	m := Momentum{Velocity: 4}
	var total float32
	frames := 0
	for m.Active() {
		total += m.Step(false)
		frames++
		if frames > 1000 {
			t.Fatal("momentum never stopped")
		}
	}
	// Geometric series 4 * (1 - 0.95^n) / 0.05 approaches 80.
	if total < 70 || total > 80 {
		t.Errorf("total displacement %v outside [70, 80]", total)
	}
}

func TestStepInterrupted(t *testing.T) {
	m := Momentum{Velocity: 4}
	if d := m.Step(true); d != 4 {
		t.Errorf("interrupted step moved %v; want 4", d)
	}
	if m.Active() {
		t.Error("interrupted momentum still active")
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d > -1e-3 && d < 1e-3
}
