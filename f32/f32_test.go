// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestPointIn(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(30, 30), true},
		{Pt(20, 15), true},
		{Pt(9.9, 15), false},
		{Pt(15, 30.1), false},
	}
	for _, tc := range tests {
		if got := tc.p.In(r); got != tc.want {
			t.Errorf("%v.In(%v) = %v; want %v", tc.p, r, got, tc.want)
		}
	}
}

func TestRectangleAdd(t *testing.T) {
	got := Rect(0, 0, 10, 10).Add(Pt(5, -5))
	if want := Rect(5, -5, 10, 10); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
	if got, want := got.String(), "(5,-5)-(15,5)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestPointString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
