// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"gioui.org/strata/font"
	"gioui.org/strata/layout"
)

func TestCollection(t *testing.T) {
	faces := Collection()
	if got, want := len(faces), int(Smallcaps)+1; got != want {
		t.Fatalf("got %d faces; want %d", got, want)
	}
	tests := []struct {
		id   uint16
		font font.Font
	}{
		{Regular, font.Font{Typeface: "Go"}},
		{Bold, font.Font{Typeface: "Go", Weight: font.Bold}},
		{Mono, font.Font{Typeface: "Go", Variant: "Mono"}},
	}
	for _, tt := range tests {
		id, ok := Measurer().Lookup(tt.font)
		if !ok || id != tt.id {
			t.Errorf("Lookup(%+v) = %d, %v; want %d", tt.font, id, ok, tt.id)
		}
	}
}

func TestMeasurer(t *testing.T) {
	m := Measurer()
	regular := m.MeasureText("Hello", &layout.TextConfig{FontID: Regular, FontSize: 16}, nil)
	bold := m.MeasureText("Hello", &layout.TextConfig{FontID: Bold, FontSize: 16}, nil)
	if regular.Width <= 0 || bold.Width <= regular.Width {
		t.Errorf("got regular %v and bold %v; want bold wider", regular, bold)
	}
}
