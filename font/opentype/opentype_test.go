// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	giofont "gioui.org/strata/font"
	"gioui.org/strata/layout"
)

func TestEmptyString(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if adv := face.Advance(fixed.I(200), ""); adv != 0 {
		t.Errorf("got advance %v for empty string; want 0", adv)
	}
	m := face.Metrics(fixed.I(200))
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("got metrics %+v; want positive ascent and descent", m)
	}
}

func TestAdvance(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ppem := fixed.I(16)
	a, b := face.Advance(ppem, "a"), face.Advance(ppem, "b")
	if ab := face.Advance(ppem, "ab"); ab < a+b-fixed.I(1) || ab > a+b+fixed.I(1) {
		t.Errorf("got advance %v for \"ab\"; want about %v", ab, a+b)
	}
	if double := face.Advance(fixed.I(32), "a"); double < 2*a-fixed.I(1) || double > 2*a+fixed.I(1) {
		t.Errorf("got advance %v at twice the size; want about %v", double, 2*a)
	}
}

func TestMonoAdvance(t *testing.T) {
	face, err := Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ppem := fixed.I(16)
	if i, m := face.Advance(ppem, "iii"), face.Advance(ppem, "mmm"); i != m {
		t.Errorf("mono advances differ: %v and %v", i, m)
	}
}

func TestFont(t *testing.T) {
	tests := []struct {
		ttf  []byte
		want giofont.Font
	}{
		{goregular.TTF, giofont.Font{}},
		{gobold.TTF, giofont.Font{Weight: giofont.Bold}},
		{gomono.TTF, giofont.Font{Variant: "Mono"}},
	}
	for _, tt := range tests {
		faces, err := ParseCollection(tt.ttf)
		if err != nil {
			t.Fatal(err)
		}
		if len(faces) != 1 {
			t.Fatalf("got %d faces; want 1", len(faces))
		}
		got := faces[0].Font
		if got.Typeface == "" {
			t.Error("no typeface name")
		}
		got.Typeface = ""
		if got != tt.want {
			t.Errorf("got %+v; want %+v", got, tt.want)
		}
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("parsed garbage")
	}
}

func TestMeasureText(t *testing.T) {
	regular, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	mono, err := Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollection([]giofont.FontFace{{Face: regular}, {Face: mono}})

	base := c.MeasureText("hello", &layout.TextConfig{FontSize: 20}, nil)
	if base.Width <= 0 || base.Height <= 0 {
		t.Fatalf("got %v; want positive dimensions", base)
	}
	spaced := c.MeasureText("hello", &layout.TextConfig{FontSize: 20, LetterSpacing: 2}, nil)
	if got, want := spaced.Width, base.Width+10; got != want {
		t.Errorf("got spaced width %v; want %v", got, want)
	}
	unknown := c.MeasureText("hello", &layout.TextConfig{FontSize: 20, FontID: 7}, nil)
	if unknown != base {
		t.Errorf("unknown font id measured %v; want the first face %v", unknown, base)
	}
	if m := c.MeasureText("hello", &layout.TextConfig{FontSize: 20, FontID: 1}, nil); m == base {
		t.Error("font id did not select the mono face")
	}
	def := c.MeasureText("hello", &layout.TextConfig{}, nil)
	if sized := c.MeasureText("hello", &layout.TextConfig{FontSize: DefaultSize}, nil); def != sized {
		t.Errorf("zero size measured %v; want the default size %v", def, sized)
	}
}

func TestLayoutWithFaces(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollection([]giofont.FontFace{{Face: face}})
	arena, err := layout.NewArena(layout.MinMemorySize())
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := layout.Initialize(arena, layout.Dimensions{Width: 400, Height: 400}, layout.ErrorHandler{})
	if err != nil {
		t.Fatal(err)
	}
	ctx.SetMeasureTextFunction(c.MeasureText, nil)
	ctx.BeginLayout()
	ctx.Element(layout.Declaration{ID: layout.ID("text")}, func() {
		ctx.Text("The quick brown fox", layout.TextConfig{FontSize: 16})
	})
	ctx.EndLayout()
	want := c.MeasureText("The quick brown fox", &layout.TextConfig{FontSize: 16}, nil)
	box := ctx.GetElementData(layout.ID("text")).BoundingBox
	if box.Height != want.Height {
		t.Errorf("got height %v; want %v", box.Height, want.Height)
	}
	if d := box.Width - want.Width; d > 2 || d < -2 {
		t.Errorf("got width %v; want about %v", box.Width, want.Width)
	}
}
