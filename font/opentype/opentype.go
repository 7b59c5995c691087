// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype measures text with OpenType and TrueType fonts.
package opentype

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	giofont "gioui.org/strata/font"
)

// Face is a parsed font. It is safe for concurrent use.
type Face struct {
	font    *sfnt.Font
	hinting font.Hinting

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return &Face{font: f, hinting: font.HintingNone}, nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice
// with length 1. The font metadata is read from the name table.
func ParseCollection(src []byte) ([]giofont.FontFace, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, err
	}
	out := make([]giofont.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		face := &Face{font: f, hinting: font.HintingNone}
		out[i] = giofont.FontFace{Font: face.Font(), Face: face}
	}
	return out, nil
}

// Advance implements font.Face. Runes missing from the font measure as
// the notdef glyph.
func (f *Face) Advance(ppem fixed.Int26_6, s string) fixed.Int26_6 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var adv fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	for i, r := range s {
		g, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			g = 0
		}
		if i > 0 {
			if k, err := f.font.Kern(&f.buf, prev, g, ppem, f.hinting); err == nil {
				adv += k
			}
		}
		if a, err := f.font.GlyphAdvance(&f.buf, g, ppem, f.hinting); err == nil {
			adv += a
		}
		prev = g
	}
	return adv
}

// Metrics implements font.Face.
func (f *Face) Metrics(ppem fixed.Int26_6) font.Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, _ := f.font.Metrics(&f.buf, ppem, f.hinting)
	return m
}

// Font returns the font description read from the name table.
// BUG: the variant, style and weight are guessed from words in the
// family and subfamily names rather than read from the OS/2 table.
// Only the Mono and Smallcaps variants are recognized.
func (f *Face) Font() giofont.Font {
	f.mu.Lock()
	defer f.mu.Unlock()
	family, _ := f.font.Name(&f.buf, sfnt.NameIDFamily)
	sub, _ := f.font.Name(&f.buf, sfnt.NameIDSubfamily)
	fnt := giofont.Font{Typeface: giofont.Typeface(family)}
	lower := strings.ToLower(family + " " + sub)
	switch {
	case strings.Contains(lower, "mono"):
		fnt.Variant = "Mono"
	case strings.Contains(lower, "smallcaps"):
		fnt.Variant = "Smallcaps"
	}
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		fnt.Style = giofont.Italic
	}
	fnt.Weight = weight(lower)
	return fnt
}

func weight(name string) giofont.Weight {
	switch {
	case strings.Contains(name, "extralight"), strings.Contains(name, "extra light"):
		return giofont.ExtraLight
	case strings.Contains(name, "extrabold"), strings.Contains(name, "extra bold"):
		return giofont.ExtraBold
	case strings.Contains(name, "semibold"), strings.Contains(name, "semi bold"):
		return giofont.SemiBold
	case strings.Contains(name, "thin"):
		return giofont.Thin
	case strings.Contains(name, "light"):
		return giofont.Light
	case strings.Contains(name, "medium"):
		return giofont.Medium
	case strings.Contains(name, "black"):
		return giofont.Black
	case strings.Contains(name, "bold"):
		return giofont.Bold
	default:
		return giofont.Normal
	}
}
