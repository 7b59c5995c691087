// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"unicode/utf8"

	"golang.org/x/image/math/fixed"

	giofont "gioui.org/strata/font"
	"gioui.org/strata/layout"
)

// DefaultSize is the font size, in pixels, of text configured without
// one.
const DefaultSize = 16

// Collection measures text for a layout.Context. The FontID of a
// layout.TextConfig indexes its faces; unknown ids use the first face.
type Collection struct {
	faces []giofont.FontFace
}

// NewCollection returns a collection of faces. It panics if faces is
// empty.
func NewCollection(faces []giofont.FontFace) *Collection {
	if len(faces) == 0 {
		panic("opentype: empty collection")
	}
	return &Collection{faces: faces}
}

// Faces returns the faces of c, indexed by font id.
func (c *Collection) Faces() []giofont.FontFace {
	return c.faces
}

// Lookup returns the id of the first face matching fnt, or false.
func (c *Collection) Lookup(fnt giofont.Font) (uint16, bool) {
	for i, f := range c.faces {
		if f.Font == fnt {
			return uint16(i), true
		}
	}
	return 0, false
}

// MeasureText implements layout.MeasureTextFunc. Letter spacing is
// added after every rune.
func (c *Collection) MeasureText(text string, config *layout.TextConfig, userData any) layout.Dimensions {
	face := c.faces[0].Face
	if int(config.FontID) < len(c.faces) {
		face = c.faces[config.FontID].Face
	}
	size := config.FontSize
	if size == 0 {
		size = DefaultSize
	}
	ppem := fixed.I(int(size))
	adv := face.Advance(ppem, text)
	m := face.Metrics(ppem)
	w := fixedToFloat(adv) + float32(config.LetterSpacing)*float32(utf8.RuneCountInString(text))
	return layout.Dimensions{
		Width:  w,
		Height: fixedToFloat(m.Ascent + m.Descent),
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
