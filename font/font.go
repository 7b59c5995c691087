// SPDX-License-Identifier: Unlicense OR MIT

// Package font describes font faces and the measurement interface
// shared by the font packages.
package font

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face measures single lines of text. Implementations must be safe
// for concurrent use.
type Face interface {
	// Advance returns the width of s at ppem pixels per em, kerning
	// included.
	Advance(ppem fixed.Int26_6, s string) fixed.Int26_6
	// Metrics returns the vertical metrics at ppem pixels per em.
	Metrics(ppem fixed.Int26_6) font.Metrics
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)
