// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as an opentype.Collection.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"gioui.org/strata/font"
	"gioui.org/strata/font/opentype"
)

// Font ids of the faces in Collection, for layout.TextConfig.FontID.
const (
	Regular uint16 = iota
	Bold
	Italic
	BoldItalic
	Medium
	Mono
	MonoBold
	Smallcaps
)

var (
	once       sync.Once
	collection []font.FontFace
	measurer   *opentype.Collection
)

func load() {
	once.Do(func() {
		register(font.Font{}, goregular.TTF)
		register(font.Font{Weight: font.Bold}, gobold.TTF)
		register(font.Font{Style: font.Italic}, goitalic.TTF)
		register(font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF)
		register(font.Font{Weight: font.Medium}, gomedium.TTF)
		register(font.Font{Variant: "Mono"}, gomono.TTF)
		register(font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF)
		register(font.Font{Variant: "Smallcaps"}, gosmallcaps.TTF)
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
		measurer = opentype.NewCollection(collection)
	})
}

// Collection returns the Go font faces, indexed by the font ids above.
func Collection() []font.FontFace {
	load()
	return collection
}

// Measurer returns a shared measurer over Collection.
func Measurer() *opentype.Collection {
	load()
	return measurer
}

func register(fnt font.Font, ttf []byte) {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	fnt.Typeface = "Go"
	collection = append(collection, font.FontFace{Font: fnt, Face: face})
}
