// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"gioui.org/strata/layout"
)

func ExampleContext_EndLayout() {
	arena, err := layout.NewArena(layout.MinMemorySize())
	if err != nil {
		panic(err)
	}
	c, err := layout.Initialize(arena, layout.Dimensions{Width: 800, Height: 100}, layout.ErrorHandler{})
	if err != nil {
		panic(err)
	}
	c.BeginLayout()
	c.Element(layout.Declaration{
		Layout: layout.LayoutConfig{
			Sizing:   layout.Sizing{Width: layout.Grow(), Height: layout.Grow()},
			Padding:  layout.PaddingAll(10),
			ChildGap: 20,
		},
	}, func() {
		for i := uint32(0); i < 2; i++ {
			c.Element(layout.Declaration{
				ID:              layout.IDI("column", i),
				Layout:          layout.LayoutConfig{Sizing: layout.Sizing{Width: layout.Grow(), Height: layout.Grow()}},
				BackgroundColor: layout.Color{R: 255, A: 255},
			}, nil)
		}
	})
	for _, cmd := range c.EndLayout() {
		fmt.Println(cmd.CommandType, cmd.BoundingBox)
	}

	// Output:
	// Rectangle {10 10 380 80}
	// Rectangle {410 10 380 80}
}

func ExampleContext_Text() {
	arena, err := layout.NewArena(layout.MinMemorySize())
	if err != nil {
		panic(err)
	}
	c, err := layout.Initialize(arena, layout.Dimensions{Width: 800, Height: 600}, layout.ErrorHandler{})
	if err != nil {
		panic(err)
	}
	// Every character is 10 pixels wide and 20 pixels high.
	c.SetMeasureTextFunction(func(text string, config *layout.TextConfig, userData any) layout.Dimensions {
		return layout.Dimensions{Width: float32(10 * len(text)), Height: 20}
	}, nil)
	c.BeginLayout()
	c.Element(layout.Declaration{
		Layout: layout.LayoutConfig{Sizing: layout.Sizing{Width: layout.Fixed(70)}},
	}, func() {
		c.Text("wrapped into four lines", layout.TextConfig{FontSize: 16})
	})
	for _, cmd := range c.EndLayout() {
		fmt.Printf("%q at y=%v\n", cmd.RenderData.Text.Contents, cmd.BoundingBox.Y)
	}

	// Output:
	// "wrapped" at y=0
	// "into" at y=20
	// "four" at y=40
	// "lines" at y=60
}
