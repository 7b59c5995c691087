// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements an immediate mode layout engine.

Every frame the program declares its user interface as a tree of
elements and receives a list of render commands with the final
position and size of everything to draw. The engine draws nothing
itself and keeps no scene between frames other than scroll state,
the ids of the previous frame and a text measurement cache.

Declarations

A frame is bracketed by BeginLayout and EndLayout:

	c.BeginLayout()
	c.Element(layout.Declaration{
		ID: layout.ID("sidebar"),
		Layout: layout.LayoutConfig{
			Sizing:    layout.Sizing{Width: layout.Fixed(300), Height: layout.Grow()},
			Padding:   layout.PaddingAll(16),
			ChildGap:  8,
			Direction: layout.TopToBottom,
		},
		BackgroundColor: layout.Color{R: 224, G: 215, B: 210, A: 255},
	}, func() {
		c.Text("Hello", layout.TextConfig{FontSize: 24})
	})
	cmds := c.EndLayout()

Sizing

Each axis of an element is sized Fit, Grow, Percent or Fixed. Fit
elements wrap their content, Grow elements share the space their
siblings leave, Percent elements take a fraction of their parent
and Fixed elements have a given size. Widths are solved first, then
text is wrapped to the widths, then heights are solved.

Memory

All storage is carved from an Arena when the Context is initialized.
Declaring more elements than the configured maximum is reported
through the ErrorHandler and the frame renders a single error
message instead.

*/
package layout
