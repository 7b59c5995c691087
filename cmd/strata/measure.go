// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gioui.org/strata/font/gofont"
	"gioui.org/strata/layout"
	"gioui.org/strata/unit"
)

// measureSpace is the layout size used when measuring unwrapped text.
const measureSpace = 1 << 20

var fontIDs = map[string]uint16{
	"regular":    gofont.Regular,
	"bold":       gofont.Bold,
	"italic":     gofont.Italic,
	"bolditalic": gofont.BoldItalic,
	"medium":     gofont.Medium,
	"mono":       gofont.Mono,
	"monobold":   gofont.MonoBold,
	"smallcaps":  gofont.Smallcaps,
}

type measureOptions struct {
	size     float32
	font     string
	maxWidth float32
	spacing  float32
}

func newMeasureCmd(a *app) *cobra.Command {
	var opts measureOptions
	cmd := &cobra.Command{
		Use:   "measure TEXT",
		Short: "Measure text set in the Go fonts",
		Long: `Measure lays out TEXT with the Go fonts and prints its size in pixels
and its number of lines. Text breaks at newlines and, with --max-width,
between words.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.measure(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.Float32VarP(&opts.size, "size", "s", 16, "font size in sp")
	f.StringVar(&opts.font, "font", "regular", "font face (regular, bold, italic, mono, ...)")
	f.Float32Var(&opts.maxWidth, "max-width", 0, "wrap words to this width in dp; 0 disables wrapping")
	f.Float32Var(&opts.spacing, "spacing", 0, "letter spacing in sp")
	return cmd
}

func (a *app) measure(cmd *cobra.Command, text string, opts measureOptions) error {
	id, ok := fontIDs[opts.font]
	if !ok {
		return fmt.Errorf("measure: unknown font %q", opts.font)
	}
	if opts.size <= 0 || opts.maxWidth < 0 || opts.spacing < 0 {
		return fmt.Errorf("measure: sizes must not be negative and --size must be positive")
	}
	m := a.metric()
	space := layout.Dimensions{Width: measureSpace, Height: measureSpace}
	cfg := layout.TextConfig{
		FontID:        id,
		FontSize:      uint16(m.SpRound(unit.Sp(opts.size))),
		LetterSpacing: uint16(m.SpRound(unit.Sp(opts.spacing))),
		WrapMode:      layout.WrapNewlines,
	}
	var maxWidth float32
	if opts.maxWidth > 0 {
		maxWidth = m.Dp(unit.Dp(opts.maxWidth))
		cfg.WrapMode = layout.WrapWords
	}

	arena, err := layout.NewArena(layout.MinMemorySize())
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	var lerr error
	c, err := layout.Initialize(arena, space, layout.ErrorHandler{
		Func: func(e layout.Error) {
			if lerr == nil {
				lerr = &e
			}
		},
	})
	if err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	c.SetMeasureTextFunction(gofont.Measurer().MeasureText, nil)

	box := layout.ID("strata.Measure")
	c.BeginLayout()
	c.Element(layout.Declaration{
		ID: box,
		Layout: layout.LayoutConfig{
			Sizing:    layout.Sizing{Width: layout.Fit(0, maxWidth)},
			Direction: layout.TopToBottom,
		},
	}, func() {
		c.Text(text, cfg)
	})
	cmds := c.EndLayout()
	if lerr != nil {
		return fmt.Errorf("measure: %w", lerr)
	}
	lines := 0
	for _, rc := range cmds {
		if rc.CommandType == layout.RenderCommandText {
			lines++
		}
	}
	bounds := c.GetElementData(box).BoundingBox
	fmt.Fprintf(cmd.OutOrStdout(), "width: %g\nheight: %g\nlines: %d\n", bounds.Width, bounds.Height, lines)
	return nil
}
