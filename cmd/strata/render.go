// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gioui.org/strata/f32"
	"gioui.org/strata/font/gofont"
	"gioui.org/strata/internal/observability"
	"gioui.org/strata/layout"
	"gioui.org/strata/scene"
)

// frameTime is the time step between rendered frames, in seconds.
const frameTime = 1.0 / 60

type renderOptions struct {
	frames  int
	format  string
	pointer []float32
	scroll  []float32
	down    bool
	strict  bool
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Lay out a scene document and print its render commands",
		Long: `Render lays out the TOML scene document SCENE for a number of frames
and prints the render commands of the final frame.

The pointer and scroll deltas are applied before every frame, so
--frames 2 --pointer 10,10 --scroll 0,-1 scrolls the container under
the pointer by one wheel step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.frames, "frames", "n", 1, "number of frames to lay out")
	f.StringVarP(&opts.format, "format", "f", "text", "output format (text or json)")
	f.Float32SliceVar(&opts.pointer, "pointer", nil, "pointer position x,y in pixels")
	f.Float32SliceVar(&opts.scroll, "scroll", nil, "wheel delta dx,dy applied between frames")
	f.BoolVar(&opts.down, "down", false, "hold the pointer button down")
	f.BoolVar(&opts.strict, "strict", false, "fail if the final frame reports layout errors")
	return cmd
}

func (o *renderOptions) validate() error {
	if o.frames < 1 {
		return fmt.Errorf("render: --frames must be at least 1, got %d", o.frames)
	}
	switch o.format {
	case "text", "json":
	default:
		return fmt.Errorf("render: --format must be text or json, got %q", o.format)
	}
	if n := len(o.pointer); n != 0 && n != 2 {
		return fmt.Errorf("render: --pointer takes x,y, got %d values", n)
	}
	if n := len(o.scroll); n != 0 && n != 2 {
		return fmt.Errorf("render: --scroll takes dx,dy, got %d values", n)
	}
	return nil
}

// frame is the result of a render.
type frame struct {
	Dimensions  layout.Dimensions
	Commands    []layout.RenderCommand
	PointerOver []layout.ElementID
	Errors      []layout.Error
}

func (a *app) render(cmd *cobra.Command, path string, opts renderOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger := observability.GetLogger()
	l := a.cfg.Layout
	m := a.metric()

	dims := l.Dimensions()
	flags := cmd.Flags()
	if d, ok := doc.Dimensions(m); ok && !flags.Changed("width") && !flags.Changed("height") {
		dims = d
	}
	arena, err := layout.NewArena(l.MemorySize())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	var errs []layout.Error
	c, err := layout.Initialize(arena, dims, layout.ErrorHandler{
		Func: func(e layout.Error) { errs = append(errs, e) },
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	l.Apply(c)
	c.SetLayoutDimensions(dims)
	c.SetLogger(logger)
	c.SetMeasureTextFunction(gofont.Measurer().MeasureText, nil)

	var out frame
	out.Dimensions = dims
	for i := 0; i < opts.frames; i++ {
		errs = errs[:0]
		if len(opts.pointer) == 2 {
			c.SetPointerState(f32.Pt(opts.pointer[0], opts.pointer[1]), opts.down)
		}
		delta := f32.Point{}
		if i > 0 && len(opts.scroll) == 2 {
			delta = f32.Pt(opts.scroll[0], opts.scroll[1])
		}
		c.UpdateScrollContainers(opts.down, delta, frameTime)
		c.BeginLayout()
		if err := doc.Declare(c, m); err != nil {
			c.EndLayout()
			return err
		}
		out.Commands = c.EndLayout()
	}
	if len(opts.pointer) == 2 {
		// Hit test the final layout.
		c.SetPointerState(f32.Pt(opts.pointer[0], opts.pointer[1]), opts.down)
		out.PointerOver = c.GetPointerOverIDs()
	}
	out.Errors = errs
	logger.Info("rendered scene",
		zap.String("scene", path),
		zap.Int("frames", opts.frames),
		zap.Int("commands", len(out.Commands)),
		zap.Int("errors", len(errs)),
	)

	w := cmd.OutOrStdout()
	switch opts.format {
	case "json":
		err = writeJSON(w, &out)
	default:
		err = writeText(w, &out)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if opts.strict && len(errs) > 0 {
		return fmt.Errorf("render: %d layout errors in the final frame", len(errs))
	}
	return nil
}
