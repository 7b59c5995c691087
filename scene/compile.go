// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gioui.org/strata/f32"
	"gioui.org/strata/layout"
	"gioui.org/strata/unit"
)

func compileElements(m unit.Metric, elems []Element, path string) ([]node, error) {
	nodes := make([]node, 0, len(elems))
	for i := range elems {
		p := fmt.Sprintf("%s[%d]", path, i)
		n, err := compileElement(m, &elems[i], p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func compileElement(m unit.Metric, e *Element, path string) (node, error) {
	if e.Text != "" {
		cfg, err := textConfig(m, e.Font)
		if err != nil {
			return node{}, fmt.Errorf("%s: %w", path, err)
		}
		return node{isText: true, text: e.Text, textCfg: cfg}, nil
	}
	if e.Font != nil {
		return node{}, fmt.Errorf("%s: font without text", path)
	}
	d, err := declaration(m, e)
	if err != nil {
		return node{}, fmt.Errorf("%s: %w", path, err)
	}
	children, err := compileElements(m, e.Children, path+".children")
	if err != nil {
		return node{}, err
	}
	return node{decl: d, children: children}, nil
}

func declaration(m unit.Metric, e *Element) (layout.Declaration, error) {
	var d layout.Declaration
	if e.ID != "" {
		d.ID = layout.ID(e.ID)
	}
	var err error
	switch e.Direction {
	case "", "ltr":
		d.Layout.Direction = layout.LeftToRight
	case "ttb":
		d.Layout.Direction = layout.TopToBottom
	default:
		return d, fmt.Errorf("direction: unknown value %q", e.Direction)
	}
	if d.Layout.Sizing.Width, err = sizing(m, e.Width); err != nil {
		return d, fmt.Errorf("width: %w", err)
	}
	if d.Layout.Sizing.Height, err = sizing(m, e.Height); err != nil {
		return d, fmt.Errorf("height: %w", err)
	}
	if d.Layout.Padding, err = padding(m, e.Padding); err != nil {
		return d, fmt.Errorf("padding: %w", err)
	}
	if d.Layout.ChildGap, err = length(m, e.Gap); err != nil {
		return d, fmt.Errorf("gap: %w", err)
	}
	if d.Layout.ChildAlignment, err = alignment(e.Align); err != nil {
		return d, fmt.Errorf("align: %w", err)
	}
	if e.Background != "" {
		if d.BackgroundColor, err = parseColor(e.Background); err != nil {
			return d, fmt.Errorf("background: %w", err)
		}
	}
	if e.Radius < 0 {
		return d, fmt.Errorf("radius: negative value %v", e.Radius)
	}
	d.CornerRadius = layout.Radius(m.Dp(unit.Dp(e.Radius)))
	if e.Aspect < 0 {
		return d, fmt.Errorf("aspect: negative value %v", e.Aspect)
	}
	d.AspectRatio = e.Aspect
	if e.Image != "" {
		d.Image.ImageData = e.Image
	}
	if e.Custom != "" {
		d.Custom.CustomData = e.Custom
	}
	if e.Clip != nil {
		off, err := point(m, e.Clip.ChildOffset)
		if err != nil {
			return d, fmt.Errorf("clip.child_offset: %w", err)
		}
		d.Clip = layout.ClipConfig{Horizontal: e.Clip.Horizontal, Vertical: e.Clip.Vertical, ChildOffset: off}
	}
	if e.Border != nil {
		if d.Border, err = border(m, e.Border); err != nil {
			return d, fmt.Errorf("border: %w", err)
		}
	}
	if e.Floating != nil {
		if d.Floating, err = floating(m, e.Floating); err != nil {
			return d, fmt.Errorf("floating: %w", err)
		}
	}
	return d, nil
}

// sizing parses a sizing expression such as "grow(10,200)".
func sizing(m unit.Metric, s string) (layout.SizingAxis, error) {
	name, args, err := call(s)
	if err != nil {
		return layout.SizingAxis{}, err
	}
	switch name {
	case "", "fit", "grow":
		if len(args) > 2 {
			return layout.SizingAxis{}, fmt.Errorf("%s takes at most 2 arguments, got %d", name, len(args))
		}
		minmax := make([]float32, len(args))
		for i, a := range args {
			if a < 0 {
				return layout.SizingAxis{}, fmt.Errorf("%s: negative size %v", name, a)
			}
			minmax[i] = m.Dp(unit.Dp(a))
		}
		if len(minmax) == 2 && minmax[1] < minmax[0] {
			return layout.SizingAxis{}, fmt.Errorf("%s: max %v is less than min %v", name, args[1], args[0])
		}
		if name == "grow" {
			return layout.Grow(minmax...), nil
		}
		return layout.Fit(minmax...), nil
	case "percent":
		if len(args) != 1 {
			return layout.SizingAxis{}, fmt.Errorf("percent takes 1 argument, got %d", len(args))
		}
		if args[0] < 0 || args[0] > 1 {
			return layout.SizingAxis{}, fmt.Errorf("percent: %v is outside [0, 1]", args[0])
		}
		return layout.Percent(args[0]), nil
	case "fixed":
		if len(args) != 1 {
			return layout.SizingAxis{}, fmt.Errorf("fixed takes 1 argument, got %d", len(args))
		}
		if args[0] < 0 {
			return layout.SizingAxis{}, fmt.Errorf("fixed: negative size %v", args[0])
		}
		return layout.Fixed(m.Dp(unit.Dp(args[0]))), nil
	default:
		return layout.SizingAxis{}, fmt.Errorf("unknown sizing %q", name)
	}
}

// call splits "name(a,b)" into its name and numeric arguments.
func call(s string) (string, []float32, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("missing ) in %q", s)
	}
	name := strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return name, nil, nil
	}
	var args []float32
	for _, f := range strings.Split(inner, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return "", nil, fmt.Errorf("invalid number in %q", s)
		}
		args = append(args, float32(v))
	}
	return name, args, nil
}

// length converts a non-negative dp length to whole pixels.
func length(m unit.Metric, v float32) (uint16, error) {
	if v < 0 {
		return 0, fmt.Errorf("negative length %v", v)
	}
	px := m.DpRound(unit.Dp(v))
	if px > math.MaxUint16 {
		return 0, fmt.Errorf("length %v out of range", v)
	}
	return uint16(px), nil
}

func lengths(m unit.Metric, vs []float32) ([]uint16, error) {
	out := make([]uint16, len(vs))
	for i, v := range vs {
		px, err := length(m, v)
		if err != nil {
			return nil, err
		}
		out[i] = px
	}
	return out, nil
}

func padding(m unit.Metric, vs []float32) (layout.Padding, error) {
	px, err := lengths(m, vs)
	if err != nil {
		return layout.Padding{}, err
	}
	switch len(px) {
	case 0:
		return layout.Padding{}, nil
	case 1:
		return layout.PaddingAll(px[0]), nil
	case 4:
		return layout.Padding{Left: px[0], Right: px[1], Top: px[2], Bottom: px[3]}, nil
	default:
		return layout.Padding{}, fmt.Errorf("want 1 or 4 values, got %d", len(px))
	}
}

func border(m unit.Metric, b *Border) (layout.BorderConfig, error) {
	var cfg layout.BorderConfig
	if b.Color != "" {
		c, err := parseColor(b.Color)
		if err != nil {
			return cfg, fmt.Errorf("color: %w", err)
		}
		cfg.Color = c
	}
	px, err := lengths(m, b.Width)
	if err != nil {
		return cfg, fmt.Errorf("width: %w", err)
	}
	switch len(px) {
	case 0:
	case 1:
		cfg.Width = layout.BorderOutside(px[0])
	case 4, 5:
		cfg.Width = layout.BorderWidth{Left: px[0], Right: px[1], Top: px[2], Bottom: px[3]}
		if len(px) == 5 {
			cfg.Width.BetweenChildren = px[4]
		}
	default:
		return cfg, fmt.Errorf("width: want 1, 4 or 5 values, got %d", len(px))
	}
	return cfg, nil
}

func alignment(vs []string) (layout.ChildAlignment, error) {
	var a layout.ChildAlignment
	if len(vs) > 2 {
		return a, fmt.Errorf("want at most 2 values, got %d", len(vs))
	}
	if len(vs) > 0 {
		switch vs[0] {
		case "", "left":
			a.X = layout.AlignXLeft
		case "center":
			a.X = layout.AlignXCenter
		case "right":
			a.X = layout.AlignXRight
		default:
			return a, fmt.Errorf("unknown horizontal alignment %q", vs[0])
		}
	}
	if len(vs) > 1 {
		switch vs[1] {
		case "", "top":
			a.Y = layout.AlignYTop
		case "center":
			a.Y = layout.AlignYCenter
		case "bottom":
			a.Y = layout.AlignYBottom
		default:
			return a, fmt.Errorf("unknown vertical alignment %q", vs[1])
		}
	}
	return a, nil
}

func point(m unit.Metric, vs []float32) (f32.Point, error) {
	switch len(vs) {
	case 0:
		return f32.Point{}, nil
	case 2:
		return f32.Pt(m.Dp(unit.Dp(vs[0])), m.Dp(unit.Dp(vs[1]))), nil
	default:
		return f32.Point{}, fmt.Errorf("want 2 values, got %d", len(vs))
	}
}

var attachPoints = map[string]layout.AttachPoint{
	"left-top":      layout.AttachLeftTop,
	"left-center":   layout.AttachLeftCenter,
	"left-bottom":   layout.AttachLeftBottom,
	"center-top":    layout.AttachCenterTop,
	"center-center": layout.AttachCenterCenter,
	"center-bottom": layout.AttachCenterBottom,
	"right-top":     layout.AttachRightTop,
	"right-center":  layout.AttachRightCenter,
	"right-bottom":  layout.AttachRightBottom,
}

func attachPoint(s string) (layout.AttachPoint, error) {
	if s == "" {
		return layout.AttachLeftTop, nil
	}
	p, ok := attachPoints[s]
	if !ok {
		return 0, fmt.Errorf("unknown attach point %q", s)
	}
	return p, nil
}

func floating(m unit.Metric, f *Floating) (layout.FloatingConfig, error) {
	var cfg layout.FloatingConfig
	switch f.AttachTo {
	case "", "parent":
		cfg.AttachTo = layout.AttachToParent
	case "id":
		if f.ParentID == "" {
			return cfg, errors.New(`attach_to = "id" requires parent_id`)
		}
		cfg.AttachTo = layout.AttachToElementWithID
		cfg.ParentID = layout.ID(f.ParentID).ID
	case "root":
		cfg.AttachTo = layout.AttachToRoot
	default:
		return cfg, fmt.Errorf("attach_to: unknown value %q", f.AttachTo)
	}
	if f.ParentID != "" && cfg.AttachTo != layout.AttachToElementWithID {
		return cfg, fmt.Errorf(`parent_id requires attach_to = "id"`)
	}
	var err error
	if cfg.AttachPoints.Element, err = attachPoint(f.Element); err != nil {
		return cfg, fmt.Errorf("element: %w", err)
	}
	if cfg.AttachPoints.Parent, err = attachPoint(f.Parent); err != nil {
		return cfg, fmt.Errorf("parent: %w", err)
	}
	if cfg.Offset, err = point(m, f.Offset); err != nil {
		return cfg, fmt.Errorf("offset: %w", err)
	}
	expand, err := point(m, f.Expand)
	if err != nil {
		return cfg, fmt.Errorf("expand: %w", err)
	}
	cfg.Expand = layout.Dimensions{Width: expand.X, Height: expand.Y}
	cfg.ZIndex = f.Z
	if f.Capture != nil && !*f.Capture {
		cfg.PointerCaptureMode = layout.PointerCapturePassthrough
	}
	switch f.ClipTo {
	case "", "parent":
		cfg.ClipTo = layout.ClipToAttachedParent
	case "none":
		cfg.ClipTo = layout.ClipToNone
	default:
		return cfg, fmt.Errorf("clip_to: unknown value %q", f.ClipTo)
	}
	return cfg, nil
}

func textConfig(m unit.Metric, f *Font) (layout.TextConfig, error) {
	cfg := layout.TextConfig{Color: layout.Color{A: 255}}
	if f == nil {
		return cfg, nil
	}
	cfg.FontID = f.ID
	var err error
	if cfg.FontSize, err = fontLength(m, f.Size); err != nil {
		return cfg, fmt.Errorf("font.size: %w", err)
	}
	if cfg.LineHeight, err = fontLength(m, f.LineHeight); err != nil {
		return cfg, fmt.Errorf("font.line_height: %w", err)
	}
	if cfg.LetterSpacing, err = fontLength(m, f.Spacing); err != nil {
		return cfg, fmt.Errorf("font.spacing: %w", err)
	}
	switch f.Wrap {
	case "", "words":
		cfg.WrapMode = layout.WrapWords
	case "newlines":
		cfg.WrapMode = layout.WrapNewlines
	case "none":
		cfg.WrapMode = layout.WrapNone
	default:
		return cfg, fmt.Errorf("font.wrap: unknown value %q", f.Wrap)
	}
	switch f.Align {
	case "", "left":
		cfg.Alignment = layout.TextAlignLeft
	case "center":
		cfg.Alignment = layout.TextAlignCenter
	case "right":
		cfg.Alignment = layout.TextAlignRight
	default:
		return cfg, fmt.Errorf("font.align: unknown value %q", f.Align)
	}
	if f.Color != "" {
		if cfg.Color, err = parseColor(f.Color); err != nil {
			return cfg, fmt.Errorf("font.color: %w", err)
		}
	}
	return cfg, nil
}

// fontLength converts a non-negative sp length to whole pixels.
func fontLength(m unit.Metric, v float32) (uint16, error) {
	if v < 0 {
		return 0, fmt.Errorf("negative size %v", v)
	}
	px := m.SpRound(unit.Sp(v))
	if px > math.MaxUint16 {
		return 0, fmt.Errorf("size %v out of range", v)
	}
	return uint16(px), nil
}

// parseColor parses "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (layout.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return layout.Color{}, fmt.Errorf("invalid color %q, want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return layout.Color{
		R: float32(v >> 24 & 0xff),
		G: float32(v >> 16 & 0xff),
		B: float32(v >> 8 & 0xff),
		A: float32(v & 0xff),
	}, nil
}
