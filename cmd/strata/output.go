// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"gioui.org/strata/layout"
)

// writeText writes one line per render command.
func writeText(w io.Writer, f *frame) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range f.Commands {
		fmt.Fprintf(bw, "%s %v id=%08x z=%d", cmd.CommandType, cmd.BoundingBox, cmd.ID, cmd.ZIndex)
		d := &cmd.RenderData
		switch cmd.CommandType {
		case layout.RenderCommandRectangle:
			fmt.Fprintf(bw, " color=%s", formatColor(d.Rectangle.BackgroundColor))
		case layout.RenderCommandBorder:
			bd := d.Border.Width
			fmt.Fprintf(bw, " color=%s width=%d,%d,%d,%d,%d", formatColor(d.Border.Color),
				bd.Left, bd.Right, bd.Top, bd.Bottom, bd.BetweenChildren)
		case layout.RenderCommandText:
			fmt.Fprintf(bw, " %q font=%d size=%d color=%s", d.Text.Contents, d.Text.FontID, d.Text.FontSize, formatColor(d.Text.Color))
		case layout.RenderCommandImage:
			fmt.Fprintf(bw, " image=%v", d.Image.ImageData)
		case layout.RenderCommandCustom:
			fmt.Fprintf(bw, " custom=%v", d.Custom.CustomData)
		case layout.RenderCommandScissorStart:
			fmt.Fprintf(bw, " horizontal=%t vertical=%t", d.Clip.Horizontal, d.Clip.Vertical)
		}
		fmt.Fprintln(bw)
	}
	for _, id := range f.PointerOver {
		fmt.Fprintf(bw, "pointer over %s\n", idLabel(id))
	}
	for _, e := range f.Errors {
		fmt.Fprintf(bw, "error %s: %s\n", e.Kind, e.Message)
	}
	return bw.Flush()
}

func formatColor(c layout.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(c.R), uint8(c.G), uint8(c.B), uint8(c.A))
}

func idLabel(id layout.ElementID) string {
	if id.StringID == "" {
		return fmt.Sprintf("%08x", id.ID)
	}
	if id.Offset != 0 {
		return fmt.Sprintf("%s[%d]", id.StringID, id.Offset)
	}
	return id.StringID
}

type jsonFrame struct {
	Width       float32       `json:"width"`
	Height      float32       `json:"height"`
	Commands    []jsonCommand `json:"commands"`
	PointerOver []string      `json:"pointer_over,omitempty"`
	Errors      []jsonError   `json:"errors,omitempty"`
}

type jsonBox struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type jsonCommand struct {
	Type   string    `json:"type"`
	ID     uint32    `json:"id"`
	Z      int16     `json:"z"`
	Box    jsonBox   `json:"box"`
	Color  string    `json:"color,omitempty"`
	Radius float32   `json:"radius,omitempty"`
	Border []uint16  `json:"border,omitempty"`
	Text   *jsonText `json:"text,omitempty"`
	Clip   []bool    `json:"clip,omitempty"`
	Data   any       `json:"data,omitempty"`
}

type jsonText struct {
	Contents string `json:"contents"`
	FontID   uint16 `json:"font_id"`
	FontSize uint16 `json:"font_size"`
}

type jsonError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeJSON writes the frame as an indented JSON document.
func writeJSON(w io.Writer, f *frame) error {
	out := jsonFrame{
		Width:    f.Dimensions.Width,
		Height:   f.Dimensions.Height,
		Commands: make([]jsonCommand, 0, len(f.Commands)),
	}
	for _, cmd := range f.Commands {
		b := cmd.BoundingBox
		jc := jsonCommand{
			Type: cmd.CommandType.String(),
			ID:   cmd.ID,
			Z:    cmd.ZIndex,
			Box:  jsonBox{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
		}
		d := &cmd.RenderData
		switch cmd.CommandType {
		case layout.RenderCommandRectangle:
			jc.Color = formatColor(d.Rectangle.BackgroundColor)
			jc.Radius = d.Rectangle.CornerRadius.TopLeft
		case layout.RenderCommandBorder:
			bw := d.Border.Width
			jc.Color = formatColor(d.Border.Color)
			jc.Radius = d.Border.CornerRadius.TopLeft
			jc.Border = []uint16{bw.Left, bw.Right, bw.Top, bw.Bottom, bw.BetweenChildren}
		case layout.RenderCommandText:
			jc.Color = formatColor(d.Text.Color)
			jc.Text = &jsonText{Contents: d.Text.Contents, FontID: d.Text.FontID, FontSize: d.Text.FontSize}
		case layout.RenderCommandImage:
			jc.Data = d.Image.ImageData
		case layout.RenderCommandCustom:
			jc.Data = d.Custom.CustomData
		case layout.RenderCommandScissorStart:
			jc.Clip = []bool{d.Clip.Horizontal, d.Clip.Vertical}
		}
		out.Commands = append(out.Commands, jc)
	}
	for _, id := range f.PointerOver {
		out.PointerOver = append(out.PointerOver, idLabel(id))
	}
	for _, e := range f.Errors {
		out.Errors = append(out.Errors, jsonError{Kind: e.Kind.String(), Message: e.Message})
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
