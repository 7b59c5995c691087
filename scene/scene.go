// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene declares layouts described by TOML documents.

A document lists the top level elements of a frame:

	width = 800
	height = 600

	[[element]]
	id = "row"
	width = "grow"
	padding = [16]
	gap = 8
	background = "#e0d7d2ff"

	  [[element.children]]
	  text = "Hello"
	  font = { size = 24 }

Lengths are in dp and font sizes in sp.
*/
package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"gioui.org/strata/layout"
	"gioui.org/strata/unit"
)

// Document is a parsed scene.
type Document struct {
	// Width and Height are the suggested layout size in dp, or zero.
	Width    float32   `toml:"width"`
	Height   float32   `toml:"height"`
	Elements []Element `toml:"element"`

	// compiled caches the declarations for metric.
	compiled []node
	metric   unit.Metric
}

// Element is an element of a document.
type Element struct {
	ID string `toml:"id"`
	// Direction is "ltr" or "ttb".
	Direction string `toml:"direction"`
	// Width and Height are sizings such as "fit", "grow(10,200)",
	// "percent(0.5)" or "fixed(40)".
	Width  string `toml:"width"`
	Height string `toml:"height"`
	// Padding has one value for every side or four for the left,
	// right, top and bottom sides.
	Padding []float32 `toml:"padding"`
	Gap     float32   `toml:"gap"`
	// Align is the horizontal and vertical alignment of the children.
	Align      []string  `toml:"align"`
	Background string    `toml:"background"`
	Radius     float32   `toml:"radius"`
	Aspect     float32   `toml:"aspect"`
	Image      string    `toml:"image"`
	Custom     string    `toml:"custom"`
	Clip       *Clip     `toml:"clip"`
	Border     *Border   `toml:"border"`
	Floating   *Floating `toml:"floating"`
	Text       string    `toml:"text"`
	Font       *Font     `toml:"font"`
	Children   []Element `toml:"children"`
}

// Clip describes the clip and scroll behavior of an element.
type Clip struct {
	Horizontal  bool      `toml:"horizontal"`
	Vertical    bool      `toml:"vertical"`
	ChildOffset []float32 `toml:"child_offset"`
}

// Border describes the border of an element.
type Border struct {
	Color string `toml:"color"`
	// Width has one value for every side, four for the left, right,
	// top and bottom sides or five to add the width between children.
	Width []float32 `toml:"width"`
}

// Floating describes a floating element.
type Floating struct {
	// AttachTo is "parent", "id" or "root".
	AttachTo string `toml:"attach_to"`
	ParentID string `toml:"parent_id"`
	// Element and Parent are attach points such as "left-top" or
	// "center-center".
	Element string    `toml:"element"`
	Parent  string    `toml:"parent"`
	Offset  []float32 `toml:"offset"`
	Expand  []float32 `toml:"expand"`
	Z       int16     `toml:"z"`
	// Capture hides the elements below from pointer hit tests. It
	// defaults to true.
	Capture *bool `toml:"capture"`
	// ClipTo is "parent" or "none".
	ClipTo string `toml:"clip_to"`
}

// Font describes the text of a text leaf.
type Font struct {
	ID         uint16  `toml:"id"`
	Size       float32 `toml:"size"`
	LineHeight float32 `toml:"line_height"`
	Spacing    float32 `toml:"spacing"`
	// Wrap is "words", "newlines" or "none".
	Wrap string `toml:"wrap"`
	// Align is "left", "center" or "right".
	Align string `toml:"align"`
	Color string `toml:"color"`
}

// Parse decodes and validates a document. Unknown keys are errors.
func Parse(data []byte) (*Document, error) {
	d := new(Document)
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if d.Width < 0 || d.Height < 0 {
		return nil, fmt.Errorf("scene: negative dimensions %vx%v", d.Width, d.Height)
	}
	if err := d.compile(unit.Metric{}); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Dimensions returns the suggested layout size converted by m, or
// false if the document has none.
func (d *Document) Dimensions(m unit.Metric) (layout.Dimensions, bool) {
	if d.Width == 0 || d.Height == 0 {
		return layout.Dimensions{}, false
	}
	return layout.Dimensions{Width: m.Dp(unit.Dp(d.Width)), Height: m.Dp(unit.Dp(d.Height))}, true
}

// Declare declares the elements of d inside the open element of c,
// converting lengths with m. It must be called between BeginLayout and
// EndLayout.
func (d *Document) Declare(c *layout.Context, m unit.Metric) error {
	if d.compiled == nil || d.metric != m {
		if err := d.compile(m); err != nil {
			return err
		}
	}
	declare(c, d.compiled)
	return nil
}

func (d *Document) compile(m unit.Metric) error {
	nodes, err := compileElements(m, d.Elements, "element")
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	d.compiled, d.metric = nodes, m
	return nil
}

// node is an element compiled to declarations.
type node struct {
	decl     layout.Declaration
	text     string
	textCfg  layout.TextConfig
	isText   bool
	children []node
}

func declare(c *layout.Context, nodes []node) {
	for i := range nodes {
		n := &nodes[i]
		if n.isText {
			c.Text(n.text, n.textCfg)
			continue
		}
		c.Element(n.decl, func() {
			declare(c, n.children)
		})
	}
}
