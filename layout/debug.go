// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strconv"

	"gioui.org/strata/internal/unsafe"
)

const (
	debugPanelWidth  = 400
	debugRowHeight   = 28
	debugIndentWidth = 16
	debugFontSize    = 16
	// debugZIndex draws the panel above every application layer.
	debugZIndex     = 32765
	debugLabelLimit = 24
)

var (
	debugBackground  = Color{R: 58, G: 56, B: 52, A: 255}
	debugHeader      = Color{R: 33, G: 33, B: 33, A: 255}
	debugText        = Color{R: 238, G: 226, B: 231, A: 255}
	debugTextDim     = Color{R: 168, G: 160, B: 160, A: 255}
	debugRowHover    = Color{R: 90, G: 88, B: 84, A: 255}
	debugRowSelected = Color{R: 102, G: 80, B: 78, A: 255}
	debugHighlight   = Color{R: 168, G: 66, B: 28, A: 100}
	debugCollision   = Color{R: 177, G: 147, B: 8, A: 255}
	debugSeparator   = Color{R: 0, G: 0, B: 0, A: 255}
)

// debugState is the overlay state kept across frames.
type debugState struct {
	// selectedID is the element shown in the detail section, or 0.
	selectedID uint32
}

// declareDebugView declares the debug panel at the right edge of the
// layout. It lists the element tree of the frame, highlights the
// element under the hovered row and details the selected element.
// Clicking a row selects its element and folds its children.
func (c *Context) declareDebugView() {
	roots := len(c.treeRoots)
	elements := len(c.elements)
	c.Element(Declaration{
		ID: ID("strata.Debug"),
		Layout: LayoutConfig{
			Sizing:    Sizing{Width: Fixed(debugPanelWidth), Height: Fixed(c.layoutDimensions.Height)},
			Direction: TopToBottom,
		},
		BackgroundColor: debugBackground,
		Floating: FloatingConfig{
			AttachTo:     AttachToRoot,
			AttachPoints: AttachPoints{Element: AttachLeftTop, Parent: AttachRightTop},
			ZIndex:       debugZIndex,
			ClipTo:       ClipToNone,
		},
		Border: BorderConfig{Color: debugSeparator, Width: BorderWidth{Left: 1}},
	}, func() {
		c.Element(Declaration{
			Layout: LayoutConfig{
				Sizing:         Sizing{Width: Grow(), Height: Fixed(debugRowHeight + 8)},
				Padding:        Padding{Left: 8, Right: 8},
				ChildAlignment: ChildAlignment{Y: AlignYCenter},
			},
			BackgroundColor: debugHeader,
		}, func() {
			c.Text("Strata Debug Tools", c.debugTextConfig(debugText, true))
		})
		c.Element(Declaration{
			ID: ID("strata.Debug.Tree"),
			Layout: LayoutConfig{
				Sizing:    Sizing{Width: Grow(), Height: Grow()},
				Direction: TopToBottom,
			},
			Clip: ClipConfig{Vertical: true},
		}, func() {
			for r := 0; r < roots; r++ {
				c.debugRows(c.treeRoots[r].elementIndex, 0, elements)
			}
		})
		c.debugDetails(elements)
	})
}

// debugRows declares the row of the element at index and, unless it
// is folded, the rows of its children.
func (c *Context) debugRows(index int32, depth int, elements int) {
	if int(index) >= elements {
		return
	}
	e := &c.elements[index]
	item := c.currentHashMapItem(e.id)
	if item == nil {
		return
	}
	rowID := HashStringWithOffset("strata.Debug.Row", e.id, 0)
	hovered := c.PointerOver(rowID)
	if hovered && c.pointer.State == PointerPressedThisFrame {
		item.debug.collapsed = !item.debug.collapsed
		c.debug.selectedID = e.id
	}
	background := Color{}
	switch {
	case c.debug.selectedID == e.id:
		background = debugRowSelected
	case hovered:
		background = debugRowHover
	}
	collapsed := item.debug.collapsed
	c.Element(Declaration{
		ID: rowID,
		Layout: LayoutConfig{
			Sizing:         Sizing{Width: Grow(), Height: Fixed(debugRowHeight)},
			Padding:        Padding{Left: uint16(8 + depth*debugIndentWidth), Right: 8},
			ChildGap:       6,
			ChildAlignment: ChildAlignment{Y: AlignYCenter},
		},
		BackgroundColor: background,
	}, func() {
		marker := " "
		if !e.isText() && len(e.children) > 0 {
			marker = "-"
			if collapsed {
				marker = "+"
			}
		}
		c.Text(marker, c.debugTextConfig(debugTextDim, true))
		color := debugText
		if item.debug.collision {
			color = debugCollision
		}
		c.Text(c.debugElementLabel(e), c.debugTextConfig(color, false))
		b := c.labelBuffer()
		b = appendFloat(b, item.boundingBox.Width)
		b = append(b, " x "...)
		b = appendFloat(b, item.boundingBox.Height)
		c.Text(c.label(b), c.debugTextConfig(debugTextDim, false))
		if hovered {
			c.Element(Declaration{
				Layout:          LayoutConfig{Sizing: Sizing{Width: Grow(), Height: Grow()}},
				BackgroundColor: debugHighlight,
				Floating: FloatingConfig{
					AttachTo: AttachToElementWithID,
					ParentID: e.id,
					ZIndex:   debugZIndex - 1,
					ClipTo:   ClipToNone,
					// The highlight must not steal the pointer from the
					// panel.
					PointerCaptureMode: PointerCapturePassthrough,
				},
			}, nil)
		}
	})
	if collapsed || e.isText() {
		return
	}
	for _, ci := range e.children {
		c.debugRows(ci, depth+1, elements)
	}
}

// debugDetails declares the detail section of the selected element.
func (c *Context) debugDetails(elements int) {
	item := c.currentHashMapItem(c.debug.selectedID)
	if item == nil || int(item.elementIndex) >= elements {
		return
	}
	e := &c.elements[item.elementIndex]
	c.Element(Declaration{
		Layout: LayoutConfig{
			Sizing:    Sizing{Width: Grow(), Height: Fit()},
			Padding:   PaddingAll(8),
			ChildGap:  4,
			Direction: TopToBottom,
		},
		BackgroundColor: debugHeader,
		Border:          BorderConfig{Color: debugSeparator, Width: BorderWidth{Top: 1}},
	}, func() {
		text := c.debugTextConfig(debugText, false)
		c.Text(c.debugElementLabel(e), text)

		box := item.boundingBox
		b := append(c.labelBuffer(), "Bounding Box: "...)
		b = appendFloat(b, box.X)
		b = append(b, ", "...)
		b = appendFloat(b, box.Y)
		b = append(b, ", "...)
		b = appendFloat(b, box.Width)
		b = append(b, " x "...)
		b = appendFloat(b, box.Height)
		c.Text(c.label(b), text)

		l := &e.layout
		b = append(c.labelBuffer(), "Direction: "...)
		b = append(b, l.Direction.String()...)
		c.Text(c.label(b), text)

		b = append(c.labelBuffer(), "Sizing: "...)
		b = append(b, l.Sizing.Width.Type.String()...)
		b = append(b, " x "...)
		b = append(b, l.Sizing.Height.Type.String()...)
		c.Text(c.label(b), text)

		b = append(c.labelBuffer(), "Padding: "...)
		for i, p := range [...]uint16{l.Padding.Left, l.Padding.Right, l.Padding.Top, l.Padding.Bottom} {
			if i > 0 {
				b = append(b, ", "...)
			}
			b = strconv.AppendUint(b, uint64(p), 10)
		}
		b = append(b, "  Gap: "...)
		b = strconv.AppendUint(b, uint64(l.ChildGap), 10)
		c.Text(c.label(b), text)

		b = append(c.labelBuffer(), "Configs:"...)
		for _, cfg := range e.configs {
			b = append(b, ' ')
			b = append(b, cfg.typ.String()...)
		}
		c.Text(c.label(b), text)
	})
}

// debugElementLabel names e by its id label, its text or its id.
func (c *Context) debugElementLabel(e *element) string {
	if s := c.GetElementIDString(e.id); s != "" {
		return s
	}
	b := c.labelBuffer()
	if e.isText() {
		text := c.textData[e.textData].text
		if len(text) > debugLabelLimit {
			text = text[:debugLabelLimit]
		}
		b = strconv.AppendQuote(b, text)
		return c.label(b)
	}
	b = append(b, '#')
	b = strconv.AppendUint(b, uint64(e.id), 16)
	return c.label(b)
}

func (c *Context) debugTextConfig(color Color, static bool) TextConfig {
	return TextConfig{
		Color:    color,
		FontSize: debugFontSize,
		WrapMode: WrapNone,
		Static:   static,
	}
}

// labelBuffer returns the free tail of the frame's string storage for
// appending a label.
func (c *Context) labelBuffer() []byte {
	return c.dynamicStrings[len(c.dynamicStrings):]
}

// label returns b, built on labelBuffer, as a string valid until the
// next BeginLayout.
func (c *Context) label(b []byte) string {
	// b was reallocated if it outgrew the storage; it then owns its
	// bytes.
	if n := len(c.dynamicStrings); cap(b) == cap(c.dynamicStrings)-n {
		c.dynamicStrings = c.dynamicStrings[:n+len(b)]
	}
	return unsafe.String(b)
}

func appendFloat(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}

func (t configType) String() string {
	switch t {
	case configShared:
		return "Shared"
	case configText:
		return "Text"
	case configAspect:
		return "Aspect"
	case configImage:
		return "Image"
	case configFloating:
		return "Floating"
	case configClip:
		return "Clip"
	case configBorder:
		return "Border"
	case configCustom:
		return "Custom"
	default:
		return "None"
	}
}
