// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"cmp"

	"golang.org/x/exp/slices"

	"gioui.org/strata/f32"
)

// calculateFinalLayout solves the declared tree and emits the render
// commands of the frame.
func (c *Context) calculateFinalLayout() {
	c.sizeContainersAlongAxis(horizontal)
	c.wrapText()
	c.applyAspectHeights()
	c.propagateHeights()
	c.sizeContainersAlongAxis(vertical)
	c.applyAspectWidths()

	// Floating elements draw above their siblings of lower z index;
	// equal z indices keep declaration order.
	slices.SortStableFunc(c.treeRoots, func(a, b treeRoot) int {
		return cmp.Compare(a.zIndex, b.zIndex)
	})
	c.renderCommands = c.renderCommands[:0]
	for i := range c.treeRoots {
		c.positionRoot(&c.treeRoots[i])
	}
}

// attachOffset returns the position of anchor p on a box of size d,
// relative to its top left corner.
func attachOffset(p AttachPoint, d Dimensions) f32.Point {
	return f32.Pt(d.Width*float32(p/3)/2, d.Height*float32(p%3)/2)
}

// floatingPosition returns the top left corner of the floating root
// e attached to the box of its target.
func (c *Context) floatingPosition(e *element, fc *FloatingConfig, target BoundingBox) f32.Point {
	pos := f32.Pt(target.X, target.Y)
	pos = pos.Add(attachOffset(fc.AttachPoints.Parent, Dimensions{Width: target.Width, Height: target.Height}))
	pos = pos.Sub(attachOffset(fc.AttachPoints.Element, e.dimensions))
	return pos.Add(fc.Offset)
}

// elementBox returns the bounding box of e placed at pos. Floating
// elements are widened by their expansion.
func (c *Context) elementBox(e *element, pos f32.Point) BoundingBox {
	b := BoundingBox{X: pos.X, Y: pos.Y, Width: e.dimensions.Width, Height: e.dimensions.Height}
	if fc := c.floatingConfig(e); fc != nil {
		b.X -= fc.Expand.Width
		b.Width += 2 * fc.Expand.Width
		b.Y -= fc.Expand.Height
		b.Height += 2 * fc.Expand.Height
	}
	return b
}

// isOffscreen reports whether b lies outside the layout dimensions.
// Nothing is offscreen when culling is disabled.
func (c *Context) isOffscreen(b BoundingBox) bool {
	if c.cullingDisabled {
		return false
	}
	return b.X > c.layoutDimensions.Width || b.Y > c.layoutDimensions.Height ||
		b.X+b.Width < 0 || b.Y+b.Height < 0
}

// scrollOffset returns the offset applied to the children of the clip
// element at index, and records its bounding box.
func (c *Context) scrollOffset(index int32, box BoundingBox) f32.Point {
	for i := range c.scrollContainers {
		sc := &c.scrollContainers[i]
		if sc.elementIndex != index || !sc.openThisFrame {
			continue
		}
		sc.boundingBox = box
		if c.externalScrollHandling {
			return f32.Point{}
		}
		return sc.scrollPosition
	}
	return f32.Point{}
}

// positionRoot places the tree below root depth first and emits its
// render commands.
func (c *Context) positionRoot(root *treeRoot) {
	rootElement := &c.elements[root.elementIndex]
	var rootPosition f32.Point
	if fc := c.floatingConfig(rootElement); fc != nil {
		if target := c.getHashMapItem(root.parentID); target != nil {
			rootPosition = c.floatingPosition(rootElement, fc, target.boundingBox)
		}
	}
	rootClipped := false
	if root.clipID != 0 {
		if clipItem := c.currentHashMapItem(root.clipID); clipItem != nil {
			clip := c.clipConfig(&c.elements[clipItem.elementIndex])
			// Content of an externally scrolled container is offset by
			// the caller, but floating roots are drawn outside it.
			if clip != nil && c.externalScrollHandling {
				if clip.Horizontal {
					rootPosition.X += clip.ChildOffset.X
				}
				if clip.Vertical {
					rootPosition.Y += clip.ChildOffset.Y
				}
			}
			var data ClipData
			if clip != nil {
				data = ClipData{Horizontal: clip.Horizontal, Vertical: clip.Vertical}
			}
			c.addRenderCommand(RenderCommand{
				BoundingBox: clipItem.boundingBox,
				RenderData:  RenderData{Clip: data},
				ID:          HashNumber(rootElement.id, uint32(len(rootElement.children))+10).ID,
				ZIndex:      root.zIndex,
				CommandType: RenderCommandScissorStart,
			})
			rootClipped = true
		}
	}

	nodes := c.treeNodes[:0]
	c.visited[0] = false
	nodes = append(nodes, treeNode{
		elementIndex:    root.elementIndex,
		position:        rootPosition,
		nextChildOffset: f32.Pt(float32(rootElement.layout.Padding.Left), float32(rootElement.layout.Padding.Top)),
	})
	for len(nodes) > 0 {
		top := len(nodes) - 1
		node := nodes[top]
		if !c.visited[top] {
			c.visited[top] = true
			nodes = c.enterNode(root, nodes)
			continue
		}
		nodes = nodes[:top]
		c.leaveNode(root, node)
	}

	if rootClipped {
		c.addRenderCommand(RenderCommand{
			ID:          HashNumber(rootElement.id, uint32(len(rootElement.children))+11).ID,
			ZIndex:      root.zIndex,
			CommandType: RenderCommandScissorEnd,
		})
	}
}

// enterNode emits the commands drawn below the children of the top
// node and pushes its children.
func (c *Context) enterNode(root *treeRoot, nodes []treeNode) []treeNode {
	top := len(nodes) - 1
	node := &nodes[top]
	e := &c.elements[node.elementIndex]
	box := c.elementBox(e, node.position)
	offscreen := c.isOffscreen(box)

	var scroll f32.Point
	clip := c.clipConfig(e)
	if clip != nil {
		scroll = c.scrollOffset(node.elementIndex, box)
	}
	if item := c.currentHashMapItem(e.id); item != nil && item.elementIndex == node.elementIndex {
		item.boundingBox = box
	}
	if e.idAlias != 0 {
		if item := c.currentHashMapItem(e.idAlias); item != nil && item.elementIndex == node.elementIndex {
			item.boundingBox = box
		}
	}

	shared := c.sharedConfig(e)
	if shared == nil {
		shared = &sharedConfig{}
	}
	base := RenderCommand{
		BoundingBox: box,
		UserData:    shared.UserData,
		ID:          e.id,
		ZIndex:      root.zIndex,
	}
	if !offscreen && shared.BackgroundColor.A > 0 && !e.hasConfig(configImage) && !e.hasConfig(configCustom) {
		cmd := base
		cmd.CommandType = RenderCommandRectangle
		cmd.RenderData.Rectangle = RectangleData{BackgroundColor: shared.BackgroundColor, CornerRadius: shared.CornerRadius}
		c.addRenderCommand(cmd)
	}
	if clip != nil && !offscreen {
		cmd := base
		cmd.CommandType = RenderCommandScissorStart
		cmd.RenderData.Clip = ClipData{Horizontal: clip.Horizontal, Vertical: clip.Vertical}
		c.addRenderCommand(cmd)
	}
	if i := e.config(configImage); i >= 0 && !offscreen {
		cmd := base
		cmd.CommandType = RenderCommandImage
		cmd.RenderData.Image = ImageData{
			BackgroundColor: shared.BackgroundColor,
			CornerRadius:    shared.CornerRadius,
			ImageData:       c.imageConfigs[i].ImageData,
		}
		c.addRenderCommand(cmd)
	}
	if i := e.config(configCustom); i >= 0 && !offscreen {
		cmd := base
		cmd.CommandType = RenderCommandCustom
		cmd.RenderData.Custom = CustomData{
			BackgroundColor: shared.BackgroundColor,
			CornerRadius:    shared.CornerRadius,
			CustomData:      c.customConfigs[i].CustomData,
		}
		c.addRenderCommand(cmd)
	}
	if e.isText() {
		if !offscreen {
			c.emitText(root, e, box)
		}
		return nodes
	}

	l := &e.layout
	lrPad := axisPadding(horizontal, l.Padding)
	tbPad := axisPadding(vertical, l.Padding)
	gap := float32(l.ChildGap)
	var content Dimensions
	if l.Direction == LeftToRight {
		for _, ci := range e.children {
			child := &c.elements[ci]
			content.Width += child.dimensions.Width
			content.Height = max(content.Height, child.dimensions.Height)
		}
		content.Width += float32(max(len(e.children)-1, 0)) * gap
		extra := e.dimensions.Width - lrPad - content.Width
		switch l.ChildAlignment.X {
		case AlignXLeft:
			extra = 0
		case AlignXCenter:
			extra /= 2
		}
		node.nextChildOffset.X += max(0, extra)
	} else {
		for _, ci := range e.children {
			child := &c.elements[ci]
			content.Width = max(content.Width, child.dimensions.Width)
			content.Height += child.dimensions.Height
		}
		content.Height += float32(max(len(e.children)-1, 0)) * gap
		extra := e.dimensions.Height - tbPad - content.Height
		switch l.ChildAlignment.Y {
		case AlignYTop:
			extra = 0
		case AlignYCenter:
			extra /= 2
		}
		node.nextChildOffset.Y += max(0, extra)
	}
	if clip != nil {
		if sc := c.scrollContainer(e.id); sc != nil {
			sc.contentSize = Dimensions{Width: content.Width + lrPad, Height: content.Height + tbPad}
		}
	}

	n := len(e.children)
	if len(nodes)+n > cap(nodes) {
		c.report(ErrInternal, "layout tree deeper than the node pool")
		return nodes
	}
	nodes = nodes[:len(nodes)+n]
	parent := &nodes[top]
	for i, ci := range e.children {
		child := &c.elements[ci]
		if l.Direction == LeftToRight {
			parent.nextChildOffset.Y = float32(l.Padding.Top)
			space := e.dimensions.Height - tbPad - child.dimensions.Height
			switch l.ChildAlignment.Y {
			case AlignYCenter:
				parent.nextChildOffset.Y += space / 2
			case AlignYBottom:
				parent.nextChildOffset.Y += space
			}
		} else {
			parent.nextChildOffset.X = float32(l.Padding.Left)
			space := e.dimensions.Width - lrPad - child.dimensions.Width
			switch l.ChildAlignment.X {
			case AlignXCenter:
				parent.nextChildOffset.X += space / 2
			case AlignXRight:
				parent.nextChildOffset.X += space
			}
		}
		j := len(nodes) - 1 - i
		nodes[j] = treeNode{
			elementIndex:    ci,
			position:        parent.position.Add(parent.nextChildOffset).Add(scroll),
			nextChildOffset: f32.Pt(float32(child.layout.Padding.Left), float32(child.layout.Padding.Top)),
		}
		c.visited[j] = false
		if l.Direction == LeftToRight {
			parent.nextChildOffset.X += child.dimensions.Width + gap
		} else {
			parent.nextChildOffset.Y += child.dimensions.Height + gap
		}
	}
	return nodes
}

// emitText emits one command per wrapped line of the text element e.
func (c *Context) emitText(root *treeRoot, e *element, box BoundingBox) {
	td := &c.textData[e.textData]
	config := c.textConfig(e)
	natural := td.preferredDimensions.Height
	lineHeight := natural
	if config.LineHeight > 0 {
		lineHeight = float32(config.LineHeight)
	}
	y := (lineHeight - natural) / 2
	for i, line := range td.lines {
		if len(line.line) == 0 {
			y += lineHeight
			continue
		}
		var offset float32
		switch config.Alignment {
		case TextAlignCenter:
			offset = (box.Width - line.dimensions.Width) / 2
		case TextAlignRight:
			offset = box.Width - line.dimensions.Width
		}
		c.addRenderCommand(RenderCommand{
			BoundingBox: BoundingBox{
				X:      box.X + offset,
				Y:      box.Y + y,
				Width:  line.dimensions.Width,
				Height: line.dimensions.Height,
			},
			RenderData: RenderData{Text: TextData{
				Contents:      line.line,
				Color:         config.Color,
				FontID:        config.FontID,
				FontSize:      config.FontSize,
				LetterSpacing: config.LetterSpacing,
				LineHeight:    config.LineHeight,
			}},
			UserData:    config.UserData,
			ID:          HashNumber(uint32(i), e.id).ID,
			ZIndex:      root.zIndex,
			CommandType: RenderCommandText,
		})
		y += lineHeight
		if !c.cullingDisabled && box.Y+y > c.layoutDimensions.Height {
			break
		}
	}
}

// leaveNode emits the commands drawn above the children of node.
func (c *Context) leaveNode(root *treeRoot, node treeNode) {
	e := &c.elements[node.elementIndex]
	if e.isText() {
		return
	}
	box := c.elementBox(e, node.position)
	offscreen := c.isOffscreen(box)
	if border := c.borderConfig(e); border != nil && !offscreen {
		var shared sharedConfig
		if s := c.sharedConfig(e); s != nil {
			shared = *s
		}
		c.addRenderCommand(RenderCommand{
			BoundingBox: box,
			RenderData: RenderData{Border: BorderData{
				Color:        border.Color,
				CornerRadius: shared.CornerRadius,
				Width:        border.Width,
			}},
			UserData:    shared.UserData,
			ID:          HashNumber(e.id, uint32(len(e.children))).ID,
			ZIndex:      root.zIndex,
			CommandType: RenderCommandBorder,
		})
		if border.Width.BetweenChildren > 0 && border.Color.A > 0 {
			c.emitSeparators(root, e, box, border, shared.UserData)
		}
	}
	if c.clipConfig(e) != nil && !offscreen {
		c.addRenderCommand(RenderCommand{
			ID:          HashNumber(e.id, uint32(len(c.elements[root.elementIndex].children))+11).ID,
			ZIndex:      root.zIndex,
			CommandType: RenderCommandScissorEnd,
		})
	}
}

// emitSeparators draws the between children border of e as
// rectangles centered in the gaps.
func (c *Context) emitSeparators(root *treeRoot, e *element, box BoundingBox, border *BorderConfig, userData any) {
	l := &e.layout
	width := float32(border.Width.BetweenChildren)
	half := float32(l.ChildGap) / 2
	offset := f32.Pt(float32(l.Padding.Left)-half, float32(l.Padding.Top)-half)
	var scroll f32.Point
	if c.clipConfig(e) != nil && !c.externalScrollHandling {
		if sc := c.scrollContainer(e.id); sc != nil {
			scroll = sc.scrollPosition
		}
	}
	n := uint32(len(e.children))
	for i, ci := range e.children {
		child := &c.elements[ci]
		if i > 0 {
			b := BoundingBox{X: box.X + scroll.X, Y: box.Y + scroll.Y}
			if l.Direction == LeftToRight {
				b.X += offset.X - width/2
				b.Width = width
				b.Height = box.Height
			} else {
				b.Y += offset.Y - width/2
				b.Width = box.Width
				b.Height = width
			}
			c.addRenderCommand(RenderCommand{
				BoundingBox: b,
				RenderData:  RenderData{Rectangle: RectangleData{BackgroundColor: border.Color}},
				UserData:    userData,
				ID:          HashNumber(e.id, n+1+uint32(i)).ID,
				ZIndex:      root.zIndex,
				CommandType: RenderCommandRectangle,
			})
		}
		if l.Direction == LeftToRight {
			offset.X += child.dimensions.Width + float32(l.ChildGap)
		} else {
			offset.Y += child.dimensions.Height + float32(l.ChildGap)
		}
	}
}
