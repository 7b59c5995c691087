// SPDX-License-Identifier: Unlicense OR MIT

package layout

// epsilon is the tolerance of the space distribution loops.
const epsilon = 0.01

// axis is the dimension sized by a solver pass.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func axisSize(a axis, d *Dimensions) *float32 {
	if a == horizontal {
		return &d.Width
	}
	return &d.Height
}

func axisSizing(a axis, l *LayoutConfig) *SizingAxis {
	if a == horizontal {
		return &l.Sizing.Width
	}
	return &l.Sizing.Height
}

func axisPadding(a axis, p Padding) float32 {
	if a == horizontal {
		return float32(p.Left) + float32(p.Right)
	}
	return float32(p.Top) + float32(p.Bottom)
}

// axisAlong reports whether children in direction dir are laid out
// along a.
func axisAlong(a axis, dir LayoutDirection) bool {
	return (a == horizontal) == (dir == LeftToRight)
}

func axisClipped(a axis, clip *ClipConfig) bool {
	if clip == nil {
		return false
	}
	if a == horizontal {
		return clip.Horizontal
	}
	return clip.Vertical
}

// sizeContainersAlongAxis resolves the size of every element on a,
// breadth first from each tree root.
func (c *Context) sizeContainersAlongAxis(a axis) {
	for _, root := range c.treeRoots {
		c.bfs = c.bfs[:0]
		rootElement := &c.elements[root.elementIndex]
		c.bfs = append(c.bfs, root.elementIndex)

		// Floating roots are sized relative to their target.
		if fc := c.floatingConfig(rootElement); fc != nil {
			if parentItem := c.currentHashMapItem(fc.ParentID); parentItem != nil {
				target := &c.elements[parentItem.elementIndex]
				sizing := axisSizing(a, &rootElement.layout)
				switch sizing.Type {
				case SizingGrow:
					*axisSize(a, &rootElement.dimensions) = *axisSize(a, &target.dimensions)
				case SizingPercent:
					*axisSize(a, &rootElement.dimensions) = *axisSize(a, &target.dimensions) * sizing.Percent
				}
			}
		}
		if sizing := axisSizing(a, &rootElement.layout); sizing.Type != SizingPercent {
			size := axisSize(a, &rootElement.dimensions)
			*size = clamp(*size, sizing.Min, sizing.Max)
		}

		for i := 0; i < len(c.bfs); i++ {
			c.sizeChildren(a, c.bfs[i])
		}
	}
}

// sizeChildren distributes the size of the parent at index among its
// children on a.
func (c *Context) sizeChildren(a axis, index int32) {
	parent := &c.elements[index]
	l := &parent.layout
	parentSize := *axisSize(a, &parent.dimensions)
	parentPadding := axisPadding(a, l.Padding)
	along := axisAlong(a, l.Direction)
	gap := float32(l.ChildGap)
	innerContentSize := float32(0)
	totalPaddingAndGaps := parentPadding
	growCount := 0
	c.resizable = c.resizable[:0]

	for i, ci := range parent.children {
		child := &c.elements[ci]
		sizing := axisSizing(a, &child.layout)
		childSize := *axisSize(a, &child.dimensions)
		if !child.isText() && len(child.children) > 0 {
			c.bfs = append(c.bfs, ci)
		}
		if sizing.Type != SizingPercent && sizing.Type != SizingFixed &&
			(!child.isText() || c.textConfig(child).WrapMode == WrapWords) &&
			(a == horizontal || !child.hasConfig(configAspect)) {
			c.resizable = append(c.resizable, ci)
		}
		if along {
			if sizing.Type != SizingPercent {
				innerContentSize += childSize
			}
			if sizing.Type == SizingGrow {
				growCount++
			}
			if i > 0 {
				innerContentSize += gap
				totalPaddingAndGaps += gap
			}
		} else {
			innerContentSize = max(innerContentSize, childSize)
		}
	}

	for _, ci := range parent.children {
		child := &c.elements[ci]
		sizing := axisSizing(a, &child.layout)
		if sizing.Type != SizingPercent {
			continue
		}
		size := axisSize(a, &child.dimensions)
		*size = (parentSize - totalPaddingAndGaps) * sizing.Percent
		if along {
			innerContentSize += *size
		}
		c.updateAspectRatioBox(child)
	}

	clip := c.clipConfig(parent)
	if !along {
		maxSize := parentSize - parentPadding
		// Grow children of a scrolling parent fill its content, not
		// its viewport.
		if axisClipped(a, clip) {
			maxSize = max(maxSize, innerContentSize)
		}
		for _, ci := range c.resizable {
			child := &c.elements[ci]
			sizing := axisSizing(a, &child.layout)
			size := axisSize(a, &child.dimensions)
			minSize := *axisSize(a, &child.minDimensions)
			if sizing.Type == SizingGrow {
				*size = min(maxSize, sizing.Max)
			}
			*size = max(minSize, min(*size, maxSize))
		}
		return
	}

	sizeToDistribute := parentSize - parentPadding - innerContentSize
	switch {
	case sizeToDistribute < 0:
		// Children of a clipping parent overflow into the scroll area.
		if axisClipped(a, clip) {
			return
		}
		c.compress(a, sizeToDistribute)
	case sizeToDistribute > 0 && growCount > 0:
		grow := c.resizable[:0]
		for _, ci := range c.resizable {
			if axisSizing(a, &c.elements[ci].layout).Type == SizingGrow {
				grow = append(grow, ci)
			}
		}
		c.resizable = grow
		c.expand(a, sizeToDistribute)
	}
}

// compress shrinks the largest resizable children in parallel towards
// the next largest until the deficit is gone or every child is at its
// minimum.
func (c *Context) compress(a axis, deficit float32) {
	for deficit < -epsilon && len(c.resizable) > 0 {
		largest, secondLargest := float32(0), float32(0)
		for _, ci := range c.resizable {
			size := *axisSize(a, &c.elements[ci].dimensions)
			switch {
			case floatEqual(size, largest):
			case size > largest:
				secondLargest = largest
				largest = size
			default:
				secondLargest = max(secondLargest, size)
			}
		}
		toAdd := max(secondLargest-largest, deficit/float32(len(c.resizable)))
		for i := 0; i < len(c.resizable); i++ {
			child := &c.elements[c.resizable[i]]
			size := axisSize(a, &child.dimensions)
			minSize := *axisSize(a, &child.minDimensions)
			previous := *size
			if !floatEqual(*size, largest) {
				continue
			}
			*size += toAdd
			if *size <= minSize {
				*size = minSize
				c.removeResizable(i)
				i--
			}
			deficit -= *size - previous
		}
	}
}

// expand grows the smallest resizable children in parallel towards
// the next smallest until the surplus is gone or every child is at
// its maximum.
func (c *Context) expand(a axis, surplus float32) {
	for surplus > epsilon && len(c.resizable) > 0 {
		smallest, secondSmallest := float32(maxFloat), float32(maxFloat)
		for _, ci := range c.resizable {
			size := *axisSize(a, &c.elements[ci].dimensions)
			switch {
			case floatEqual(size, smallest):
			case size < smallest:
				secondSmallest = smallest
				smallest = size
			default:
				secondSmallest = min(secondSmallest, size)
			}
		}
		toAdd := min(secondSmallest-smallest, surplus/float32(len(c.resizable)))
		for i := 0; i < len(c.resizable); i++ {
			child := &c.elements[c.resizable[i]]
			size := axisSize(a, &child.dimensions)
			maxSize := axisSizing(a, &child.layout).Max
			previous := *size
			if !floatEqual(*size, smallest) {
				continue
			}
			*size += toAdd
			if *size >= maxSize {
				*size = maxSize
				c.removeResizable(i)
				i--
			}
			surplus -= *size - previous
		}
	}
}

// removeResizable swaps the resizable child at i with the last one
// and drops it.
func (c *Context) removeResizable(i int) {
	last := len(c.resizable) - 1
	c.resizable[i] = c.resizable[last]
	c.resizable = c.resizable[:last]
}

func floatEqual(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

// applyAspectHeights sets the height of aspect ratio elements from
// their width and caps their height there.
func (c *Context) applyAspectHeights() {
	for _, i := range c.aspectElements {
		e := &c.elements[i]
		e.dimensions.Height = e.dimensions.Width / c.aspectRatio(e)
		e.layout.Sizing.Height.Max = e.dimensions.Height
	}
}

// applyAspectWidths sets the width of aspect ratio elements from
// their final height.
func (c *Context) applyAspectWidths() {
	for _, i := range c.aspectElements {
		e := &c.elements[i]
		e.dimensions.Width = c.aspectRatio(e) * e.dimensions.Height
	}
}

// propagateHeights recomputes the height of every container from its
// children, bottom up, after text wrapping changed their heights.
func (c *Context) propagateHeights() {
	nodes := c.treeNodes[:0]
	for _, root := range c.treeRoots {
		c.visited[len(nodes)] = false
		nodes = append(nodes, treeNode{elementIndex: root.elementIndex})
	}
	for len(nodes) > 0 {
		top := len(nodes) - 1
		e := &c.elements[nodes[top].elementIndex]
		if !c.visited[top] {
			c.visited[top] = true
			if e.isText() || len(e.children) == 0 {
				nodes = nodes[:top]
				continue
			}
			for _, ci := range e.children {
				c.visited[len(nodes)] = false
				nodes = append(nodes, treeNode{elementIndex: ci})
			}
			continue
		}
		nodes = nodes[:top]

		l := &e.layout
		tbPad := float32(l.Padding.Top) + float32(l.Padding.Bottom)
		if l.Direction == LeftToRight {
			for _, ci := range e.children {
				childHeight := max(c.elements[ci].dimensions.Height+tbPad, e.dimensions.Height)
				e.dimensions.Height = clamp(childHeight, l.Sizing.Height.Min, l.Sizing.Height.Max)
			}
		} else {
			contentHeight := tbPad
			for _, ci := range e.children {
				contentHeight += c.elements[ci].dimensions.Height
			}
			contentHeight += float32(max(len(e.children)-1, 0)) * float32(l.ChildGap)
			e.dimensions.Height = clamp(contentHeight, l.Sizing.Height.Min, l.Sizing.Height.Max)
		}
	}
}
