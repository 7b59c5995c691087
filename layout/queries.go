// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/strata/f32"

// GetElementData returns the bounding box of the element with id as of
// the last layout.
func (c *Context) GetElementData(id ElementID) ElementData {
	item := c.getHashMapItem(id.ID)
	if item == nil {
		return ElementData{}
	}
	return ElementData{BoundingBox: item.boundingBox, Found: true}
}

// Hovered reports whether the open element was under the pointer at
// the last SetPointerState.
func (c *Context) Hovered() bool {
	e := c.openElement()
	if e == nil || c.warnings.maxElementsExceeded {
		return false
	}
	for _, id := range c.pointerOverIDs {
		if id.ID == e.id || (e.idAlias != 0 && id.ID == e.idAlias) {
			return true
		}
	}
	return false
}

// PointerOver reports whether the element with id was under the
// pointer at the last SetPointerState.
func (c *Context) PointerOver(id ElementID) bool {
	for _, over := range c.pointerOverIDs {
		if over.ID == id.ID {
			return true
		}
	}
	// Elements with an explicit id may have been hit through their
	// anonymous id.
	if item := c.getHashMapItem(id.ID); item != nil && item.idAlias != 0 {
		for _, over := range c.pointerOverIDs {
			if over.ID == item.idAlias {
				return true
			}
		}
	}
	return false
}

// GetPointerOverIDs returns the ids under the pointer, outermost
// first. The slice is valid until the next SetPointerState.
func (c *Context) GetPointerOverIDs() []ElementID {
	return c.pointerOverIDs
}

// OnHover registers fn to be called by SetPointerState while the open
// element is under the pointer.
func (c *Context) OnHover(fn HoverFunc, userData any) {
	e := c.openElement()
	if e == nil || c.warnings.maxElementsExceeded {
		return
	}
	item := c.currentHashMapItem(e.id)
	if item == nil {
		return
	}
	item.onHover = fn
	item.hoverData = userData
}

// GetScrollContainerData returns the scroll state of the clip element
// with id.
func (c *Context) GetScrollContainerData(id ElementID) ScrollContainerData {
	sc := c.scrollContainer(id.ID)
	if sc == nil {
		return ScrollContainerData{}
	}
	return ScrollContainerData{
		ScrollPosition:            sc.scrollPosition,
		ScrollContainerDimensions: Dimensions{Width: sc.boundingBox.Width, Height: sc.boundingBox.Height},
		ContentDimensions:         sc.contentSize,
		Config:                    sc.config,
		Found:                     true,
	}
}

// SetScrollPosition moves the clip element with id to pos, clamped to
// its content, and stops its momentum. It reports whether the element
// is a known scroll container.
func (c *Context) SetScrollPosition(id ElementID, pos f32.Point) bool {
	sc := c.scrollContainer(id.ID)
	if sc == nil {
		return false
	}
	sc.scrollPosition = pos
	sc.momentumX.Stop()
	sc.momentumY.Stop()
	sc.clampPosition()
	return true
}

// GetScrollOffset returns the scroll position of the open element if
// it is a scroll container.
func (c *Context) GetScrollOffset() f32.Point {
	e := c.openElement()
	if e == nil || c.warnings.maxElementsExceeded {
		return f32.Point{}
	}
	if sc := c.scrollContainer(e.id); sc != nil {
		return sc.scrollPosition
	}
	return f32.Point{}
}

// GetElementIDString returns the label the element id was hashed
// from, or the empty string for anonymous and unknown ids.
func (c *Context) GetElementIDString(id uint32) string {
	if item := c.getHashMapItem(id); item != nil {
		return item.elementID.StringID
	}
	return ""
}
