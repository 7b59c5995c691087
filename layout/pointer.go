// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/strata/f32"

// SetPointerState records the pointer for hover queries and scrolling
// and hit tests it against the last layout. Hovered elements are
// collected innermost last, and their OnHover callbacks are called.
// An element with an explicit id is listed with its anonymous id too.
// A floating element that captures the pointer hides the roots drawn
// below it.
func (c *Context) SetPointerState(pos f32.Point, down bool) {
	if c.warnings.maxElementsExceeded {
		return
	}
	c.pointer.Position = pos
	c.pointerOverIDs = c.pointerOverIDs[:0]

	for r := len(c.treeRoots) - 1; r >= 0; r-- {
		root := &c.treeRoots[r]
		nodes := c.bfs[:0]
		nodes = append(nodes, root.elementIndex)
		c.visited[0] = false
		found := false
		for len(nodes) > 0 {
			top := len(nodes) - 1
			if c.visited[top] {
				nodes = nodes[:top]
				continue
			}
			c.visited[top] = true
			e := &c.elements[nodes[top]]
			item := c.currentHashMapItem(e.id)
			if item != nil && item.elementIndex != nodes[top] {
				// A duplicate id; the element answers to its anonymous id.
				item = c.currentHashMapItem(e.idAlias)
			}
			if item != nil && item.boundingBox.Contains(pos) && c.inClip(e, pos) {
				if item.onHover != nil {
					item.onHover(item.elementID, c.pointer, item.hoverData)
				}
				if len(c.pointerOverIDs) < cap(c.pointerOverIDs) {
					c.pointerOverIDs = append(c.pointerOverIDs, item.elementID)
				}
				if e.idAlias != 0 && item.elementID.ID != e.idAlias && len(c.pointerOverIDs) < cap(c.pointerOverIDs) {
					c.pointerOverIDs = append(c.pointerOverIDs, ElementID{ID: e.idAlias})
				}
				found = true
			}
			if e.isText() {
				continue
			}
			// Later children draw above earlier ones, so they are tested
			// last to end up innermost.
			for i := len(e.children) - 1; i >= 0; i-- {
				if len(nodes) == cap(nodes) {
					break
				}
				nodes = append(nodes, e.children[i])
				c.visited[len(nodes)-1] = false
			}
		}
		if found {
			if fc := c.floatingConfig(&c.elements[root.elementIndex]); fc != nil && fc.PointerCaptureMode == PointerCaptureCapture {
				break
			}
		}
	}

	switch {
	case down && (c.pointer.State == PointerPressedThisFrame || c.pointer.State == PointerPressed):
		c.pointer.State = PointerPressed
	case down:
		c.pointer.State = PointerPressedThisFrame
	case c.pointer.State == PointerReleasedThisFrame || c.pointer.State == PointerReleased:
		c.pointer.State = PointerReleased
	default:
		c.pointer.State = PointerReleasedThisFrame
	}
}

// inClip reports whether pos lies inside the clip region of e.
func (c *Context) inClip(e *element, pos f32.Point) bool {
	if e.clipID == 0 || c.externalScrollHandling {
		return true
	}
	clip := c.currentHashMapItem(e.clipID)
	return clip != nil && clip.boundingBox.Contains(pos)
}
