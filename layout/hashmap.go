// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "strconv"

// addHashMapItem registers the element at index under id. Repeated
// registration of an id in one frame is reported as ErrDuplicateID
// and leaves the map pointing at the first element. Entries not seen
// since before the previous frame are unlinked while the chain is
// walked.
func (c *Context) addHashMapItem(id ElementID, index int32, alias uint32) *mapItem {
	bucket := id.ID % uint32(len(c.buckets))
	prev := int32(-1)
	i := c.buckets[bucket]
	for i != -1 {
		item := &c.items[i]
		if item.elementID.ID == id.ID {
			if item.generation < c.generation {
				item.elementID = id
				item.generation = c.generation
				item.elementIndex = index
				item.idAlias = alias
				item.onHover = nil
				item.hoverData = nil
				item.debug.collision = false
			} else {
				label := id.StringID
				if label == "" {
					label = strconv.FormatUint(uint64(id.ID), 10)
				}
				c.report(ErrDuplicateID, "an element with id "+strconv.Quote(label)+" was already declared in this layout")
				item.debug.collision = true
			}
			return item
		}
		next := item.next
		if item.generation+1 < c.generation {
			if prev == -1 {
				c.buckets[bucket] = next
			} else {
				c.items[prev].next = next
			}
			*item = mapItem{next: -1}
			c.itemFreeList = append(c.itemFreeList, i)
		} else {
			prev = i
		}
		i = next
	}
	item := mapItem{
		elementID:    id,
		elementIndex: index,
		next:         -1,
		generation:   c.generation,
		idAlias:      alias,
	}
	var n int32
	if free := len(c.itemFreeList); free > 0 {
		n = c.itemFreeList[free-1]
		c.itemFreeList = c.itemFreeList[:free-1]
		c.items[n] = item
	} else {
		if len(c.items) == cap(c.items) {
			if !c.warnings.hashMapFull {
				c.warnings.hashMapFull = true
				c.report(ErrElementsCapacityExceeded, "ran out of element id capacity; raise SetMaxElementCount")
			}
			return nil
		}
		c.items = append(c.items, item)
		n = int32(len(c.items) - 1)
	}
	if prev == -1 {
		c.buckets[bucket] = n
	} else {
		c.items[prev].next = n
	}
	return &c.items[n]
}

// getHashMapItem returns the entry of id, or nil.
func (c *Context) getHashMapItem(id uint32) *mapItem {
	if id == 0 || len(c.buckets) == 0 {
		return nil
	}
	for i := c.buckets[id%uint32(len(c.buckets))]; i != -1; i = c.items[i].next {
		if c.items[i].elementID.ID == id {
			return &c.items[i]
		}
	}
	return nil
}

// currentHashMapItem is getHashMapItem restricted to elements declared
// in the current frame.
func (c *Context) currentHashMapItem(id uint32) *mapItem {
	item := c.getHashMapItem(id)
	if item == nil || item.generation != c.generation || int(item.elementIndex) >= len(c.elements) {
		return nil
	}
	return item
}
