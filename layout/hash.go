// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/strata/internal/unsafe"
)

// mix folds v into a one-at-a-time hash.
func mix(hash, v uint32) uint32 {
	hash += v
	hash += hash << 10
	hash ^= hash >> 6
	return hash
}

// avalanche finalizes a one-at-a-time hash.
func avalanche(hash uint32) uint32 {
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return hash
}

// HashString hashes key with seed. The resulting id is never zero.
func HashString(key string, seed uint32) ElementID {
	hash := seed
	for i := 0; i < len(key); i++ {
		hash = mix(hash, uint32(key[i]))
	}
	hash = avalanche(hash)
	return ElementID{ID: hash + 1, BaseID: hash + 1, StringID: key}
}

// HashStringWithOffset hashes key and index with seed. BaseID is the
// hash of key alone so that indexed ids of one label can be grouped.
func HashStringWithOffset(key string, offset, seed uint32) ElementID {
	base := seed
	for i := 0; i < len(key); i++ {
		base = mix(base, uint32(key[i]))
	}
	hash := mix(base, offset)
	hash = avalanche(hash)
	base = avalanche(base)
	return ElementID{ID: hash + 1, Offset: offset, BaseID: base + 1, StringID: key}
}

// HashNumber derives an id from a number and a seed, such as a child
// index and its parent's id.
func HashNumber(offset, seed uint32) ElementID {
	// Seed first so that equal seed+offset sums do not collide.
	hash := mix(mix(seed, 0), offset+48)
	hash = avalanche(hash)
	return ElementID{ID: hash + 1, Offset: offset, BaseID: seed}
}

// ID returns the global id of label.
func ID(label string) ElementID {
	return HashString(label, 0)
}

// IDI returns the global id of label and index, for elements declared
// in a loop.
func IDI(label string, index uint32) ElementID {
	return HashStringWithOffset(label, index, 0)
}

// IDLocal returns the id of label scoped to the currently open
// element, so that equal labels under different parents do not
// collide.
func (c *Context) IDLocal(label string) ElementID {
	return HashString(label, c.openElementID())
}

// IDILocal is like IDLocal with an index.
func (c *Context) IDILocal(label string, index uint32) ElementID {
	return HashStringWithOffset(label, index, c.openElementID())
}

// hashText returns the measurement cache key of text in config.
func hashText(text string, config *TextConfig) uint32 {
	var hash uint32
	if config.Static {
		hash = mix(hash, uint32(unsafe.StringAddr(text)))
		hash = mix(hash, uint32(len(text)))
	} else {
		for i := 0; i < len(text); i++ {
			hash = mix(hash, uint32(text[i]))
		}
	}
	hash = mix(hash, uint32(config.FontID))
	hash = mix(hash, uint32(config.FontSize))
	hash = mix(hash, uint32(config.LetterSpacing))
	return avalanche(hash) + 1
}
