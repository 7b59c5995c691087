// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strconv"

	"gioui.org/strata/internal/unsafe"
)

// cacheLine is the alignment of every pool carved from an Arena.
const cacheLine = 64

// Arena accounts for the memory of a Context. Pools are carved from it
// once, when the Context is initialized or its capacities change, and
// reused for every frame after that.
type Arena struct {
	capacity int
	next     int
	dryRun   bool
}

// NewArena returns an arena holding up to capacity bytes of pools. Use
// MinMemorySize to find a sufficient capacity.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, &Error{
			Kind:    ErrArenaCapacityExceeded,
			Message: "arena capacity must be positive, got " + strconv.Itoa(capacity),
		}
	}
	return &Arena{capacity: capacity}, nil
}

// Capacity returns the size of the arena in bytes.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Used returns the number of bytes carved so far.
func (a *Arena) Used() int {
	return a.next
}

func (a *Arena) reset() {
	a.next = 0
}

// carve reserves room for n values of type T and returns an empty
// slice with that capacity. It returns false if the arena is full.
// A dry run arena only accounts for the size.
func carve[T any](a *Arena, n int) ([]T, bool) {
	size := int(unsafe.SizeOf[T]()) * n
	start := (a.next + cacheLine - 1) &^ (cacheLine - 1)
	if !a.dryRun && start+size > a.capacity {
		return nil, false
	}
	a.next = start + size
	if a.dryRun {
		return nil, true
	}
	return make([]T, 0, n), true
}

// MinMemorySize returns the arena capacity required by a Context with
// the default capacities.
func MinMemorySize() int {
	return MinMemorySizeFor(defaultMaxElementCount, defaultMaxMeasureTextWordCount)
}

// MinMemorySizeFor returns the arena capacity required by a Context
// holding maxElements elements and maxWords cached words.
func MinMemorySizeFor(maxElements, maxWords int) int {
	a := &Arena{dryRun: true}
	var p persistentPools
	p.carve(a, maxElements, maxWords)
	var e ephemeralPools
	e.carve(a, maxElements)
	return a.next
}
