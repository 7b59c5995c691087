// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/strata/f32"

const (
	// dragStillThreshold is the per frame drag distance under which a
	// held drag restarts its momentum measurement.
	dragStillThreshold = 0.1
	// dragStillTime is the time a drag may be held still before its
	// momentum measurement restarts.
	dragStillTime = 0.15
)

// UpdateScrollContainers advances the scroll state of every container.
// It applies fling momentum, the wheel delta and, if enableDrag is set,
// pointer drags to the innermost scrollable container under the
// pointer. dt is the time since the previous call in seconds. Call it
// after SetPointerState and before BeginLayout.
func (c *Context) UpdateScrollContainers(enableDrag bool, delta f32.Point, dt float32) {
	pressed := c.pointer.State == PointerPressed || c.pointer.State == PointerPressedThisFrame
	released := c.pointer.State == PointerReleased || c.pointer.State == PointerReleasedThisFrame
	scrolled := delta.X != 0 || delta.Y != 0

	var highest *scrollContainer
	highestPriority := -1
	for i := 0; i < len(c.scrollContainers); i++ {
		sc := &c.scrollContainers[i]
		// Containers not declared by the previous layout are gone.
		if !sc.openThisFrame || c.getHashMapItem(sc.elementID) == nil {
			c.scrollContainers = append(c.scrollContainers[:i], c.scrollContainers[i+1:]...)
			i--
			continue
		}
		sc.openThisFrame = false

		if released && sc.pointerScrollActive {
			dist := c.pointer.Position.Sub(sc.pointerOrigin)
			sc.momentumX.Seed(dist.X, sc.momentumTime)
			sc.momentumY.Seed(dist.Y, sc.momentumTime)
			sc.pointerScrollActive = false
			sc.pointerOrigin = f32.Point{}
			sc.scrollOrigin = f32.Point{}
			sc.momentumTime = 0
		}

		sc.scrollPosition.X += sc.momentumX.Step(scrolled)
		sc.scrollPosition.Y += sc.momentumY.Step(scrolled)
		sc.clampPosition()

		for j := range c.pointerOverIDs {
			if c.pointerOverIDs[j].ID == sc.elementID && j > highestPriority {
				highest = sc
				highestPriority = j
			}
		}
	}
	if highest == nil {
		return
	}

	sc := highest
	canScrollX := sc.config.Horizontal && sc.contentSize.Width > sc.boundingBox.Width
	canScrollY := sc.config.Vertical && sc.contentSize.Height > sc.boundingBox.Height
	if canScrollX {
		sc.scrollPosition.X += delta.X * c.wheelScale
	}
	if canScrollY {
		sc.scrollPosition.Y += delta.Y * c.wheelScale
	}
	if enableDrag && pressed {
		if !sc.pointerScrollActive {
			sc.pointerScrollActive = true
			sc.pointerOrigin = c.pointer.Position
			sc.scrollOrigin = sc.scrollPosition
			sc.momentumX.Stop()
			sc.momentumY.Stop()
			sc.momentumTime = 0
		} else {
			previous := sc.scrollPosition
			drag := c.pointer.Position.Sub(sc.pointerOrigin)
			if canScrollX {
				sc.scrollPosition.X = sc.scrollOrigin.X + drag.X
			}
			if canScrollY {
				sc.scrollPosition.Y = sc.scrollOrigin.Y + drag.Y
			}
			sc.clampPosition()
			moved := sc.scrollPosition.Sub(previous)
			if moved.X > -dragStillThreshold && moved.X < dragStillThreshold &&
				moved.Y > -dragStillThreshold && moved.Y < dragStillThreshold &&
				sc.momentumTime > dragStillTime {
				sc.momentumTime = 0
				sc.pointerOrigin = c.pointer.Position
				sc.scrollOrigin = sc.scrollPosition
			} else {
				sc.momentumTime += dt
			}
		}
	}
	sc.clampPosition()
}

// clampPosition limits the scroll position to the overflow of the content.
func (sc *scrollContainer) clampPosition() {
	sc.scrollPosition.X = clamp(sc.scrollPosition.X, -max(sc.contentSize.Width-sc.boundingBox.Width, 0), 0)
	sc.scrollPosition.Y = clamp(sc.scrollPosition.Y, -max(sc.contentSize.Height-sc.boundingBox.Height, 0), 0)
}
