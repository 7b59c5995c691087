// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"gioui.org/strata/f32"
)

// Element declares an element configured by d. The children function,
// if not nil, declares its children. The element is closed when
// children returns, including by panic.
func (c *Context) Element(d Declaration, children func()) {
	c.OpenElement()
	defer c.CloseElement()
	c.ConfigureOpenElement(d)
	if children != nil {
		children()
	}
}

// Text declares a text leaf inside the open element.
func (c *Context) Text(text string, config TextConfig) {
	c.OpenTextElement(text, config)
}

// elementsExceeded sets the sticky element capacity flag.
func (c *Context) elementsExceeded() {
	if c.warnings.maxElementsExceeded {
		return
	}
	c.warnings.maxElementsExceeded = true
	c.report(ErrElementsCapacityExceeded, "layout elements exceeded the max element count of "+strconv.Itoa(c.maxElementCount)+"; raise SetMaxElementCount")
}

// OpenElement pushes a new element as a child of the open element.
// It must be followed by ConfigureOpenElement.
func (c *Context) OpenElement() {
	if c.warnings.maxElementsExceeded || len(c.elements) >= cap(c.elements)-1 {
		c.elementsExceeded()
		return
	}
	c.elements = append(c.elements, element{textData: -1})
	index := int32(len(c.elements) - 1)
	c.openStack = append(c.openStack, index)
	e := &c.elements[index]
	if n := len(c.openClipStack); n > 0 {
		e.clipID = c.openClipStack[n-1]
	}
	c.generateAnonymousID(index)
}

// generateAnonymousID gives the open element at index an id derived
// from its position among its siblings.
func (c *Context) generateAnonymousID(index int32) {
	var offset, seed uint32
	if n := len(c.openStack); n >= 2 {
		parent := &c.elements[c.openStack[n-2]]
		offset = uint32(parent.childCount) + uint32(parent.floatingChildren)
		seed = parent.id
	}
	id := HashNumber(offset, seed)
	c.elements[index].id = id.ID
	c.addHashMapItem(id, index, 0)
}

// ConfigureOpenElement applies d to the element opened by the last
// OpenElement.
func (c *Context) ConfigureOpenElement(d Declaration) {
	if c.warnings.maxElementsExceeded || len(c.openStack) == 0 {
		return
	}
	index := c.openStack[len(c.openStack)-1]
	e := &c.elements[index]
	e.layout = d.Layout
	if sz := d.Layout.Sizing; (sz.Width.Type == SizingPercent && sz.Width.Percent > 1) ||
		(sz.Height.Type == SizingPercent && sz.Height.Percent > 1) {
		c.report(ErrPercentageOver1, "an element was sized with Percent above 1; percentages are fractions in [0, 1]")
	}
	start := len(c.elementConfigs)
	e.configs = c.elementConfigs[start:start]

	if d.BackgroundColor.A > 0 || d.CornerRadius != (CornerRadius{}) || d.UserData != nil {
		i := push(c, &c.sharedConfigs, sharedConfig{
			BackgroundColor: d.BackgroundColor,
			CornerRadius:    d.CornerRadius,
			UserData:        d.UserData,
		})
		c.attachConfig(e, configShared, i)
	}
	if d.Image.ImageData != nil {
		c.attachConfig(e, configImage, push(c, &c.imageConfigs, d.Image))
		push(c, &c.imageElements, index)
	}
	if d.AspectRatio > 0 {
		c.attachConfig(e, configAspect, push(c, &c.aspectConfigs, d.AspectRatio))
		push(c, &c.aspectElements, index)
	}
	if d.Floating.AttachTo != AttachToNone {
		c.configureFloating(index, d.Floating)
	}
	if d.Custom.CustomData != nil {
		c.attachConfig(e, configCustom, push(c, &c.customConfigs, d.Custom))
	}
	if d.ID.ID != 0 {
		c.attachID(index, d.ID)
	}
	if d.Clip.Horizontal || d.Clip.Vertical {
		c.attachConfig(e, configClip, push(c, &c.clipConfigs, d.Clip))
		push(c, &c.openClipStack, e.id)
		c.openScrollContainer(index, d.Clip)
	}
	if d.Border.Width != (BorderWidth{}) {
		c.attachConfig(e, configBorder, push(c, &c.borderConfigs, d.Border))
	}
}

// attachConfig appends a config reference to e. An element holds at
// most one config of each type.
func (c *Context) attachConfig(e *element, typ configType, index int32) {
	if index < 0 {
		return
	}
	for _, cfg := range e.configs {
		if cfg.typ == typ {
			c.report(ErrInternal, "element declared two configs of the same type")
			return
		}
	}
	if push(c, &c.elementConfigs, elementConfig{typ: typ, index: index}) < 0 {
		return
	}
	e.configs = e.configs[:len(e.configs)+1]
}

// attachID replaces the anonymous id of the element at index by id.
func (c *Context) attachID(index int32, id ElementID) {
	e := &c.elements[index]
	alias := e.id
	e.id = id.ID
	e.idAlias = alias
	c.addHashMapItem(id, index, alias)
}

func (c *Context) configureFloating(index int32, f FloatingConfig) {
	if len(c.openStack) < 2 {
		return
	}
	e := &c.elements[index]
	parent := &c.elements[c.openStack[len(c.openStack)-2]]
	var clipID uint32
	switch f.AttachTo {
	case AttachToParent:
		f.ParentID = parent.id
		if n := len(c.openClipStack); n > 0 {
			clipID = c.openClipStack[n-1]
		}
	case AttachToElementWithID:
		item := c.getHashMapItem(f.ParentID)
		if item == nil || item.generation+1 < c.generation {
			c.report(ErrFloatingContainerParentNotFound, "a floating element was attached to id "+strconv.FormatUint(uint64(f.ParentID), 10)+" but no element with that id was declared")
		} else if target := c.currentHashMapItem(f.ParentID); target != nil {
			clipID = c.elements[target.elementIndex].clipID
		}
	case AttachToRoot:
		f.ParentID = ID(rootLabel).ID
	}
	if f.ClipTo == ClipToNone {
		clipID = 0
	}
	e.clipID = clipID
	push(c, &c.openClipStack, clipID)
	push(c, &c.treeRoots, treeRoot{
		elementIndex: index,
		parentID:     f.ParentID,
		clipID:       clipID,
		zIndex:       f.ZIndex,
	})
	c.attachConfig(e, configFloating, push(c, &c.floatingConfigs, f))
}

// openScrollContainer finds or creates the scroll state of the clip
// element at index.
func (c *Context) openScrollContainer(index int32, clip ClipConfig) {
	id := c.elements[index].id
	sc := c.scrollContainer(id)
	if sc == nil {
		i := push(c, &c.scrollContainers, scrollContainer{
			elementID:    id,
			scrollOrigin: f32.Pt(-1, -1),
		})
		if i < 0 {
			return
		}
		sc = &c.scrollContainers[i]
	}
	sc.elementIndex = index
	sc.config = clip
	sc.openThisFrame = true
	if c.externalScrollHandling && c.queryScrollOffset != nil {
		sc.scrollPosition = c.queryScrollOffset(id, c.queryScrollUserData)
	}
}

// scrollContainer returns the scroll state of the element with id, or
// nil.
func (c *Context) scrollContainer(id uint32) *scrollContainer {
	for i := range c.scrollContainers {
		if c.scrollContainers[i].elementID == id {
			return &c.scrollContainers[i]
		}
	}
	return nil
}

// CloseElement closes the open element, computing its content size
// from its children.
func (c *Context) CloseElement() {
	if c.warnings.maxElementsExceeded || len(c.openStack) == 0 {
		return
	}
	index := c.openStack[len(c.openStack)-1]
	e := &c.elements[index]
	var clipH, clipV, floating bool
	for _, cfg := range e.configs {
		switch cfg.typ {
		case configClip:
			clip := c.clipConfigs[cfg.index]
			clipH, clipV = clip.Horizontal, clip.Vertical
			c.popClip()
		case configFloating:
			floating = true
			c.popClip()
		}
	}

	l := &e.layout
	lrPad := float32(l.Padding.Left) + float32(l.Padding.Right)
	tbPad := float32(l.Padding.Top) + float32(l.Padding.Bottom)
	n := int(e.childCount)
	buf := c.childBuffer[len(c.childBuffer)-n:]
	gap := float32(max(n-1, 0)) * float32(l.ChildGap)
	e.dimensions = Dimensions{Width: lrPad, Height: tbPad}
	e.minDimensions = e.dimensions
	if l.Direction == LeftToRight {
		for _, ci := range buf {
			child := &c.elements[ci]
			e.dimensions.Width += child.dimensions.Width
			e.dimensions.Height = max(e.dimensions.Height, child.dimensions.Height+tbPad)
			// Clipped axes may shrink below their content.
			if !clipH {
				e.minDimensions.Width += child.minDimensions.Width
			}
			if !clipV {
				e.minDimensions.Height = max(e.minDimensions.Height, child.minDimensions.Height+tbPad)
			}
		}
		e.dimensions.Width += gap
		if !clipH {
			e.minDimensions.Width += gap
		}
	} else {
		for _, ci := range buf {
			child := &c.elements[ci]
			e.dimensions.Height += child.dimensions.Height
			e.dimensions.Width = max(e.dimensions.Width, child.dimensions.Width+lrPad)
			if !clipV {
				e.minDimensions.Height += child.minDimensions.Height
			}
			if !clipH {
				e.minDimensions.Width = max(e.minDimensions.Width, child.minDimensions.Width+lrPad)
			}
		}
		e.dimensions.Height += gap
		if !clipV {
			e.minDimensions.Height += gap
		}
	}
	start := len(c.children)
	c.children = append(c.children, buf...)
	e.children = c.children[start:len(c.children):len(c.children)]
	c.childBuffer = c.childBuffer[:len(c.childBuffer)-n]

	closeAxis(&l.Sizing.Width, &e.dimensions.Width, &e.minDimensions.Width)
	closeAxis(&l.Sizing.Height, &e.dimensions.Height, &e.minDimensions.Height)
	c.updateAspectRatioBox(e)

	c.openStack = c.openStack[:len(c.openStack)-1]
	if len(c.openStack) > 1 {
		parent := c.openElement()
		if floating {
			parent.floatingChildren++
			return
		}
		parent.childCount++
		push(c, &c.childBuffer, index)
	}
}

func (c *Context) popClip() {
	if n := len(c.openClipStack); n > 0 {
		c.openClipStack = c.openClipStack[:n-1]
	}
}

// closeAxis clamps a closed element to its sizing. An unset maximum
// becomes unbounded. Percent axes are sized by the solver.
func closeAxis(s *SizingAxis, size, minSize *float32) {
	if s.Type == SizingPercent {
		*size = 0
		return
	}
	if s.Max <= 0 {
		s.Max = maxFloat
	}
	*size = clamp(*size, s.Min, s.Max)
	*minSize = clamp(*minSize, s.Min, s.Max)
}

// updateAspectRatioBox derives a missing dimension from the other.
func (c *Context) updateAspectRatioBox(e *element) {
	ratio := c.aspectRatio(e)
	if ratio == 0 {
		return
	}
	switch {
	case e.dimensions.Width == 0 && e.dimensions.Height != 0:
		e.dimensions.Width = e.dimensions.Height * ratio
	case e.dimensions.Width != 0 && e.dimensions.Height == 0:
		e.dimensions.Height = e.dimensions.Width / ratio
	}
}

// OpenTextElement declares a text leaf inside the open element.
func (c *Context) OpenTextElement(text string, config TextConfig) {
	if c.warnings.maxElementsExceeded || len(c.elements) >= cap(c.elements)-1 || len(c.openStack) == 0 {
		c.elementsExceeded()
		return
	}
	parentIndex := c.openStack[len(c.openStack)-1]
	c.elements = append(c.elements, element{textData: -1})
	index := int32(len(c.elements) - 1)
	e := &c.elements[index]
	if n := len(c.openClipStack); n > 0 {
		e.clipID = c.openClipStack[n-1]
	}
	ci := push(c, &c.textConfigs, config)
	if ci < 0 {
		return
	}
	measured := c.measureTextCached(text, &c.textConfigs[ci])
	parent := &c.elements[parentIndex]
	id := HashNumber(uint32(parent.childCount)+uint32(parent.floatingChildren), parent.id)
	e.id = id.ID
	c.addHashMapItem(id, index, 0)
	lineHeight := measured.unwrappedDimensions.Height
	if config.LineHeight > 0 {
		lineHeight = float32(config.LineHeight)
	}
	e.dimensions = Dimensions{Width: measured.unwrappedDimensions.Width, Height: lineHeight}
	e.minDimensions = Dimensions{Width: measured.minWidth, Height: lineHeight}
	e.layout.Sizing.Width.Max = maxFloat
	e.layout.Sizing.Height.Max = maxFloat
	e.textData = push(c, &c.textData, textElementData{
		text:                text,
		preferredDimensions: measured.unwrappedDimensions,
		elementIndex:        index,
	})
	start := len(c.elementConfigs)
	e.configs = c.elementConfigs[start:start]
	c.attachConfig(e, configText, ci)
	parent.childCount++
	push(c, &c.childBuffer, index)
}

// config returns the pool index of e's config of type typ, or -1.
func (e *element) config(typ configType) int32 {
	for _, cfg := range e.configs {
		if cfg.typ == typ {
			return cfg.index
		}
	}
	return -1
}

func (e *element) hasConfig(typ configType) bool {
	return e.config(typ) >= 0
}

func (c *Context) sharedConfig(e *element) *sharedConfig {
	if i := e.config(configShared); i >= 0 {
		return &c.sharedConfigs[i]
	}
	return nil
}

func (c *Context) textConfig(e *element) *TextConfig {
	if i := e.config(configText); i >= 0 {
		return &c.textConfigs[i]
	}
	return nil
}

func (c *Context) aspectRatio(e *element) float32 {
	if i := e.config(configAspect); i >= 0 {
		return c.aspectConfigs[i]
	}
	return 0
}

func (c *Context) floatingConfig(e *element) *FloatingConfig {
	if i := e.config(configFloating); i >= 0 {
		return &c.floatingConfigs[i]
	}
	return nil
}

func (c *Context) clipConfig(e *element) *ClipConfig {
	if i := e.config(configClip); i >= 0 {
		return &c.clipConfigs[i]
	}
	return nil
}

func (c *Context) borderConfig(e *element) *BorderConfig {
	if i := e.config(configBorder); i >= 0 {
		return &c.borderConfigs[i]
	}
	return nil
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
