// SPDX-License-Identifier: Unlicense OR MIT

package layout

// staleMeasureGenerations is the number of frames a measurement may
// go unused before it is reclaimed.
const staleMeasureGenerations = 2

// measureTextCached returns the measurement of text in config, from
// the cache when possible. A failed measurement has no words and zero
// dimensions.
func (c *Context) measureTextCached(text string, config *TextConfig) measureItem {
	empty := measureItem{words: -1, next: -1}
	if c.measureText == nil {
		if !c.warnings.textMeasurementFunctionNotSet {
			c.warnings.textMeasurementFunctionNotSet = true
			c.report(ErrTextMeasurementFunctionNotProvided, "text was declared before SetMeasureTextFunction was called")
		}
		return empty
	}
	id := hashText(text, config)
	bucket := id % uint32(len(c.measureBuckets))
	prev := int32(-1)
	i := c.measureBuckets[bucket]
	for i != -1 {
		item := &c.measureItems[i]
		if item.id == id {
			item.generation = c.generation
			return *item
		}
		next := item.next
		if c.generation-item.generation > staleMeasureGenerations {
			c.freeWords(item.words)
			*item = measureItem{words: -1, next: -1}
			c.measureFreeList = append(c.measureFreeList, i)
			if prev == -1 {
				c.measureBuckets[bucket] = next
			} else {
				c.measureItems[prev].next = next
			}
		} else {
			prev = i
		}
		i = next
	}

	var index int32
	if n := len(c.measureFreeList); n > 0 {
		index = c.measureFreeList[n-1]
		c.measureFreeList = c.measureFreeList[:n-1]
	} else {
		if len(c.measureItems) == cap(c.measureItems) {
			c.measureCapacityExceeded("ran out of text measurement cache entries; raise SetMaxElementCount")
			return empty
		}
		c.measureItems = append(c.measureItems, empty)
		index = int32(len(c.measureItems) - 1)
	}
	item, ok := c.measureWords(text, config, id)
	if !ok {
		c.freeWords(item.words)
		c.measureItems[index] = empty
		c.measureFreeList = append(c.measureFreeList, index)
		c.measureCapacityExceeded("ran out of measured word capacity; raise SetMaxMeasureTextCacheWordCount")
		return empty
	}
	c.measureItems[index] = item
	if prev == -1 {
		c.measureBuckets[bucket] = index
	} else {
		c.measureItems[prev].next = index
	}
	return item
}

// measureWords splits text at spaces and newlines and measures every
// word. Words keep their trailing space; a newline becomes a zero
// length word. The unwrapped width is the widest line.
func (c *Context) measureWords(text string, config *TextConfig, id uint32) (measureItem, bool) {
	item := measureItem{words: -1, next: -1, id: id, generation: c.generation}
	spaceWidth := c.measureText(" ", config, c.measureTextUserData).Width
	var lineWidth, measuredWidth, measuredHeight float32
	tail := &item.words
	add := func(w measuredWord) bool {
		i := c.allocWord(w)
		if i < 0 {
			return false
		}
		*tail = i
		tail = &c.words[i].next
		return true
	}
	start := 0
	for end := 0; end < len(text); end++ {
		ch := text[end]
		if ch != ' ' && ch != '\n' {
			continue
		}
		length := end - start
		var dims Dimensions
		if length > 0 {
			dims = c.measureText(text[start:end], config, c.measureTextUserData)
		}
		item.minWidth = max(item.minWidth, dims.Width)
		measuredHeight = max(measuredHeight, dims.Height)
		if ch == ' ' {
			dims.Width += spaceWidth
			if !add(measuredWord{startOffset: int32(start), length: int32(length + 1), width: dims.Width, next: -1}) {
				return item, false
			}
			lineWidth += dims.Width
		} else {
			if length > 0 {
				if !add(measuredWord{startOffset: int32(start), length: int32(length), width: dims.Width, next: -1}) {
					return item, false
				}
			}
			if !add(measuredWord{startOffset: int32(end + 1), next: -1}) {
				return item, false
			}
			lineWidth += dims.Width
			measuredWidth = max(measuredWidth, lineWidth)
			item.containsNewlines = true
			lineWidth = 0
		}
		start = end + 1
	}
	if len(text) > start {
		dims := c.measureText(text[start:], config, c.measureTextUserData)
		if !add(measuredWord{startOffset: int32(start), length: int32(len(text) - start), width: dims.Width, next: -1}) {
			return item, false
		}
		lineWidth += dims.Width
		measuredHeight = max(measuredHeight, dims.Height)
		item.minWidth = max(item.minWidth, dims.Width)
	}
	measuredWidth = max(measuredWidth, lineWidth) - float32(config.LetterSpacing)
	item.unwrappedDimensions = Dimensions{Width: measuredWidth, Height: measuredHeight}
	return item, true
}

// allocWord stores w in the word pool and returns its index, or -1 if
// the pool is full.
func (c *Context) allocWord(w measuredWord) int32 {
	if n := len(c.wordFreeList); n > 0 {
		i := c.wordFreeList[n-1]
		c.wordFreeList = c.wordFreeList[:n-1]
		c.words[i] = w
		return i
	}
	if len(c.words) == cap(c.words) {
		return -1
	}
	c.words = append(c.words, w)
	return int32(len(c.words) - 1)
}

// freeWords returns the word list starting at i to the free list.
func (c *Context) freeWords(i int32) {
	for i != -1 {
		c.wordFreeList = append(c.wordFreeList, i)
		i = c.words[i].next
	}
}

func (c *Context) measureCapacityExceeded(msg string) {
	if c.warnings.maxTextMeasureCacheExceeded {
		return
	}
	c.warnings.maxTextMeasureCacheExceeded = true
	c.report(ErrTextMeasurementCapacityExceeded, msg)
}
