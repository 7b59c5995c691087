// SPDX-License-Identifier: Unlicense OR MIT

package layout

// wrapText breaks every text element into lines fitting its resolved
// width and sets its height from the line count.
func (c *Context) wrapText() {
	c.wrappedLines = c.wrappedLines[:0]
	for i := range c.textData {
		td := &c.textData[i]
		start := len(c.wrappedLines)
		td.lines = c.wrappedLines[start:start]
		e := &c.elements[td.elementIndex]
		config := c.textConfig(e)
		measured := c.measureTextCached(td.text, config)
		lineHeight := td.preferredDimensions.Height
		if config.LineHeight > 0 {
			lineHeight = float32(config.LineHeight)
		}
		maxWidth := e.dimensions.Width
		if config.WrapMode == WrapNewlines {
			maxWidth = maxFloat
		}

		if config.WrapMode == WrapNone || (!measured.containsNewlines && td.preferredDimensions.Width <= maxWidth) {
			if !c.addLine(td, wrappedLine{
				dimensions: Dimensions{Width: e.dimensions.Width, Height: lineHeight},
				line:       td.text,
			}) {
				continue
			}
			e.dimensions.Height = lineHeight
			continue
		}

		letterSpacing := float32(config.LetterSpacing)
		spaceWidth := c.measureText(" ", config, c.measureTextUserData).Width
		var lineWidth float32
		var lineLen, lineStart int32
		full := false
		for w := measured.words; w != -1 && !full; {
			word := &c.words[w]
			switch {
			case lineLen == 0 && lineWidth+word.width > maxWidth:
				// A word wider than the element takes a line of its
				// own.
				length, width := word.length, word.width
				if length > 0 && td.text[word.startOffset+length-1] == ' ' {
					length--
					width -= spaceWidth
				}
				full = !c.addLine(td, wrappedLine{
					dimensions: Dimensions{Width: width, Height: lineHeight},
					line:       td.text[word.startOffset : word.startOffset+length],
				})
				w = word.next
			case word.length == 0 || lineWidth+word.width > maxWidth:
				trailingSpace := lineLen > 0 && td.text[lineStart+lineLen-1] == ' '
				width, length := lineWidth, lineLen
				if lineLen > 0 {
					width -= letterSpacing
				}
				if trailingSpace {
					width -= spaceWidth
					length--
				}
				full = !c.addLine(td, wrappedLine{
					dimensions: Dimensions{Width: width, Height: lineHeight},
					line:       td.text[lineStart : lineStart+length],
				})
				if lineLen == 0 || word.length == 0 {
					w = word.next
				}
				lineWidth = 0
				lineLen = 0
				lineStart = word.startOffset
			default:
				lineWidth += word.width + letterSpacing
				lineLen += word.length
				w = word.next
			}
			if lineLen == 0 && w != -1 && !full {
				lineStart = c.words[w].startOffset
			}
		}
		if lineLen > 0 && !full {
			c.addLine(td, wrappedLine{
				dimensions: Dimensions{Width: lineWidth - letterSpacing, Height: lineHeight},
				line:       td.text[lineStart : lineStart+lineLen],
			})
		}
		e.dimensions.Height = lineHeight * float32(len(td.lines))
	}
}

// addLine appends l to the lines of td. It reports false when the
// line pool is full.
func (c *Context) addLine(td *textElementData, l wrappedLine) bool {
	if len(c.wrappedLines) == cap(c.wrappedLines) {
		return false
	}
	c.wrappedLines = append(c.wrappedLines, l)
	td.lines = td.lines[:len(td.lines)+1]
	return true
}
