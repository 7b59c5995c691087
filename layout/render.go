// SPDX-License-Identifier: Unlicense OR MIT

package layout

// RenderCommandType tags the payload of a RenderCommand.
type RenderCommandType uint8

const (
	RenderCommandNone RenderCommandType = iota
	RenderCommandRectangle
	RenderCommandBorder
	RenderCommandText
	RenderCommandImage
	RenderCommandScissorStart
	RenderCommandScissorEnd
	RenderCommandCustom
)

// RenderCommand is one drawing operation. Commands are ordered so
// that drawing them first to last produces the correct result.
type RenderCommand struct {
	BoundingBox BoundingBox
	// RenderData holds the payload selected by CommandType.
	RenderData RenderData
	// UserData is the UserData of the originating declaration.
	UserData any
	// ID is the id of the originating element, or an id derived from
	// it for secondary commands.
	ID          uint32
	ZIndex      int16
	CommandType RenderCommandType
}

// RenderData is the type specific payload of a RenderCommand. Only
// the field matching the command type is set.
type RenderData struct {
	Rectangle RectangleData
	Border    BorderData
	Text      TextData
	Image     ImageData
	Clip      ClipData
	Custom    CustomData
}

// RectangleData is the payload of RenderCommandRectangle.
type RectangleData struct {
	BackgroundColor Color
	CornerRadius    CornerRadius
}

// BorderData is the payload of RenderCommandBorder.
type BorderData struct {
	Color        Color
	CornerRadius CornerRadius
	Width        BorderWidth
}

// TextData is the payload of RenderCommandText. Contents is a single
// wrapped line.
type TextData struct {
	Contents      string
	Color         Color
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	LineHeight    uint16
}

// ImageData is the payload of RenderCommandImage.
type ImageData struct {
	BackgroundColor Color
	CornerRadius    CornerRadius
	ImageData       any
}

// ClipData is the payload of RenderCommandScissorStart.
type ClipData struct {
	Horizontal, Vertical bool
}

// CustomData is the payload of RenderCommandCustom.
type CustomData struct {
	BackgroundColor Color
	CornerRadius    CornerRadius
	CustomData      any
}

func (t RenderCommandType) String() string {
	switch t {
	case RenderCommandNone:
		return "None"
	case RenderCommandRectangle:
		return "Rectangle"
	case RenderCommandBorder:
		return "Border"
	case RenderCommandText:
		return "Text"
	case RenderCommandImage:
		return "Image"
	case RenderCommandScissorStart:
		return "ScissorStart"
	case RenderCommandScissorEnd:
		return "ScissorEnd"
	case RenderCommandCustom:
		return "Custom"
	default:
		panic("invalid RenderCommandType")
	}
}

// addRenderCommand appends cmd unless the command buffer is full.
func (c *Context) addRenderCommand(cmd RenderCommand) {
	if len(c.renderCommands) < cap(c.renderCommands) {
		c.renderCommands = append(c.renderCommands, cmd)
		return
	}
	if !c.warnings.maxRenderCommandsExceeded {
		c.warnings.maxRenderCommandsExceeded = true
		c.report(ErrElementsCapacityExceeded, "ran out of capacity while creating render commands; raise SetMaxElementCount")
	}
}
