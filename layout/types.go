// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"gioui.org/strata/f32"
)

// maxFloat stands in for an unbounded maximum size.
const maxFloat = math.MaxFloat32

// ElementID identifies an element across frames.
type ElementID struct {
	// ID is the hashed id. Zero means no id.
	ID uint32
	// Offset is the index the id was derived with, if any.
	Offset uint32
	// BaseID is the hash of the label alone, ignoring Offset.
	BaseID uint32
	// StringID is the label the id was hashed from.
	StringID string
}

// Dimensions is a width and a height in pixels.
type Dimensions struct {
	Width, Height float32
}

// BoundingBox is a rectangle in pixels with its origin at the top
// left.
type BoundingBox struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside b, edges included.
func (b BoundingBox) Contains(p f32.Point) bool {
	return p.In(b.Rect())
}

// Rect converts b to an f32.Rectangle.
func (b BoundingBox) Rect() f32.Rectangle {
	return f32.Rect(b.X, b.Y, b.Width, b.Height)
}

// Color is an RGBA color with components in the range [0, 255].
type Color struct {
	R, G, B, A float32
}

// CornerRadius holds the radius of each corner in pixels.
type CornerRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float32
}

// Radius returns a CornerRadius with all corners set to r.
func Radius(r float32) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}

// LayoutDirection is the axis children are placed along.
type LayoutDirection uint8

const (
	LeftToRight LayoutDirection = iota
	TopToBottom
)

// AlignX is the horizontal alignment of children.
type AlignX uint8

const (
	AlignXLeft AlignX = iota
	AlignXRight
	AlignXCenter
)

// AlignY is the vertical alignment of children.
type AlignY uint8

const (
	AlignYTop AlignY = iota
	AlignYBottom
	AlignYCenter
)

// ChildAlignment aligns children inside their parent.
type ChildAlignment struct {
	X AlignX
	Y AlignY
}

// SizingType selects how an axis is sized.
type SizingType uint8

const (
	// SizingFit wraps the content, within [Min, Max].
	SizingFit SizingType = iota
	// SizingGrow fills the space left by siblings, within [Min, Max].
	SizingGrow
	// SizingPercent takes a fraction of the parent.
	SizingPercent
	// SizingFixed is exactly Min (== Max) pixels.
	SizingFixed
)

// SizingAxis is the sizing of one axis. A Max of zero means
// unbounded.
type SizingAxis struct {
	Type     SizingType
	Min, Max float32
	Percent  float32
}

// Sizing is the sizing of both axes.
type Sizing struct {
	Width, Height SizingAxis
}

func axisMinMax(t SizingType, minmax []float32) SizingAxis {
	s := SizingAxis{Type: t}
	if len(minmax) > 0 {
		s.Min = minmax[0]
	}
	if len(minmax) > 1 {
		s.Max = minmax[1]
	}
	return s
}

// Fit sizes an axis to its content. The optional arguments are the
// minimum and maximum size.
func Fit(minmax ...float32) SizingAxis {
	return axisMinMax(SizingFit, minmax)
}

// Grow expands an axis into the available space. The optional
// arguments are the minimum and maximum size.
func Grow(minmax ...float32) SizingAxis {
	return axisMinMax(SizingGrow, minmax)
}

// Fixed sizes an axis to exactly v pixels.
func Fixed(v float32) SizingAxis {
	return SizingAxis{Type: SizingFixed, Min: v, Max: v}
}

// Percent sizes an axis to the fraction p, in [0, 1], of the parent's
// inner size.
func Percent(p float32) SizingAxis {
	return SizingAxis{Type: SizingPercent, Percent: p}
}

// Padding is the space between an element's edges and its children.
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// PaddingAll returns uniform padding.
func PaddingAll(p uint16) Padding {
	return Padding{Left: p, Right: p, Top: p, Bottom: p}
}

// LayoutConfig controls the size of an element and the placement of
// its children.
type LayoutConfig struct {
	Sizing         Sizing
	Padding        Padding
	ChildGap       uint16
	ChildAlignment ChildAlignment
	Direction      LayoutDirection
}

// WrapMode controls how text breaks into lines.
type WrapMode uint8

const (
	// WrapWords breaks at spaces and newlines to fit the width.
	WrapWords WrapMode = iota
	// WrapNewlines breaks only at newlines.
	WrapNewlines
	// WrapNone never breaks.
	WrapNone
)

// TextAlignment aligns wrapped lines inside their element.
type TextAlignment uint8

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// TextConfig configures a text element.
type TextConfig struct {
	// UserData is forwarded to the text render commands.
	UserData      any
	Color         Color
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	// LineHeight overrides the measured line height when non-zero.
	LineHeight uint16
	WrapMode   WrapMode
	Alignment  TextAlignment
	// Static marks the text as a string constant. The measurement
	// cache then keys on the string's address instead of hashing its
	// contents.
	Static bool
}

// ImageConfig attaches an image to an element.
type ImageConfig struct {
	ImageData any
}

// AttachPoint is one of the nine anchor points of a box.
type AttachPoint uint8

const (
	AttachLeftTop AttachPoint = iota
	AttachLeftCenter
	AttachLeftBottom
	AttachCenterTop
	AttachCenterCenter
	AttachCenterBottom
	AttachRightTop
	AttachRightCenter
	AttachRightBottom
)

// AttachPoints pairs the anchor on the floating element with the
// anchor on its target.
type AttachPoints struct {
	Element AttachPoint
	Parent  AttachPoint
}

// PointerCaptureMode controls whether a floating element hides the
// elements below it from pointer hit tests.
type PointerCaptureMode uint8

const (
	PointerCaptureCapture PointerCaptureMode = iota
	PointerCapturePassthrough
)

// AttachTo selects the target of a floating element.
type AttachTo uint8

const (
	// AttachToNone disables floating.
	AttachToNone AttachTo = iota
	// AttachToParent floats relative to the declaring parent.
	AttachToParent
	// AttachToElementWithID floats relative to FloatingConfig.ParentID.
	AttachToElementWithID
	// AttachToRoot floats relative to the layout root.
	AttachToRoot
)

// ClipTo selects the clip region of a floating element.
type ClipTo uint8

const (
	// ClipToAttachedParent inherits the clip of the target.
	ClipToAttachedParent ClipTo = iota
	// ClipToNone escapes every clip.
	ClipToNone
)

// FloatingConfig turns an element into an overlay positioned
// relative to another element.
type FloatingConfig struct {
	Offset f32.Point
	// Expand grows the bounding box in each direction without
	// affecting layout.
	Expand             Dimensions
	ParentID           uint32
	ZIndex             int16
	AttachPoints       AttachPoints
	PointerCaptureMode PointerCaptureMode
	AttachTo           AttachTo
	ClipTo             ClipTo
}

// ClipConfig clips children to the element bounds and enables
// scrolling on the clipped axes.
type ClipConfig struct {
	Horizontal, Vertical bool
	// ChildOffset is the scroll offset supplied by the caller when
	// external scroll handling is enabled.
	ChildOffset f32.Point
}

// BorderWidth is the width of each border side. BetweenChildren
// draws separators between consecutive children.
type BorderWidth struct {
	Left, Right, Top, Bottom, BetweenChildren uint16
}

// BorderOutside returns a border of width w on every side.
func BorderOutside(w uint16) BorderWidth {
	return BorderWidth{Left: w, Right: w, Top: w, Bottom: w}
}

// BorderAll returns a border of width w on every side and between
// children.
func BorderAll(w uint16) BorderWidth {
	return BorderWidth{Left: w, Right: w, Top: w, Bottom: w, BetweenChildren: w}
}

// BorderConfig draws a border around an element.
type BorderConfig struct {
	Color Color
	Width BorderWidth
}

// CustomConfig attaches caller data rendered as a Custom command.
type CustomConfig struct {
	CustomData any
}

// Declaration is the full configuration of an element.
type Declaration struct {
	ID              ElementID
	Layout          LayoutConfig
	BackgroundColor Color
	CornerRadius    CornerRadius
	// AspectRatio is width / height, or zero for none.
	AspectRatio float32
	Image       ImageConfig
	Floating    FloatingConfig
	Custom      CustomConfig
	Clip        ClipConfig
	Border      BorderConfig
	// UserData is forwarded to the element's render commands.
	UserData any
}

// ElementData is the result of GetElementData.
type ElementData struct {
	BoundingBox BoundingBox
	Found       bool
}

// ScrollContainerData describes a scroll container as of the last
// layout.
type ScrollContainerData struct {
	ScrollPosition            f32.Point
	ScrollContainerDimensions Dimensions
	ContentDimensions         Dimensions
	Config                    ClipConfig
	Found                     bool
}

// PointerState is the press state of the pointer.
type PointerState uint8

const (
	PointerReleased PointerState = iota
	PointerReleasedThisFrame
	PointerPressedThisFrame
	PointerPressed
)

// PointerData is the pointer position and press state.
type PointerData struct {
	Position f32.Point
	State    PointerState
}

// MeasureTextFunc measures a single line of text.
type MeasureTextFunc func(text string, config *TextConfig, userData any) Dimensions

// QueryScrollOffsetFunc supplies the scroll offset of a container
// when external scroll handling is enabled.
type QueryScrollOffsetFunc func(elementID uint32, userData any) f32.Point

// HoverFunc is called for every hovered element during
// SetPointerState.
type HoverFunc func(id ElementID, pointer PointerData, userData any)

func (d LayoutDirection) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case TopToBottom:
		return "TopToBottom"
	default:
		panic("invalid LayoutDirection")
	}
}

func (s SizingType) String() string {
	switch s {
	case SizingFit:
		return "Fit"
	case SizingGrow:
		return "Grow"
	case SizingPercent:
		return "Percent"
	case SizingFixed:
		return "Fixed"
	default:
		panic("invalid SizingType")
	}
}

func (s PointerState) String() string {
	switch s {
	case PointerReleased:
		return "Released"
	case PointerReleasedThisFrame:
		return "ReleasedThisFrame"
	case PointerPressedThisFrame:
		return "PressedThisFrame"
	case PointerPressed:
		return "Pressed"
	default:
		panic("invalid PointerState")
	}
}
