// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/strata/f32"
	"gioui.org/strata/internal/fling"
)

const (
	defaultMaxElementCount         = 8192
	defaultMaxMeasureTextWordCount = 16384
	maxScrollContainers            = 100
)

// configType tags an entry of an element's config list.
type configType uint8

const (
	configNone configType = iota
	configShared
	configText
	configAspect
	configImage
	configFloating
	configClip
	configBorder
	configCustom
)

// elementConfig references a config in the pool of its type.
type elementConfig struct {
	typ   configType
	index int32
}

type sharedConfig struct {
	BackgroundColor Color
	CornerRadius    CornerRadius
	UserData        any
}

// element is a node of the frame's element tree.
type element struct {
	layout        LayoutConfig
	dimensions    Dimensions
	minDimensions Dimensions
	// children indexes c.children once the element is closed.
	children []int32
	// childCount counts the closed children while the element is open.
	childCount int32
	configs    []elementConfig
	// textData indexes c.textData, or is -1 for containers.
	textData int32
	id       uint32
	// idAlias is the anonymous id replaced by an explicit id.
	idAlias uint32
	// clipID is the id of the nearest clipping ancestor.
	clipID           uint32
	floatingChildren uint16
}

func (e *element) isText() bool {
	return e.textData >= 0
}

// wrappedLine is a line of a text element after wrapping.
type wrappedLine struct {
	dimensions Dimensions
	line       string
}

type textElementData struct {
	text                string
	preferredDimensions Dimensions
	elementIndex        int32
	// lines indexes c.wrappedLines.
	lines []wrappedLine
}

// treeRoot is an entry point of the layout passes: the root element
// and every floating element.
type treeRoot struct {
	elementIndex int32
	parentID     uint32
	clipID       uint32
	zIndex       int16
}

// treeNode is a DFS stack entry of the position pass.
type treeNode struct {
	elementIndex    int32
	position        f32.Point
	nextChildOffset f32.Point
}

// debugData is per element state of the debug overlay.
type debugData struct {
	collision bool
	collapsed bool
}

// mapItem is an entry of the element hash map.
type mapItem struct {
	boundingBox  BoundingBox
	elementID    ElementID
	elementIndex int32
	onHover      HoverFunc
	hoverData    any
	next         int32
	generation   uint32
	idAlias      uint32
	debug        debugData
}

// measureItem is an entry of the text measurement cache.
type measureItem struct {
	unwrappedDimensions Dimensions
	minWidth            float32
	// words is the head of the word list in c.words, or -1.
	words            int32
	next             int32
	id               uint32
	generation       uint32
	containsNewlines bool
}

// measuredWord is a word of a measured text. A zero length word marks
// a line break.
type measuredWord struct {
	startOffset int32
	length      int32
	width       float32
	next        int32
}

// scrollContainer is the scroll state of a clip element, kept across
// frames.
type scrollContainer struct {
	elementID           uint32
	elementIndex        int32
	config              ClipConfig
	boundingBox         BoundingBox
	contentSize         Dimensions
	scrollPosition      f32.Point
	scrollOrigin        f32.Point
	pointerOrigin       f32.Point
	momentumX           fling.Momentum
	momentumY           fling.Momentum
	momentumTime        float32
	openThisFrame       bool
	pointerScrollActive bool
}

// persistentPools survive BeginLayout.
type persistentPools struct {
	items        []mapItem
	buckets      []int32
	itemFreeList []int32

	measureItems    []measureItem
	measureBuckets  []int32
	measureFreeList []int32
	words           []measuredWord
	wordFreeList    []int32

	scrollContainers []scrollContainer
	pointerOverIDs   []ElementID
}

// ephemeralPools are truncated by every BeginLayout.
type ephemeralPools struct {
	elements       []element
	elementConfigs []elementConfig

	sharedConfigs   []sharedConfig
	textConfigs     []TextConfig
	aspectConfigs   []float32
	imageConfigs    []ImageConfig
	floatingConfigs []FloatingConfig
	clipConfigs     []ClipConfig
	borderConfigs   []BorderConfig
	customConfigs   []CustomConfig

	children       []int32
	childBuffer    []int32
	openStack      []int32
	openClipStack  []uint32
	textData       []textElementData
	wrappedLines   []wrappedLine
	imageElements  []int32
	aspectElements []int32
	treeRoots      []treeRoot
	treeNodes      []treeNode
	visited        []bool
	resizable      []int32
	bfs            []int32
	renderCommands []RenderCommand
	// dynamicStrings backs the labels formatted by the debug overlay.
	dynamicStrings []byte
}

// carveInto carves n values into dst, clearing ok on failure.
func carveInto[T any](a *Arena, dst *[]T, n int, ok *bool) {
	s, good := carve[T](a, n)
	*dst = s
	*ok = *ok && good
}

// carveFilled is carveInto for pools used at their full length.
func carveFilled[T any](a *Arena, dst *[]T, n int, fill T, ok *bool) {
	carveInto(a, dst, n, ok)
	if !*ok || a.dryRun {
		return
	}
	*dst = (*dst)[:n]
	for i := range *dst {
		(*dst)[i] = fill
	}
}

func (p *persistentPools) carve(a *Arena, maxElements, maxWords int) bool {
	ok := true
	// Elements with an explicit id hold a second entry for their
	// anonymous id.
	carveInto(a, &p.items, 2*maxElements, &ok)
	carveFilled(a, &p.buckets, maxElements, -1, &ok)
	carveInto(a, &p.itemFreeList, 2*maxElements, &ok)
	carveInto(a, &p.measureItems, maxElements, &ok)
	carveFilled(a, &p.measureBuckets, maxElements, -1, &ok)
	carveInto(a, &p.measureFreeList, maxElements, &ok)
	carveInto(a, &p.words, maxWords, &ok)
	carveInto(a, &p.wordFreeList, maxWords, &ok)
	carveInto(a, &p.scrollContainers, maxScrollContainers, &ok)
	carveInto(a, &p.pointerOverIDs, maxElements, &ok)
	return ok
}

func (e *ephemeralPools) carve(a *Arena, maxElements int) bool {
	ok := true
	carveInto(a, &e.elements, maxElements, &ok)
	carveInto(a, &e.elementConfigs, maxElements, &ok)
	carveInto(a, &e.sharedConfigs, maxElements, &ok)
	carveInto(a, &e.textConfigs, maxElements, &ok)
	carveInto(a, &e.aspectConfigs, maxElements, &ok)
	carveInto(a, &e.imageConfigs, maxElements, &ok)
	carveInto(a, &e.floatingConfigs, maxElements, &ok)
	carveInto(a, &e.clipConfigs, maxElements, &ok)
	carveInto(a, &e.borderConfigs, maxElements, &ok)
	carveInto(a, &e.customConfigs, maxElements, &ok)
	carveInto(a, &e.children, maxElements, &ok)
	carveInto(a, &e.childBuffer, maxElements, &ok)
	carveInto(a, &e.openStack, maxElements, &ok)
	carveInto(a, &e.openClipStack, maxElements, &ok)
	carveInto(a, &e.textData, maxElements, &ok)
	carveInto(a, &e.wrappedLines, maxElements, &ok)
	carveInto(a, &e.imageElements, maxElements, &ok)
	carveInto(a, &e.aspectElements, maxElements, &ok)
	carveInto(a, &e.treeRoots, maxElements, &ok)
	carveInto(a, &e.treeNodes, maxElements, &ok)
	carveFilled(a, &e.visited, maxElements, false, &ok)
	carveInto(a, &e.resizable, maxElements, &ok)
	carveInto(a, &e.bfs, maxElements, &ok)
	carveInto(a, &e.renderCommands, maxElements, &ok)
	carveInto(a, &e.dynamicStrings, maxElements*32, &ok)
	return ok
}

// reset truncates every pool for a new frame.
func (e *ephemeralPools) reset() {
	e.elements = e.elements[:0]
	e.elementConfigs = e.elementConfigs[:0]
	e.sharedConfigs = e.sharedConfigs[:0]
	e.textConfigs = e.textConfigs[:0]
	e.aspectConfigs = e.aspectConfigs[:0]
	e.imageConfigs = e.imageConfigs[:0]
	e.floatingConfigs = e.floatingConfigs[:0]
	e.clipConfigs = e.clipConfigs[:0]
	e.borderConfigs = e.borderConfigs[:0]
	e.customConfigs = e.customConfigs[:0]
	e.children = e.children[:0]
	e.childBuffer = e.childBuffer[:0]
	e.openStack = e.openStack[:0]
	e.openClipStack = e.openClipStack[:0]
	e.textData = e.textData[:0]
	e.wrappedLines = e.wrappedLines[:0]
	e.imageElements = e.imageElements[:0]
	e.aspectElements = e.aspectElements[:0]
	e.treeRoots = e.treeRoots[:0]
	e.treeNodes = e.treeNodes[:0]
	e.resizable = e.resizable[:0]
	e.bfs = e.bfs[:0]
	e.renderCommands = e.renderCommands[:0]
	e.dynamicStrings = e.dynamicStrings[:0]
}

// push appends v to the pool s and returns its index, or -1 if the
// pool is full.
func push[T any](c *Context, s *[]T, v T) int32 {
	if len(*s) == cap(*s) {
		c.report(ErrInternal, "internal pool capacity exceeded")
		return -1
	}
	*s = append(*s, v)
	return int32(len(*s) - 1)
}
