// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strconv"

	"go.uber.org/zap"
)

// rootLabel is the id label of the element enclosing every frame.
const rootLabel = "strata.Root"

// defaultWheelScale converts wheel deltas to pixels.
const defaultWheelScale = 10

// Context holds the state of a layout engine. Its memory is carved
// from an Arena once and reused every frame. A Context must not be
// used from more than one goroutine at a time.
type Context struct {
	arena        *Arena
	logger       *zap.Logger
	errorHandler ErrorHandler
	// quiet suppresses error reports while the debug overlay declares
	// its elements.
	quiet bool

	maxElementCount              int
	maxMeasureTextCacheWordCount int
	// rebuild is set when the capacities changed and the pools must
	// be carved again before the next frame.
	rebuild bool

	layoutDimensions Dimensions
	pointer          PointerData
	generation       uint32
	warnings         warnings

	measureText         MeasureTextFunc
	measureTextUserData any
	queryScrollOffset   QueryScrollOffsetFunc
	queryScrollUserData any

	externalScrollHandling bool
	debugModeEnabled       bool
	cullingDisabled        bool
	wheelScale             float32

	debug debugState

	persistentPools
	ephemeralPools
}

var current *Context

// GetCurrentContext returns the context made current by Initialize or
// SetCurrentContext.
func GetCurrentContext() *Context {
	return current
}

// SetCurrentContext makes c the current context.
func SetCurrentContext(c *Context) {
	current = c
}

// Initialize carves a Context from arena and makes it current. It
// fails with an *Error of kind ErrArenaCapacityExceeded if the arena
// is smaller than MinMemorySize.
func Initialize(arena *Arena, dims Dimensions, handler ErrorHandler) (*Context, error) {
	c := &Context{
		arena:                        arena,
		logger:                       zap.NewNop(),
		errorHandler:                 handler,
		maxElementCount:              defaultMaxElementCount,
		maxMeasureTextCacheWordCount: defaultMaxMeasureTextWordCount,
		layoutDimensions:             dims,
		wheelScale:                   defaultWheelScale,
	}
	if err := c.carvePools(); err != nil {
		return nil, err
	}
	SetCurrentContext(c)
	return c, nil
}

// carvePools carves fresh pools from the arena.
func (c *Context) carvePools() error {
	c.arena.reset()
	var p persistentPools
	var e ephemeralPools
	if !p.carve(c.arena, c.maxElementCount, c.maxMeasureTextCacheWordCount) ||
		!e.carve(c.arena, c.maxElementCount) {
		need := MinMemorySizeFor(c.maxElementCount, c.maxMeasureTextCacheWordCount)
		err := &Error{
			Kind: ErrArenaCapacityExceeded,
			Message: "arena capacity " + strconv.Itoa(c.arena.Capacity()) +
				" is smaller than the required " + strconv.Itoa(need) + " bytes",
			UserData: c.errorHandler.UserData,
		}
		c.report(err.Kind, err.Message)
		return err
	}
	c.persistentPools = p
	c.ephemeralPools = e
	return nil
}

// rebuildPools carves pools for changed capacities, carrying the
// scroll state over. The hash map and the measurement cache start
// empty.
func (c *Context) rebuildPools() {
	c.rebuild = false
	var scroll [maxScrollContainers]scrollContainer
	n := copy(scroll[:], c.scrollContainers)
	if err := c.carvePools(); err != nil {
		c.maxElementCount = cap(c.elements)
		c.maxMeasureTextCacheWordCount = cap(c.words)
		// The previous pools fit; carve them again.
		if err := c.carvePools(); err != nil {
			return
		}
	}
	c.scrollContainers = append(c.scrollContainers, scroll[:n]...)
}

// SetLogger sets the logger receiving error reports and frame
// summaries. A nil logger disables logging.
func (c *Context) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetLayoutDimensions sets the size of the layout root.
func (c *Context) SetLayoutDimensions(dims Dimensions) {
	c.layoutDimensions = dims
}

// SetMeasureTextFunction sets the text measurement callback.
func (c *Context) SetMeasureTextFunction(fn MeasureTextFunc, userData any) {
	c.measureText = fn
	c.measureTextUserData = userData
}

// SetQueryScrollOffsetFunction sets the callback supplying scroll
// offsets when external scroll handling is enabled.
func (c *Context) SetQueryScrollOffsetFunction(fn QueryScrollOffsetFunc, userData any) {
	c.queryScrollOffset = fn
	c.queryScrollUserData = userData
}

// SetExternalScrollHandlingEnabled moves scrolling to the caller.
// Clip elements then ask the query function for their offset and
// their children are positioned without it.
func (c *Context) SetExternalScrollHandlingEnabled(enabled bool) {
	c.externalScrollHandling = enabled
}

// SetDebugModeEnabled toggles the debug overlay.
func (c *Context) SetDebugModeEnabled(enabled bool) {
	c.debugModeEnabled = enabled
}

// IsDebugModeEnabled reports whether the debug overlay is enabled.
func (c *Context) IsDebugModeEnabled() bool {
	return c.debugModeEnabled
}

// SetCullingEnabled toggles the suppression of render commands for
// elements outside the layout dimensions. Culling is enabled by
// default.
func (c *Context) SetCullingEnabled(enabled bool) {
	c.cullingDisabled = !enabled
}

// SetWheelScale sets the pixels scrolled per unit of wheel delta.
func (c *Context) SetWheelScale(scale float32) {
	c.wheelScale = scale
}

// SetMaxElementCount sets the element capacity. The pools are carved
// again by the next BeginLayout.
func (c *Context) SetMaxElementCount(n int) {
	if n <= 0 || n == c.maxElementCount {
		return
	}
	c.maxElementCount = n
	c.rebuild = true
}

// MaxElementCount returns the element capacity.
func (c *Context) MaxElementCount() int {
	return c.maxElementCount
}

// SetMaxMeasureTextCacheWordCount sets the capacity of the measured
// word pool. The pools are carved again by the next BeginLayout.
func (c *Context) SetMaxMeasureTextCacheWordCount(n int) {
	if n <= 0 || n == c.maxMeasureTextCacheWordCount {
		return
	}
	c.maxMeasureTextCacheWordCount = n
	c.rebuild = true
}

// MaxMeasureTextCacheWordCount returns the measured word capacity.
func (c *Context) MaxMeasureTextCacheWordCount() int {
	return c.maxMeasureTextCacheWordCount
}

// ResetMeasureTextCache drops every cached measurement.
func (c *Context) ResetMeasureTextCache() {
	c.measureItems = c.measureItems[:0]
	c.measureFreeList = c.measureFreeList[:0]
	c.words = c.words[:0]
	c.wordFreeList = c.wordFreeList[:0]
	for i := range c.measureBuckets {
		c.measureBuckets[i] = -1
	}
}

// GetPointerState returns the pointer as of the last SetPointerState.
func (c *Context) GetPointerState() PointerData {
	return c.pointer
}

// BeginLayout starts a frame. The root element, sized to the layout
// dimensions, is open when it returns.
func (c *Context) BeginLayout() {
	if c.rebuild {
		c.rebuildPools()
	}
	c.ephemeralPools.reset()
	c.generation++
	c.warnings = warnings{}
	dims := c.layoutDimensions
	if c.debugModeEnabled {
		dims.Width -= debugPanelWidth
	}
	c.OpenElement()
	c.ConfigureOpenElement(Declaration{
		ID: ID(rootLabel),
		Layout: LayoutConfig{
			Sizing: Sizing{Width: Fixed(dims.Width), Height: Fixed(dims.Height)},
		},
	})
	// The duplicate keeps the open stack at least two deep, so every
	// declared element has a parent below it.
	c.openStack = append(c.openStack, 0)
	c.treeRoots = append(c.treeRoots, treeRoot{elementIndex: 0})
}

// EndLayout closes the root element, solves the layout and returns
// the render commands of the frame. The commands are valid until the
// next BeginLayout.
func (c *Context) EndLayout() []RenderCommand {
	c.CloseElement()
	exceededBeforeDebug := c.warnings.maxElementsExceeded
	if c.debugModeEnabled && !exceededBeforeDebug {
		c.quiet = true
		c.declareDebugView()
		c.quiet = false
	}
	if c.warnings.maxElementsExceeded {
		msg := "strata error: layout elements exceeded max element count"
		if !exceededBeforeDebug {
			msg = "strata error: layout elements exceeded max element count after adding the debug view"
		}
		c.renderCommands = c.renderCommands[:0]
		c.addRenderCommand(RenderCommand{
			BoundingBox: BoundingBox{X: c.layoutDimensions.Width/2 - 236, Y: c.layoutDimensions.Height / 2},
			RenderData: RenderData{Text: TextData{
				Contents: msg,
				Color:    Color{R: 255, A: 255},
				FontSize: 16,
			}},
			CommandType: RenderCommandText,
		})
	} else {
		c.calculateFinalLayout()
	}
	if ce := c.logger.Check(zap.DebugLevel, "layout frame"); ce != nil {
		ce.Write(
			zap.Uint32("generation", c.generation),
			zap.Int("elements", len(c.elements)),
			zap.Int("commands", len(c.renderCommands)),
		)
	}
	return c.renderCommands
}

// openElement returns the innermost open element.
func (c *Context) openElement() *element {
	if len(c.openStack) == 0 {
		return nil
	}
	return &c.elements[c.openStack[len(c.openStack)-1]]
}

// openElementID returns the id of the innermost open element, or 0.
func (c *Context) openElementID() uint32 {
	if e := c.openElement(); e != nil {
		return e.id
	}
	return 0
}
