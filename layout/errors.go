// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "go.uber.org/zap"

// ErrorKind classifies the errors reported through an ErrorHandler.
type ErrorKind uint8

const (
	// ErrTextMeasurementFunctionNotProvided is reported when text is
	// declared before SetMeasureTextFunction.
	ErrTextMeasurementFunctionNotProvided ErrorKind = iota
	// ErrArenaCapacityExceeded is reported when the pools do not fit
	// the arena.
	ErrArenaCapacityExceeded
	// ErrElementsCapacityExceeded is reported when a frame declares
	// more elements or render commands than the configured maximum.
	ErrElementsCapacityExceeded
	// ErrTextMeasurementCapacityExceeded is reported when the
	// measurement cache or its word pool is full.
	ErrTextMeasurementCapacityExceeded
	// ErrDuplicateID is reported when two elements share an id in
	// one frame.
	ErrDuplicateID
	// ErrFloatingContainerParentNotFound is reported when a floating
	// element targets an id that is not declared.
	ErrFloatingContainerParentNotFound
	// ErrPercentageOver1 is reported for Percent sizing above 1.
	ErrPercentageOver1
	// ErrInternal is reported for inconsistent internal state.
	ErrInternal
)

// Error is the value passed to an ErrorHandler.
type Error struct {
	Kind    ErrorKind
	Message string
	// UserData is the UserData of the ErrorHandler.
	UserData any
}

// ErrorHandler receives the errors of a Context. Errors never abort
// a layout; the offending operation is skipped or defaulted.
type ErrorHandler struct {
	Func     func(err Error)
	UserData any
}

func (e *Error) Error() string {
	return "layout: " + e.Kind.String() + ": " + e.Message
}

func (k ErrorKind) String() string {
	switch k {
	case ErrTextMeasurementFunctionNotProvided:
		return "TextMeasurementFunctionNotProvided"
	case ErrArenaCapacityExceeded:
		return "ArenaCapacityExceeded"
	case ErrElementsCapacityExceeded:
		return "ElementsCapacityExceeded"
	case ErrTextMeasurementCapacityExceeded:
		return "TextMeasurementCapacityExceeded"
	case ErrDuplicateID:
		return "DuplicateID"
	case ErrFloatingContainerParentNotFound:
		return "FloatingContainerParentNotFound"
	case ErrPercentageOver1:
		return "PercentageOver1"
	case ErrInternal:
		return "InternalError"
	default:
		panic("invalid ErrorKind")
	}
}

// report delivers an error to the handler and the logger.
func (c *Context) report(kind ErrorKind, msg string) {
	if c.quiet {
		return
	}
	c.logger.Warn("layout error",
		zap.Stringer("kind", kind),
		zap.String("message", msg),
		zap.Uint32("generation", c.generation),
	)
	if c.errorHandler.Func != nil {
		c.errorHandler.Func(Error{Kind: kind, Message: msg, UserData: c.errorHandler.UserData})
	}
}

// warnings are sticky per frame so that capacity errors are reported
// once.
type warnings struct {
	maxElementsExceeded           bool
	hashMapFull                   bool
	maxRenderCommandsExceeded     bool
	maxTextMeasureCacheExceeded   bool
	textMeasurementFunctionNotSet bool
}
