package event

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrInvalidFrequency = errors.New("event: frequency must be a positive integer")
	ErrHandlerPanic     = errors.New("event: handler panicked")
	ErrInvalidContext   = errors.New("event: context cannot be matched by Off")
)

// HandlerPanicError records a handler panic recovered during Dispatch.
// It matches ErrHandlerPanic with errors.Is.
type HandlerPanicError struct {
	Event  string // Level the subscription was registered on
	Origin string // Name passed to Dispatch
	Index  int    // Position within the level's snapshot
	Value  any    // Value passed to panic
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("event: handler panicked: event=%s origin=%s index=%d: %v", e.Event, e.Origin, e.Index, e.Value)
}

// Unwrap lets errors.Is match ErrHandlerPanic, and exposes a panicked error value.
func (e *HandlerPanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrHandlerPanic, err}
	}
	return []error{ErrHandlerPanic}
}
