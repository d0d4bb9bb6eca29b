package event

import (
	"fmt"

	"github.com/yaoapp/emitter/event/types"
)

// Several subscribes handler so that it runs on the first times notifications
// only. Later notifications are swallowed; the subscription stays registered
// until Off removes it. times <= 0 never runs the handler.
func (e *Emitter) Several(name string, ctx any, handler types.Handler, times int) *Emitter {
	if handler == nil {
		return e.On(name, ctx, nil)
	}
	return e.On(name, ctx, several(handler, times))
}

// Through subscribes handler so that it runs on the first notification and
// on every frequency-th one after it. A non-positive frequency registers
// nothing and is reported by Err.
func (e *Emitter) Through(name string, ctx any, handler types.Handler, frequency int) *Emitter {
	if err := e.TryThrough(name, ctx, handler, frequency); err != nil {
		e.fail(err)
	}
	return e
}

// TryThrough is Through returning the invalid-frequency error instead of recording it.
func (e *Emitter) TryThrough(name string, ctx any, handler types.Handler, frequency int) error {
	if frequency <= 0 {
		return fmt.Errorf("%w: through %s: got %d", ErrInvalidFrequency, name, frequency)
	}
	if handler == nil {
		e.On(name, ctx, nil)
		return nil
	}
	e.On(name, ctx, through(handler, frequency))
	return nil
}

func several(handler types.Handler, times int) types.Handler {
	calls := 0
	return func() {
		if calls >= times {
			return
		}
		calls++
		handler()
	}
}

func through(handler types.Handler, frequency int) types.Handler {
	seen := 0
	return func() {
		fire := seen%frequency == 0
		seen++
		if fire {
			handler()
		}
	}
}

// Bind returns a handler that calls fn with ctx as its receiver. The value is
// captured now, so later reassignment by the caller does not change it.
func Bind[T any](ctx T, fn func(T)) types.Handler {
	return func() {
		fn(ctx)
	}
}
