package event

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/yaoapp/emitter/event/types"
	"github.com/yaoapp/emitter/logger"
)

// Emitter is a synchronous publish/subscribe dispatcher over dot-delimited
// event names. Emitting "a.b.c" notifies subscribers of "a.b.c", then "a.b",
// then "a". Unsubscribing from "a" also unsubscribes from everything below it.
//
// An Emitter is not safe for concurrent use. Handlers run on the goroutine
// that calls Emit, in registration order.
type Emitter struct {
	reg  *registry
	opts types.Options
	log  *logger.Logger
	errs *multierror.Error
}

// New returns an Emitter with an empty registry.
func New(opts ...types.Option) *Emitter {
	o := types.Options{Tag: types.DefaultTag}
	for _, opt := range opts {
		opt(&o)
	}
	return &Emitter{
		reg:  newRegistry(),
		opts: o,
		log:  logger.New(o.Tag),
	}
}

// On subscribes handler to name under ctx. Registering the same pair twice
// keeps both; each is called on every matching emission.
//
// A context Off could never match again (a function, a value holding one, or
// an empty slice) registers nothing and is reported by Err.
func (e *Emitter) On(name string, ctx any, handler types.Handler) *Emitter {
	if handler == nil {
		e.log.Warn("on %s: nil handler ignored", name)
		return e
	}
	if !matchable(ctx) {
		e.fail(fmt.Errorf("%w: on %s: %T", ErrInvalidContext, name, ctx))
		return e
	}
	e.reg.add(name, &subscription{handler: handler, ctx: ctx})
	e.log.Trace("on %s (%d subscriptions)", name, e.reg.count(name))
	return e
}

// Off removes every subscription ctx holds on name and on all names below it.
// Ancestors and siblings of name are left alone. Unknown names or contexts are no-ops.
func (e *Emitter) Off(name string, ctx any) *Emitter {
	removed := e.reg.remove(name, ctx)
	for _, child := range e.reg.descendants(name) {
		removed += e.reg.remove(child, ctx)
	}
	if removed > 0 {
		e.log.Trace("off %s: %d subscriptions removed", name, removed)
	}
	return e
}

// Emit notifies the subscribers of name and then of each of its ancestors.
// It returns once every handler has run. See Dispatch for panic handling.
func (e *Emitter) Emit(name string) *Emitter {
	_ = e.Dispatch(name)
	return e
}

// Dispatch is Emit returning the handler panics recovered along the way.
// The result is always nil unless the Emitter was created with Recover.
//
// Each level is delivered from a snapshot taken when that level starts, so a
// handler that calls On or Off affects later deliveries, not the current one.
func (e *Emitter) Dispatch(name string) error {
	var errs *multierror.Error
	for _, level := range Lineage(name) {
		for i, sub := range e.reg.snapshot(level) {
			d := types.Delivery{Event: level, Origin: name, Index: i, Ctx: sub.ctx}
			for _, o := range e.opts.Observer {
				o.OnDelivery(d)
			}
			if err := e.invoke(sub, d); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}

func (e *Emitter) invoke(sub *subscription, d types.Delivery) (err error) {
	if !e.opts.Recover {
		sub.handler()
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("handler panic: event=%s origin=%s index=%d err=%v", d.Event, d.Origin, d.Index, r)
			err = &HandlerPanicError{Event: d.Event, Origin: d.Origin, Index: d.Index, Value: r}
		}
	}()
	sub.handler()
	return nil
}

// Err returns the subscription errors recorded so far, such as a Through
// call with a non-positive frequency or an On with an unmatchable context, or nil.
func (e *Emitter) Err() error {
	return e.errs.ErrorOrNil()
}

func (e *Emitter) fail(err error) {
	e.log.Warn("%v", err)
	e.errs = multierror.Append(e.errs, err)
}

// Has reports whether name has at least one subscription of its own.
func (e *Emitter) Has(name string) bool {
	return e.reg.count(name) > 0
}

// Count returns the number of subscriptions registered on exactly name.
func (e *Emitter) Count(name string) int {
	return e.reg.count(name)
}

// Events returns the sorted names that hold at least one subscription.
func (e *Emitter) Events() []string {
	return e.reg.names()
}
