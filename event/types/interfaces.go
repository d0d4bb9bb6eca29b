package types

// Observer is told about every handler invocation, in delivery order.
//
// OnDelivery runs synchronously on the emitting goroutine, right before the
// handler. It must not call back into the emitter.
type Observer interface {
	OnDelivery(d Delivery)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(d Delivery)

// OnDelivery calls f(d).
func (f ObserverFunc) OnDelivery(d Delivery) {
	f(d)
}
