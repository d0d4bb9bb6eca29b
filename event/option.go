package event

import "github.com/yaoapp/emitter/event/types"

// Recover makes Dispatch recover handler panics, log them and continue with
// the next handler. Without it a panic propagates to the caller and the rest
// of the emission, bubbled levels included, is skipped.
func Recover() types.Option {
	return func(o *types.Options) {
		o.Recover = true
	}
}

// Observe adds an observer that is told about every delivery before the handler runs.
func Observe(observer types.Observer) types.Option {
	return func(o *types.Options) {
		if observer != nil {
			o.Observer = append(o.Observer, observer)
		}
	}
}

// Tag sets the logger tag. Default is types.DefaultTag.
func Tag(tag string) types.Option {
	return func(o *types.Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}
