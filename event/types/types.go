package types

// Separator splits an event name into namespace segments.
// "user.profile.saved" is a child of "user.profile", which is a child of "user".
const Separator = "."

// Handler is a subscriber callback. It is bound to its context before it is
// registered, so the emitter calls it without arguments.
type Handler func()

// Delivery describes one handler invocation during an Emit.
type Delivery struct {
	Event  string // Name the subscription was registered on (the current bubbling level)
	Origin string // Name passed to Emit
	Index  int    // Position of the subscription within Event's snapshot
	Ctx    any    // Context the subscription was registered with
}

// Bubbled reports whether the delivery happened on an ancestor of the emitted name.
func (d Delivery) Bubbled() bool {
	return d.Event != d.Origin
}

// Option configures an Emitter.
type Option func(*Options)

// Options is the internal configuration record for an Emitter.
type Options struct {
	Recover  bool       // Recover handler panics and continue instead of propagating them
	Observer []Observer // Notified before every handler invocation
	Tag      string     // Logger tag, default DefaultTag
}

// DefaultTag is the logger tag used when none is configured.
const DefaultTag = "event"
