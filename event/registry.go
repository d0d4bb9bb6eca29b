package event

import (
	"sort"

	"github.com/yaoapp/emitter/event/types"
)

// subscription is one registration: a handler already bound to its context.
type subscription struct {
	handler types.Handler
	ctx     any
}

// registry maps exact event names to their subscriptions in registration order.
// A name that was never subscribed reads as an empty list.
type registry struct {
	subs map[string][]*subscription
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[string][]*subscription),
	}
}

// entries returns the list for name, inserting an empty one on first use.
func (r *registry) entries(name string) []*subscription {
	list, ok := r.subs[name]
	if !ok {
		list = []*subscription{}
		r.subs[name] = list
	}
	return list
}

// add appends sub to name's list.
func (r *registry) add(name string, sub *subscription) {
	r.subs[name] = append(r.entries(name), sub)
}

// snapshot copies name's list so delivery is unaffected by handlers that
// subscribe or unsubscribe while it runs. It never inserts.
func (r *registry) snapshot(name string) []*subscription {
	list := r.subs[name]
	if len(list) == 0 {
		return nil
	}
	cp := make([]*subscription, len(list))
	copy(cp, list)
	return cp
}

// remove drops every subscription on name whose context matches ctx,
// keeping the others in order. Returns the number removed.
func (r *registry) remove(name string, ctx any) int {
	list, ok := r.subs[name]
	if !ok {
		return 0
	}

	kept := make([]*subscription, 0, len(list))
	for _, sub := range list {
		if !sameContext(sub.ctx, ctx) {
			kept = append(kept, sub)
		}
	}

	removed := len(list) - len(kept)
	if removed == 0 {
		return 0
	}
	if len(kept) == 0 {
		delete(r.subs, name)
		return removed
	}
	r.subs[name] = kept
	return removed
}

// descendants returns the registered names strictly below name.
func (r *registry) descendants(name string) []string {
	var names []string
	for key := range r.subs {
		if IsDescendant(key, name) {
			names = append(names, key)
		}
	}
	return names
}

// count returns the number of subscriptions registered on exactly name.
func (r *registry) count(name string) int {
	return len(r.subs[name])
}

// names returns the sorted names holding at least one subscription.
func (r *registry) names() []string {
	names := make([]string, 0, len(r.subs))
	for key, list := range r.subs {
		if len(list) > 0 {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}
