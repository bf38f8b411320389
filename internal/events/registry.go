package events

import (
	"log"
	"reflect"
)

// Registry maps event kinds to their handlers in registration order
type Registry struct {
	listeners map[Kind][]Handler
}

// NewRegistry creates an empty listener registry
func NewRegistry() *Registry {
	return &Registry{
		listeners: make(map[Kind][]Handler),
	}
}

// Register appends handler to the list for kind.
// Registering the same handler twice delivers each event to it twice.
func (r *Registry) Register(kind Kind, handler Handler) {
	r.listeners[kind] = append(r.listeners[kind], handler)

	log.Printf("EventBus: Registered handler %T for event %s (%d listeners)",
		handler, kind, len(r.listeners[kind]))
}

// Unregister removes the first registration of handler for kind.
// Removing a handler that is not registered is a no-op.
func (r *Registry) Unregister(kind Kind, handler Handler) {
	listeners := r.listeners[kind]
	for i, l := range listeners {
		if !sameHandler(l, handler) {
			continue
		}
		// Shift rather than swap: order of the remaining handlers matters
		updated := make([]Handler, 0, len(listeners)-1)
		updated = append(updated, listeners[:i]...)
		updated = append(updated, listeners[i+1:]...)
		r.listeners[kind] = updated

		log.Printf("EventBus: Unregistered handler %T from event %s", handler, kind)
		return
	}

	log.Printf("EventBus: Handler %T is already unregistered from %s", handler, kind)
}

// sameHandler reports whether a and b are the same registration. Handlers whose
// dynamic values cannot be compared match only when they share a reference.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// ListenersFor returns a copy of the handlers registered for kind, in registration order
func (r *Registry) ListenersFor(kind Kind) []Handler {
	original := r.listeners[kind]
	if len(original) == 0 {
		return nil
	}

	listeners := make([]Handler, len(original))
	copy(listeners, original)
	return listeners
}

// ListenerCount returns the number of handlers registered for kind
func (r *Registry) ListenerCount(kind Kind) int {
	return len(r.listeners[kind])
}

// TotalListenerCount returns the number of registrations across all kinds
func (r *Registry) TotalListenerCount() int {
	total := 0
	for _, listeners := range r.listeners {
		total += len(listeners)
	}
	return total
}

// Clear removes all registrations
func (r *Registry) Clear() {
	r.listeners = make(map[Kind][]Handler)
	log.Printf("EventBus: Cleared all listeners")
}
