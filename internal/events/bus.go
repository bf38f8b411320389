package events

import (
	"log"

	"github.com/KirkDiggler/nightcaste/internal/errors"
)

// Dispatcher queues events and delivers them to registered handlers once per round.
//
// Architecture:
//   - Single-threaded; not safe for concurrent use
//   - Events are delivered in FIFO order, handlers in registration order
//   - ProcessRound works on a snapshot: events enqueued by handlers wait for the next round
//   - Handler errors are not contained; they abort the batch and surface to the caller
type Dispatcher struct {
	queue    *Queue
	registry *Registry
}

// NewDispatcher creates a dispatcher with an empty queue and registry
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		queue:    NewQueue(),
		registry: NewRegistry(),
	}
}

// Enqueue queues an event for the next ProcessRound
func (d *Dispatcher) Enqueue(event Event) {
	d.queue.Enqueue(event)
}

// Publish builds an event from kind and fields and queues it
func (d *Dispatcher) Publish(kind Kind, fields map[string]any) {
	d.queue.Enqueue(NewEvent(kind, fields))
}

// Register adds a handler for kind
func (d *Dispatcher) Register(kind Kind, handler Handler) {
	d.registry.Register(kind, handler)
}

// Unregister removes the first registration of handler for kind
func (d *Dispatcher) Unregister(kind Kind, handler Handler) {
	d.registry.Unregister(kind, handler)
}

// ListenerCount returns the number of handlers registered for kind
func (d *Dispatcher) ListenerCount(kind Kind) int {
	return d.registry.ListenerCount(kind)
}

// Pending returns the number of queued events
func (d *Dispatcher) Pending() int {
	return d.queue.Len()
}

// ProcessRound drains the queue and delivers each event to its handlers.
// Events with no handlers are discarded. Returns the number of events processed.
//
// When a handler fails, the error is returned as a handler fault together with the
// number of events fully processed before it. The events of the batch that were not
// reached are put back at the head of the queue; the faulting event is dropped.
func (d *Dispatcher) ProcessRound(round int64) (int, error) {
	batch := d.queue.Drain()
	processed := 0

	for i, ev := range batch {
		if err := d.deliver(ev, round); err != nil {
			d.queue.Requeue(batch[i+1:])
			return processed, err
		}
		processed++
	}

	return processed, nil
}

func (d *Dispatcher) deliver(ev Event, round int64) error {
	for _, handler := range d.registry.ListenersFor(ev.Kind()) {
		if err := handler.HandleEvent(ev, round); err != nil {
			log.Printf("EventBus: Handler %T failed on %s in round %d: %v", handler, ev.Kind(), round, err)
			return errors.WrapWithCode(err, errors.CodeHandlerFault, "handling "+string(ev.Kind())).
				WithMeta("kind", ev.Kind()).
				WithMeta("round", round)
		}
	}
	return nil
}

var _ Bus = (*Dispatcher)(nil)
