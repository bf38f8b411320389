package events

//go:generate mockgen -destination=mock/mock_interfaces.go -package=mockevents -source=interfaces.go

// Handler reacts to delivered events of the kinds it is registered for.
// Implementations are compared by interface equality when unregistering,
// so they must be comparable (pointer receivers are the usual choice).
type Handler interface {
	// HandleEvent processes a single event during ProcessRound.
	// A returned error aborts the rest of the drain batch.
	HandleEvent(event Event, round int64) error
}

// Publisher is the producer side of the dispatcher, handed to behaviours
// and processors that emit events
type Publisher interface {
	// Enqueue queues an event for the next ProcessRound
	Enqueue(event Event)

	// Publish builds an event from a kind and fields and queues it
	Publish(kind Kind, fields map[string]any)
}

// Bus is the full dispatcher surface
type Bus interface {
	Publisher

	// Register adds a handler for a kind
	Register(kind Kind, handler Handler)

	// Unregister removes the first registration of handler for kind
	Unregister(kind Kind, handler Handler)

	// ProcessRound delivers every queued event and returns how many were processed
	ProcessRound(round int64) (int, error)

	// ListenerCount returns the number of handlers registered for a kind
	ListenerCount(kind Kind) int

	// Pending returns the number of queued events
	Pending() int
}
