package processors

import (
	"log"

	"github.com/KirkDiggler/nightcaste/internal/events"
)

// TraceProcessor logs every event it receives
type TraceProcessor struct{}

// NewTraceProcessor creates a trace processor
func NewTraceProcessor() *TraceProcessor {
	return &TraceProcessor{}
}

// Register subscribes the processor to every known kind
func (p *TraceProcessor) Register(bus events.Bus) {
	for _, kind := range events.Kinds {
		bus.Register(kind, p)
	}
}

// HandleEvent implements events.Handler
func (p *TraceProcessor) HandleEvent(event events.Event, round int64) error {
	log.Printf("Trace: round %d: %s", round, event)
	return nil
}
