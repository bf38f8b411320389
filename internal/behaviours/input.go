package behaviours

import (
	"context"

	"github.com/KirkDiggler/nightcaste/internal/events"
	"github.com/KirkDiggler/nightcaste/internal/input"
)

// InputBehaviourName is the factory name of InputBehaviour
const InputBehaviourName = "InputBehaviour"

// InputBehaviour turns held direction keys into MoveAction events
type InputBehaviour struct {
	publisher events.Publisher
	input     input.Source
}

// NewInputBehaviour creates an input behaviour
func NewInputBehaviour(publisher events.Publisher, source input.Source) *InputBehaviour {
	return &InputBehaviour{
		publisher: publisher,
		input:     source,
	}
}

// Update publishes at most one move. Keys are checked left, right, down, up.
func (b *InputBehaviour) Update(_ context.Context, uc UpdateContext) error {
	switch {
	case b.input.IsPressed(input.KeyLeft):
		b.move(uc, -1, 0)
	case b.input.IsPressed(input.KeyRight):
		b.move(uc, 1, 0)
	case b.input.IsPressed(input.KeyDown):
		b.move(uc, 0, 1)
	case b.input.IsPressed(input.KeyUp):
		b.move(uc, 0, -1)
	}
	return nil
}

func (b *InputBehaviour) move(uc UpdateContext, dx, dy int) {
	b.publisher.Enqueue(events.NewMoveAction(int64(uc.Entity), dx, dy))
}
