package behaviours

import (
	"context"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/dice"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
)

// WanderBehaviourName is the factory name of WanderBehaviour
const WanderBehaviourName = "WanderBehaviour"

// wanderSteps indexes a 1d4 roll to a step; slot 0 is unused
var wanderSteps = [5][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// WanderBehaviour moves entities in a random direction with the
// per-round percentage chance held by their Wander component
type WanderBehaviour struct {
	publisher events.Publisher
	roller    dice.Roller
}

// NewWanderBehaviour creates a wander behaviour
func NewWanderBehaviour(publisher events.Publisher, roller dice.Roller) *WanderBehaviour {
	return &WanderBehaviour{
		publisher: publisher,
		roller:    roller,
	}
}

// Update rolls 1d100 against the wander chance, then 1d4 for the direction
func (b *WanderBehaviour) Update(_ context.Context, uc UpdateContext) error {
	wander, ok := uc.Component.(*components.Wander)
	if !ok {
		return errors.Newf(errors.CodeInvalidArgument, "wander behaviour needs a Wander component, got %T", uc.Component)
	}

	chance, err := b.roller.Roll(1, 100, 0)
	if err != nil {
		return errors.Wrap(err, "rolling wander chance")
	}
	if chance.Total > wander.Chance {
		return nil
	}

	direction, err := b.roller.Roll(1, 4, 0)
	if err != nil {
		return errors.Wrap(err, "rolling wander direction")
	}
	if direction.Total < 1 || direction.Total >= len(wanderSteps) {
		return errors.Internalf("wander direction roll %d is outside 1d4", direction.Total)
	}
	step := wanderSteps[direction.Total]
	b.publisher.Enqueue(events.NewMoveAction(int64(uc.Entity), step[0], step[1]))
	return nil
}
