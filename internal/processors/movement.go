// Package processors holds the event handlers that carry out game rules
package processors

import (
	"context"
	"log"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

// MovementProcessor applies MoveAction events to entity positions.
// A move onto a blocking collider is refused and reported as EntitiesCollided.
type MovementProcessor struct {
	repo      entities.Repository
	publisher events.Publisher
}

// NewMovementProcessor creates a movement processor
func NewMovementProcessor(repo entities.Repository, publisher events.Publisher) *MovementProcessor {
	return &MovementProcessor{
		repo:      repo,
		publisher: publisher,
	}
}

// Register subscribes the processor to MoveAction
func (p *MovementProcessor) Register(bus events.Bus) {
	bus.Register(events.MoveAction, p)
}

// HandleEvent implements events.Handler
func (p *MovementProcessor) HandleEvent(event events.Event, round int64) error {
	entity, ok := event.GetInt64(events.FieldEntity)
	if !ok {
		return errors.InvalidArgument("move action without entity")
	}
	dx, _ := event.GetInt(events.FieldDX)
	dy, _ := event.GetInt(events.FieldDY)

	ctx := context.Background()
	id := components.EntityID(entity)

	current, err := p.repo.GetComponent(ctx, id, components.TypePosition)
	if err != nil {
		if errors.IsNotFound(err) {
			log.Printf("Movement: Entity %d has no position, ignoring move in round %d", entity, round)
			return nil
		}
		return errors.Wrapf(err, "loading position of entity %d", entity)
	}
	from := current.(*components.Position)
	to := &components.Position{X: from.X + dx, Y: from.Y + dy}

	blocker, blocked, err := p.blockerAt(ctx, id, to)
	if err != nil {
		return err
	}
	if blocked {
		p.publisher.Enqueue(events.NewEntitiesCollided(entity, int64(blocker)))
		return nil
	}

	if err := p.repo.SetComponent(ctx, id, to); err != nil {
		return errors.Wrapf(err, "moving entity %d", entity)
	}
	p.publisher.Enqueue(events.NewEntityMoved(entity, to.X, to.Y))
	return nil
}

func (p *MovementProcessor) blockerAt(ctx context.Context, mover components.EntityID, target *components.Position) (components.EntityID, bool, error) {
	colliders, err := p.repo.EntitiesWithComponent(ctx, components.TypeCollider)
	if err != nil {
		return 0, false, errors.Wrap(err, "loading colliders")
	}
	if len(colliders) == 0 {
		return 0, false, nil
	}

	positions, err := p.repo.EntitiesWithComponent(ctx, components.TypePosition)
	if err != nil {
		return 0, false, errors.Wrap(err, "loading positions")
	}

	var found components.EntityID
	for id, c := range colliders {
		if id == mover || !c.(*components.Collider).Blocking {
			continue
		}
		pos, ok := positions[id].(*components.Position)
		if !ok || *pos != *target {
			continue
		}
		// lowest id keeps the result stable across map iteration
		if found == 0 || id < found {
			found = id
		}
	}
	return found, found != 0, nil
}
