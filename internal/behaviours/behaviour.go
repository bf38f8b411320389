// Package behaviours applies per-component-type logic to every entity that
// owns the component, once per round.
package behaviours

//go:generate mockgen -destination=mock/mock_behaviour.go -package=mockbehaviours -source=behaviour.go

import (
	"context"

	"github.com/KirkDiggler/nightcaste/internal/components"
)

// UpdateContext carries the per-entity data for one Update call
type UpdateContext struct {
	Entity    components.EntityID
	Component components.Component
	Round     int64
	// DeltaTime is the elapsed time since the previous round, in seconds
	DeltaTime float64
}

// Behaviour implements logic for entities with a specific component type.
// Implementations keep no per-entity state between calls.
type Behaviour interface {
	Update(ctx context.Context, uc UpdateContext) error
}
