package entities

//go:generate mockgen -destination=mock/mock.go -package=mockentities -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/nightcaste/internal/components"
)

// ComponentSource is the read side the behaviour update loop depends on
type ComponentSource interface {
	// EntitiesWithComponent returns every entity owning a component of type t.
	// The map is freshly built per call; callers may iterate it while the store changes.
	EntitiesWithComponent(ctx context.Context, t components.Type) (map[components.EntityID]components.Component, error)
}

// Repository stores entities and their components
type Repository interface {
	ComponentSource

	// Create allocates a new entity id
	Create(ctx context.Context) (components.EntityID, error)

	// GetComponent returns the component of type t owned by id
	GetComponent(ctx context.Context, id components.EntityID, t components.Type) (components.Component, error)

	// SetComponent attaches or replaces a component on id
	SetComponent(ctx context.Context, id components.EntityID, c components.Component) error

	// RemoveComponent detaches the component of type t from id; absent components are ignored
	RemoveComponent(ctx context.Context, id components.EntityID, t components.Type) error

	// Components returns every component owned by id
	Components(ctx context.Context, id components.EntityID) (map[components.Type]components.Component, error)
}
