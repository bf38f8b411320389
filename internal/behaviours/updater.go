package behaviours

import (
	"context"

	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

// Updater runs every bound behaviour over the entities owning its component type
type Updater struct {
	registry *Registry
	source   entities.ComponentSource
}

// NewUpdater creates an updater reading entities from source
func NewUpdater(registry *Registry, source entities.ComponentSource) *Updater {
	return &Updater{
		registry: registry,
		source:   source,
	}
}

// UpdateAll calls Update once per (entity, component) pair for every binding.
// The first store or behaviour error stops the pass and is returned.
func (u *Updater) UpdateAll(ctx context.Context, round int64, deltaTime float64) error {
	for _, t := range u.registry.Bindings() {
		behaviour, _ := u.registry.BehaviourFor(t)

		owned, err := u.source.EntitiesWithComponent(ctx, t)
		if err != nil {
			return errors.Wrapf(err, "loading %s components", t)
		}

		for entity, component := range owned {
			err := behaviour.Update(ctx, UpdateContext{
				Entity:    entity,
				Component: component,
				Round:     round,
				DeltaTime: deltaTime,
			})
			if err != nil {
				return errors.Wrapf(err, "updating %s behaviour of entity %d", t, entity).
					WithMeta("component_type", string(t)).
					WithMeta("entity", int64(entity))
			}
		}
	}
	return nil
}
