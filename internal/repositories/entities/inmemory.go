package entities

import (
	"context"
	"strconv"
	"sync"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/repositories"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu         sync.RWMutex
	nextID     components.EntityID
	entities   map[components.EntityID]struct{}
	components map[components.Type]map[components.EntityID]components.Component
}

// NewInMemory creates a new in-memory entity repository
func NewInMemory() Repository {
	return &inMemoryRepository{
		entities:   make(map[components.EntityID]struct{}),
		components: make(map[components.Type]map[components.EntityID]components.Component),
	}
}

// Create allocates the next entity id
func (r *inMemoryRepository) Create(_ context.Context) (components.EntityID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.entities[r.nextID] = struct{}{}
	return r.nextID, nil
}

// EntitiesWithComponent returns copies of every component of type t
func (r *inMemoryRepository) EntitiesWithComponent(_ context.Context, t components.Type) (map[components.EntityID]components.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.components[t]
	result := make(map[components.EntityID]components.Component, len(stored))
	for id, c := range stored {
		result[id] = components.Clone(c)
	}
	return result, nil
}

// GetComponent returns a copy of the component of type t owned by id
func (r *inMemoryRepository) GetComponent(_ context.Context, id components.EntityID, t components.Type) (components.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.components[t][id]
	if !exists {
		return nil, repositories.NewRecordNotFoundError(string(t), strconv.FormatInt(int64(id), 10))
	}
	return components.Clone(c), nil
}

// SetComponent stores a copy of c on id
func (r *inMemoryRepository) SetComponent(_ context.Context, id components.EntityID, c components.Component) error {
	if c == nil {
		return errors.InvalidArgument("component cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[id]; !exists {
		return repositories.NewRecordNotFoundError("entity", strconv.FormatInt(int64(id), 10))
	}

	byEntity, ok := r.components[c.ComponentType()]
	if !ok {
		byEntity = make(map[components.EntityID]components.Component)
		r.components[c.ComponentType()] = byEntity
	}
	byEntity[id] = components.Clone(c)
	return nil
}

// RemoveComponent detaches the component of type t from id
func (r *inMemoryRepository) RemoveComponent(_ context.Context, id components.EntityID, t components.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.components[t], id)
	return nil
}

// Components returns copies of every component owned by id
func (r *inMemoryRepository) Components(_ context.Context, id components.EntityID) (map[components.Type]components.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, exists := r.entities[id]; !exists {
		return nil, repositories.NewRecordNotFoundError("entity", strconv.FormatInt(int64(id), 10))
	}

	result := make(map[components.Type]components.Component)
	for t, byEntity := range r.components {
		if c, ok := byEntity[id]; ok {
			result[t] = components.Clone(c)
		}
	}
	return result, nil
}
