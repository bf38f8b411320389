package entities

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/repositories"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// WorldID namespaces every key so several worlds can share one database
	WorldID string
}

// redisRepository implements Repository using Redis.
//
// Key layout, all under world:<id>:
//   - next_entity             INCR counter for entity ids
//   - entities                SET of entity ids
//   - components:<type>       HASH entity id -> component JSON
//   - entity:<eid>:types      SET of component types owned by the entity
type redisRepository struct {
	client  redis.UniversalClient
	worldID string
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	if cfg.WorldID == "" {
		panic("RedisRepoConfig.WorldID is required")
	}

	return &redisRepository{
		client:  cfg.Client,
		worldID: cfg.WorldID,
	}
}

func (r *redisRepository) nextEntityKey() string {
	return fmt.Sprintf("world:%s:next_entity", r.worldID)
}

func (r *redisRepository) entitiesKey() string {
	return fmt.Sprintf("world:%s:entities", r.worldID)
}

func (r *redisRepository) componentsKey(t components.Type) string {
	return fmt.Sprintf("world:%s:components:%s", r.worldID, t)
}

func (r *redisRepository) typesKey(id components.EntityID) string {
	return fmt.Sprintf("world:%s:entity:%d:types", r.worldID, id)
}

// Create allocates a new entity id and records it in the entity index
func (r *redisRepository) Create(ctx context.Context) (components.EntityID, error) {
	next, err := r.client.Incr(ctx, r.nextEntityKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate entity id: %w", err)
	}

	id := components.EntityID(next)
	if err := r.client.SAdd(ctx, r.entitiesKey(), strconv.FormatInt(next, 10)).Err(); err != nil {
		return 0, fmt.Errorf("failed to index entity %d: %w", id, err)
	}
	return id, nil
}

// EntitiesWithComponent reads the whole hash for t
func (r *redisRepository) EntitiesWithComponent(ctx context.Context, t components.Type) (map[components.EntityID]components.Component, error) {
	raw, err := r.client.HGetAll(ctx, r.componentsKey(t)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s components: %w", t, err)
	}

	result := make(map[components.EntityID]components.Component, len(raw))
	for field, data := range raw {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Internalf("corrupt entity id %q in %s", field, r.componentsKey(t))
		}
		c, err := components.Decode(t, []byte(data))
		if err != nil {
			return nil, err
		}
		result[components.EntityID(id)] = c
	}
	return result, nil
}

// GetComponent reads a single hash field
func (r *redisRepository) GetComponent(ctx context.Context, id components.EntityID, t components.Type) (components.Component, error) {
	data, err := r.client.HGet(ctx, r.componentsKey(t), strconv.FormatInt(int64(id), 10)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repositories.NewRecordNotFoundError(string(t), strconv.FormatInt(int64(id), 10))
		}
		return nil, fmt.Errorf("failed to get %s component of entity %d: %w", t, id, err)
	}
	return components.Decode(t, data)
}

// SetComponent writes the component and its type index in one pipeline
func (r *redisRepository) SetComponent(ctx context.Context, id components.EntityID, c components.Component) error {
	if c == nil {
		return errors.InvalidArgument("component cannot be nil")
	}

	data, err := components.Encode(c)
	if err != nil {
		return err
	}

	exists, err := r.client.SIsMember(ctx, r.entitiesKey(), strconv.FormatInt(int64(id), 10)).Result()
	if err != nil {
		return fmt.Errorf("failed to check entity %d: %w", id, err)
	}
	if !exists {
		return repositories.NewRecordNotFoundError("entity", strconv.FormatInt(int64(id), 10))
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, r.componentsKey(c.ComponentType()), strconv.FormatInt(int64(id), 10), string(data))
	pipe.SAdd(ctx, r.typesKey(id), string(c.ComponentType()))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set %s component of entity %d: %w", c.ComponentType(), id, err)
	}
	return nil
}

// RemoveComponent deletes the hash field and the type index entry
func (r *redisRepository) RemoveComponent(ctx context.Context, id components.EntityID, t components.Type) error {
	pipe := r.client.Pipeline()
	pipe.HDel(ctx, r.componentsKey(t), strconv.FormatInt(int64(id), 10))
	pipe.SRem(ctx, r.typesKey(id), string(t))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove %s component of entity %d: %w", t, id, err)
	}
	return nil
}

// Components loads every component owned by id, one read per type in parallel
func (r *redisRepository) Components(ctx context.Context, id components.EntityID) (map[components.Type]components.Component, error) {
	exists, err := r.client.SIsMember(ctx, r.entitiesKey(), strconv.FormatInt(int64(id), 10)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check entity %d: %w", id, err)
	}
	if !exists {
		return nil, repositories.NewRecordNotFoundError("entity", strconv.FormatInt(int64(id), 10))
	}

	types, err := r.client.SMembers(ctx, r.typesKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get component types of entity %d: %w", id, err)
	}

	var mu sync.Mutex
	result := make(map[components.Type]components.Component, len(types))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range types {
		t := components.Type(name)
		g.Go(func() error {
			c, err := r.GetComponent(ctx, id, t)
			if err != nil {
				return fmt.Errorf("failed to get component %s: %w", t, err)
			}
			mu.Lock()
			result[t] = c
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
