package entities

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nightcaste/internal/uuid"
)

// NewRedis creates a Redis-backed entity repository for worldID.
// An empty worldID starts a fresh world under a generated id.
func NewRedis(client redis.UniversalClient, worldID string) Repository {
	return newRedisWithGenerator(client, worldID, uuid.NewGenerator())
}

func newRedisWithGenerator(client redis.UniversalClient, worldID string, ids uuid.Generator) Repository {
	if worldID == "" {
		worldID = ids.New()
		log.Printf("Entities: No world id configured, created world %s", worldID)
	}

	return NewRedisRepository(&RedisRepoConfig{
		Client:  client,
		WorldID: worldID,
	})
}
