package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: inspect-entity <world-id> <entity-id>")
		os.Exit(1)
	}

	worldID := os.Args[1]
	id, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Invalid entity id %q: %v", os.Args[2], err)
	}
	ctx := context.Background()

	_ = godotenv.Load()

	// Set up Redis
	redisURL := os.Getenv("NIGHTCASTE_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection first
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}
	defer func() {
		clientErr := client.Close()
		if clientErr != nil {
			log.Printf("Failed to close Redis connection: %v", clientErr)
		}
	}()

	repo := entities.NewRedisRepository(&entities.RedisRepoConfig{
		Client:  client,
		WorldID: worldID,
	})

	owned, err := repo.Components(ctx, components.EntityID(id))
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Printf("Entity %d does not exist in world %s\n", id, worldID)
			return
		}
		log.Printf("Failed to load entity: %v", err)
		return
	}

	types := make([]string, 0, len(owned))
	for t := range owned {
		types = append(types, string(t))
	}
	sort.Strings(types)

	fmt.Printf("=== Entity %d (world %s) ===\n", id, worldID)
	if len(types) == 0 {
		fmt.Println("No components")
		return
	}
	for _, t := range types {
		data, err := components.Encode(owned[components.Type(t)])
		if err != nil {
			fmt.Printf("%-10s <unencodable: %v>\n", t, err)
			continue
		}
		fmt.Printf("%-10s %s\n", t, data)
	}
}
