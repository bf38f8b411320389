//go:build integration
// +build integration

package entities_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
	"github.com/KirkDiggler/nightcaste/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := entities.NewRedisRepository(&entities.RedisRepoConfig{
		Client:  client,
		WorldID: "integration",
	})

	ctx := context.Background()

	t.Run("round trip a player", func(t *testing.T) {
		player := testutils.CreateTestPlayer(t, repo, 3, 4)

		all, err := repo.Components(ctx, player)
		require.NoError(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, &components.Position{X: 3, Y: 4}, all[components.TypePosition])

		inputs, err := repo.EntitiesWithComponent(ctx, components.TypeInput)
		require.NoError(t, err)
		assert.Contains(t, inputs, player)
	})

	t.Run("ids keep increasing", func(t *testing.T) {
		a, err := repo.Create(ctx)
		require.NoError(t, err)
		b, err := repo.Create(ctx)
		require.NoError(t, err)
		assert.Greater(t, b, a)
	})

	t.Run("remove component", func(t *testing.T) {
		rat := testutils.CreateTestWanderer(t, repo, 1, 1, 50)

		require.NoError(t, repo.RemoveComponent(ctx, rat, components.TypeWander))

		_, err := repo.GetComponent(ctx, rat, components.TypeWander)
		assert.True(t, errors.IsNotFound(err))

		all, err := repo.Components(ctx, rat)
		require.NoError(t, err)
		assert.NotContains(t, all, components.TypeWander)
	})

	t.Run("unknown entity", func(t *testing.T) {
		err := repo.SetComponent(ctx, 999999, &components.Input{})
		assert.True(t, errors.IsNotFound(err))
	})
}
