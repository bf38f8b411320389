package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

// CreateTestEntity creates an entity carrying the given components
func CreateTestEntity(t *testing.T, repo entities.Repository, cs ...components.Component) components.EntityID {
	t.Helper()
	ctx := context.Background()

	id, err := repo.Create(ctx)
	require.NoError(t, err)
	for _, c := range cs {
		require.NoError(t, repo.SetComponent(ctx, id, c))
	}
	return id
}

// CreateTestPlayer creates a keyboard-driven entity at (x, y)
func CreateTestPlayer(t *testing.T, repo entities.Repository, x, y int) components.EntityID {
	t.Helper()
	return CreateTestEntity(t, repo,
		&components.Input{},
		&components.Position{X: x, Y: y},
		&components.Sprite{Glyph: "@", Colour: "yellow"},
		&components.Collider{Blocking: true},
	)
}

// CreateTestWall creates a blocking wall tile at (x, y)
func CreateTestWall(t *testing.T, repo entities.Repository, x, y int) components.EntityID {
	t.Helper()
	return CreateTestEntity(t, repo,
		&components.Position{X: x, Y: y},
		&components.Sprite{Glyph: "#"},
		&components.Collider{Blocking: true},
	)
}

// CreateTestWanderer creates a wandering creature at (x, y)
func CreateTestWanderer(t *testing.T, repo entities.Repository, x, y, chance int) components.EntityID {
	t.Helper()
	return CreateTestEntity(t, repo,
		&components.Wander{Chance: chance},
		&components.Position{X: x, Y: y},
		&components.Sprite{Glyph: "r", Colour: "red"},
	)
}
