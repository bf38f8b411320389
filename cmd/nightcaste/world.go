package main

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

const (
	roomWidth  = 24
	roomHeight = 12
)

// seedWorld returns the player entity, building a walled room with a player
// and two rats when the world has no player yet
func seedWorld(ctx context.Context, repo entities.Repository) (components.EntityID, error) {
	players, err := repo.EntitiesWithComponent(ctx, components.TypeInput)
	if err != nil {
		return 0, fmt.Errorf("failed to look up player: %w", err)
	}
	for id := range players {
		log.Printf("World: Resuming with player %d", id)
		return id, nil
	}

	for x := 0; x < roomWidth; x++ {
		for _, y := range []int{0, roomHeight - 1} {
			if err := spawn(ctx, repo, wall(x, y)...); err != nil {
				return 0, err
			}
		}
	}
	for y := 1; y < roomHeight-1; y++ {
		for _, x := range []int{0, roomWidth - 1} {
			if err := spawn(ctx, repo, wall(x, y)...); err != nil {
				return 0, err
			}
		}
	}

	for _, pos := range [][2]int{{5, 4}, {17, 8}} {
		err := spawn(ctx, repo,
			&components.Position{X: pos[0], Y: pos[1]},
			&components.Sprite{Glyph: "r", Colour: "red"},
			&components.Collider{Blocking: true},
			&components.Wander{Chance: 40},
		)
		if err != nil {
			return 0, err
		}
	}

	player, err := repo.Create(ctx)
	if err != nil {
		return 0, err
	}
	for _, c := range []components.Component{
		&components.Input{},
		&components.Position{X: roomWidth / 2, Y: roomHeight / 2},
		&components.Sprite{Glyph: "@", Colour: "yellow"},
		&components.Collider{Blocking: true},
	} {
		if err := repo.SetComponent(ctx, player, c); err != nil {
			return 0, err
		}
	}

	log.Printf("World: Seeded %dx%d room with player %d", roomWidth, roomHeight, player)
	return player, nil
}

func wall(x, y int) []components.Component {
	return []components.Component{
		&components.Position{X: x, Y: y},
		&components.Sprite{Glyph: "#", Colour: "gray"},
		&components.Collider{Blocking: true},
	}
}

func spawn(ctx context.Context, repo entities.Repository, cs ...components.Component) error {
	id, err := repo.Create(ctx)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if err := repo.SetComponent(ctx, id, c); err != nil {
			return err
		}
	}
	return nil
}
