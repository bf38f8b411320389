package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

type renderer struct {
	screen tcell.Screen
	repo   entities.Repository
	player components.EntityID
}

func newRenderer(screen tcell.Screen, repo entities.Repository, player components.EntityID) *renderer {
	return &renderer{
		screen: screen,
		repo:   repo,
		player: player,
	}
}

// draw paints every entity that has both a sprite and a position
func (r *renderer) draw(ctx context.Context, round int64) {
	sprites, err := r.repo.EntitiesWithComponent(ctx, components.TypeSprite)
	if err != nil {
		log.Printf("Render: Failed to load sprites: %v", err)
		return
	}
	positions, err := r.repo.EntitiesWithComponent(ctx, components.TypePosition)
	if err != nil {
		log.Printf("Render: Failed to load positions: %v", err)
		return
	}

	r.screen.Clear()
	for id, c := range sprites {
		pos, ok := positions[id].(*components.Position)
		if !ok {
			continue
		}
		sprite := c.(*components.Sprite)
		glyph := '?'
		for _, ch := range sprite.Glyph {
			glyph = ch
			break
		}
		style := tcell.StyleDefault.Foreground(tcell.GetColor(sprite.Colour))
		r.screen.SetContent(pos.X, pos.Y+1, glyph, nil, style)
	}

	status := fmt.Sprintf("round %d  arrows/hjkl move  q quits", round)
	if pos, ok := positions[r.player].(*components.Position); ok {
		status = fmt.Sprintf("round %d  @ %d,%d  arrows/hjkl move  q quits", round, pos.X, pos.Y)
	}
	for i, ch := range status {
		r.screen.SetContent(i, 0, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
	r.screen.Show()
}
