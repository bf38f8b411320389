package behaviours_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/nightcaste/internal/behaviours"
	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/events"
	mockevents "github.com/KirkDiggler/nightcaste/internal/events/mock"
	"github.com/KirkDiggler/nightcaste/internal/input"
)

func TestInputBehaviour_Directions(t *testing.T) {
	tests := []struct {
		name    string
		pressed []input.Key
		dx, dy  int
	}{
		{name: "left", pressed: []input.Key{input.KeyLeft}, dx: -1, dy: 0},
		{name: "right", pressed: []input.Key{input.KeyRight}, dx: 1, dy: 0},
		{name: "down", pressed: []input.Key{input.KeyDown}, dx: 0, dy: 1},
		{name: "up", pressed: []input.Key{input.KeyUp}, dx: 0, dy: -1},
		{name: "left wins over right", pressed: []input.Key{input.KeyRight, input.KeyLeft}, dx: -1, dy: 0},
		{name: "right wins over down", pressed: []input.Key{input.KeyDown, input.KeyRight}, dx: 1, dy: 0},
		{name: "down wins over up", pressed: []input.Key{input.KeyUp, input.KeyDown}, dx: 0, dy: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := mockevents.NewMockPublisher(ctrl)
			keys := input.NewState()
			for _, k := range tt.pressed {
				keys.Press(k)
			}

			publisher.EXPECT().Enqueue(events.NewMoveAction(9, tt.dx, tt.dy)).Times(1)

			b := behaviours.NewInputBehaviour(publisher, keys)
			err := b.Update(context.Background(), behaviours.UpdateContext{Entity: 9, Component: &components.Input{}})
			assert.NoError(t, err)
		})
	}
}

func TestInputBehaviour_NothingPressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)

	b := behaviours.NewInputBehaviour(publisher, input.NewState())
	err := b.Update(context.Background(), behaviours.UpdateContext{Entity: 9, Component: &components.Input{}})
	assert.NoError(t, err)
}
