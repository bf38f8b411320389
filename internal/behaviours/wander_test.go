package behaviours_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/nightcaste/internal/behaviours"
	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/dice"
	mockdice "github.com/KirkDiggler/nightcaste/internal/dice/mock"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
	mockevents "github.com/KirkDiggler/nightcaste/internal/events/mock"
)

func TestWanderBehaviour_MovesWhenChanceHits(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		dx, dy    int
	}{
		{name: "left", direction: 1, dx: -1, dy: 0},
		{name: "right", direction: 2, dx: 1, dy: 0},
		{name: "down", direction: 3, dx: 0, dy: 1},
		{name: "up", direction: 4, dx: 0, dy: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := mockevents.NewMockPublisher(ctrl)
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls([]int{30, tt.direction})

			publisher.EXPECT().Enqueue(events.NewMoveAction(4, tt.dx, tt.dy))

			b := behaviours.NewWanderBehaviour(publisher, roller)
			err := b.Update(context.Background(), behaviours.UpdateContext{
				Entity:    4,
				Component: &components.Wander{Chance: 30},
			})
			require.NoError(t, err)
			assert.Equal(t, 0, roller.Remaining())
		})
	}
}

func TestWanderBehaviour_StaysWhenChanceMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{31})

	b := behaviours.NewWanderBehaviour(publisher, roller)
	err := b.Update(context.Background(), behaviours.UpdateContext{
		Entity:    4,
		Component: &components.Wander{Chance: 30},
	})
	require.NoError(t, err)
}

func TestWanderBehaviour_WrongComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)

	b := behaviours.NewWanderBehaviour(publisher, mockdice.NewManualMockRoller())
	err := b.Update(context.Background(), behaviours.UpdateContext{
		Entity:    4,
		Component: &components.Sprite{Glyph: "r"},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestWanderBehaviour_RollerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)

	b := behaviours.NewWanderBehaviour(publisher, mockdice.NewManualMockRoller())
	err := b.Update(context.Background(), behaviours.UpdateContext{
		Entity:    4,
		Component: &components.Wander{Chance: 100},
	})
	assert.Error(t, err)
}

func TestWanderBehaviour_DirectionOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockevents.NewMockPublisher(ctrl)
	b := behaviours.NewWanderBehaviour(publisher, fixedRoller(5))
	var err error
	assert.NotPanics(t, func() {
		err = b.Update(context.Background(), behaviours.UpdateContext{
			Entity:    4,
			Component: &components.Wander{Chance: 100},
		})
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
}

// fixedRoller reports the same total for every roll
type fixedRoller int

func (r fixedRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	return &dice.RollResult{Total: int(r), RawTotal: int(r), Rolls: []int{int(r)}, Count: count, Sides: sides, Bonus: bonus}, nil
}
