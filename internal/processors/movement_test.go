package processors_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/nightcaste/internal/components"
	"github.com/KirkDiggler/nightcaste/internal/errors"
	"github.com/KirkDiggler/nightcaste/internal/events"
	mockevents "github.com/KirkDiggler/nightcaste/internal/events/mock"
	"github.com/KirkDiggler/nightcaste/internal/processors"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
	mockentities "github.com/KirkDiggler/nightcaste/internal/repositories/entities/mock"
	"github.com/KirkDiggler/nightcaste/internal/testutils"
)

type MovementProcessorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      entities.Repository
	publisher *mockevents.MockPublisher
	processor *processors.MovementProcessor
}

func (s *MovementProcessorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = entities.NewInMemory()
	s.publisher = mockevents.NewMockPublisher(s.ctrl)
	s.processor = processors.NewMovementProcessor(s.repo, s.publisher)
}

func (s *MovementProcessorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMovementProcessorSuite(t *testing.T) {
	suite.Run(t, new(MovementProcessorSuite))
}

func (s *MovementProcessorSuite) position(id components.EntityID) *components.Position {
	c, err := s.repo.GetComponent(context.Background(), id, components.TypePosition)
	s.Require().NoError(err)
	return c.(*components.Position)
}

func (s *MovementProcessorSuite) TestMovesIntoFreeCell() {
	player := testutils.CreateTestPlayer(s.T(), s.repo, 2, 2)

	s.publisher.EXPECT().Enqueue(events.NewEntityMoved(int64(player), 2, 1))

	err := s.processor.HandleEvent(events.NewMoveAction(int64(player), 0, -1), 1)
	s.NoError(err)
	s.Equal(&components.Position{X: 2, Y: 1}, s.position(player))
}

func (s *MovementProcessorSuite) TestBlockedByWall() {
	player := testutils.CreateTestPlayer(s.T(), s.repo, 2, 2)
	wall := testutils.CreateTestWall(s.T(), s.repo, 1, 2)

	s.publisher.EXPECT().Enqueue(events.NewEntitiesCollided(int64(player), int64(wall)))

	err := s.processor.HandleEvent(events.NewMoveAction(int64(player), -1, 0), 1)
	s.NoError(err)
	s.Equal(&components.Position{X: 2, Y: 2}, s.position(player))
}

func (s *MovementProcessorSuite) TestNonBlockingColliderIsPassable() {
	player := testutils.CreateTestPlayer(s.T(), s.repo, 2, 2)
	testutils.CreateTestEntity(s.T(), s.repo,
		&components.Position{X: 3, Y: 2},
		&components.Collider{Blocking: false},
	)

	s.publisher.EXPECT().Enqueue(events.NewEntityMoved(int64(player), 3, 2))

	s.NoError(s.processor.HandleEvent(events.NewMoveAction(int64(player), 1, 0), 1))
}

func (s *MovementProcessorSuite) TestEntityWithoutPositionIsIgnored() {
	id := testutils.CreateTestEntity(s.T(), s.repo, &components.Input{})

	s.NoError(s.processor.HandleEvent(events.NewMoveAction(int64(id), 1, 0), 1))
}

func (s *MovementProcessorSuite) TestMissingEntityField() {
	err := s.processor.HandleEvent(events.NewEvent(events.MoveAction, map[string]any{events.FieldDX: 1}), 1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *MovementProcessorSuite) TestStoreFailure() {
	repo := mockentities.NewMockRepository(s.ctrl)
	processor := processors.NewMovementProcessor(repo, s.publisher)

	repo.EXPECT().GetComponent(gomock.Any(), components.EntityID(1), components.TypePosition).
		Return(nil, stderrors.New("connection reset"))

	err := processor.HandleEvent(events.NewMoveAction(1, 1, 0), 1)
	s.Error(err)
	s.Contains(err.Error(), "connection reset")
}

func (s *MovementProcessorSuite) TestRegister() {
	bus := mockevents.NewMockBus(s.ctrl)
	bus.EXPECT().Register(events.MoveAction, s.processor)

	s.processor.Register(bus)
}
