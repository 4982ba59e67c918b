package scenario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation"
	simulationmock "github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation/mock"
	"github.com/KirkDiggler/rpg-realtime/internal/scenario"
)

type PlayerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *simulationmock.MockService
	ctx     context.Context
	frame   int64
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = simulationmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.frame = 0
}

func (s *PlayerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlayerTestSuite) expectTick() *gomock.Call {
	return s.service.EXPECT().
		Tick(s.ctx, &simulation.TickInput{Frames: 1}).
		DoAndReturn(func(context.Context, *simulation.TickInput) (*simulation.TickOutput, error) {
			s.frame++
			return &simulation.TickOutput{Frame: s.frame}, nil
		})
}

func (s *PlayerTestSuite) TestNewPlayerRequiresDependencies() {
	_, err := scenario.NewPlayer(&scenario.PlayerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *PlayerTestSuite) TestSetupSpawnsInOrder() {
	sc := &scenario.Scenario{
		Map: scenario.Map{Width: 4, Height: 4},
		Spawns: []scenario.Spawn{
			{ID: "hero", Template: 1, At: entities.Point{X: 1, Y: 1}, Facing: entities.DirRight},
			{ID: "goblin", Template: 2, At: entities.Point{X: 3, Y: 1}, Leader: "boss"},
		},
	}
	player, err := scenario.NewPlayer(&scenario.PlayerConfig{Service: s.service, Scenario: sc})
	s.Require().NoError(err)

	gomock.InOrder(
		s.service.EXPECT().Spawn(s.ctx, &simulation.SpawnInput{
			EntityID:   "hero",
			TemplateID: 1,
			Position:   entities.Point{X: 1, Y: 1},
			Facing:     entities.DirRight,
		}).Return(&simulation.SpawnOutput{}, nil),
		s.service.EXPECT().Spawn(s.ctx, &simulation.SpawnInput{
			EntityID:   "goblin",
			TemplateID: 2,
			Position:   entities.Point{X: 3, Y: 1},
			LeaderID:   "boss",
		}).Return(nil, errors.NotFound("leader missing")),
	)

	err = player.Setup(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *PlayerTestSuite) TestRunAppliesInputsBeforeTheirFrame() {
	sc := &scenario.Scenario{
		Map: scenario.Map{Width: 4, Height: 4},
		Inputs: []scenario.Input{
			{Frame: 2, Entity: "hero", Disengage: true},
			{Frame: 0, Entity: "hero", Slot: cooldown.KeySkill1, Ally: "friend"},
			{Frame: 1, Entity: "hero", Item: 3},
			{Frame: 1, Entity: "goblin", Engage: "hero"},
		},
	}
	player, err := scenario.NewPlayer(&scenario.PlayerConfig{Service: s.service, Scenario: sc})
	s.Require().NoError(err)

	gomock.InOrder(
		s.service.EXPECT().ExecuteSkill(s.ctx, &simulation.ExecuteSkillInput{
			EntityID:     "hero",
			Key:          cooldown.KeySkill1,
			AllyTargetID: "friend",
		}).Return(&simulation.ExecuteSkillOutput{Executed: true}, nil),
		s.expectTick(),
		s.service.EXPECT().UseTool(s.ctx, &simulation.UseToolInput{EntityID: "hero", ItemID: 3}).
			Return(nil, errors.NotFound("item 3 not found")),
		s.service.EXPECT().Engage(s.ctx, &simulation.EngageInput{EntityID: "goblin", TargetID: "hero"}).
			Return(&simulation.EngageOutput{Engaged: true}, nil),
		s.expectTick(),
		s.service.EXPECT().Disengage(s.ctx, &simulation.DisengageInput{EntityID: "hero"}).
			Return(&simulation.DisengageOutput{Disengaged: true}, nil),
		s.expectTick(),
	)

	result, err := player.Run(s.ctx, 3)

	s.Require().NoError(err)
	s.Equal(int64(3), result.Frame)
	s.Require().Len(result.Errors, 1)
	s.True(errors.IsNotFound(result.Errors[0]))
}

func (s *PlayerTestSuite) TestRunStopsWhenTickFails() {
	player, err := scenario.NewPlayer(&scenario.PlayerConfig{
		Service:  s.service,
		Scenario: &scenario.Scenario{Map: scenario.Map{Width: 4, Height: 4}},
	})
	s.Require().NoError(err)

	tickErr := errors.InvalidArgument("bad formula")
	s.service.EXPECT().Tick(s.ctx, gomock.Any()).Return(&simulation.TickOutput{
		Frame:     1,
		Destroyed: []string{"goblin"},
		Errors:    []error{tickErr},
	}, nil)
	s.service.EXPECT().Tick(s.ctx, gomock.Any()).Return(nil, errors.Canceled("stopped"))

	_, err = player.Run(s.ctx, 2)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}
