package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	battlermock "github.com/KirkDiggler/rpg-realtime/internal/combat/battler/mock"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/resolver"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/grid"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-realtime/internal/stats"
)

const (
	skillSlash = iota + 1
	skillBolt
	skillMend
	skillBroken
	skillFocus
	skillShout
)

const stateWeak = 1

type fixedRoller struct{}

func (fixedRoller) Roll(int) (int, error) { return 1, nil }

func (fixedRoller) RollN(count, _ int) ([]int, error) { return make([]int, count), nil }

type ResolverTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	presenter *battlermock.MockPresenter
	catalog   *catalog.Memory
	registry  *battler.Registry
	resolver  *resolver.Resolver
	sheets    map[string]*stats.Sheet
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.presenter = battlermock.NewMockPresenter(s.ctrl)
	s.presenter.EXPECT().ShowPopup(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().PlayPose(gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().ShowNotice(gomock.Any(), gomock.Any()).AnyTimes()

	s.registry = battler.NewRegistry()
	s.sheets = make(map[string]*stats.Sheet)

	var err error
	s.catalog, err = catalog.New(&catalog.Data{
		Skills: []entities.Skill{
			{ID: skillSlash, Name: "Slash", Damage: "a.atk * 2 - b.def", AnimationID: 7},
			{ID: skillBolt, Name: "Bolt", Range: 4, Damage: "20"},
			{ID: skillMend, Name: "Mend", Scope: entities.ScopeAlly, Range: 3, Damage: "-25"},
			{ID: skillBroken, Name: "Broken", Damage: "a.atk +"},
			{ID: skillFocus, Name: "Focus", Scope: entities.ScopeSelf, Damage: "-10"},
			{ID: skillShout, Name: "Shout", Range: 2, StateIDs: []int{stateWeak}},
		},
		States: []entities.State{{ID: stateWeak, Name: "Weak"}},
		Battlers: []entities.BattlerTemplate{
			{ID: 1, Name: "Hero", Kind: entities.KindPlayer, MaxHP: 100, ATK: 10, DEF: 2},
			{ID: 2, Name: "Goblin", MaxHP: 50, ATK: 6, DEF: 3, PrepareTime: 600},
		},
	})
	s.Require().NoError(err)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// arena builds a map and context with the resolver as executor
func (s *ResolverTestSuite) arena(blocked ...entities.Point) (*battler.Context, *grid.Map) {
	m, err := grid.NewMap(&grid.Config{Width: 10, Height: 5, Blocked: blocked})
	s.Require().NoError(err)

	s.resolver, err = resolver.New(&resolver.Config{
		Registry:  s.registry,
		Grid:      m,
		Presenter: s.presenter,
	})
	s.Require().NoError(err)

	ctx, err := battler.NewContext(&battler.ContextConfig{
		Catalog:     s.catalog,
		Grid:        m,
		Presenter:   s.presenter,
		Executor:    s.resolver,
		Roller:      fixedRoller{},
		IDGenerator: idgen.NewSequential("action"),
		Registry:    s.registry,
	})
	s.Require().NoError(err)
	return ctx, m
}

func (s *ResolverTestSuite) spawn(ctx *battler.Context, m *grid.Map, id string, templateID int, at entities.Point) *battler.Battler {
	template, ok := s.catalog.GetBattler(templateID)
	s.Require().True(ok)

	sheet, err := stats.NewSheet(&stats.Config{Template: template, States: s.catalog})
	s.Require().NoError(err)

	body, err := m.AddBody(at, entities.DirRight)
	s.Require().NoError(err)

	b, err := battler.New(&battler.Config{ID: id, Template: template, Stats: sheet, Body: body, Context: ctx})
	s.Require().NoError(err)

	s.sheets[id] = sheet
	return b
}

func (s *ResolverTestSuite) TestNewRequiresDependencies() {
	_, err := resolver.New(&resolver.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestMeleeHitsAdjacentOpponent() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 2, Y: 1})
	s.presenter.EXPECT().PlayAnimation("goblin", 7)

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillSlash, cooldown.KeyMainhand, false))

	s.Require().NoError(err)
	s.Equal(33, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestOutOfRangeMisses() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 3, Y: 1})

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillSlash, cooldown.KeyMainhand, false))

	s.Require().NoError(err)
	s.Equal(50, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestWallsStopActions() {
	ctx, m := s.arena(entities.Point{X: 2, Y: 1})
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 3, Y: 1})

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillBolt, cooldown.KeySkill1, false))

	s.Require().NoError(err)
	s.Equal(50, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestActionsPassFriendlies() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "friend", 1, entities.Point{X: 2, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 3, Y: 1})

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillBolt, cooldown.KeySkill1, false))

	s.Require().NoError(err)
	s.Equal(100, s.sheets["friend"].HP())
	s.Equal(30, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestHealsAllyTarget() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "friend", 1, entities.Point{X: 1, Y: 3})
	s.sheets["friend"].Gain(entities.ResourceHP, -40)
	hero.SetAllyTarget("friend")

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillMend, cooldown.KeySkill1, false))

	s.Require().NoError(err)
	s.Equal(85, s.sheets["friend"].HP())
}

func (s *ResolverTestSuite) TestSelfScopedSkillsReachTheCaster() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.sheets["hero"].Gain(entities.ResourceHP, -30)

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillFocus, cooldown.KeySkill1, false))

	s.Require().NoError(err)
	s.Equal(80, s.sheets["hero"].HP())
}

func (s *ResolverTestSuite) TestStateOnlySkillAppliesStates() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 3, Y: 1})

	err := s.resolver.Execute(hero.CreateActionsFromSkill(skillShout, cooldown.KeySkill1, false))

	s.Require().NoError(err)
	s.True(s.sheets["goblin"].HasState(stateWeak))
	s.Equal(50, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestFormulaFailureDoesNotStopOtherActions() {
	ctx, m := s.arena()
	hero := s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 2, Y: 1})
	s.presenter.EXPECT().PlayAnimation("goblin", 7)

	actions := hero.CreateActionsFromSkill(skillBroken, cooldown.KeySkill1, false)
	actions = append(actions, hero.CreateActionsFromSkill(skillSlash, cooldown.KeyMainhand, false)...)

	err := s.resolver.Execute(actions)

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(33, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestUnknownCasterIsIgnored() {
	ctx, m := s.arena()
	s.spawn(ctx, m, "goblin", 2, entities.Point{X: 2, Y: 1})
	bolt, _ := s.catalog.GetSkill(skillBolt)

	err := s.resolver.Execute([]*action.Action{{
		ID:        "a1",
		Skill:     bolt,
		CasterID:  "ghost",
		Direction: entities.DirRight,
		Origin:    entities.Point{X: 1, Y: 1},
	}})

	s.Require().NoError(err)
	s.Equal(50, s.sheets["goblin"].HP())
}

func (s *ResolverTestSuite) TestRetaliationFromDefeatedCaster() {
	ctx, m := s.arena()
	s.spawn(ctx, m, "hero", 1, entities.Point{X: 1, Y: 1})
	goblin := s.spawn(ctx, m, "goblin", 2, entities.Point{X: 3, Y: 1})
	bolt, _ := s.catalog.GetSkill(skillBolt)
	s.sheets["goblin"].Gain(entities.ResourceHP, -50)
	s.True(goblin.IsDead())

	err := s.resolver.Execute([]*action.Action{{
		ID:          "a1",
		Skill:       bolt,
		CasterID:    "goblin",
		Team:        entities.TeamEnemy,
		Direction:   entities.DirLeft,
		Origin:      goblin.Position(),
		Retaliation: true,
	}})

	s.Require().NoError(err)
	s.Equal(80, s.sheets["hero"].HP())
}
