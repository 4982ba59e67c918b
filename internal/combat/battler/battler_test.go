package battler_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	battlermock "github.com/KirkDiggler/rpg-realtime/internal/combat/battler/mock"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/grid"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-realtime/internal/stats"
)

const (
	skillStrike = iota + 1
	skillShield
	skillRoll
	skillHeal
	skillRiposte
	skillBurst
)

const (
	templateHero = iota + 1
	templateSlime
	templateCleric
	templateBarricade
	templateKnight
	templateBrute
)

const (
	stateRoot = iota + 1
	stateStun
)

type scriptedRoller struct {
	rolls []int
	calls int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.calls++
	if len(r.rolls) == 0 {
		return 1, nil
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return min(v, size), nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

func testCatalog() *catalog.Data {
	return &catalog.Data{
		Skills: []entities.Skill{
			{ID: skillStrike, Name: "Strike", Cooldown: 30, Damage: "10"},
			{ID: skillShield, Name: "Shield", Guard: &entities.Guard{
				Flat: 5, Percent: 20, ParryDuration: 10, ParryTPBonus: 15, CounterParry: []int{skillRiposte},
			}},
			{ID: skillRoll, Name: "Roll", Dodge: &entities.Dodge{Steps: 4, SpeedBonus: 2, Invincible: true}},
			{ID: skillHeal, Name: "Heal", Scope: entities.ScopeAlly, Range: 3, Damage: "-30"},
			{ID: skillRiposte, Name: "Riposte", Damage: "20"},
			{ID: skillBurst, Name: "Burst", Projectile: 4, Damage: "15"},
		},
		States: []entities.State{
			{ID: stateRoot, Name: "Root", Root: true},
			{ID: stateStun, Name: "Stun", Paralyze: true},
		},
		Items: []entities.Item{
			{ID: 1, Name: "Potion", RecoverHP: 50, Cooldown: 60},
		},
		Battlers: []entities.BattlerTemplate{
			{ID: templateHero, Name: "Hero", Kind: entities.KindPlayer, MaxHP: 200, MaxMP: 20, MaxTP: 100,
				AttackSkillID: skillStrike, GuardSkillID: skillShield, DodgeSkillID: skillRoll},
			{ID: templateSlime, Name: "Slime", MaxHP: 30, AttackSkillID: skillStrike, PrepareTime: 600,
				OnOwnDefeat: []entities.DefeatTrigger{{SkillID: skillBurst, Chance: 50}}},
			{ID: templateCleric, Name: "Cleric", MaxHP: 40, MaxMP: 50, AI: entities.AISupport, PrepareTime: 1,
				AttackSkillID: skillStrike, SkillIDs: []int{skillHeal}},
			{ID: templateBarricade, Name: "Barricade", Team: entities.TeamAlly, MaxHP: 50, Inanimate: true},
			{ID: templateKnight, Name: "Knight", Kind: entities.KindPlayer, MaxHP: 100, AttackSkillID: skillStrike,
				OnTargetDefeat: []entities.DefeatTrigger{{SkillID: skillRiposte, CastFrom: entities.CastFromTarget}}},
			{ID: templateBrute, Name: "Brute", MaxHP: 60, AttackSkillID: skillStrike, PrepareTime: 2},
		},
	}
}

type BattlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	presenter *battlermock.MockPresenter
	executor  *battlermock.MockExecutor
	roller    *scriptedRoller
	catalog   *catalog.Memory
	grid      *grid.Map
	ctx       *battler.Context
	bodies    map[string]*grid.Body
	sheets    map[string]*stats.Sheet
	executed  []*action.Action
}

func TestBattlerSuite(t *testing.T) {
	suite.Run(t, new(BattlerTestSuite))
}

func (s *BattlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.presenter = battlermock.NewMockPresenter(s.ctrl)
	s.executor = battlermock.NewMockExecutor(s.ctrl)
	s.roller = &scriptedRoller{}
	s.bodies = make(map[string]*grid.Body)
	s.sheets = make(map[string]*stats.Sheet)
	s.executed = nil

	s.presenter.EXPECT().PlayAnimation(gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().ShowPopup(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().PlayPose(gomock.Any(), gomock.Any()).AnyTimes()
	s.presenter.EXPECT().ShowNotice(gomock.Any(), gomock.Any()).AnyTimes()
	s.executor.EXPECT().Execute(gomock.Any()).DoAndReturn(func(actions []*action.Action) error {
		s.executed = append(s.executed, actions...)
		return nil
	}).AnyTimes()

	var err error
	s.catalog, err = catalog.New(testCatalog())
	s.Require().NoError(err)

	s.grid, err = grid.NewMap(&grid.Config{Width: 20, Height: 10})
	s.Require().NoError(err)

	s.ctx, err = battler.NewContext(&battler.ContextConfig{
		Catalog:     s.catalog,
		Grid:        s.grid,
		Presenter:   s.presenter,
		Executor:    s.executor,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("action"),
	})
	s.Require().NoError(err)
}

func (s *BattlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BattlerTestSuite) spawn(id string, templateID int, at entities.Point, facing entities.Direction) *battler.Battler {
	template, ok := s.catalog.GetBattler(templateID)
	s.Require().True(ok)

	sheet, err := stats.NewSheet(&stats.Config{Template: template, States: s.catalog})
	s.Require().NoError(err)

	body, err := s.grid.AddBody(at, facing)
	s.Require().NoError(err)

	b, err := battler.New(&battler.Config{
		ID:         id,
		Template:   template,
		Stats:      sheet,
		Body:       body,
		Context:    s.ctx,
		SpawnIndex: s.ctx.Registry().Len(),
	})
	s.Require().NoError(err)

	s.bodies[id] = body
	s.sheets[id] = sheet
	return b
}

func (s *BattlerTestSuite) tick(frames int) {
	for i := 0; i < frames; i++ {
		for _, b := range s.ctx.Registry().All() {
			s.Require().NoError(b.Update())
		}
		s.grid.Update()
	}
}

func (s *BattlerTestSuite) executedSkills() []int {
	ids := make([]int, 0, len(s.executed))
	for _, a := range s.executed {
		ids = append(ids, a.SkillID())
	}
	return ids
}

func (s *BattlerTestSuite) TestNewRequiresDependencies() {
	_, err := battler.New(&battler.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *BattlerTestSuite) TestNewRejectsDuplicateID() {
	s.spawn("slime", templateSlime, entities.Point{X: 1, Y: 1}, entities.DirDown)

	template, _ := s.catalog.GetBattler(templateSlime)
	sheet, err := stats.NewSheet(&stats.Config{Template: template, States: s.catalog})
	s.Require().NoError(err)
	body, err := s.grid.AddBody(entities.Point{X: 2, Y: 1}, entities.DirDown)
	s.Require().NoError(err)

	_, err = battler.New(&battler.Config{ID: "slime", Template: template, Stats: sheet, Body: body, Context: s.ctx})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *BattlerTestSuite) TestIdentityAndSlots() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 1, Y: 1}, entities.DirDown)

	s.Equal("hero", hero.GetID())
	s.Equal("player", hero.GetType())
	s.Equal(entities.TeamAlly, hero.Team())
	s.False(hero.IsAIControlled())
	s.True(hero.IsGuardSkillByKey(cooldown.KeyOffhand))
	s.False(hero.IsGuardSkillByKey(cooldown.KeyMainhand))
	s.True(hero.CanExecuteSkill(cooldown.KeyMainhand))
	s.False(hero.CanExecuteSkill(cooldown.KeySkill1))
	s.Equal(1, s.ctx.Registry().Len())
}

func (s *BattlerTestSuite) TestEngagesOpponentInSight() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 3, Y: 0}, entities.DirLeft)

	s.tick(15)

	s.True(slime.IsEngaged())
	s.Equal("hero", slime.TargetID())
	s.Require().Len(slime.AllAggros(), 1)
	s.Equal("hero", slime.AllAggros()[0].ID)
	s.Equal(0, slime.AllAggros()[0].Value)
	s.False(hero.IsEngaged())
}

func (s *BattlerTestSuite) TestDoesNotEngageOutOfSight() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 9, Y: 0}, entities.DirLeft)

	s.tick(45)

	s.False(slime.IsEngaged())
}

func (s *BattlerTestSuite) TestInactiveSimulationDoesNothing() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)
	s.ctx.SetActive(false)

	s.tick(30)

	s.False(slime.IsEngaged())
}

func (s *BattlerTestSuite) TestDisengagesWhenTargetEscapesPursuit() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 5, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirRight)
	s.Require().True(slime.EngageTarget(hero.GetID()))

	for i := 0; i < 4; i++ {
		s.Require().True(s.bodies["hero"].Step(entities.DirRight))
		s.grid.Update()
	}
	s.Equal(entities.Point{X: 9, Y: 0}, hero.Position())

	s.tick(15)

	s.False(slime.IsEngaged())
	s.Empty(slime.TargetID())
	s.Empty(slime.AllAggros())
}

func (s *BattlerTestSuite) TestEngagementLockPreventsTransitions() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)

	slime.SetEngagementLocked(true)
	s.tick(15)
	s.False(slime.IsEngaged())
	s.False(slime.EngageTarget(hero.GetID()))

	slime.SetEngagementLocked(false)
	s.Require().True(slime.EngageTarget(hero.GetID()))
	slime.SetEngagementLocked(true)
	s.False(slime.DisengageTarget())
	s.True(slime.IsEngaged())
}

func (s *BattlerTestSuite) TestNeverTargetsItself() {
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)
	s.False(slime.EngageTarget(slime.GetID()))
	s.False(slime.EngageTarget("missing"))
}

func (s *BattlerTestSuite) TestHitsRetargetToHigherThreat() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	s.spawn("knight", templateKnight, entities.Point{X: 4, Y: 0}, entities.DirLeft)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)
	strike, _ := s.catalog.GetSkill(skillStrike)

	s.Require().True(slime.EngageTarget("hero"))
	result := slime.ReceiveHit(&battler.Hit{AttackerID: "knight", Skill: strike, Damage: 10})
	s.Equal(10, result.Damage)

	s.tick(1)

	s.Equal("knight", slime.TargetID())
	entry, ok := slime.Aggro().Get("knight")
	s.Require().True(ok)
	s.Equal(10, entry.Value)
}

func (s *BattlerTestSuite) TestHitAlertsIdleEnemy() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 8, Y: 0}, entities.DirLeft)

	slime.ReceiveHit(&battler.Hit{AttackerID: "hero", Damage: 5})

	s.True(slime.IsAlerted())
	struck, ok := slime.LastStruckBy()
	s.Require().True(ok)
	s.Equal("hero", struck.GetID())
	s.Equal(25, s.sheets["slime"].HP())

	s.tick(1)
	s.Equal(entities.Point{X: 7, Y: 0}, slime.Position())
}

func (s *BattlerTestSuite) TestInanimateEntitiesStayOutOfAggro() {
	barricade := s.spawn("barricade", templateBarricade, entities.Point{X: 3, Y: 0}, entities.DirDown)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)

	s.False(barricade.IsAIControlled())
	s.Require().True(slime.EngageTarget("barricade"))
	s.Empty(slime.AllAggros())

	result := slime.ReceiveHit(&battler.Hit{AttackerID: "barricade", Damage: 4})
	s.Equal(4, result.Damage)
	s.False(slime.Aggro().Has("barricade"))

	hit := barricade.ReceiveHit(&battler.Hit{AttackerID: "slime", Damage: 10})
	s.Equal(10, hit.Damage)
	s.Equal(40, s.sheets["barricade"].HP())

	s.tick(20)
	s.True(slime.IsEngaged())
	s.False(barricade.IsEngaged())
}

func (s *BattlerTestSuite) TestGuardParriesThenReduces() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirDown)
	s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)
	strike, _ := s.catalog.GetSkill(skillStrike)

	s.Require().True(hero.StartGuard())
	s.True(hero.IsParrying())

	parried := hero.ReceiveHit(&battler.Hit{AttackerID: "slime", Skill: strike, Damage: 100})
	s.True(parried.Parried)
	s.Equal(0, parried.Damage)
	s.False(hero.IsParrying())
	s.Equal(15, s.sheets["hero"].TP())
	s.Equal(entities.DirRight, hero.Body().Facing())

	s.Require().NoError(hero.Update())
	s.Require().Len(s.executed, 1)
	s.Equal(skillRiposte, s.executed[0].SkillID())
	s.True(s.executed[0].Retaliation)

	guarded := hero.ReceiveHit(&battler.Hit{AttackerID: "slime", Skill: strike, Damage: 100})
	s.True(guarded.Guarded)
	s.Equal(75, guarded.Damage)
	s.Equal(125, s.sheets["hero"].HP())

	hero.EndGuard()
	s.False(hero.IsGuarding())
}

func (s *BattlerTestSuite) TestParryBlocksStatusOnlyHit() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirDown)
	s.spawn("slime", templateSlime, entities.Point{X: 2, Y: 0}, entities.DirLeft)

	s.Require().True(hero.StartGuard())
	result := hero.ReceiveHit(&battler.Hit{AttackerID: "slime", Damage: 0, StateIDs: []int{stateRoot}})

	s.True(result.Parried)
	s.False(s.sheets["hero"].HasState(stateRoot))
	s.False(hero.IsParrying())
	s.True(hero.IsGuarding())
}

func (s *BattlerTestSuite) TestGuardWaitsForOffhandCooldown() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirDown)
	hero.Slots().SetCooldown(cooldown.KeyOffhand, 5)

	s.False(hero.StartGuard())
	s.False(hero.IsGuarding())

	for i := 0; i < 5; i++ {
		s.Require().NoError(hero.Update())
	}
	s.True(hero.StartGuard())
}

func (s *BattlerTestSuite) TestParalysisForcesGuardDown() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirDown)
	s.Require().True(hero.StartGuard())

	s.sheets["hero"].AddState(stateStun, "")
	s.Require().NoError(hero.Update())

	s.False(hero.IsGuarding())
	s.False(hero.StartGuard())
}

func (s *BattlerTestSuite) TestDodgeStepsThenReverts() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 2, Y: 2}, entities.DirRight)
	body := s.bodies["hero"]

	s.Require().True(hero.Dodge(entities.DirNone))
	s.True(hero.IsDodging())
	s.True(hero.IsInvincible())
	s.Equal(2, body.SpeedBonus())
	s.False(hero.Dodge(entities.DirNone))

	for i := 0; i < 3; i++ {
		s.Require().NoError(hero.Update())
		s.grid.Update()
	}
	s.Equal(1, hero.DodgeSteps())
	s.True(hero.IsDodging())

	s.Require().NoError(hero.Update())
	s.grid.Update()
	s.Equal(0, hero.DodgeSteps())
	s.Equal(entities.Point{X: 6, Y: 2}, hero.Position())
	s.True(hero.IsDodging())

	s.Require().NoError(hero.Update())
	s.False(hero.IsDodging())
	s.False(hero.IsInvincible())
	s.Equal(0, body.SpeedBonus())
	s.Equal(entities.Point{X: 6, Y: 2}, hero.Position())
}

func (s *BattlerTestSuite) TestDodgeNegatesHits() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 2, Y: 2}, entities.DirRight)
	s.spawn("slime", templateSlime, entities.Point{X: 8, Y: 2}, entities.DirLeft)
	s.Require().True(hero.Dodge(entities.DirNone))

	result := hero.ReceiveHit(&battler.Hit{AttackerID: "slime", Damage: 50})

	s.True(result.Negated)
	s.Equal(200, s.sheets["hero"].HP())
}

func (s *BattlerTestSuite) TestDodgeNegatesStatusOnlyHit() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 2, Y: 2}, entities.DirRight)
	s.spawn("slime", templateSlime, entities.Point{X: 8, Y: 2}, entities.DirLeft)
	s.Require().True(hero.Dodge(entities.DirNone))

	result := hero.ReceiveHit(&battler.Hit{AttackerID: "slime", Damage: 0, StateIDs: []int{stateRoot}})

	s.True(result.Negated)
	s.False(s.sheets["hero"].HasState(stateRoot))
}

func (s *BattlerTestSuite) TestDodgeWhileRootedIsNoOp() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 2, Y: 2}, entities.DirRight)
	s.sheets["hero"].AddState(stateRoot, "")

	s.False(hero.Dodge(entities.DirNone))
	s.False(hero.IsDodging())
}

func (s *BattlerTestSuite) TestDefeatChainFiresOnce() {
	s.spawn("knight", templateKnight, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 1, Y: 0}, entities.DirLeft)
	s.roller.rolls = []int{30}

	result := slime.ReceiveHit(&battler.Hit{AttackerID: "knight", Damage: 999})
	s.True(result.Defeated)

	s.tick(5)

	s.True(slime.IsDying())
	s.True(slime.IsDestroyed())
	s.Equal([]int{skillBurst, skillBurst, skillBurst, skillBurst, skillRiposte}, s.executedSkills())
	s.Equal(1, s.roller.calls)

	riposte := s.executed[4]
	s.Equal("knight", riposte.CasterID)
	s.Equal(entities.Point{X: 1, Y: 0}, riposte.Origin)
	s.True(riposte.Retaliation)

	s.tick(30)
	s.Len(s.executed, 5)
}

func (s *BattlerTestSuite) TestDefeatTriggerChanceCanMiss() {
	s.spawn("knight", templateKnight, entities.Point{X: 0, Y: 0}, entities.DirRight)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 1, Y: 0}, entities.DirLeft)
	s.roller.rolls = []int{80}

	slime.ReceiveHit(&battler.Hit{AttackerID: "knight", Damage: 999})
	s.tick(3)

	s.Equal([]int{skillRiposte}, s.executedSkills())
}

func (s *BattlerTestSuite) TestBusyContextDelaysDestruction() {
	slime := s.spawn("slime", templateSlime, entities.Point{X: 1, Y: 0}, entities.DirLeft)
	s.ctx.SetBusy(true)
	s.roller.rolls = []int{99}

	slime.ReceiveHit(&battler.Hit{Damage: 999})
	s.tick(3)
	s.True(slime.IsDying())
	s.False(slime.IsDestroyed())

	s.ctx.SetBusy(false)
	s.tick(1)
	s.True(slime.IsDestroyed())
}

func (s *BattlerTestSuite) TestDyingActorsPersist() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)

	hero.ReceiveHit(&battler.Hit{Damage: 999})
	s.tick(10)

	s.True(hero.IsDying())
	s.False(hero.IsDestroyed())
	s.True(hero.ReceiveHit(&battler.Hit{Damage: 1}).Negated)
}

func (s *BattlerTestSuite) TestAICycleApproachesAndAttacks() {
	s.spawn("hero", templateHero, entities.Point{X: 3, Y: 0}, entities.DirLeft)
	brute := s.spawn("brute", templateBrute, entities.Point{X: 1, Y: 0}, entities.DirRight)
	s.Require().True(brute.EngageTarget("hero"))
	s.Equal(battler.PhasePrepare, brute.Phase())

	s.tick(10)

	s.Equal(entities.Point{X: 2, Y: 0}, brute.Position())
	s.Equal([]int{skillStrike}, s.executedSkills())
	s.Equal("brute", s.executed[0].CasterID)
	s.Equal(entities.DirRight, s.executed[0].Direction)
	s.Equal(cooldown.KeyMainhand, s.executed[0].SlotKey)
	s.Equal(battler.PhaseCooldown, brute.Phase())
}

func (s *BattlerTestSuite) TestSupportAIHealsWoundedAlly() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 5}, entities.DirRight)
	cleric := s.spawn("cleric", templateCleric, entities.Point{X: 0, Y: 2}, entities.DirRight)
	s.spawn("slime", templateSlime, entities.Point{X: 1, Y: 2}, entities.DirRight)
	s.sheets["slime"].Gain(entities.ResourceHP, -20)

	s.Require().True(cleric.EngageTarget("hero"))
	s.tick(5)

	s.Require().NotEmpty(s.executed)
	s.Equal(skillHeal, s.executed[0].SkillID())
	s.Equal("slime", s.executed[0].TargetID)
	ally, ok := cleric.AllyTarget()
	s.Require().True(ok)
	s.Equal("slime", ally.GetID())
}

func (s *BattlerTestSuite) TestCustomDecider() {
	decider := battlermock.NewMockDecider(s.ctrl)
	template, _ := s.catalog.GetBattler(templateBrute)
	sheet, err := stats.NewSheet(&stats.Config{Template: template, States: s.catalog})
	s.Require().NoError(err)
	body, err := s.grid.AddBody(entities.Point{X: 1, Y: 1}, entities.DirRight)
	s.Require().NoError(err)
	brute, err := battler.New(&battler.Config{
		ID: "brute", Template: template, Stats: sheet, Body: body, Context: s.ctx, Decider: decider,
	})
	s.Require().NoError(err)
	s.spawn("hero", templateHero, entities.Point{X: 2, Y: 1}, entities.DirLeft)

	decider.EXPECT().Decide(brute).Return(nil).MinTimes(1)

	s.Require().True(brute.EngageTarget("hero"))
	s.tick(4)

	s.Empty(s.executed)
	s.Equal(battler.PhasePrepare, brute.Phase())
}

func (s *BattlerTestSuite) TestExecuteSlotProducesActions() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)

	s.Require().True(hero.ExecuteSlot(cooldown.KeyMainhand))
	s.False(hero.ExecuteSlot(cooldown.KeyMainhand))
	s.Require().Len(hero.Pending(), 1)

	s.Require().NoError(hero.Update())
	s.Equal([]int{skillStrike}, s.executedSkills())
	s.Empty(hero.Pending())
}

func (s *BattlerTestSuite) TestCreateActionsFromSkill() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)

	actions := hero.CreateActionsFromSkill(skillBurst, cooldown.KeySkill1, false)
	s.Len(actions, 4)
	s.Nil(hero.CreateActionsFromSkill(999, cooldown.KeySkill1, false))
	s.Empty(hero.Pending())
}

func (s *BattlerTestSuite) TestApplyToolEffect() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	s.sheets["hero"].Gain(entities.ResourceHP, -120)

	s.True(hero.ApplyToolEffect(1))
	s.Equal(130, s.sheets["hero"].HP())
	s.False(hero.ApplyToolEffect(1))
	s.False(hero.ApplyToolEffect(42))

	s.tick(60)
	s.True(hero.ApplyToolEffect(1))
}

func (s *BattlerTestSuite) TestFollowersJoinLeader() {
	s.spawn("hero", templateHero, entities.Point{X: 0, Y: 0}, entities.DirRight)
	leader := s.spawn("leader", templateSlime, entities.Point{X: 5, Y: 5}, entities.DirLeft)
	follower := s.spawn("follower", templateSlime, entities.Point{X: 6, Y: 5}, entities.DirLeft)

	follower.SetLeader("leader")
	s.Equal([]string{"follower"}, leader.FollowerIDs())

	s.Require().True(leader.EngageTarget("hero"))
	s.True(follower.IsEngaged())
	s.Equal("hero", follower.TargetID())

	s.Require().True(follower.DisengageTarget())
	s.Empty(leader.FollowerIDs())
	_, ok := follower.Leader()
	s.False(ok)
}

func (s *BattlerTestSuite) TestSnapshot() {
	hero := s.spawn("hero", templateHero, entities.Point{X: 3, Y: 4}, entities.DirUp)
	slime := s.spawn("slime", templateSlime, entities.Point{X: 4, Y: 4}, entities.DirLeft)
	s.Require().True(slime.EngageTarget(hero.GetID()))

	snapshot := slime.Snapshot()

	s.Equal("slime", snapshot.ID)
	s.Equal("Slime", snapshot.Name)
	s.Equal(entities.KindEnemy, snapshot.Kind)
	s.Equal(entities.Point{X: 4, Y: 4}, snapshot.Position)
	s.Equal(30, snapshot.HP)
	s.True(snapshot.Engaged)
	s.Equal("hero", snapshot.TargetID)
	s.Len(snapshot.Aggro, 1)
	s.Equal(battler.PhasePrepare, snapshot.Phase)
}
