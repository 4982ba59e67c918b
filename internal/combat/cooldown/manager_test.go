package cooldown_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	cooldownmock "github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown/mock"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	caster  *cooldownmock.MockCaster
	manager *cooldown.Manager

	slash  *entities.Skill
	thrust *entities.Skill
	fire   *entities.Skill
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.caster = cooldownmock.NewMockCaster(s.ctrl)
	s.manager = cooldown.NewManager("entity-1")

	s.slash = &entities.Skill{ID: 1, Name: "Slash", Cooldown: 20, Combo: &entities.Combo{SkillID: 2, Window: 10}}
	s.thrust = &entities.Skill{ID: 2, Name: "Thrust", Cooldown: 30}
	s.fire = &entities.Skill{ID: 10, Name: "Fire", Cooldown: 60, MPCost: 5}

	s.manager.Equip(cooldown.KeyMainhand, s.slash.ID, false)
	s.manager.Equip(cooldown.KeySkill1, s.fire.ID, false)
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) allowAll() {
	s.caster.EXPECT().CanUseSkills().Return(true).AnyTimes()
	s.caster.EXPECT().CanUseAttacks().Return(true).AnyTimes()
	s.caster.EXPECT().CanPaySkillCost(gomock.Any()).Return(true).AnyTimes()
	s.caster.EXPECT().PaySkillCost(gomock.Any()).AnyTimes()
}

func (s *ManagerTestSuite) tick(frames int) {
	for i := 0; i < frames; i++ {
		s.manager.Update()
	}
}

func (s *ManagerTestSuite) TestFreshSlotIsReady() {
	s.allowAll()
	s.True(s.manager.IsBaseReady(cooldown.KeyMainhand))
	s.True(s.manager.CanExecute(cooldown.KeyMainhand, s.slash, s.caster))
}

func (s *ManagerTestSuite) TestUnknownSlotIsNeverReady() {
	s.False(s.manager.IsBaseReady(cooldown.KeySkill4))
	s.False(s.manager.CanExecute(cooldown.KeySkill4, s.slash, s.caster))
}

func (s *ManagerTestSuite) TestNilSkillIsUnusable() {
	s.False(s.manager.CanExecute(cooldown.KeyMainhand, nil, s.caster))
}

func (s *ManagerTestSuite) TestExecutePaysAndStartsCooldown() {
	s.caster.EXPECT().CanUseSkills().Return(true).AnyTimes()
	s.caster.EXPECT().CanPaySkillCost(s.fire).Return(true).AnyTimes()
	s.caster.EXPECT().PaySkillCost(s.fire).Times(1)

	s.Require().True(s.manager.Execute(cooldown.KeySkill1, s.fire, s.caster))
	s.False(s.manager.IsBaseReady(cooldown.KeySkill1))
	s.False(s.manager.CanExecute(cooldown.KeySkill1, s.fire, s.caster))

	s.tick(59)
	s.False(s.manager.IsBaseReady(cooldown.KeySkill1))
	s.tick(1)
	s.True(s.manager.IsBaseReady(cooldown.KeySkill1))
}

func (s *ManagerTestSuite) TestExecuteRefusedWithoutPaying() {
	s.caster.EXPECT().CanUseSkills().Return(true).AnyTimes()
	s.caster.EXPECT().CanPaySkillCost(s.fire).Return(false)

	s.False(s.manager.Execute(cooldown.KeySkill1, s.fire, s.caster))
	s.True(s.manager.IsBaseReady(cooldown.KeySkill1))
}

func (s *ManagerTestSuite) TestComboUsableDuringWindow() {
	s.allowAll()

	s.Require().True(s.manager.Execute(cooldown.KeyMainhand, s.slash, s.caster))
	s.Equal(s.thrust.ID, s.manager.PendingComboID(cooldown.KeyMainhand))

	// base is on cooldown but the armed follow-up is allowed through
	s.False(s.manager.IsBaseReady(cooldown.KeyMainhand))
	s.False(s.manager.CanExecute(cooldown.KeyMainhand, s.slash, s.caster))
	s.True(s.manager.CanExecute(cooldown.KeyMainhand, s.thrust, s.caster))

	s.Require().True(s.manager.Execute(cooldown.KeyMainhand, s.thrust, s.caster))
	s.NotEqual(s.thrust.ID, s.manager.PendingComboID(cooldown.KeyMainhand))
	s.Zero(s.manager.PendingComboID(cooldown.KeyMainhand))
	s.False(s.manager.CanExecute(cooldown.KeyMainhand, s.thrust, s.caster))
}

func (s *ManagerTestSuite) TestComboRearmedBySkillsOwnComboData() {
	s.allowAll()
	loop := &entities.Skill{ID: 5, Cooldown: 10, Combo: &entities.Combo{SkillID: 5, Window: 4}}
	s.manager.Equip(cooldown.KeySkill2, loop.ID, false)

	s.Require().True(s.manager.Execute(cooldown.KeySkill2, loop, s.caster))
	s.Require().True(s.manager.Execute(cooldown.KeySkill2, loop, s.caster))
	s.Equal(loop.ID, s.manager.PendingComboID(cooldown.KeySkill2))
}

func (s *ManagerTestSuite) TestComboWindowLapses() {
	s.allowAll()

	s.Require().True(s.manager.Execute(cooldown.KeyMainhand, s.slash, s.caster))
	s.tick(9)
	s.Equal(s.thrust.ID, s.manager.PendingComboID(cooldown.KeyMainhand))

	s.tick(1)
	s.Zero(s.manager.PendingComboID(cooldown.KeyMainhand))
	s.False(s.manager.CanExecute(cooldown.KeyMainhand, s.thrust, s.caster))
}

func (s *ManagerTestSuite) TestSilenceBlocksSkillsButNotAttacks() {
	s.caster.EXPECT().CanUseSkills().Return(false).AnyTimes()
	s.caster.EXPECT().CanUseAttacks().Return(true).AnyTimes()
	s.caster.EXPECT().CanPaySkillCost(gomock.Any()).Return(true).AnyTimes()

	s.False(s.manager.CanExecute(cooldown.KeySkill1, s.fire, s.caster))
	s.True(s.manager.CanExecute(cooldown.KeyMainhand, s.slash, s.caster))
}

func (s *ManagerTestSuite) TestDisarmBlocksAttacksButNotSkills() {
	s.caster.EXPECT().CanUseSkills().Return(true).AnyTimes()
	s.caster.EXPECT().CanUseAttacks().Return(false).AnyTimes()
	s.caster.EXPECT().CanPaySkillCost(gomock.Any()).Return(true).AnyTimes()

	s.True(s.manager.CanExecute(cooldown.KeySkill1, s.fire, s.caster))
	s.False(s.manager.CanExecute(cooldown.KeyMainhand, s.slash, s.caster))
}

func (s *ManagerTestSuite) TestLockedSlotSurvivesAutoClear() {
	s.manager.Equip(cooldown.KeySkill3, 99, true)

	s.False(s.manager.Clear(cooldown.KeySkill3, true))
	slot, ok := s.manager.Slot(cooldown.KeySkill3)
	s.Require().True(ok)
	s.Equal(99, slot.SkillID)

	s.True(s.manager.Clear(cooldown.KeySkill3, false))
	s.True(slot.IsEmpty())
}

func (s *ManagerTestSuite) TestKeysKeepEquipOrder() {
	s.manager.Equip(cooldown.KeyTool, 0, false)
	s.Equal([]cooldown.Key{cooldown.KeyMainhand, cooldown.KeySkill1, cooldown.KeyTool}, s.manager.Keys())

	key, ok := s.manager.FindBySkill(s.fire.ID)
	s.True(ok)
	s.Equal(cooldown.KeySkill1, key)
}

func (s *ManagerTestSuite) TestSetCooldownForTools() {
	s.manager.Equip(cooldown.KeyTool, 0, false)
	s.manager.SetCooldown(cooldown.KeyTool, 2)
	s.False(s.manager.IsBaseReady(cooldown.KeyTool))
	s.tick(2)
	s.True(s.manager.IsBaseReady(cooldown.KeyTool))
}
