// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// BattlerTemplateBuilder provides a fluent interface for building test battler templates
type BattlerTemplateBuilder struct {
	template entities.BattlerTemplate
}

// NewBattlerTemplateBuilder creates a builder for an enemy with minimal defaults
func NewBattlerTemplateBuilder(id int, name string) *BattlerTemplateBuilder {
	return &BattlerTemplateBuilder{
		template: entities.BattlerTemplate{
			ID:    id,
			Name:  name,
			Kind:  entities.KindEnemy,
			MaxHP: 10,
		},
	}
}

// WithKind sets the entity kind
func (b *BattlerTemplateBuilder) WithKind(kind entities.EntityKind) *BattlerTemplateBuilder {
	b.template.Kind = kind
	return b
}

// WithTeam overrides the team derived from the kind
func (b *BattlerTemplateBuilder) WithTeam(team entities.Team) *BattlerTemplateBuilder {
	b.template.Team = team
	return b
}

// WithResources sets max hp, mp and tp
func (b *BattlerTemplateBuilder) WithResources(hp, mp, tp int) *BattlerTemplateBuilder {
	b.template.MaxHP = hp
	b.template.MaxMP = mp
	b.template.MaxTP = tp
	return b
}

// WithAttack sets atk and def
func (b *BattlerTemplateBuilder) WithAttack(atk, def int) *BattlerTemplateBuilder {
	b.template.ATK = atk
	b.template.DEF = def
	return b
}

// WithSkills sets the attack, guard and dodge skills, then any assigned skills
func (b *BattlerTemplateBuilder) WithSkills(attack, guard, dodge int, skills ...int) *BattlerTemplateBuilder {
	b.template.AttackSkillID = attack
	b.template.GuardSkillID = guard
	b.template.DodgeSkillID = dodge
	b.template.SkillIDs = skills
	return b
}

// WithSenses sets sight and pursuit ranges
func (b *BattlerTemplateBuilder) WithSenses(sight, pursuit float64) *BattlerTemplateBuilder {
	b.template.Sight = sight
	b.template.Pursuit = pursuit
	return b
}

// WithAI sets the AI profile
func (b *BattlerTemplateBuilder) WithAI(profile entities.AIProfile) *BattlerTemplateBuilder {
	b.template.AI = profile
	return b
}

// WithPrepareTime sets the frames waited before each AI decision
func (b *BattlerTemplateBuilder) WithPrepareTime(frames int) *BattlerTemplateBuilder {
	b.template.PrepareTime = frames
	return b
}

// WithOwnDefeat adds a trigger fired when the battler is defeated
func (b *BattlerTemplateBuilder) WithOwnDefeat(trigger entities.DefeatTrigger) *BattlerTemplateBuilder {
	b.template.OnOwnDefeat = append(b.template.OnOwnDefeat, trigger)
	return b
}

// WithTargetDefeat adds a trigger fired when the battler defeats its target
func (b *BattlerTemplateBuilder) WithTargetDefeat(trigger entities.DefeatTrigger) *BattlerTemplateBuilder {
	b.template.OnTargetDefeat = append(b.template.OnTargetDefeat, trigger)
	return b
}

// Inanimate marks the battler as an object
func (b *BattlerTemplateBuilder) Inanimate() *BattlerTemplateBuilder {
	b.template.Inanimate = true
	return b
}

// Build returns the template
func (b *BattlerTemplateBuilder) Build() entities.BattlerTemplate {
	return b.template
}
