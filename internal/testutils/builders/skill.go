package builders

import (
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// SkillBuilder provides a fluent interface for building test skills
type SkillBuilder struct {
	skill entities.Skill
}

// NewSkillBuilder creates a builder for a single-target opponent skill
func NewSkillBuilder(id int, name string) *SkillBuilder {
	return &SkillBuilder{skill: entities.Skill{ID: id, Name: name}}
}

// WithDamage sets the damage formula
func (b *SkillBuilder) WithDamage(formula string) *SkillBuilder {
	b.skill.Damage = formula
	return b
}

// WithCooldown sets the base cooldown in frames
func (b *SkillBuilder) WithCooldown(frames int) *SkillBuilder {
	b.skill.Cooldown = frames
	return b
}

// WithScope sets who the skill affects
func (b *SkillBuilder) WithScope(scope entities.Scope) *SkillBuilder {
	b.skill.Scope = scope
	return b
}

// WithRange sets the reach in tiles
func (b *SkillBuilder) WithRange(tiles float64) *SkillBuilder {
	b.skill.Range = tiles
	return b
}

// WithProjectiles sets how many actions one use fans out into
func (b *SkillBuilder) WithProjectiles(count int) *SkillBuilder {
	b.skill.Projectile = count
	return b
}

// WithCombo arms a follow-up skill for window frames after use
func (b *SkillBuilder) WithCombo(skillID, window int) *SkillBuilder {
	b.skill.Combo = &entities.Combo{SkillID: skillID, Window: window}
	return b
}

// WithGuard makes the skill a guard skill
func (b *SkillBuilder) WithGuard(guard *entities.Guard) *SkillBuilder {
	b.skill.Guard = guard
	return b
}

// WithDodge makes the skill a dodge skill
func (b *SkillBuilder) WithDodge(dodge *entities.Dodge) *SkillBuilder {
	b.skill.Dodge = dodge
	return b
}

// WithStates sets the states applied on hit
func (b *SkillBuilder) WithStates(stateIDs ...int) *SkillBuilder {
	b.skill.StateIDs = stateIDs
	return b
}

// Build returns the skill
func (b *SkillBuilder) Build() entities.Skill {
	return b.skill
}
