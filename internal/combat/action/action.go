// Package action builds the executable action instances produced when a battler uses a skill.
package action

import (
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// Action is one executable instance of a skill. Instances are created per use and
// never reused.
type Action struct {
	ID       string
	Skill    *entities.Skill
	CasterID string
	Team     entities.Team

	// TargetID is the intended recipient for ally-scoped skills, empty otherwise
	TargetID  string
	Direction entities.Direction
	Origin    entities.Point
	SlotKey   cooldown.Key

	// Retaliation marks counters and defeat triggers, which never consume a slot
	Retaliation bool
}

// SkillID returns the id of the skill the action was built from
func (a *Action) SkillID() int {
	if a.Skill == nil {
		return 0
	}
	return a.Skill.ID
}
