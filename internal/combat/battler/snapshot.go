package battler

import (
	"github.com/KirkDiggler/rpg-realtime/internal/combat/aggro"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// Snapshot is a read-only view of a battler for presentation and persistence
type Snapshot struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	TemplateID int                 `json:"template_id"`
	Kind       entities.EntityKind `json:"kind"`
	Team       entities.Team       `json:"team"`
	Position   entities.Point      `json:"position"`
	Facing     entities.Direction  `json:"facing"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	MP    int `json:"mp"`
	MaxMP int `json:"max_mp"`
	TP    int `json:"tp"`
	MaxTP int `json:"max_tp"`

	Engaged   bool  `json:"engaged"`
	Alerted   bool  `json:"alerted"`
	Casting   bool  `json:"casting"`
	Guarding  bool  `json:"guarding"`
	Parrying  bool  `json:"parrying"`
	Dodging   bool  `json:"dodging"`
	Dying     bool  `json:"dying"`
	HideHPBar bool  `json:"hide_hp_bar"`
	Phase     Phase `json:"phase"`
	Pose      Pose  `json:"pose"`

	TargetID     string                 `json:"target_id,omitempty"`
	AllyTargetID string                 `json:"ally_target_id,omitempty"`
	LeaderID     string                 `json:"leader_id,omitempty"`
	Aggro        []aggro.Entry          `json:"aggro,omitempty"`
	States       []entities.ActiveState `json:"states,omitempty"`
}

// Snapshot captures the battler's current state
func (b *Battler) Snapshot() *Snapshot {
	return &Snapshot{
		ID:           b.id,
		Name:         b.template.Name,
		TemplateID:   b.template.ID,
		Kind:         b.kind,
		Team:         b.team,
		Position:     b.Position(),
		Facing:       b.body.Facing(),
		HP:           b.stats.Current(entities.ResourceHP),
		MaxHP:        b.stats.Max(entities.ResourceHP),
		MP:           b.stats.Current(entities.ResourceMP),
		MaxMP:        b.stats.Max(entities.ResourceMP),
		TP:           b.stats.Current(entities.ResourceTP),
		MaxTP:        b.stats.Max(entities.ResourceTP),
		Engaged:      b.engaged,
		Alerted:      b.alerted,
		Casting:      b.casting,
		Guarding:     b.guard.IsGuarding(),
		Parrying:     b.guard.IsParrying(),
		Dodging:      b.IsDodging(),
		Dying:        b.dying,
		HideHPBar:    b.template.HideHPBar,
		Phase:        b.phase,
		Pose:         b.pose,
		TargetID:     b.targetID,
		AllyTargetID: b.allyTargetID,
		LeaderID:     b.leaderID,
		Aggro:        b.aggro.All(),
		States:       b.stats.States(),
	}
}
