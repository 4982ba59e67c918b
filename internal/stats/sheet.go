// Package stats provides the concrete resource and attribute sheet backing a battler.
package stats

import (
	"slices"

	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/formula"
)

// StateLookup resolves state definitions
type StateLookup interface {
	GetState(id int) (*entities.State, bool)
}

// Config holds the inputs for a sheet
type Config struct {
	Template *entities.BattlerTemplate
	States   StateLookup
}

// Validate ensures all required inputs are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Template == nil {
		vb.RequiredField("Template")
	} else if c.Template.MaxHP <= 0 {
		vb.InvalidField("Template.MaxHP", "must be positive")
	}
	if c.States == nil {
		vb.RequiredField("States")
	}

	return vb.Build()
}

// Sheet tracks current resources and active states for one battler. HP and MP start
// full, TP starts empty.
type Sheet struct {
	template *entities.BattlerTemplate
	lookup   StateLookup
	current  map[entities.Resource]int
	states   []entities.ActiveState
}

// NewSheet creates a sheet from a battler template
func NewSheet(cfg *Config) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Sheet{
		template: cfg.Template,
		lookup:   cfg.States,
		current: map[entities.Resource]int{
			entities.ResourceHP: cfg.Template.MaxHP,
			entities.ResourceMP: cfg.Template.MaxMP,
			entities.ResourceTP: 0,
		},
	}, nil
}

// HP returns current hit points
func (s *Sheet) HP() int { return s.current[entities.ResourceHP] }

// MP returns current magic points
func (s *Sheet) MP() int { return s.current[entities.ResourceMP] }

// TP returns current tech points
func (s *Sheet) TP() int { return s.current[entities.ResourceTP] }

// Current returns the current value of a resource
func (s *Sheet) Current(resource entities.Resource) int {
	return s.current[resource]
}

// Max returns the maximum value of a resource
func (s *Sheet) Max(resource entities.Resource) int {
	switch resource {
	case entities.ResourceMP:
		return s.template.MaxMP
	case entities.ResourceTP:
		return s.template.MaxTP
	default:
		return s.template.MaxHP
	}
}

// Rate returns the natural regeneration rate of a resource
func (s *Sheet) Rate(resource entities.Resource) float64 {
	switch resource {
	case entities.ResourceMP:
		return s.template.MRG
	case entities.ResourceTP:
		return s.template.TRG
	default:
		return s.template.HRG
	}
}

// REC returns the recovery effect multiplier
func (s *Sheet) REC() float64 { return s.template.REC }

// EVA returns the evasion rate
func (s *Sheet) EVA() float64 { return s.template.EVA }

// Gain changes a resource by a signed amount, clamped to [0, max]
func (s *Sheet) Gain(resource entities.Resource, amount int) {
	s.current[resource] = min(max(s.current[resource]+amount, 0), s.Max(resource))
}

// Revive restores a defeated sheet to the given hit points
func (s *Sheet) Revive(hp int) {
	s.current[entities.ResourceHP] = min(max(hp, 1), s.template.MaxHP)
}

// IsDead reports whether hit points are exhausted
func (s *Sheet) IsDead() bool {
	return s.current[entities.ResourceHP] <= 0
}

// States returns a copy of the active states
func (s *Sheet) States() []entities.ActiveState {
	return slices.Clone(s.states)
}

// AddState applies a state. Reapplying refreshes its source.
func (s *Sheet) AddState(stateID int, sourceID string) {
	if _, ok := s.lookup.GetState(stateID); !ok {
		return
	}
	for i := range s.states {
		if s.states[i].StateID == stateID {
			s.states[i].SourceID = sourceID
			s.states[i].Tracked = true
			return
		}
	}
	s.states = append(s.states, entities.ActiveState{StateID: stateID, SourceID: sourceID, Tracked: true})
}

// HasState reports whether a state is applied
func (s *Sheet) HasState(stateID int) bool {
	return slices.ContainsFunc(s.states, func(a entities.ActiveState) bool {
		return a.StateID == stateID
	})
}

// Untrack stops tracking a state; it is pruned on the next regeneration tick
func (s *Sheet) Untrack(stateID int) {
	for i := range s.states {
		if s.states[i].StateID == stateID {
			s.states[i].Tracked = false
		}
	}
}

// RemoveState removes a state
func (s *Sheet) RemoveState(stateID int) {
	s.states = slices.DeleteFunc(s.states, func(a entities.ActiveState) bool {
		return a.StateID == stateID
	})
}

// Restrictions combines the restrictions of every active state
func (s *Sheet) Restrictions() entities.Restrictions {
	var r entities.Restrictions
	for _, active := range s.states {
		if state, ok := s.lookup.GetState(active.StateID); ok {
			r = r.Merge(state)
		}
	}
	return r
}

// VisionMultiplier is the product of the template multiplier and every state that
// changes visibility
func (s *Sheet) VisionMultiplier() float64 {
	vision := s.template.VisionMultiplier
	for _, active := range s.states {
		state, ok := s.lookup.GetState(active.StateID)
		if ok && state.VisionMultiplier != nil {
			vision *= *state.VisionMultiplier
		}
	}
	return vision
}

// CanPaySkillCost reports whether the resource costs of a skill are affordable
func (s *Sheet) CanPaySkillCost(skill *entities.Skill) bool {
	return s.MP() >= skill.MPCost && s.TP() >= skill.TPCost
}

// PaySkillCost deducts the resource costs of a skill
func (s *Sheet) PaySkillCost(skill *entities.Skill) {
	s.Gain(entities.ResourceMP, -skill.MPCost)
	s.Gain(entities.ResourceTP, -skill.TPCost)
}

// FormulaScope exposes the sheet to damage and slip formulas as a.* or b.*
func (s *Sheet) FormulaScope() formula.Scope {
	t := s.template
	return formula.Values{
		"hp":  float64(s.HP()),
		"mp":  float64(s.MP()),
		"tp":  float64(s.TP()),
		"mhp": float64(t.MaxHP),
		"mmp": float64(t.MaxMP),
		"mtp": float64(t.MaxTP),
		"atk": float64(t.ATK),
		"def": float64(t.DEF),
		"mat": float64(t.MAT),
		"mdf": float64(t.MDF),
		"eva": t.EVA,
		"rec": t.REC,
	}
}
