// Package catalog holds the static game data the simulation reads: skills, items,
// states and battler templates. Data is loaded once and never mutated afterwards.
package catalog

import (
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/rpg-realtime/internal/catalog Catalog

// Catalog looks up static definitions by id
type Catalog interface {
	GetSkill(id int) (*entities.Skill, bool)
	GetItem(id int) (*entities.Item, bool)
	GetState(id int) (*entities.State, bool)
	GetBattler(id int) (*entities.BattlerTemplate, bool)
}

// Data is the document shape of a catalog file
type Data struct {
	Skills   []entities.Skill           `yaml:"skills" json:"skills"`
	Items    []entities.Item            `yaml:"items" json:"items"`
	States   []entities.State           `yaml:"states" json:"states"`
	Battlers []entities.BattlerTemplate `yaml:"battlers" json:"battlers"`
}

// Memory is an in-memory catalog
type Memory struct {
	skills   map[int]*entities.Skill
	items    map[int]*entities.Item
	states   map[int]*entities.State
	battlers map[int]*entities.BattlerTemplate
}

// New builds a catalog from data. Ids must be positive and unique per kind. References
// to unknown skills or states are logged but do not fail the load.
func New(data *Data) (*Memory, error) {
	if data == nil {
		return nil, errors.InvalidArgument("data is required")
	}

	m := &Memory{
		skills:   make(map[int]*entities.Skill, len(data.Skills)),
		items:    make(map[int]*entities.Item, len(data.Items)),
		states:   make(map[int]*entities.State, len(data.States)),
		battlers: make(map[int]*entities.BattlerTemplate, len(data.Battlers)),
	}

	for i := range data.Skills {
		skill := data.Skills[i]
		skill.ApplyDefaults()
		if err := insert(m.skills, skill.ID, &skill, "skill"); err != nil {
			return nil, err
		}
	}
	for i := range data.Items {
		item := data.Items[i]
		if err := insert(m.items, item.ID, &item, "item"); err != nil {
			return nil, err
		}
	}
	for i := range data.States {
		state := data.States[i]
		if err := insert(m.states, state.ID, &state, "state"); err != nil {
			return nil, err
		}
	}
	for i := range data.Battlers {
		battler := data.Battlers[i]
		battler.ApplyDefaults()
		if err := insert(m.battlers, battler.ID, &battler, "battler"); err != nil {
			return nil, err
		}
	}

	m.warnDanglingReferences()

	return m, nil
}

func insert[T any](into map[int]*T, id int, value *T, kind string) error {
	if id <= 0 {
		return errors.InvalidArgumentf("%s id must be positive", kind).WithMeta("id", id)
	}
	if _, exists := into[id]; exists {
		return errors.AlreadyExistsf("duplicate %s id", kind).WithMeta("id", id)
	}
	into[id] = value
	return nil
}

// GetSkill returns a skill definition
func (m *Memory) GetSkill(id int) (*entities.Skill, bool) {
	s, ok := m.skills[id]
	return s, ok
}

// GetItem returns an item definition
func (m *Memory) GetItem(id int) (*entities.Item, bool) {
	i, ok := m.items[id]
	return i, ok
}

// GetState returns a state definition
func (m *Memory) GetState(id int) (*entities.State, bool) {
	s, ok := m.states[id]
	return s, ok
}

// GetBattler returns a battler template
func (m *Memory) GetBattler(id int) (*entities.BattlerTemplate, bool) {
	b, ok := m.battlers[id]
	return b, ok
}

func (m *Memory) warnDanglingReferences() {
	skillRef := func(owner string, ownerID, skillID int) {
		if skillID == 0 {
			return
		}
		if _, ok := m.skills[skillID]; !ok {
			slog.Warn("Catalog references unknown skill",
				"owner", owner,
				"owner_id", ownerID,
				"skill_id", skillID,
			)
		}
	}

	for id, skill := range m.skills {
		for _, stateID := range skill.StateIDs {
			if _, ok := m.states[stateID]; !ok {
				slog.Warn("Catalog references unknown state",
					"skill_id", id,
					"state_id", stateID,
				)
			}
		}
		if skill.Combo != nil {
			skillRef("skill_combo", id, skill.Combo.SkillID)
		}
		if skill.Guard != nil {
			for _, counter := range slices.Concat(skill.Guard.CounterGuard, skill.Guard.CounterParry) {
				skillRef("skill_counter", id, counter)
			}
		}
	}
	for id, item := range m.items {
		skillRef("item", id, item.SkillID)
	}
	for id, b := range m.battlers {
		skillRef("battler", id, b.AttackSkillID)
		skillRef("battler", id, b.GuardSkillID)
		skillRef("battler", id, b.DodgeSkillID)
		for _, skillID := range b.SkillIDs {
			skillRef("battler", id, skillID)
		}
		for _, trigger := range slices.Concat(b.OnOwnDefeat, b.OnTargetDefeat) {
			skillRef("battler_trigger", id, trigger.SkillID)
		}
	}
}
