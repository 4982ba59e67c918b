package cooldown

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

//go:generate mockgen -destination=mock/mock_caster.go -package=cooldownmock github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown Caster

// Caster is the part of a battler the manager needs to gate and pay for skills
type Caster interface {
	// CanUseSkills is false while a state such as silence blocks assigned skills
	CanUseSkills() bool
	// CanUseAttacks is false while a state such as disarm blocks basic attacks
	CanUseAttacks() bool
	CanPaySkillCost(skill *entities.Skill) bool
	PaySkillCost(skill *entities.Skill)
}

// Manager owns the slots of a single entity
type Manager struct {
	ownerID string
	slots   map[Key]*Slot
	order   []Key
}

// NewManager creates an empty slot manager for the given owner
func NewManager(ownerID string) *Manager {
	return &Manager{
		ownerID: ownerID,
		slots:   make(map[Key]*Slot),
	}
}

// Equip places a skill in a slot, creating the slot on first use. Re-equipping keeps the
// slot's running cooldown.
func (m *Manager) Equip(key Key, skillID int, locked bool) {
	slot, ok := m.slots[key]
	if !ok {
		slot = &Slot{Key: key}
		m.slots[key] = slot
		m.order = append(m.order, key)
	}
	if slot.SkillID != skillID {
		slot.clearCombo()
	}
	slot.SkillID = skillID
	slot.Locked = locked
}

// Clear empties a slot. Automatic clears (for example when the backing equipment is
// removed) leave locked slots untouched and report false.
func (m *Manager) Clear(key Key, auto bool) bool {
	slot, ok := m.slots[key]
	if !ok {
		return false
	}
	if auto && slot.Locked {
		return false
	}
	slot.SkillID = 0
	slot.Locked = false
	slot.clearCombo()
	return true
}

// Slot returns the slot for key
func (m *Manager) Slot(key Key) (*Slot, bool) {
	slot, ok := m.slots[key]
	return slot, ok
}

// Keys returns slot keys in the order they were first equipped
func (m *Manager) Keys() []Key {
	keys := make([]Key, len(m.order))
	copy(keys, m.order)
	return keys
}

// FindBySkill returns the first slot holding skillID, either equipped or armed as combo
func (m *Manager) FindBySkill(skillID int) (Key, bool) {
	for _, key := range m.order {
		slot := m.slots[key]
		if slot.SkillID == skillID || slot.ComboNextID == skillID {
			return key, true
		}
	}
	return "", false
}

// IsBaseReady reports whether the slot's base cooldown has elapsed. Unknown slots are
// never ready.
func (m *Manager) IsBaseReady(key Key) bool {
	slot, ok := m.lookup(key)
	if !ok {
		return false
	}
	return slot.IsBaseReady()
}

// PendingComboID returns the armed follow-up for a slot, zero when none is pending
func (m *Manager) PendingComboID(key Key) int {
	slot, ok := m.slots[key]
	if !ok {
		return 0
	}
	return slot.ComboNextID
}

// CanExecute reports whether skill may fire from the given slot right now
func (m *Manager) CanExecute(key Key, skill *entities.Skill, caster Caster) bool {
	if skill == nil {
		slog.Warn("Skill slot check without a skill definition",
			"owner_id", m.ownerID,
			"slot", key,
		)
		return false
	}

	slot, ok := m.lookup(key)
	if !ok {
		return false
	}

	if !m.categoryAllowed(key, caster) {
		return false
	}

	if !caster.CanPaySkillCost(skill) {
		return false
	}

	return slot.IsBaseReady() || (slot.ComboNextID != 0 && slot.ComboNextID == skill.ID)
}

// Execute pays for and starts the cooldown of a skill fired from a slot. It reports
// false and changes nothing when the skill cannot be executed.
func (m *Manager) Execute(key Key, skill *entities.Skill, caster Caster) bool {
	if !m.CanExecute(key, skill, caster) {
		return false
	}

	slot := m.slots[key]
	caster.PaySkillCost(skill)

	if slot.ComboNextID == skill.ID {
		slot.clearCombo()
	}

	slot.Cooldown.Base = skill.Cooldown

	if skill.Combo != nil && skill.Combo.SkillID != 0 {
		slot.ComboNextID = skill.Combo.SkillID
		slot.Cooldown.Combo = max(skill.Combo.Window, 1)
	}

	return true
}

// SetCooldown starts a base cooldown directly, used by tools that are not skills
func (m *Manager) SetCooldown(key Key, frames int) {
	slot, ok := m.lookup(key)
	if !ok {
		return
	}
	slot.Cooldown.Base = frames
}

// Update advances every slot by one frame
func (m *Manager) Update() {
	for _, key := range m.order {
		m.slots[key].update()
	}
}

func (m *Manager) categoryAllowed(key Key, caster Caster) bool {
	switch {
	case key == KeyTool:
		return true
	case key.IsBasicAttack():
		return caster.CanUseAttacks()
	default:
		return caster.CanUseSkills()
	}
}

func (m *Manager) lookup(key Key) (*Slot, bool) {
	slot, ok := m.slots[key]
	if !ok {
		slog.Warn("No cooldown entry for requested slot",
			"owner_id", m.ownerID,
			"slot", key,
		)
		return nil, false
	}
	return slot, true
}
