// Package cooldown tracks per-entity skill slots: which skill is equipped where, when
// each slot may fire again, and which combo follow-up is currently armed.
package cooldown

// Key identifies an action slot
type Key string

// Slot keys
const (
	KeyMainhand Key = "mainhand"
	KeyOffhand  Key = "offhand"
	KeyTool     Key = "tool"
	KeyDodge    Key = "dodge"
	KeySkill1   Key = "skill1"
	KeySkill2   Key = "skill2"
	KeySkill3   Key = "skill3"
	KeySkill4   Key = "skill4"
)

// IsBasicAttack reports whether the slot holds a weapon attack rather than an assigned skill
func (k Key) IsBasicAttack() bool {
	return k == KeyMainhand || k == KeyOffhand
}

// Cooldown is the timing state of one slot
type Cooldown struct {
	// Base counts down to zero after every use
	Base int
	// Combo counts down the window in which the armed follow-up may be used
	Combo int
}

// IsBaseReady reports whether the base cooldown has fully elapsed
func (c Cooldown) IsBaseReady() bool {
	return c.Base <= 0
}

// Slot is a single action slot
type Slot struct {
	Key         Key
	SkillID     int
	Locked      bool
	ComboNextID int
	Cooldown    Cooldown
}

// IsEmpty reports whether no skill is equipped
func (s *Slot) IsEmpty() bool {
	return s.SkillID == 0
}

// IsBaseReady reports whether the slot's base cooldown has elapsed
func (s *Slot) IsBaseReady() bool {
	return s.Cooldown.IsBaseReady()
}

// PendingComboID returns the armed follow-up skill, zero when none is pending
func (s *Slot) PendingComboID() int {
	return s.ComboNextID
}

// update advances the slot by one frame
func (s *Slot) update() {
	if s.Cooldown.Base > 0 {
		s.Cooldown.Base--
	}
	if s.ComboNextID == 0 {
		return
	}
	if s.Cooldown.Combo > 0 {
		s.Cooldown.Combo--
	}
	if s.Cooldown.Combo <= 0 {
		s.clearCombo()
	}
}

func (s *Slot) clearCombo() {
	s.ComboNextID = 0
	s.Cooldown.Combo = 0
}
