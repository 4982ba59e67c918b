package entities

// Scope describes who a skill is meant to affect
type Scope string

// Scopes
const (
	ScopeSelf     Scope = "self"
	ScopeAlly     Scope = "ally"
	ScopeOpponent Scope = "opponent"
	ScopeAll      Scope = "all"
)

// DodgeDirection selects how a dodge skill picks its movement direction
type DodgeDirection string

// Dodge directions
const (
	DodgeForward  DodgeDirection = "forward"
	DodgeBackward DodgeDirection = "backward"
	DodgeAny      DodgeDirection = "any"
)

// Skill is the static definition of an action that can be placed in a skill slot.
// Durations are measured in frames.
type Skill struct {
	ID          int     `yaml:"id" json:"id" jsonschema:"required"`
	Name        string  `yaml:"name" json:"name"`
	Scope       Scope   `yaml:"scope" json:"scope" jsonschema:"enum=self,enum=ally,enum=opponent,enum=all"`
	Cooldown    int     `yaml:"cooldown" json:"cooldown"`
	CastTime    int     `yaml:"cast_time" json:"cast_time"`
	MPCost      int     `yaml:"mp_cost" json:"mp_cost"`
	TPCost      int     `yaml:"tp_cost" json:"tp_cost"`
	Range       float64 `yaml:"range" json:"range"`
	Projectile  int     `yaml:"projectile" json:"projectile"`
	Damage      string  `yaml:"damage" json:"damage"`
	AnimationID int     `yaml:"animation_id" json:"animation_id"`
	StateIDs    []int   `yaml:"states" json:"states,omitempty"`

	// Aggro is added on top of dealt damage when this skill connects
	Aggro           int     `yaml:"aggro" json:"aggro"`
	AggroMultiplier float64 `yaml:"aggro_multiplier" json:"aggro_multiplier"`
	AggroReset      bool    `yaml:"aggro_reset" json:"aggro_reset"`

	Combo *Combo `yaml:"combo" json:"combo,omitempty"`
	Guard *Guard `yaml:"guard" json:"guard,omitempty"`
	Dodge *Dodge `yaml:"dodge" json:"dodge,omitempty"`
}

// Combo names the follow-up skill unlocked after this one and how long it stays available
type Combo struct {
	SkillID int `yaml:"skill_id" json:"skill_id"`
	Window  int `yaml:"window" json:"window"`
}

// Guard holds the defensive parameters of a guard skill
type Guard struct {
	Flat          int   `yaml:"flat" json:"flat"`
	Percent       int   `yaml:"percent" json:"percent"`
	ParryDuration int   `yaml:"parry_duration" json:"parry_duration"`
	ParryTPBonus  int   `yaml:"parry_tp_bonus" json:"parry_tp_bonus"`
	CounterGuard  []int `yaml:"counter_guard" json:"counter_guard,omitempty"`
	CounterParry  []int `yaml:"counter_parry" json:"counter_parry,omitempty"`
}

// CanParry reports whether the guard opens a parry window
func (g *Guard) CanParry() bool {
	return g != nil && g.ParryDuration > 0
}

// Dodge holds the movement parameters of a dodge skill
type Dodge struct {
	Steps      int            `yaml:"steps" json:"steps"`
	Direction  DodgeDirection `yaml:"direction" json:"direction" jsonschema:"enum=forward,enum=backward,enum=any"`
	SpeedBonus int            `yaml:"speed_bonus" json:"speed_bonus"`
	Invincible bool           `yaml:"invincible" json:"invincible"`
}

// ProjectileCount returns the number of action instances one use fans out into
func (s *Skill) ProjectileCount() int {
	switch {
	case s.Projectile <= 0:
		return 1
	case s.Projectile > 8:
		return 8
	default:
		return s.Projectile
	}
}

// IsGuard reports whether the skill is a guard skill
func (s *Skill) IsGuard() bool {
	return s != nil && s.Guard != nil
}

// IsDodge reports whether the skill is a dodge skill
func (s *Skill) IsDodge() bool {
	return s != nil && s.Dodge != nil
}

// IsSupport reports whether the skill targets allies or self
func (s *Skill) IsSupport() bool {
	return s.Scope == ScopeAlly || s.Scope == ScopeSelf
}

// ApplyDefaults fills optional fields with their neutral values
func (s *Skill) ApplyDefaults() {
	if s.Scope == "" {
		s.Scope = ScopeOpponent
	}
	if s.Range <= 0 {
		s.Range = 1
	}
	if s.AggroMultiplier <= 0 {
		s.AggroMultiplier = 1
	}
	if s.Dodge != nil && s.Dodge.Direction == "" {
		s.Dodge.Direction = DodgeForward
	}
}
