package entities

// Resource identifies one of the three battler pools
type Resource string

// Resources
const (
	ResourceHP Resource = "hp"
	ResourceMP Resource = "mp"
	ResourceTP Resource = "tp"
)

// Resources lists the pools in processing order
var Resources = []Resource{ResourceHP, ResourceMP, ResourceTP}

// State is a status effect definition
type State struct {
	ID   int    `yaml:"id" json:"id" jsonschema:"required"`
	Name string `yaml:"name" json:"name"`

	// Silence blocks skill slots, Disarm blocks basic attacks, Paralyze blocks both
	// and forces the afflicted entity out of any guard stance
	Silence  bool `yaml:"silence" json:"silence"`
	Disarm   bool `yaml:"disarm" json:"disarm"`
	Paralyze bool `yaml:"paralyze" json:"paralyze"`
	Root     bool `yaml:"root" json:"root"`

	// VisionMultiplier scales how far others can see the afflicted entity. Nil leaves it unchanged.
	VisionMultiplier *float64 `yaml:"vision_multiplier" json:"vision_multiplier,omitempty"`

	Slip Slip `yaml:"slip" json:"slip"`
}

// Slip holds periodic resource changes, expressed per five seconds
type Slip struct {
	HP SlipRate `yaml:"hp" json:"hp"`
	MP SlipRate `yaml:"mp" json:"mp"`
	TP SlipRate `yaml:"tp" json:"tp"`
}

// For returns the rate for the given resource
func (s Slip) For(r Resource) SlipRate {
	switch r {
	case ResourceMP:
		return s.MP
	case ResourceTP:
		return s.TP
	default:
		return s.HP
	}
}

// SlipRate combines the three ways a state can change a resource every five seconds.
// Positive values heal, negative values drain.
type SlipRate struct {
	Flat    int     `yaml:"flat" json:"flat"`
	Percent float64 `yaml:"percent" json:"percent"`
	Formula string  `yaml:"formula" json:"formula"`
}

// IsZero reports whether the rate has no effect
func (r SlipRate) IsZero() bool {
	return r.Flat == 0 && r.Percent == 0 && r.Formula == ""
}

// ActiveState is a state currently applied to a battler
type ActiveState struct {
	StateID int `json:"state_id"`
	// SourceID is the entity that applied the state, empty for environmental sources
	SourceID string `json:"source_id,omitempty"`
	// Tracked is false when the state has been administratively dropped from tracking
	Tracked bool `json:"tracked"`
}

// Restrictions is the combined effect of every active state on what a battler may do
type Restrictions struct {
	Silence  bool
	Disarm   bool
	Paralyze bool
	Root     bool
}

// Merge adds the restrictions of a state
func (r Restrictions) Merge(s *State) Restrictions {
	return Restrictions{
		Silence:  r.Silence || s.Silence,
		Disarm:   r.Disarm || s.Disarm,
		Paralyze: r.Paralyze || s.Paralyze,
		Root:     r.Root || s.Root,
	}
}

// CanUseSkills reports whether assigned skills may be used
func (r Restrictions) CanUseSkills() bool {
	return !r.Silence && !r.Paralyze
}

// CanUseAttacks reports whether basic attacks may be used
func (r Restrictions) CanUseAttacks() bool {
	return !r.Disarm && !r.Paralyze
}

// CanMove reports whether the battler may take steps
func (r Restrictions) CanMove() bool {
	return !r.Root && !r.Paralyze
}
