package entities

// CastOrigin chooses where a triggered skill is cast from
type CastOrigin string

// Cast origins
const (
	CastFromSelf   CastOrigin = "self"
	CastFromTarget CastOrigin = "target"
)

// DefeatTrigger is a skill that may fire when a defeat happens
type DefeatTrigger struct {
	SkillID  int        `yaml:"skill_id" json:"skill_id"`
	Chance   int        `yaml:"chance" json:"chance"`
	CastFrom CastOrigin `yaml:"cast_from" json:"cast_from" jsonschema:"enum=self,enum=target"`
}

// BattlerTemplate is the static definition of an entity type
type BattlerTemplate struct {
	ID   int        `yaml:"id" json:"id" jsonschema:"required"`
	Name string     `yaml:"name" json:"name"`
	Kind EntityKind `yaml:"kind" json:"kind" jsonschema:"enum=player,enum=ally,enum=enemy"`
	Team Team       `yaml:"team" json:"team" jsonschema:"enum=ally,enum=enemy,enum=neutral"`

	MaxHP int     `yaml:"max_hp" json:"max_hp"`
	MaxMP int     `yaml:"max_mp" json:"max_mp"`
	MaxTP int     `yaml:"max_tp" json:"max_tp"`
	HRG   float64 `yaml:"hrg" json:"hrg"`
	MRG   float64 `yaml:"mrg" json:"mrg"`
	TRG   float64 `yaml:"trg" json:"trg"`
	REC   float64 `yaml:"rec" json:"rec"`
	EVA   float64 `yaml:"eva" json:"eva"`
	ATK   int     `yaml:"atk" json:"atk"`
	DEF   int     `yaml:"def" json:"def"`
	MAT   int     `yaml:"mat" json:"mat"`
	MDF   int     `yaml:"mdf" json:"mdf"`

	Sight             float64 `yaml:"sight" json:"sight"`
	Pursuit           float64 `yaml:"pursuit" json:"pursuit"`
	AlertSightBonus   float64 `yaml:"alert_sight_bonus" json:"alert_sight_bonus"`
	AlertPursuitBonus float64 `yaml:"alert_pursuit_bonus" json:"alert_pursuit_bonus"`
	AlertDuration     int     `yaml:"alert_duration" json:"alert_duration"`
	VisionMultiplier  float64 `yaml:"vision_multiplier" json:"vision_multiplier"`

	PrepareTime   int       `yaml:"prepare_time" json:"prepare_time"`
	AttackSkillID int       `yaml:"attack_skill_id" json:"attack_skill_id"`
	GuardSkillID  int       `yaml:"guard_skill_id" json:"guard_skill_id"`
	DodgeSkillID  int       `yaml:"dodge_skill_id" json:"dodge_skill_id"`
	SkillIDs      []int     `yaml:"skills" json:"skills,omitempty"`
	AI            AIProfile `yaml:"ai" json:"ai" jsonschema:"enum=aggressive,enum=support,enum=passive"`

	Inanimate bool `yaml:"inanimate" json:"inanimate"`
	NoIdle    bool `yaml:"no_idle" json:"no_idle"`
	HideHPBar bool `yaml:"hide_hp_bar" json:"hide_hp_bar"`

	OnOwnDefeat    []DefeatTrigger `yaml:"on_own_defeat" json:"on_own_defeat,omitempty"`
	OnTargetDefeat []DefeatTrigger `yaml:"on_target_defeat" json:"on_target_defeat,omitempty"`
}

// Default engagement and timing values used when a template leaves them unset
const (
	DefaultSight         = 4.0
	DefaultPursuit       = 6.0
	DefaultAlertDuration = 300
	DefaultPrepareTime   = 180
)

// ApplyDefaults fills optional fields with their neutral values
func (t *BattlerTemplate) ApplyDefaults() {
	if t.Kind == "" {
		t.Kind = KindEnemy
	}
	if t.Team == "" {
		if t.Kind.IsActor() {
			t.Team = TeamAlly
		} else {
			t.Team = TeamEnemy
		}
	}
	if t.REC <= 0 {
		t.REC = 1
	}
	if t.Sight <= 0 {
		t.Sight = DefaultSight
	}
	if t.Pursuit <= 0 {
		t.Pursuit = DefaultPursuit
	}
	if t.AlertDuration <= 0 {
		t.AlertDuration = DefaultAlertDuration
	}
	if t.PrepareTime <= 0 {
		t.PrepareTime = DefaultPrepareTime
	}
	if t.VisionMultiplier == 0 {
		t.VisionMultiplier = 1
	}
	if t.AI == "" {
		t.AI = AIAggressive
	}
	for i := range t.OnOwnDefeat {
		t.OnOwnDefeat[i].applyDefaults()
	}
	for i := range t.OnTargetDefeat {
		t.OnTargetDefeat[i].applyDefaults()
	}
}

func (d *DefeatTrigger) applyDefaults() {
	if d.Chance <= 0 {
		d.Chance = 100
	}
	if d.CastFrom == "" {
		d.CastFrom = CastFromSelf
	}
}
