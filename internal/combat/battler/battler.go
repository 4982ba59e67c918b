// Package battler implements the real-time battle entity: the per-frame state machine
// that ties together engagement, aggro, skill slots, guarding, dodging, regeneration
// and defeat handling for one combatant.
package battler

import (
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/aggro"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/engagement"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/guard"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/regen"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/timer"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/formula"
)

const (
	// lastHitDuration is how long an attacker is remembered as the last to strike
	lastHitDuration = 300
	// postActionFrames is the pause after an AI action before preparing the next one
	postActionFrames = 30
	// trackingRangeFactor scales pursuit range into the range beyond which aggro entries are dropped
	trackingRangeFactor = 2
)

var _ core.Entity = (*Battler)(nil)
var _ cooldown.Caster = (*Battler)(nil)

// capabilities are resolved once from the entity kind
type capabilities struct {
	initiatesEngagement bool
	aiControlled        bool
	persistsWhenDying   bool
}

func resolveCapabilities(kind entities.EntityKind, inanimate bool) capabilities {
	caps := capabilities{
		initiatesEngagement: kind != entities.KindPlayer,
		aiControlled:        kind != entities.KindPlayer,
		persistsWhenDying:   kind.IsActor(),
	}
	if inanimate {
		caps.initiatesEngagement = false
		caps.aiControlled = false
	}
	return caps
}

// Config holds the inputs for a battler
type Config struct {
	// ID is generated when empty
	ID       string
	Template *entities.BattlerTemplate
	Stats    Stats
	Body     Body
	Context  *Context
	// SpawnIndex staggers engagement checks between entities
	SpawnIndex int
	// Decider overrides the profile-based AI
	Decider Decider
}

// Validate ensures all required inputs are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Template == nil {
		vb.RequiredField("Template")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}
	if c.Body == nil {
		vb.RequiredField("Body")
	}
	if c.Context == nil {
		vb.RequiredField("Context")
	}

	return vb.Build()
}

// Battler is one combatant in the real-time simulation
type Battler struct {
	id       string
	template *entities.BattlerTemplate
	kind     entities.EntityKind
	team     entities.Team
	caps     capabilities
	stats    Stats
	body     Body
	ctx      *Context
	decider  Decider

	slots      *cooldown.Manager
	aggro      *aggro.Table
	guard      *guard.Controller
	regen      *regen.Processor
	engagement *engagement.Controller

	home       entities.Point
	alertPoint entities.Point

	engaged          bool
	engagementLocked bool
	alerted          bool
	casting          bool
	dying            bool
	destroyed        bool
	invincible       bool
	defeatHandled    bool

	waitTimer    *timer.Timer
	alertTimer   *timer.Timer
	castTimer    *timer.Timer
	lastHitTimer *timer.Timer
	poseTimer    *timer.Timer
	pose         Pose

	targetID       string
	allyTargetID   string
	lastStruckByID string
	leaderID       string
	followerIDs    []string

	phase    Phase
	decision *Decision
	pending  []*action.Action

	dodgeSteps      int
	dodgeDirection  entities.Direction
	dodgeInvincible bool
}

// New creates a battler, equips its innate skills and registers it in the context
func New(cfg *Config) (*Battler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	template := *cfg.Template
	template.ApplyDefaults()

	id := cfg.ID
	if id == "" {
		id = cfg.Context.idGen.Generate()
	}
	if _, exists := cfg.Context.registry.Get(id); exists {
		return nil, errors.AlreadyExists("battler already registered").WithMeta("battler_id", id)
	}

	b := &Battler{
		id:           id,
		template:     &template,
		kind:         template.Kind,
		team:         template.Team,
		caps:         resolveCapabilities(template.Kind, template.Inanimate),
		stats:        cfg.Stats,
		body:         cfg.Body,
		ctx:          cfg.Context,
		decider:      cfg.Decider,
		slots:        cooldown.NewManager(id),
		aggro:        aggro.NewTable(),
		guard:        guard.NewController(),
		engagement:   engagement.NewController(cfg.SpawnIndex),
		home:         cfg.Body.Position(),
		waitTimer:    timer.New(template.PrepareTime),
		alertTimer:   timer.New(template.AlertDuration),
		castTimer:    timer.New(0),
		lastHitTimer: timer.New(lastHitDuration),
		poseTimer:    timer.New(0),
		pose:         PoseIdle,
		phase:        PhasePrepare,
	}
	if b.decider == nil {
		b.decider = NewProfileDecider()
	}

	processor, err := regen.NewProcessor(&regen.Config{
		OwnerID:   id,
		States:    cfg.Context.catalog,
		Evaluator: cfg.Context.evaluator,
		Variables: cfg.Context.variables,
		Popup: func(resource entities.Resource, amount int) {
			b.ctx.presenter.ShowPopup(b.id, resource, amount)
		},
		Sources: func(sourceID string) formula.Scope {
			if source, ok := b.ctx.registry.Get(sourceID); ok {
				return source.stats.FormulaScope()
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create regeneration processor")
	}
	b.regen = processor

	b.equipInnateSkills()
	cfg.Context.registry.Add(b)

	slog.Debug("Battler created",
		"battler_id", id,
		"template_id", template.ID,
		"kind", template.Kind,
		"team", template.Team,
	)

	return b, nil
}

func (b *Battler) equipInnateSkills() {
	equip := func(key cooldown.Key, skillID int) {
		if skillID > 0 {
			b.slots.Equip(key, skillID, true)
		}
	}

	equip(cooldown.KeyMainhand, b.template.AttackSkillID)
	equip(cooldown.KeyOffhand, b.template.GuardSkillID)
	equip(cooldown.KeyDodge, b.template.DodgeSkillID)
	for i, skillID := range b.template.SkillIDs {
		if i >= len(skillKeys) {
			slog.Warn("Battler template has more skills than slots",
				"battler_id", b.id,
				"template_id", b.template.ID,
				"skill_id", skillID,
			)
			break
		}
		equip(skillKeys[i], skillID)
	}
	b.slots.Equip(cooldown.KeyTool, 0, true)
}

var skillKeys = []cooldown.Key{cooldown.KeySkill1, cooldown.KeySkill2, cooldown.KeySkill3, cooldown.KeySkill4}

// GetID returns the entity id
func (b *Battler) GetID() string { return b.id }

// GetType returns the entity kind
func (b *Battler) GetType() string { return string(b.kind) }

// Name returns the template name
func (b *Battler) Name() string { return b.template.Name }

// Template returns the defaults-applied template the battler was built from
func (b *Battler) Template() *entities.BattlerTemplate { return b.template }

// Kind returns the entity kind
func (b *Battler) Kind() entities.EntityKind { return b.kind }

// Team returns the side the battler fights for
func (b *Battler) Team() entities.Team { return b.team }

// Stats returns the stat-bearing battler behind the entity
func (b *Battler) Stats() Stats { return b.stats }

// Body returns the entity's grid presence
func (b *Battler) Body() Body { return b.body }

// Position returns the current tile
func (b *Battler) Position() entities.Point { return b.body.Position() }

// Home returns the spawn tile
func (b *Battler) Home() entities.Point { return b.home }

// Slots returns the skill slot manager
func (b *Battler) Slots() *cooldown.Manager { return b.slots }

// IsEngaged reports whether the battler is in combat
func (b *Battler) IsEngaged() bool { return b.engaged }

// IsEngagementLocked reports whether engagement changes are frozen
func (b *Battler) IsEngagementLocked() bool { return b.engagementLocked }

// SetEngagementLocked freezes or unfreezes engagement changes
func (b *Battler) SetEngagementLocked(locked bool) { b.engagementLocked = locked }

// IsAlerted reports whether the battler is searching for a disturbance
func (b *Battler) IsAlerted() bool { return b.alerted }

// IsCasting reports whether a cast is in progress
func (b *Battler) IsCasting() bool { return b.casting }

// IsDying reports whether the battler has been defeated
func (b *Battler) IsDying() bool { return b.dying }

// IsDestroyed reports whether the battler should be removed from the simulation
func (b *Battler) IsDestroyed() bool { return b.destroyed }

// IsDead reports whether hit points are exhausted
func (b *Battler) IsDead() bool { return b.stats.IsDead() }

// IsAlive reports whether the battler can still fight
func (b *Battler) IsAlive() bool { return !b.dying && !b.destroyed && !b.stats.IsDead() }

// IsInanimate reports whether the battler is an object rather than a creature
func (b *Battler) IsInanimate() bool { return b.template.Inanimate }

// IsInvincible reports whether incoming hits are negated
func (b *Battler) IsInvincible() bool { return b.invincible || b.dodgeInvincible }

// SetInvincible toggles invincibility
func (b *Battler) SetInvincible(invincible bool) { b.invincible = invincible }

// IsGuarding reports whether a guard stance is held
func (b *Battler) IsGuarding() bool { return b.guard.IsGuarding() }

// IsParrying reports whether the parry window is open
func (b *Battler) IsParrying() bool { return b.guard.IsParrying() }

// IsDodging reports whether a dodge is in progress
func (b *Battler) IsDodging() bool { return b.dodgeDirection != entities.DirNone }

// DodgeSteps returns the forced steps left in the current dodge
func (b *Battler) DodgeSteps() int { return b.dodgeSteps }

// IsIdle reports whether the battler has nothing to react to
func (b *Battler) IsIdle() bool {
	return !b.engaged && !b.alerted && !b.dying && !b.template.NoIdle
}

// IsAIControlled reports whether the battler decides its own actions
func (b *Battler) IsAIControlled() bool { return b.caps.aiControlled }

// TargetID returns the id of the current hostile target
func (b *Battler) TargetID() string { return b.targetID }

// Target resolves the current hostile target
func (b *Battler) Target() (*Battler, bool) { return b.ctx.registry.Get(b.targetID) }

// AllyTarget resolves the current support target
func (b *Battler) AllyTarget() (*Battler, bool) { return b.ctx.registry.Get(b.allyTargetID) }

// LastStruckBy resolves the last entity to hit this battler
func (b *Battler) LastStruckBy() (*Battler, bool) { return b.ctx.registry.Get(b.lastStruckByID) }

// Leader resolves the leader this battler follows
func (b *Battler) Leader() (*Battler, bool) { return b.ctx.registry.Get(b.leaderID) }

// FollowerIDs returns the ids of battlers following this one
func (b *Battler) FollowerIDs() []string { return slices.Clone(b.followerIDs) }

// AllAggros returns the aggro table in insertion order
func (b *Battler) AllAggros() []aggro.Entry { return b.aggro.All() }

// Aggro returns the aggro table
func (b *Battler) Aggro() *aggro.Table { return b.aggro }

// Phase returns the current AI phase
func (b *Battler) Phase() Phase { return b.phase }

// Pending returns the actions decided but not yet executed
func (b *Battler) Pending() []*action.Action { return slices.Clone(b.pending) }

// VisionMultiplier scales how far away others can notice this battler
func (b *Battler) VisionMultiplier() float64 { return b.stats.VisionMultiplier() }

// CanUseSkills implements cooldown.Caster
func (b *Battler) CanUseSkills() bool { return b.stats.Restrictions().CanUseSkills() }

// CanUseAttacks implements cooldown.Caster
func (b *Battler) CanUseAttacks() bool { return b.stats.Restrictions().CanUseAttacks() }

// CanPaySkillCost implements cooldown.Caster
func (b *Battler) CanPaySkillCost(skill *entities.Skill) bool { return b.stats.CanPaySkillCost(skill) }

// PaySkillCost implements cooldown.Caster
func (b *Battler) PaySkillCost(skill *entities.Skill) { b.stats.PaySkillCost(skill) }

// SlotSkill returns the skill equipped in a slot, resolved through the catalog
func (b *Battler) SlotSkill(key cooldown.Key) (*entities.Skill, bool) {
	slot, ok := b.slots.Slot(key)
	if !ok || slot.IsEmpty() {
		return nil, false
	}

	skillID := slot.SkillID
	if pending := slot.PendingComboID(); pending != 0 {
		skillID = pending
	}

	skill, ok := b.ctx.catalog.GetSkill(skillID)
	if !ok {
		slog.Warn("Slot references unknown skill",
			"battler_id", b.id,
			"slot", key,
			"skill_id", skillID,
		)
		return nil, false
	}
	return skill, true
}

// IsGuardSkillByKey reports whether the skill in a slot is a guard skill
func (b *Battler) IsGuardSkillByKey(key cooldown.Key) bool {
	skill, ok := b.SlotSkill(key)
	return ok && skill.IsGuard()
}

// CanExecuteSkill reports whether the skill in a slot may be used right now
func (b *Battler) CanExecuteSkill(key cooldown.Key) bool {
	if !b.IsAlive() || b.casting {
		return false
	}
	skill, ok := b.SlotSkill(key)
	if !ok {
		return false
	}
	return b.slots.CanExecute(key, skill, b)
}

// SetLeader makes this battler follow another. An empty id clears the link.
func (b *Battler) SetLeader(leaderID string) {
	b.clearLeader()
	leader, ok := b.ctx.registry.Get(leaderID)
	if !ok || leader == b {
		return
	}
	b.leaderID = leaderID
	leader.followerIDs = append(leader.followerIDs, b.id)
}

func (b *Battler) clearLeader() {
	if leader, ok := b.ctx.registry.Get(b.leaderID); ok {
		leader.followerIDs = slices.DeleteFunc(leader.followerIDs, func(id string) bool { return id == b.id })
	}
	b.leaderID = ""
}

func (b *Battler) clearFollowers() {
	for _, id := range b.followerIDs {
		if follower, ok := b.ctx.registry.Get(id); ok && follower.leaderID == b.id {
			follower.leaderID = ""
		}
	}
	b.followerIDs = nil
}

func (b *Battler) setPose(pose Pose, frames int) {
	b.pose = pose
	b.poseTimer.SetMax(frames)
	b.ctx.presenter.PlayPose(b.id, pose)
}
