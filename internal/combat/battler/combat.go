package battler

import (
	"log/slog"
	"math"
	"slices"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/guard"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

const hurtPoseFrames = 12

// EngageTarget puts the battler into combat against another entity. Engagement-locked,
// defeated and self targets are refused.
func (b *Battler) EngageTarget(targetID string) bool {
	if b.engagementLocked || !b.IsAlive() {
		return false
	}

	target, ok := b.ctx.registry.Get(targetID)
	if !ok || target == b || !target.IsAlive() {
		return false
	}
	if b.engaged && b.targetID == targetID {
		return true
	}

	wasEngaged := b.engaged
	b.engaged = true
	b.targetID = targetID
	b.alerted = false

	if !target.IsInanimate() && !b.aggro.Has(targetID) {
		b.aggro.AddOrUpdate(targetID, 0, true)
	}
	b.body.SetThrough(false)

	if !wasEngaged {
		slog.Info("Battler engaged",
			"battler_id", b.id,
			"target_id", targetID,
		)
		b.ctx.presenter.ShowNotice(b.id, NoticeEngaged)
		b.enterPrepare()
	}

	for _, id := range b.followerIDs {
		if follower, ok := b.ctx.registry.Get(id); ok && !follower.engaged {
			follower.EngageTarget(targetID)
		}
	}

	return true
}

// DisengageTarget leaves combat. Targets, party links, aggro, AI progress and
// decided actions are cleared; retaliation actions already queued still execute.
func (b *Battler) DisengageTarget() bool {
	if !b.engaged {
		return false
	}
	if b.engagementLocked && !b.dying {
		return false
	}

	slog.Info("Battler disengaged",
		"battler_id", b.id,
		"target_id", b.targetID,
	)

	b.engaged = false
	b.targetID = ""
	b.allyTargetID = ""
	b.clearLeader()
	b.clearFollowers()
	b.aggro.Clear()
	b.casting = false
	b.pending = slices.DeleteFunc(b.pending, func(a *action.Action) bool { return !a.Retaliation })
	b.enterPrepare()

	return true
}

// Alert makes an idle AI battler investigate a point with extended sight for a while
func (b *Battler) Alert(point entities.Point) bool {
	if !b.caps.aiControlled || b.engaged || !b.IsAlive() {
		return false
	}

	b.alerted = true
	b.alertPoint = point
	b.alertTimer.SetMax(b.template.AlertDuration)
	b.ctx.presenter.ShowNotice(b.id, NoticeAlerted)
	return true
}

// Hit is one incoming hit. Negative damage heals.
type Hit struct {
	AttackerID string
	Skill      *entities.Skill
	Damage     int
	// StateIDs overrides the states applied by the skill when set
	StateIDs []int
}

// HitResult describes what a hit did
type HitResult struct {
	// Damage is the hp actually removed; negative for healing
	Damage   int
	Negated  bool
	Guarded  bool
	Parried  bool
	Defeated bool
}

// ReceiveHit applies an incoming hit after invincibility and guard mitigation
func (b *Battler) ReceiveHit(hit *Hit) *HitResult {
	result := &HitResult{}
	if hit == nil || !b.IsAlive() {
		result.Negated = true
		return result
	}

	attacker, hasAttacker := b.ctx.registry.Get(hit.AttackerID)
	damage := hit.Damage
	// zero damage from anyone but a teammate is a hostile status hit; healing is never blocked
	hostile := damage > 0 || (damage == 0 && !(hasAttacker && attacker.team == b.team))

	if hostile && b.IsInvincible() {
		b.ctx.presenter.ShowNotice(b.id, NoticeMiss)
		result.Negated = true
		return result
	}

	suppressStates := false
	if hostile && b.guard.IsGuarding() {
		mitigation := b.guard.Mitigate(damage)
		damage = mitigation.Damage
		result.Guarded = mitigation.Guarded
		result.Parried = mitigation.Parried
		suppressStates = mitigation.SuppressStates
		if mitigation.Parried {
			b.stats.Gain(entities.ResourceTP, mitigation.TPBonus)
			b.ctx.presenter.ShowNotice(b.id, NoticeParry)
		}
		b.counter(mitigation, attacker)
	}

	if damage != 0 {
		b.stats.Gain(entities.ResourceHP, -damage)
		b.ctx.presenter.ShowPopup(b.id, entities.ResourceHP, -damage)
		if damage > 0 && !b.guard.IsGuarding() && !b.IsDodging() {
			b.setPose(PoseHurt, hurtPoseFrames)
		}
	}
	result.Damage = damage

	if !suppressStates {
		stateIDs := hit.StateIDs
		if stateIDs == nil && hit.Skill != nil {
			stateIDs = hit.Skill.StateIDs
		}
		for _, stateID := range stateIDs {
			b.stats.AddState(stateID, hit.AttackerID)
		}
	}

	if hasAttacker && attacker != b && b.team.Opposes(attacker.team) {
		b.recordHostileHit(attacker, hit.Skill, damage)
	}

	result.Defeated = b.stats.IsDead()
	return result
}

func (b *Battler) recordHostileHit(attacker *Battler, skill *entities.Skill, damage int) {
	b.lastStruckByID = attacker.id
	b.lastHitTimer.Reset()

	if !attacker.IsInanimate() {
		amount := max(damage, 0)
		if skill != nil {
			amount = int(math.Round(float64(amount)*skill.AggroMultiplier)) + skill.Aggro
		}
		b.aggro.AddOrUpdate(attacker.id, amount, false)
	}
	if skill != nil && skill.AggroReset {
		b.aggro.Reset()
	}

	if !b.engaged && b.caps.aiControlled {
		b.Alert(attacker.Position())
	}
}

// counter queues the counter skills granted by a guard or parry
func (b *Battler) counter(mitigation *guard.Mitigation, attacker *Battler) {
	if len(mitigation.CounterSkillIDs) == 0 {
		return
	}
	if attacker != nil && attacker != b {
		b.body.SetFacing(b.ctx.grid.DirectionTo(b.Position(), attacker.Position()))
	}

	for _, skillID := range mitigation.CounterSkillIDs {
		skill, ok := b.ctx.catalog.GetSkill(skillID)
		if !ok {
			slog.Warn("Counter references unknown skill",
				"battler_id", b.id,
				"skill_id", skillID,
			)
			continue
		}
		b.queue(b.createActions(skill, "", "", true, b.Position()))
	}
}

// StartGuard raises the guard skill equipped in the offhand slot
func (b *Battler) StartGuard() bool {
	if !b.IsAlive() || b.casting || b.IsDodging() {
		return false
	}

	skill, ok := b.SlotSkill(cooldown.KeyOffhand)
	if !ok || !skill.IsGuard() {
		return false
	}

	started := b.guard.Start(&guard.StartInput{
		SkillID: skill.ID,
		Guard:   skill.Guard,
		Usable:  b.slots.IsBaseReady(cooldown.KeyOffhand) && b.CanUseAttacks() && b.stats.CanPaySkillCost(skill),
		Evasion: b.stats.EVA(),
	})
	if started {
		b.setPose(PoseGuard, 0)
	}
	return started
}

// EndGuard lowers the guard
func (b *Battler) EndGuard() {
	if !b.guard.IsGuarding() {
		return
	}
	b.guard.End()
	b.setPose(PoseIdle, 0)
}

// Dodge starts the dodge skill in the dodge slot. The direction is only used by dodges
// that may go any way. Dodging while casting, rooted or already dodging does nothing.
func (b *Battler) Dodge(direction entities.Direction) bool {
	if !b.IsAlive() || b.casting || b.IsDodging() || !b.stats.Restrictions().CanMove() {
		return false
	}

	skill, ok := b.SlotSkill(cooldown.KeyDodge)
	if !ok || !skill.IsDodge() {
		return false
	}
	if !b.slots.Execute(cooldown.KeyDodge, skill, b) {
		return false
	}

	b.EndGuard()

	dir := b.body.Facing()
	switch skill.Dodge.Direction {
	case entities.DodgeBackward:
		dir = dir.Reverse()
	case entities.DodgeAny:
		if direction.Valid() {
			dir = direction
		}
	}
	if !dir.Valid() {
		dir = entities.DirDown
	}

	b.dodgeDirection = dir
	b.dodgeSteps = max(skill.Dodge.Steps, 0)
	b.dodgeInvincible = skill.Dodge.Invincible
	b.body.SetSpeedBonus(skill.Dodge.SpeedBonus)
	b.setPose(PoseDodge, 0)

	return true
}

// ExecuteSlot uses whatever is equipped in a slot right away. Guard and dodge skills
// start their stance or movement instead of producing actions.
func (b *Battler) ExecuteSlot(key cooldown.Key) bool {
	if !b.IsAlive() || b.casting {
		return false
	}

	skill, ok := b.SlotSkill(key)
	if !ok {
		return false
	}

	switch {
	case skill.IsGuard():
		return b.StartGuard()
	case skill.IsDodge():
		return b.Dodge(entities.DirNone)
	}

	targetID := ""
	if skill.Scope == entities.ScopeAlly {
		targetID = b.allyTargetID
	}
	return b.useSkill(key, skill, targetID)
}

// SetAllyTarget chooses the ally that ally-scoped skills support
func (b *Battler) SetAllyTarget(allyID string) {
	b.allyTargetID = allyID
}

func (b *Battler) useSkill(key cooldown.Key, skill *entities.Skill, targetID string) bool {
	if !b.slots.Execute(key, skill, b) {
		return false
	}

	actions := b.createActions(skill, key, targetID, false, b.Position())
	b.queue(actions)

	slog.Debug("Battler used skill",
		"battler_id", b.id,
		"skill_id", skill.ID,
		"slot", key,
		"actions", len(actions),
	)
	return true
}

// CreateActionsFromSkill builds the action instances for a skill cast from the
// battler's position and facing without queueing them
func (b *Battler) CreateActionsFromSkill(skillID int, key cooldown.Key, retaliation bool) []*action.Action {
	skill, ok := b.ctx.catalog.GetSkill(skillID)
	if !ok {
		slog.Warn("Cannot create actions for unknown skill",
			"battler_id", b.id,
			"skill_id", skillID,
		)
		return nil
	}

	targetID := ""
	if skill.Scope == entities.ScopeAlly {
		targetID = b.allyTargetID
	}
	return b.createActions(skill, key, targetID, retaliation, b.Position())
}

func (b *Battler) createActions(skill *entities.Skill, key cooldown.Key, targetID string, retaliation bool, origin entities.Point) []*action.Action {
	actions, err := b.ctx.factory.Create(&action.CreateInput{
		Skill:       skill,
		CasterID:    b.id,
		Team:        b.team,
		TargetID:    targetID,
		Facing:      b.body.Facing(),
		Origin:      origin,
		SlotKey:     key,
		Retaliation: retaliation,
	})
	if err != nil {
		slog.Warn("Failed to create actions",
			"battler_id", b.id,
			"skill_id", skill.ID,
			"error", err,
		)
		return nil
	}
	return actions
}

// ApplyToolEffect uses an item on this battler. Items either cast their skill or
// recover resources; recovery of hp and mp scales with rec.
func (b *Battler) ApplyToolEffect(itemID int) bool {
	if !b.IsAlive() {
		return false
	}

	item, ok := b.ctx.catalog.GetItem(itemID)
	if !ok {
		slog.Warn("Tool references unknown item",
			"battler_id", b.id,
			"item_id", itemID,
		)
		return false
	}
	if !b.slots.IsBaseReady(cooldown.KeyTool) {
		return false
	}

	if item.CastsSkill() {
		skill, ok := b.ctx.catalog.GetSkill(item.SkillID)
		if !ok {
			slog.Warn("Tool references unknown skill",
				"battler_id", b.id,
				"item_id", itemID,
				"skill_id", item.SkillID,
			)
			return false
		}
		targetID := ""
		if skill.Scope == entities.ScopeAlly {
			targetID = b.allyTargetID
		}
		b.queue(b.createActions(skill, cooldown.KeyTool, targetID, false, b.Position()))
	}

	b.recover(entities.ResourceHP, int(math.Round(float64(item.RecoverHP)*b.stats.REC())))
	b.recover(entities.ResourceMP, int(math.Round(float64(item.RecoverMP)*b.stats.REC())))
	b.recover(entities.ResourceTP, item.RecoverTP)

	b.slots.SetCooldown(cooldown.KeyTool, item.Cooldown)
	return true
}

func (b *Battler) recover(resource entities.Resource, amount int) {
	if amount == 0 {
		return
	}
	b.stats.Gain(resource, amount)
	b.ctx.presenter.ShowPopup(b.id, resource, amount)
}
