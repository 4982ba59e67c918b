package battler

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/aggro"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/engagement"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

// Update advances the battler by one frame. Nothing happens while the simulation is
// inactive. Regeneration and execution failures are returned after the frame has
// completed; they never stop the rest of the update.
func (b *Battler) Update() error {
	if !b.ctx.active || b.destroyed {
		return nil
	}

	b.updatePose()
	b.slots.Update()
	b.updateTimers()
	b.updateEngagement()
	b.updateAI()

	var errs []error
	if err := b.regen.Update(b.stats); err != nil {
		errs = append(errs, err)
	}

	b.updateDodge()
	b.updateDeath()

	if err := b.flush(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (b *Battler) updatePose() {
	if b.pose == PoseIdle || b.pose == PoseDead || b.poseTimer.Max() == 0 {
		return
	}
	b.poseTimer.Update()
	if b.poseTimer.IsComplete() {
		b.setPose(PoseIdle, 0)
	}
}

func (b *Battler) updateTimers() {
	if b.phase == PhasePrepare || b.phase == PhaseCooldown {
		b.waitTimer.Update()
	}

	if b.alerted {
		b.alertTimer.Update()
		if b.alertTimer.IsComplete() {
			b.alerted = false
		}
	}

	if b.stats.Restrictions().Paralyze {
		b.EndGuard()
		b.cancelCast()
	}
	b.guard.Update()

	if b.lastStruckByID != "" {
		b.lastHitTimer.Update()
		if b.lastHitTimer.IsComplete() {
			b.lastStruckByID = ""
		}
	}

	if b.casting {
		b.castTimer.Update()
	}

	b.engagement.Update()
}

func (b *Battler) updateEngagement() {
	if b.dying || b.stats.IsDead() {
		return
	}

	if b.engaged && b.aggro.Len() > 0 {
		b.reconcileAggro()
	}

	if !b.caps.initiatesEngagement || b.engagementLocked {
		return
	}
	if !b.engagement.Ready() {
		return
	}
	b.engagement.Reset()

	decision := b.engagement.Evaluate(b.engagementInput())
	switch {
	case decision.Disengage:
		slog.Debug("Battler lost its target",
			"battler_id", b.id,
			"target_id", b.targetID,
			"distance", decision.Distance,
		)
		b.DisengageTarget()
	case decision.Engage:
		b.EngageTarget(decision.TargetID)
	}
}

func (b *Battler) engagementInput() *engagement.EvaluateInput {
	input := &engagement.EvaluateInput{
		Position: b.Position(),
		Ranges:   b.ranges(),
		Alerted:  b.alerted,
		Engaged:  b.engaged,
	}

	if b.engaged {
		if target, ok := b.Target(); ok && target.IsAlive() {
			input.Target = target.candidate()
		}
		return input
	}

	for _, other := range b.ctx.registry.All() {
		if other == b || !other.IsAlive() || !b.team.Opposes(other.team) {
			continue
		}
		input.Candidates = append(input.Candidates, *other.candidate())
	}
	return input
}

func (b *Battler) candidate() *engagement.Candidate {
	return &engagement.Candidate{
		ID:       b.id,
		Position: b.Position(),
		Vision:   b.VisionMultiplier(),
	}
}

func (b *Battler) ranges() engagement.Ranges {
	return engagement.Ranges{
		Sight:             b.template.Sight,
		Pursuit:           b.template.Pursuit,
		AlertSightBonus:   b.template.AlertSightBonus,
		AlertPursuitBonus: b.template.AlertPursuitBonus,
	}
}

func (b *Battler) reconcileAggro() {
	ranges := b.ranges()
	pursuit := ranges.PursuitRange(b.alerted, 1)

	result := b.aggro.Reconcile(&aggro.ReconcileInput{
		CurrentTargetID: b.targetID,
		PursuitRadius:   pursuit,
		MaxRange:        pursuit * trackingRangeFactor,
		Lookup: func(id string) (aggro.Opponent, bool) {
			other, ok := b.ctx.registry.Get(id)
			if !ok {
				return aggro.Opponent{}, false
			}
			return aggro.Opponent{
				Alive:    other.IsAlive(),
				Distance: b.ctx.grid.Distance(b.Position(), other.Position()),
			}, true
		},
	})

	switch {
	case result.Disengage:
		b.DisengageTarget()
	case result.Retarget():
		slog.Debug("Battler switched target",
			"battler_id", b.id,
			"from", b.targetID,
			"to", result.NewTargetID,
		)
		b.targetID = result.NewTargetID
	}
}

func (b *Battler) updateDodge() {
	if !b.IsDodging() || b.body.IsMoving() {
		return
	}

	if b.dodgeSteps > 0 {
		b.dodgeSteps--
		if !b.body.Step(b.dodgeDirection) {
			b.dodgeSteps = 0
		}
		return
	}

	b.body.SetSpeedBonus(0)
	b.dodgeInvincible = false
	b.dodgeDirection = entities.DirNone
	b.setPose(PoseIdle, 0)
}

func (b *Battler) updateDeath() {
	if !b.stats.IsDead() {
		return
	}

	if !b.defeatHandled {
		b.defeatHandled = true
		b.preDefeat()
	}

	if b.dying && !b.caps.persistsWhenDying && !b.ctx.busy {
		b.destroyed = true
		slog.Debug("Battler destroyed", "battler_id", b.id)
	}
}

func (b *Battler) preDefeat() {
	slog.Info("Battler defeated",
		"battler_id", b.id,
		"name", b.template.Name,
		"defeated_by", b.lastStruckByID,
	)

	b.EndGuard()
	b.cancelCast()
	b.setPose(PoseDead, 0)

	b.dying = true
	b.engagementLocked = false
	b.DisengageTarget()

	killer, hasKiller := b.LastStruckBy()

	for _, trigger := range b.template.OnOwnDefeat {
		origin := b.Position()
		if trigger.CastFrom == entities.CastFromTarget && hasKiller {
			origin = killer.Position()
		}
		b.fireTrigger(trigger, origin)
	}

	if hasKiller && killer != b && killer.IsAlive() {
		for _, trigger := range killer.template.OnTargetDefeat {
			origin := killer.Position()
			if trigger.CastFrom == entities.CastFromTarget {
				origin = b.Position()
			}
			killer.fireTrigger(trigger, origin)
		}
	}
}

func (b *Battler) fireTrigger(trigger entities.DefeatTrigger, origin entities.Point) {
	if !b.ctx.rollPercent(trigger.Chance) {
		return
	}

	skill, ok := b.ctx.catalog.GetSkill(trigger.SkillID)
	if !ok {
		slog.Warn("Defeat trigger references unknown skill",
			"battler_id", b.id,
			"skill_id", trigger.SkillID,
		)
		return
	}

	b.queue(b.createActions(skill, "", "", true, origin))
}

// flush hands the pending actions to the executor
func (b *Battler) flush() error {
	if len(b.pending) == 0 {
		return nil
	}

	actions := b.pending
	b.pending = nil
	if err := b.ctx.executor.Execute(actions); err != nil {
		return errors.Wrap(err, "failed to execute actions").WithMeta("battler_id", b.id)
	}
	return nil
}

func (b *Battler) queue(actions []*action.Action) {
	b.pending = append(b.pending, actions...)
}
