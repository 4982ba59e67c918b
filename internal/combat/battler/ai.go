package battler

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// Phase is a step of the AI decision cycle
type Phase string

// Phases, in cycle order
const (
	PhasePrepare  Phase = "prepare"
	PhaseDecide   Phase = "decide"
	PhaseExecute  Phase = "execute"
	PhaseCooldown Phase = "cooldown"
)

// supportThreshold is the hp ratio under which support AI heals an ally
const supportThreshold = 0.5

// Decision is the skill an AI battler chose to use next
type Decision struct {
	SlotKey cooldown.Key
	Skill   *entities.Skill
	// TargetID is the ally to support, empty for hostile skills
	TargetID string
}

//go:generate mockgen -destination=mock/mock_decider.go -package=battlermock github.com/KirkDiggler/rpg-realtime/internal/combat/battler Decider

// Decider chooses what an engaged AI battler does next. A nil decision skips the
// cycle.
type Decider interface {
	Decide(b *Battler) *Decision
}

// ProfileDecider picks skills according to the template's AI profile. Ties between
// equally valid options are settled with the simulation's dice roller.
type ProfileDecider struct{}

// NewProfileDecider creates the default decider
func NewProfileDecider() *ProfileDecider {
	return &ProfileDecider{}
}

// Decide implements Decider
func (d *ProfileDecider) Decide(b *Battler) *Decision {
	switch b.template.AI {
	case entities.AIPassive:
		return d.choose(b, d.options(b, func(key cooldown.Key, _ *entities.Skill) bool {
			return key == cooldown.KeyMainhand
		}), "")
	case entities.AISupport:
		if decision := d.support(b); decision != nil {
			return decision
		}
	}

	return d.choose(b, d.options(b, func(_ cooldown.Key, skill *entities.Skill) bool {
		return !skill.IsSupport()
	}), "")
}

func (d *ProfileDecider) support(b *Battler) *Decision {
	ally := weakestAlly(b)
	if ally == nil {
		return nil
	}

	options := d.options(b, func(_ cooldown.Key, skill *entities.Skill) bool {
		if skill.Scope == entities.ScopeSelf {
			return ally == b
		}
		return skill.Scope == entities.ScopeAlly
	})
	return d.choose(b, options, ally.id)
}

func (d *ProfileDecider) options(b *Battler, keep func(cooldown.Key, *entities.Skill) bool) []Decision {
	var out []Decision
	for _, key := range b.slots.Keys() {
		if key == cooldown.KeyTool || key == cooldown.KeyDodge {
			continue
		}
		skill, ok := b.SlotSkill(key)
		if !ok || skill.IsGuard() || skill.IsDodge() {
			continue
		}
		if !keep(key, skill) || !b.slots.CanExecute(key, skill, b) {
			continue
		}
		out = append(out, Decision{SlotKey: key, Skill: skill})
	}
	return out
}

func (d *ProfileDecider) choose(b *Battler, options []Decision, targetID string) *Decision {
	if len(options) == 0 {
		return nil
	}
	chosen := options[b.ctx.pick(len(options))]
	chosen.TargetID = targetID
	return &chosen
}

// weakestAlly returns the living teammate, self included, with the lowest hp ratio
// below the support threshold
func weakestAlly(b *Battler) *Battler {
	var weakest *Battler
	lowest := supportThreshold

	for _, other := range b.ctx.registry.All() {
		if other.team != b.team || !other.IsAlive() || other.IsInanimate() {
			continue
		}
		maxHP := other.stats.Max(entities.ResourceHP)
		if maxHP <= 0 {
			continue
		}
		ratio := float64(other.stats.Current(entities.ResourceHP)) / float64(maxHP)
		if ratio < lowest {
			weakest = other
			lowest = ratio
		}
	}
	return weakest
}

func (b *Battler) updateAI() {
	if !b.caps.aiControlled || !b.IsAlive() || b.IsDodging() || b.guard.IsGuarding() {
		return
	}

	if !b.engaged {
		if b.alerted {
			b.approach(b.alertPoint, 0)
		}
		return
	}

	switch b.phase {
	case PhasePrepare:
		if b.waitTimer.IsComplete() {
			b.phase = PhaseDecide
		}
	case PhaseDecide:
		decision := b.decider.Decide(b)
		if decision == nil || decision.Skill == nil {
			b.enterPrepare()
			return
		}
		b.decision = decision
		if decision.TargetID != "" {
			b.allyTargetID = decision.TargetID
		}
		b.phase = PhaseExecute
	case PhaseExecute:
		b.stepExecute()
	case PhaseCooldown:
		if b.waitTimer.IsComplete() {
			b.enterPrepare()
		}
	}
}

func (b *Battler) stepExecute() {
	decision := b.decision
	if decision == nil {
		b.enterPrepare()
		return
	}

	target, ok := b.decisionTarget(decision)
	if !ok {
		b.abortDecision()
		return
	}

	if b.casting {
		if b.castTimer.IsComplete() {
			b.casting = false
			b.finishDecision(decision)
		}
		return
	}

	position := b.Position()
	if b.ctx.grid.Distance(position, target.Position()) > decision.Skill.Range {
		b.approach(target.Position(), decision.Skill.Range)
		return
	}

	if target != b {
		b.body.SetFacing(b.ctx.grid.DirectionTo(position, target.Position()))
	}

	if decision.Skill.CastTime > 0 {
		if !b.slots.CanExecute(decision.SlotKey, decision.Skill, b) {
			b.abortDecision()
			return
		}
		b.casting = true
		b.castTimer.SetMax(decision.Skill.CastTime)
		b.setPose(PoseCast, decision.Skill.CastTime)
		return
	}

	b.finishDecision(decision)
}

func (b *Battler) decisionTarget(decision *Decision) (*Battler, bool) {
	if decision.TargetID != "" {
		ally, ok := b.ctx.registry.Get(decision.TargetID)
		return ally, ok && ally.IsAlive()
	}
	if decision.Skill.Scope == entities.ScopeSelf {
		return b, true
	}
	target, ok := b.Target()
	return target, ok && target.IsAlive()
}

func (b *Battler) finishDecision(decision *Decision) {
	if !b.useSkill(decision.SlotKey, decision.Skill, decision.TargetID) {
		b.abortDecision()
		return
	}
	b.decision = nil
	b.phase = PhaseCooldown
	b.waitTimer.SetMax(postActionFrames)
}

func (b *Battler) abortDecision() {
	slog.Debug("Battler abandoned its decision",
		"battler_id", b.id,
		"phase", b.phase,
	)
	b.casting = false
	b.enterPrepare()
}

func (b *Battler) enterPrepare() {
	b.decision = nil
	b.phase = PhasePrepare
	b.waitTimer.SetMax(b.template.PrepareTime)
}

func (b *Battler) cancelCast() {
	if !b.casting {
		return
	}
	b.casting = false
	b.castTimer.Reset()
	b.enterPrepare()
}

// approach takes one step towards a point unless already within reach
func (b *Battler) approach(point entities.Point, within float64) {
	if b.body.IsMoving() || !b.stats.Restrictions().CanMove() {
		return
	}

	position := b.Position()
	if b.ctx.grid.Distance(position, point) <= within {
		if b.alerted && point == b.alertPoint {
			b.alerted = false
		}
		return
	}

	dir := b.ctx.grid.DirectionTo(position, point)
	if dir == entities.DirNone {
		return
	}
	b.body.SetFacing(dir)

	for _, turn := range []int{0, 1, -1} {
		if b.body.Step(dir.Rotate(turn)) {
			return
		}
	}
}
