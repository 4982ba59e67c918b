// Package resolver applies decided actions to the entities they reach. It is the
// reference battler.Executor used by the simulation service and the CLI.
package resolver

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/formula"
)

// Config holds the dependencies of a resolver
type Config struct {
	Registry  *battler.Registry
	Grid      battler.Grid
	Presenter battler.Presenter
	Evaluator *formula.Evaluator
	// Variables are exposed to damage formulas as v[n]
	Variables map[int]float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Grid == nil {
		vb.RequiredField("Grid")
	}
	if c.Presenter == nil {
		vb.RequiredField("Presenter")
	}

	return vb.Build()
}

// Resolver finds the entity each action reaches and delivers the hit.
//
// Actions aimed at an entity (ally support) reach it when it is within the skill's
// range. Self-scoped skills reach the caster. Everything else travels from the
// action's origin along its direction, tile by tile, until it is stopped by a wall,
// runs out of range, or meets a living entity the skill may affect.
type Resolver struct {
	registry  *battler.Registry
	grid      battler.Grid
	presenter battler.Presenter
	evaluator *formula.Evaluator
	variables map[int]float64
}

var _ battler.Executor = (*Resolver)(nil)

// New creates a resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	evaluator := cfg.Evaluator
	if evaluator == nil {
		evaluator = formula.NewEvaluator()
	}

	return &Resolver{
		registry:  cfg.Registry,
		grid:      cfg.Grid,
		presenter: cfg.Presenter,
		evaluator: evaluator,
		variables: cfg.Variables,
	}, nil
}

// Execute implements battler.Executor. A failing action does not stop the others;
// all failures are returned together.
func (r *Resolver) Execute(actions []*action.Action) error {
	var errs []error
	for _, a := range actions {
		if err := r.resolve(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Resolver) resolve(a *action.Action) error {
	if a == nil || a.Skill == nil {
		return nil
	}

	caster, ok := r.registry.Get(a.CasterID)
	if !ok {
		slog.Debug("Dropping action from unknown caster",
			"action_id", a.ID,
			"caster_id", a.CasterID,
		)
		return nil
	}

	target, ok := r.reach(a, caster)
	if !ok {
		slog.Debug("Action reached nobody",
			"action_id", a.ID,
			"skill_id", a.Skill.ID,
			"caster_id", caster.GetID(),
		)
		return nil
	}

	damage, err := r.damage(a.Skill, caster, target)
	if err != nil {
		return err
	}

	if a.Skill.AnimationID > 0 {
		r.presenter.PlayAnimation(target.GetID(), a.Skill.AnimationID)
	}

	result := target.ReceiveHit(&battler.Hit{
		AttackerID: caster.GetID(),
		Skill:      a.Skill,
		Damage:     damage,
	})

	slog.Debug("Action resolved",
		"action_id", a.ID,
		"skill_id", a.Skill.ID,
		"caster_id", caster.GetID(),
		"target_id", target.GetID(),
		"damage", result.Damage,
		"guarded", result.Guarded,
		"parried", result.Parried,
		"negated", result.Negated,
		"defeated", result.Defeated,
	)
	return nil
}

// reach returns the entity an action lands on
func (r *Resolver) reach(a *action.Action, caster *battler.Battler) (*battler.Battler, bool) {
	skill := a.Skill

	if a.TargetID != "" {
		target, ok := r.registry.Get(a.TargetID)
		if !ok || !target.IsAlive() {
			return nil, false
		}
		return target, r.grid.Distance(a.Origin, target.Position()) <= skill.Range
	}

	if skill.Scope == entities.ScopeSelf {
		return caster, caster.IsAlive()
	}

	if !a.Direction.Valid() {
		return nil, false
	}
	for p := a.Origin.Add(a.Direction); r.grid.Distance(a.Origin, p) <= skill.Range; p = p.Add(a.Direction) {
		if !r.grid.IsPassable(p) {
			return nil, false
		}
		if target, ok := r.occupantAt(p, caster, skill.Scope); ok {
			return target, true
		}
	}
	return nil, false
}

func (r *Resolver) occupantAt(p entities.Point, caster *battler.Battler, scope entities.Scope) (*battler.Battler, bool) {
	for _, other := range r.registry.All() {
		if other == caster || !other.IsAlive() || other.Position() != p {
			continue
		}
		if affects(scope, caster.Team(), other.Team()) {
			return other, true
		}
	}
	return nil, false
}

func affects(scope entities.Scope, caster, target entities.Team) bool {
	switch scope {
	case entities.ScopeAll:
		return true
	case entities.ScopeAlly:
		return caster == target
	default:
		return caster.Opposes(target)
	}
}

// damage evaluates the skill's formula with the caster as a and the target as b.
// Negative values heal.
func (r *Resolver) damage(skill *entities.Skill, caster, target *battler.Battler) (int, error) {
	if skill.Damage == "" {
		return 0, nil
	}

	value, err := r.evaluator.Evaluate(skill.Damage, &formula.Env{
		A:    caster.Stats().FormulaScope(),
		B:    target.Stats().FormulaScope(),
		Vars: r.variables,
	})
	if err != nil {
		slog.Error("Damage formula failed",
			"skill_id", skill.ID,
			"formula", skill.Damage,
			"error", err,
		)
		return 0, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to evaluate damage formula").
			WithMeta("skill_id", skill.ID).
			WithMeta("formula", skill.Damage)
	}

	return int(math.Round(value)), nil
}
