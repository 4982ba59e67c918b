// Package regen applies periodic resource regeneration and status-effect slip damage.
package regen

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/timer"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/formula"
)

const (
	// Interval is the number of frames between regeneration ticks, four per second at 60 fps
	Interval = 15

	// slip rates are authored per five seconds; there are twenty ticks in five seconds
	ticksPerSlipPeriod = 20

	naturalRegenFactor = 0.05
)

// Subject is the battler being regenerated
type Subject interface {
	IsDead() bool
	Current(resource entities.Resource) int
	Max(resource entities.Resource) int
	// Rate returns the natural regeneration rate (hrg, mrg, trg) for the resource
	Rate(resource entities.Resource) float64
	REC() float64
	Gain(resource entities.Resource, amount int)
	States() []entities.ActiveState
	RemoveState(stateID int)
	FormulaScope() formula.Scope
}

// StateLookup resolves state definitions
type StateLookup interface {
	GetState(id int) (*entities.State, bool)
}

// PopupFunc receives the signed amount applied by a slip effect
type PopupFunc func(resource entities.Resource, amount int)

// ScopeFunc resolves the formula scope of the entity that applied a state. It returns
// nil when that entity is gone.
type ScopeFunc func(sourceID string) formula.Scope

// Config holds the dependencies of a processor
type Config struct {
	OwnerID   string
	States    StateLookup
	Evaluator *formula.Evaluator
	Popup     PopupFunc
	Sources   ScopeFunc
	Variables map[int]float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.States == nil {
		vb.RequiredField("States")
	}
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}

	return vb.Build()
}

// Processor ticks regeneration for one entity
type Processor struct {
	ownerID   string
	states    StateLookup
	evaluator *formula.Evaluator
	popup     PopupFunc
	sources   ScopeFunc
	variables map[int]float64
	timer     *timer.Timer
	carry     map[entities.Resource]float64
}

// NewProcessor creates a processor with the provided dependencies
func NewProcessor(cfg *Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Processor{
		ownerID:   cfg.OwnerID,
		states:    cfg.States,
		evaluator: cfg.Evaluator,
		popup:     cfg.Popup,
		sources:   cfg.Sources,
		variables: cfg.Variables,
		timer:     timer.New(Interval),
		carry:     make(map[entities.Resource]float64),
	}, nil
}

// Update advances the regeneration timer and processes a tick when it completes
func (p *Processor) Update(subject Subject) error {
	p.timer.Update()
	if !p.timer.IsComplete() {
		return nil
	}
	p.timer.Reset()

	return p.Process(subject)
}

// Process applies one regeneration tick immediately. Dead subjects are skipped.
func (p *Processor) Process(subject Subject) error {
	if subject.IsDead() {
		return nil
	}

	for _, resource := range entities.Resources {
		p.ProcessNaturalRegen(subject, resource)
	}

	return p.ProcessSlip(subject)
}

// ProcessNaturalRegen applies innate regeneration to one resource while it is below
// its maximum. Fractions are carried over to the next tick.
func (p *Processor) ProcessNaturalRegen(subject Subject, resource entities.Resource) {
	if subject.Current(resource) >= subject.Max(resource) {
		p.carry[resource] = 0
		return
	}

	amount := (subject.Rate(resource) * 100 * naturalRegenFactor) * subject.REC()
	if amount <= 0 {
		return
	}

	total := p.carry[resource] + amount
	whole := math.Floor(total)
	p.carry[resource] = total - whole
	if whole > 0 {
		subject.Gain(resource, int(whole))
	}
}

// ProcessSlip applies the combined slip of every active state. Untracked states are
// pruned. Formula failures are returned as errors and nothing is applied for that tick.
func (p *Processor) ProcessSlip(subject Subject) error {
	totals := make(map[entities.Resource]float64, len(entities.Resources))
	active := false

	for _, applied := range subject.States() {
		if !applied.Tracked {
			subject.RemoveState(applied.StateID)
			continue
		}

		state, ok := p.states.GetState(applied.StateID)
		if !ok {
			slog.Warn("Active state has no definition",
				"entity_id", p.ownerID,
				"state_id", applied.StateID,
			)
			continue
		}

		for _, resource := range entities.Resources {
			rate := state.Slip.For(resource)
			if rate.IsZero() {
				continue
			}

			value, err := p.slipFor(subject, applied, resource, rate)
			if err != nil {
				slog.Error("Slip formula failed",
					"entity_id", p.ownerID,
					"state_id", state.ID,
					"resource", resource,
					"error", err,
				)
				return errors.Wrap(err, "failed to process slip").
					WithMeta("state_id", state.ID).
					WithMeta("entity_id", p.ownerID)
			}

			totals[resource] += value
			active = true
		}
	}

	if !active {
		return nil
	}

	for _, resource := range entities.Resources {
		total := totals[resource]
		if total == 0 {
			continue
		}
		if total > 0 {
			total *= subject.REC()
		}

		amount := int(math.Round(total / ticksPerSlipPeriod))
		if amount == 0 {
			continue
		}

		before := subject.Current(resource)
		subject.Gain(resource, amount)
		applied := subject.Current(resource) - before
		if applied != 0 && p.popup != nil {
			p.popup(resource, applied)
		}
	}

	return nil
}

func (p *Processor) slipFor(subject Subject, applied entities.ActiveState, resource entities.Resource, rate entities.SlipRate) (float64, error) {
	value := float64(rate.Flat)
	value += rate.Percent / 100 * float64(subject.Max(resource))

	if rate.Formula == "" {
		return value, nil
	}

	self := subject.FormulaScope()
	caster := self
	if p.sources != nil && applied.SourceID != "" {
		if scope := p.sources(applied.SourceID); scope != nil {
			caster = scope
		}
	}

	result, err := p.evaluator.Evaluate(rate.Formula, &formula.Env{
		A:    caster,
		B:    self,
		Vars: p.variables,
	})
	if err != nil {
		return 0, err
	}

	return value + result, nil
}
