package battler

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/formula"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
)

// ContextConfig holds the shared collaborators of a simulation
type ContextConfig struct {
	Catalog     catalog.Catalog
	Grid        Grid
	Presenter   Presenter
	Executor    Executor
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Evaluator   *formula.Evaluator
	// Variables are exposed to formulas as v[n]
	Variables map[int]float64
	// Registry is shared with collaborators that resolve entities by id. A new one is
	// created when nil.
	Registry *Registry
}

// Validate ensures all required dependencies are provided
func (c *ContextConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Grid == nil {
		vb.RequiredField("Grid")
	}
	if c.Presenter == nil {
		vb.RequiredField("Presenter")
	}
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Context is the simulation state every entity shares: the registry of living
// entities, the static catalog and the outward collaborators. It replaces global
// lookups; entities receive it at construction.
type Context struct {
	catalog   catalog.Catalog
	grid      Grid
	presenter Presenter
	executor  Executor
	roller    dice.Roller
	idGen     idgen.Generator
	evaluator *formula.Evaluator
	variables map[int]float64
	factory   *action.Factory
	registry  *Registry

	active bool
	busy   bool
}

// NewContext creates a simulation context. The simulation starts active.
func NewContext(cfg *ContextConfig) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	factory, err := action.NewFactory(&action.Config{IDGenerator: cfg.IDGenerator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create action factory")
	}

	evaluator := cfg.Evaluator
	if evaluator == nil {
		evaluator = formula.NewEvaluator()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	return &Context{
		catalog:   cfg.Catalog,
		grid:      cfg.Grid,
		presenter: cfg.Presenter,
		executor:  cfg.Executor,
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
		evaluator: evaluator,
		variables: cfg.Variables,
		factory:   factory,
		registry:  registry,
		active:    true,
	}, nil
}

// Catalog returns the static data catalog
func (c *Context) Catalog() catalog.Catalog { return c.catalog }

// Grid returns the spatial collaborator
func (c *Context) Grid() Grid { return c.grid }

// Registry returns the entity registry
func (c *Context) Registry() *Registry { return c.registry }

// Evaluator returns the shared formula evaluator
func (c *Context) Evaluator() *formula.Evaluator { return c.evaluator }

// Variables returns the formula variable table
func (c *Context) Variables() map[int]float64 { return c.variables }

// IsActive reports whether entities update at all
func (c *Context) IsActive() bool { return c.active }

// SetActive pauses or resumes the simulation
func (c *Context) SetActive(active bool) { c.active = active }

// IsBusy reports whether a transient state, such as an open modal, blocks the
// destruction of defeated entities
func (c *Context) IsBusy() bool { return c.busy }

// SetBusy marks the simulation busy or free
func (c *Context) SetBusy(busy bool) { c.busy = busy }

// rollPercent reports whether a percentage chance succeeds. Certain chances skip the
// roll; roller failures count as a miss.
func (c *Context) rollPercent(chance int) bool {
	if chance >= 100 {
		return true
	}
	if chance <= 0 {
		return false
	}
	roll, err := c.roller.Roll(100)
	if err != nil {
		return false
	}
	return roll <= chance
}

// pick returns a dice-chosen index in [0, n). Roller failures pick the first option.
func (c *Context) pick(n int) int {
	if n <= 1 {
		return 0
	}
	roll, err := c.roller.Roll(n)
	if err != nil || roll < 1 || roll > n {
		return 0
	}
	return roll - 1
}
