// Package simulation owns a running combat simulation: the entity registry, the map
// and the frame counter. Callers spawn entities, feed player input and advance frames.
package simulation

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/resolver"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/grid"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-realtime/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-realtime/internal/stats"
)

// Service defines the interface for simulation operations
type Service interface {
	// Spawn places a new entity built from a catalog template
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// Despawn removes an entity immediately
	Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error)

	// Tick advances the simulation
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetEntity returns the current state of one entity
	GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error)

	// ListEntities returns the current state of every entity
	ListEntities(ctx context.Context, input *ListEntitiesInput) (*ListEntitiesOutput, error)

	// Engage forces an entity into combat with a target
	Engage(ctx context.Context, input *EngageInput) (*EngageOutput, error)

	// Disengage drops an entity out of combat
	Disengage(ctx context.Context, input *DisengageInput) (*DisengageOutput, error)

	// UseTool applies an item to an entity
	UseTool(ctx context.Context, input *UseToolInput) (*UseToolOutput, error)

	// ExecuteSkill uses the skill equipped in one of an entity's slots
	ExecuteSkill(ctx context.Context, input *ExecuteSkillInput) (*ExecuteSkillOutput, error)

	// SetBusy holds back the destruction of defeated entities while set
	SetBusy(ctx context.Context, input *SetBusyInput) (*SetBusyOutput, error)
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	Catalog     catalog.Catalog
	Grid        *grid.Map
	Presenter   battler.Presenter
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// Snapshots receives every entity's state after each tick when set
	Snapshots snapshots.Repository
	// SnapshotTTL defaults to five minutes
	SnapshotTTL time.Duration
	// Clock stamps snapshots. A *clock.Simulated advances one frame per tick.
	Clock clock.Clock
	// Variables are exposed to formulas as v[n]
	Variables map[int]float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
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
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type advancer interface {
	Advance()
}

type orchestrator struct {
	catalog     catalog.Catalog
	grid        *grid.Map
	simulation  *battler.Context
	registry    *battler.Registry
	snapshots   snapshots.Repository
	snapshotTTL time.Duration
	clock       clock.Clock

	// the health server and the tick loop share the process
	mu      sync.Mutex
	bodies  map[string]*grid.Body
	frame   int64
	spawned int
}

// NewOrchestrator creates a new simulation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	registry := battler.NewRegistry()

	executor, err := resolver.New(&resolver.Config{
		Registry:  registry,
		Grid:      cfg.Grid,
		Presenter: cfg.Presenter,
		Variables: cfg.Variables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	simulation, err := battler.NewContext(&battler.ContextConfig{
		Catalog:     cfg.Catalog,
		Grid:        cfg.Grid,
		Presenter:   cfg.Presenter,
		Executor:    executor,
		Roller:      cfg.Roller,
		IDGenerator: cfg.IDGenerator,
		Variables:   cfg.Variables,
		Registry:    registry,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create simulation context")
	}

	ttl := cfg.SnapshotTTL
	if ttl <= 0 {
		ttl = snapshotTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		grid:        cfg.Grid,
		simulation:  simulation,
		registry:    registry,
		snapshots:   cfg.Snapshots,
		snapshotTTL: ttl,
		clock:       c,
		bodies:      make(map[string]*grid.Body),
	}, nil
}

// Spawn places a new entity built from a catalog template
func (o *orchestrator) Spawn(_ context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	template, ok := o.catalog.GetBattler(input.TemplateID)
	if !ok {
		return nil, errors.NotFoundf("battler template %d not found", input.TemplateID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sheet, err := stats.NewSheet(&stats.Config{Template: template, States: o.catalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stat sheet")
	}

	body, err := o.grid.AddBody(input.Position, input.Facing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place entity")
	}

	b, err := battler.New(&battler.Config{
		ID:         input.EntityID,
		Template:   template,
		Stats:      sheet,
		Body:       body,
		Context:    o.simulation,
		SpawnIndex: o.spawned,
	})
	if err != nil {
		o.grid.RemoveBody(body)
		return nil, errors.Wrap(err, "failed to create entity")
	}
	o.spawned++
	o.bodies[b.GetID()] = body

	if input.LeaderID != "" {
		b.SetLeader(input.LeaderID)
	}

	slog.Info("Entity spawned",
		"entity_id", b.GetID(),
		"template_id", template.ID,
		"name", template.Name,
		"x", input.Position.X,
		"y", input.Position.Y,
	)

	return &SpawnOutput{Entity: b.Snapshot()}, nil
}

// Despawn removes an entity immediately
func (o *orchestrator) Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.lookup(input.EntityID); err != nil {
		return nil, err
	}
	o.remove(input.EntityID)

	if o.snapshots != nil {
		if _, err := o.snapshots.Delete(ctx, &snapshots.DeleteInput{EntityID: input.EntityID}); err != nil {
			return nil, errors.Wrapf(err, "failed to delete snapshot for %s", input.EntityID)
		}
	}

	slog.Info("Entity despawned", "entity_id", input.EntityID)

	return &DespawnOutput{}, nil
}

// Tick advances the simulation. Entities update in spawn order, then the map settles
// movement and destroyed entities are removed.
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	frames := input.Frames
	if frames <= 0 {
		frames = 1
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	output := &TickOutput{}
	for range frames {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "tick interrupted")
		}

		for _, b := range o.registry.All() {
			if err := b.Update(); err != nil {
				slog.Warn("Entity update failed",
					"entity_id", b.GetID(),
					"frame", o.frame,
					"error", err,
				)
				output.Errors = append(output.Errors,
					errors.Wrap(err, "entity update failed").
						WithMeta("entity_id", b.GetID()).
						WithMeta("frame", o.frame))
			}
		}
		o.grid.Update()

		for _, b := range o.registry.All() {
			if b.IsDestroyed() {
				o.remove(b.GetID())
				output.Destroyed = append(output.Destroyed, b.GetID())
			}
		}

		o.frame++
		if a, ok := o.clock.(advancer); ok {
			a.Advance()
		}
	}
	output.Frame = o.frame

	if err := o.persist(ctx, output.Destroyed); err != nil {
		slog.Warn("Failed to persist snapshots",
			"frame", o.frame,
			"error", err,
		)
		output.Errors = append(output.Errors, err)
	}

	return output, nil
}

// GetEntity returns the current state of one entity
func (o *orchestrator) GetEntity(_ context.Context, input *GetEntityInput) (*GetEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.lookup(input.EntityID)
	if err != nil {
		return nil, err
	}

	return &GetEntityOutput{Entity: b.Snapshot()}, nil
}

// ListEntities returns the current state of every entity
func (o *orchestrator) ListEntities(_ context.Context, input *ListEntitiesInput) (*ListEntitiesOutput, error) {
	if input == nil {
		input = &ListEntitiesInput{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	all := o.registry.All()
	out := make([]*battler.Snapshot, 0, len(all))
	for _, b := range all {
		if input.Team != "" && b.Team() != input.Team {
			continue
		}
		out = append(out, b.Snapshot())
	}

	return &ListEntitiesOutput{Entities: out}, nil
}

// Engage forces an entity into combat with a target
func (o *orchestrator) Engage(_ context.Context, input *EngageInput) (*EngageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.lookup(input.EntityID)
	if err != nil {
		return nil, err
	}
	if _, err := o.lookup(input.TargetID); err != nil {
		return nil, err
	}

	return &EngageOutput{Engaged: b.EngageTarget(input.TargetID)}, nil
}

// Disengage drops an entity out of combat
func (o *orchestrator) Disengage(_ context.Context, input *DisengageInput) (*DisengageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.lookup(input.EntityID)
	if err != nil {
		return nil, err
	}

	return &DisengageOutput{Disengaged: b.DisengageTarget()}, nil
}

// UseTool applies an item to an entity
func (o *orchestrator) UseTool(_ context.Context, input *UseToolInput) (*UseToolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := o.catalog.GetItem(input.ItemID); !ok {
		return nil, errors.NotFoundf("item %d not found", input.ItemID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.lookup(input.EntityID)
	if err != nil {
		return nil, err
	}

	return &UseToolOutput{Used: b.ApplyToolEffect(input.ItemID)}, nil
}

// ExecuteSkill uses the skill equipped in one of an entity's slots. Resulting actions
// are resolved on the entity's next update.
func (o *orchestrator) ExecuteSkill(_ context.Context, input *ExecuteSkillInput) (*ExecuteSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("slot key is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	b, err := o.lookup(input.EntityID)
	if err != nil {
		return nil, err
	}
	if input.AllyTargetID != "" {
		b.SetAllyTarget(input.AllyTargetID)
	}

	return &ExecuteSkillOutput{Executed: b.ExecuteSlot(input.Key)}, nil
}

// SetBusy holds back the destruction of defeated entities while set
func (o *orchestrator) SetBusy(_ context.Context, input *SetBusyInput) (*SetBusyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.simulation.SetBusy(input.Busy)

	return &SetBusyOutput{}, nil
}

func (o *orchestrator) lookup(id string) (*battler.Battler, error) {
	if id == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	b, ok := o.registry.Get(id)
	if !ok {
		return nil, errors.NotFoundf("entity %s not found", id)
	}
	return b, nil
}

func (o *orchestrator) remove(id string) {
	o.registry.Remove(id)
	if body, ok := o.bodies[id]; ok {
		o.grid.RemoveBody(body)
		delete(o.bodies, id)
	}
}

// persist writes the state of every entity and forgets destroyed ones
func (o *orchestrator) persist(ctx context.Context, destroyed []string) error {
	if o.snapshots == nil {
		return nil
	}

	all := o.registry.All()
	taken := make([]*battler.Snapshot, 0, len(all))
	for _, b := range all {
		taken = append(taken, b.Snapshot())
	}

	if _, err := o.snapshots.Save(ctx, &snapshots.SaveInput{
		Frame:     o.frame,
		Snapshots: taken,
		TTL:       o.snapshotTTL,
	}); err != nil {
		return errors.Wrap(err, "failed to save snapshots")
	}

	for _, id := range destroyed {
		if _, err := o.snapshots.Delete(ctx, &snapshots.DeleteInput{EntityID: id}); err != nil {
			return errors.Wrapf(err, "failed to delete snapshot for %s", id)
		}
	}
	return nil
}
