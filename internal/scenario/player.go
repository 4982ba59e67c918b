package scenario

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation"
)

// PlayerConfig holds the dependencies of a scenario player
type PlayerConfig struct {
	Service  simulation.Service
	Scenario *Scenario
}

// Validate ensures all required dependencies are provided
func (c *PlayerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Scenario == nil {
		vb.RequiredField("Scenario")
	}

	return vb.Build()
}

// Result summarizes a scenario run
type Result struct {
	Frame     int64
	Destroyed []string
	// Errors holds entity update failures and rejected inputs
	Errors []error
}

// Player spawns a scenario into a simulation and replays its inputs frame by frame
type Player struct {
	service  simulation.Service
	scenario *Scenario
	inputs   []Input
	next     int
	frame    int64
}

// NewPlayer creates a scenario player
func NewPlayer(cfg *PlayerConfig) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	inputs := slices.Clone(cfg.Scenario.Inputs)
	slices.SortStableFunc(inputs, func(a, b Input) int {
		switch {
		case a.Frame < b.Frame:
			return -1
		case a.Frame > b.Frame:
			return 1
		default:
			return 0
		}
	})

	return &Player{
		service:  cfg.Service,
		scenario: cfg.Scenario,
		inputs:   inputs,
	}, nil
}

// Setup spawns every scenario entity in order
func (p *Player) Setup(ctx context.Context) error {
	for _, spawn := range p.scenario.Spawns {
		_, err := p.service.Spawn(ctx, &simulation.SpawnInput{
			EntityID:   spawn.ID,
			TemplateID: spawn.Template,
			Position:   spawn.At,
			Facing:     spawn.Facing,
			LeaderID:   spawn.Leader,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to spawn %q", spawn.ID)
		}
	}
	return nil
}

// Run simulates the given number of frames. Inputs scheduled for a frame are applied
// right before it is simulated.
func (p *Player) Run(ctx context.Context, frames int) (*Result, error) {
	result := &Result{}

	for range frames {
		for p.next < len(p.inputs) && p.inputs[p.next].Frame <= p.frame {
			if err := p.apply(ctx, &p.inputs[p.next]); err != nil {
				slog.Warn("Scenario input rejected",
					"frame", p.frame,
					"entity_id", p.inputs[p.next].Entity,
					"error", err,
				)
				result.Errors = append(result.Errors, err)
			}
			p.next++
		}

		out, err := p.service.Tick(ctx, &simulation.TickInput{Frames: 1})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to simulate frame %d", p.frame)
		}
		p.frame = out.Frame
		result.Destroyed = append(result.Destroyed, out.Destroyed...)
		result.Errors = append(result.Errors, out.Errors...)
	}

	result.Frame = p.frame
	return result, nil
}

func (p *Player) apply(ctx context.Context, input *Input) error {
	var err error
	switch {
	case input.Slot != "":
		_, err = p.service.ExecuteSkill(ctx, &simulation.ExecuteSkillInput{
			EntityID:     input.Entity,
			Key:          input.Slot,
			AllyTargetID: input.Ally,
		})
	case input.Item != 0:
		_, err = p.service.UseTool(ctx, &simulation.UseToolInput{
			EntityID: input.Entity,
			ItemID:   input.Item,
		})
	case input.Engage != "":
		_, err = p.service.Engage(ctx, &simulation.EngageInput{
			EntityID: input.Entity,
			TargetID: input.Engage,
		})
	case input.Disengage:
		_, err = p.service.Disengage(ctx, &simulation.DisengageInput{EntityID: input.Entity})
	}
	return err
}
