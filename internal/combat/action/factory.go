package action

import (
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
)

// fanOut holds the clockwise rotations, in 45 degree steps from facing, for each
// projectile count
var fanOut = map[int][]int{
	1: {0},
	2: {0, 4},
	3: {0, 1, -1},
	4: {0, 2, 4, -2},
	5: {0, 1, -1, 2, -2},
	6: {0, 1, -1, 3, -3, 4},
	7: {0, 1, -1, 2, -2, 3, -3},
	8: {0, 1, 2, 3, 4, 5, 6, 7},
}

// Directions returns the direction of each projectile fired by count projectiles
// while facing the given way. Invalid facings are treated as facing down.
func Directions(facing entities.Direction, count int) []entities.Direction {
	if !facing.Valid() {
		facing = entities.DirDown
	}
	count = min(max(count, 1), 8)

	rotations := fanOut[count]
	dirs := make([]entities.Direction, len(rotations))
	for i, r := range rotations {
		dirs[i] = facing.Rotate(r)
	}
	return dirs
}

// Config holds the dependencies for the factory
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Factory materializes skills into action instances
type Factory struct {
	idGen idgen.Generator
}

// NewFactory creates a factory with the provided dependencies
func NewFactory(cfg *Config) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Factory{idGen: cfg.IDGenerator}, nil
}

// CreateInput describes one use of a skill
type CreateInput struct {
	Skill       *entities.Skill
	CasterID    string
	Team        entities.Team
	TargetID    string
	Facing      entities.Direction
	Origin      entities.Point
	SlotKey     cooldown.Key
	Retaliation bool
}

// Create builds one action per projectile of the skill
func (f *Factory) Create(input *CreateInput) ([]*Action, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == nil {
		return nil, errors.InvalidArgument("skill is required")
	}
	if input.CasterID == "" {
		return nil, errors.InvalidArgument("caster ID is required")
	}

	dirs := Directions(input.Facing, input.Skill.ProjectileCount())
	actions := make([]*Action, 0, len(dirs))
	for _, dir := range dirs {
		actions = append(actions, &Action{
			ID:          f.idGen.Generate(),
			Skill:       input.Skill,
			CasterID:    input.CasterID,
			Team:        input.Team,
			TargetID:    input.TargetID,
			Direction:   dir,
			Origin:      input.Origin,
			SlotKey:     input.SlotKey,
			Retaliation: input.Retaliation,
		})
	}

	return actions, nil
}
