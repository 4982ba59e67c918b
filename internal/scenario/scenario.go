// Package scenario loads scripted simulation runs: the map, the initial spawns and
// the player inputs to replay on given frames.
package scenario

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/grid"
)

// maxMapSize bounds each side of a scripted arena
const maxMapSize = 1024

// Map describes the arena
type Map struct {
	Width   int              `yaml:"width"`
	Height  int              `yaml:"height"`
	Blocked []entities.Point `yaml:"blocked"`
}

// Spawn places one entity when the scenario starts
type Spawn struct {
	ID       string             `yaml:"id"`
	Template int                `yaml:"template"`
	At       entities.Point     `yaml:"at"`
	Facing   entities.Direction `yaml:"facing"`
	Leader   string             `yaml:"leader"`
}

// Input is a scripted command issued before the given frame is simulated. Exactly one
// of Slot, Item, Engage or Disengage is set.
type Input struct {
	Frame     int64        `yaml:"frame"`
	Entity    string       `yaml:"entity"`
	Slot      cooldown.Key `yaml:"slot"`
	Ally      string       `yaml:"ally"`
	Item      int          `yaml:"item"`
	Engage    string       `yaml:"engage"`
	Disengage bool         `yaml:"disengage"`
}

// Scenario is the document shape of a scenario file
type Scenario struct {
	Map       Map             `yaml:"map"`
	Spawns    []Spawn         `yaml:"spawns"`
	Inputs    []Input         `yaml:"inputs"`
	Variables map[int]float64 `yaml:"variables"`
}

// Validate checks the scenario is runnable
func (s *Scenario) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("map.width", s.Map.Width, 1, maxMapSize, vb)
	errors.ValidateRange("map.height", s.Map.Height, 1, maxMapSize, vb)
	for _, spawn := range s.Spawns {
		if spawn.Template <= 0 {
			vb.InvalidField("spawns.template", "must reference a battler template")
		}
	}
	for _, input := range s.Inputs {
		errors.ValidateRequired("inputs.entity", input.Entity, vb)
		if input.Frame < 0 {
			vb.InvalidField("inputs.frame", "cannot be negative")
		}
		if input.commands() != 1 {
			vb.InvalidField("inputs", "must set exactly one of slot, item, engage or disengage")
		}
	}

	return vb.Build()
}

func (i *Input) commands() int {
	n := 0
	if i.Slot != "" {
		n++
	}
	if i.Item != 0 {
		n++
	}
	if i.Engage != "" {
		n++
	}
	if i.Disengage {
		n++
	}
	return n
}

// NewMap builds the arena
func (s *Scenario) NewMap() (*grid.Map, error) {
	return grid.NewMap(&grid.Config{
		Width:   s.Map.Width,
		Height:  s.Map.Height,
		Blocked: s.Map.Blocked,
	})
}

// LoadFile reads a YAML scenario from disk
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to open scenario").
			WithMeta("path", path)
	}
	defer func() { _ = f.Close() }()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scenario").WithMeta("path", path)
	}
	return s, nil
}

// Load decodes and validates a YAML scenario
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed scenario")
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}
	return &s, nil
}
