// Package grid provides the tile map the simulation moves bodies on.
package grid

import (
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

// Map is a rectangular tile map with impassable tiles
type Map struct {
	width   int
	height  int
	blocked map[entities.Point]bool
	bodies  []*Body
}

// Config holds the map dimensions and walls
type Config struct {
	Width   int
	Height  int
	Blocked []entities.Point
}

// Validate ensures the dimensions are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if c.Height <= 0 {
		vb.InvalidField("Height", "must be positive")
	}

	return vb.Build()
}

// NewMap creates a map
func NewMap(cfg *Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	m := &Map{
		width:   cfg.Width,
		height:  cfg.Height,
		blocked: make(map[entities.Point]bool, len(cfg.Blocked)),
	}
	for _, p := range cfg.Blocked {
		m.blocked[p] = true
	}
	return m, nil
}

// Width returns the number of columns
func (m *Map) Width() int { return m.width }

// Height returns the number of rows
func (m *Map) Height() int { return m.height }

// InBounds reports whether p lies on the map
func (m *Map) InBounds(p entities.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// IsPassable reports whether the terrain at p can be entered
func (m *Map) IsPassable(p entities.Point) bool {
	return m.InBounds(p) && !m.blocked[p]
}

// Distance returns the Euclidean tile distance
func (m *Map) Distance(a, b entities.Point) float64 {
	return a.DistanceTo(b)
}

// DirectionTo returns the eight-way direction from one tile towards another
func (m *Map) DirectionTo(from, to entities.Point) entities.Direction {
	return entities.DirectionTowards(from, to)
}

// AddBody places a new body on the map
func (m *Map) AddBody(position entities.Point, facing entities.Direction) (*Body, error) {
	if !m.IsPassable(position) {
		return nil, errors.InvalidArgument("position is not passable").
			WithMeta("x", position.X).
			WithMeta("y", position.Y)
	}
	if !facing.Valid() {
		facing = entities.DirDown
	}

	b := &Body{grid: m, position: position, facing: facing}
	m.bodies = append(m.bodies, b)
	return b, nil
}

// RemoveBody takes a body off the map
func (m *Map) RemoveBody(b *Body) {
	for i, other := range m.bodies {
		if other == b {
			m.bodies = append(m.bodies[:i], m.bodies[i+1:]...)
			return
		}
	}
}

// Update settles every body that moved this frame
func (m *Map) Update() {
	for _, b := range m.bodies {
		b.Update()
	}
}

func (m *Map) occupied(p entities.Point, except *Body) bool {
	for _, b := range m.bodies {
		if b != except && !b.through && b.position == p {
			return true
		}
	}
	return false
}
