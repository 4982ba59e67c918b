package grid

import "github.com/KirkDiggler/rpg-realtime/internal/entities"

// Body is the position and movement state of one entity. A step moves the body to the
// next tile at once; the body reports moving until the next map update settles it.
type Body struct {
	grid       *Map
	position   entities.Point
	facing     entities.Direction
	moving     bool
	speedBonus int
	through    bool
}

// Position returns the current tile
func (b *Body) Position() entities.Point { return b.position }

// Facing returns the direction the body looks at
func (b *Body) Facing() entities.Direction { return b.facing }

// SetFacing turns the body. Invalid directions are ignored.
func (b *Body) SetFacing(d entities.Direction) {
	if d.Valid() {
		b.facing = d
	}
}

// IsMoving reports whether a step is still settling
func (b *Body) IsMoving() bool { return b.moving }

// Step moves one tile in the given direction without changing facing. Steps are
// refused while moving or when the destination is blocked by terrain or another body;
// bodies with walk-through enabled ignore other bodies.
func (b *Body) Step(d entities.Direction) bool {
	if b.moving || !d.Valid() {
		return false
	}

	next := b.position.Add(d)
	if !b.grid.IsPassable(next) {
		return false
	}
	if !b.through && b.grid.occupied(next, b) {
		return false
	}

	b.position = next
	b.moving = true
	return true
}

// SpeedBonus returns the current movement speed modifier
func (b *Body) SpeedBonus() int { return b.speedBonus }

// SetSpeedBonus changes the movement speed modifier
func (b *Body) SetSpeedBonus(bonus int) { b.speedBonus = bonus }

// Through reports whether walk-through is enabled
func (b *Body) Through() bool { return b.through }

// SetThrough toggles walk-through
func (b *Body) SetThrough(through bool) { b.through = through }

// Update settles a pending step
func (b *Body) Update() {
	b.moving = false
}
