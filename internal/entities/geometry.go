// Package entities provides the static combat data structures consumed by the
// real-time simulation: skills, items, states, battler templates and grid geometry.
package entities

import "math"

// Point is a tile coordinate on the grid. Y grows downward.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Add returns the point one step away in the given direction
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean tile distance between two points
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// Direction follows numpad layout: 2 down, 4 left, 6 right, 8 up, diagonals in the corners.
type Direction int

// Directions
const (
	DirNone      Direction = 0
	DirDownLeft  Direction = 1
	DirDown      Direction = 2
	DirDownRight Direction = 3
	DirLeft      Direction = 4
	DirRight     Direction = 6
	DirUpLeft    Direction = 7
	DirUp        Direction = 8
	DirUpRight   Direction = 9
)

// compass lists directions clockwise starting at up, one entry per 45 degrees
var compass = [8]Direction{DirUp, DirUpRight, DirRight, DirDownRight, DirDown, DirDownLeft, DirLeft, DirUpLeft}

// Valid reports whether d is one of the eight movement directions
func (d Direction) Valid() bool {
	return d >= DirDownLeft && d <= DirUpRight && d != 5
}

// Delta returns the tile offset of one step in this direction
func (d Direction) Delta() (int, int) {
	switch d {
	case DirDownLeft:
		return -1, 1
	case DirDown:
		return 0, 1
	case DirDownRight:
		return 1, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUp:
		return 0, -1
	case DirUpRight:
		return 1, -1
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		return DirNone
	}
	return 10 - d
}

// Rotate turns the direction clockwise by steps of 45 degrees. Negative steps turn
// counter-clockwise.
func (d Direction) Rotate(steps int) Direction {
	idx := d.compassIndex()
	if idx < 0 {
		return DirNone
	}
	n := ((idx+steps)%len(compass) + len(compass)) % len(compass)
	return compass[n]
}

// IsDiagonal reports whether the direction moves on both axes
func (d Direction) IsDiagonal() bool {
	return d == DirDownLeft || d == DirDownRight || d == DirUpLeft || d == DirUpRight
}

func (d Direction) compassIndex() int {
	for i, c := range compass {
		if c == d {
			return i
		}
	}
	return -1
}

// DirectionTowards returns the eight-way direction that best points from one tile to another.
// Equal points yield DirNone.
func DirectionTowards(from, to Point) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return DirNone
	}

	// angle measured clockwise from up, in 45 degree sectors
	angle := math.Atan2(float64(dx), float64(-dy))
	sector := int(math.Round(angle / (math.Pi / 4)))
	return DirUp.Rotate(sector)
}
