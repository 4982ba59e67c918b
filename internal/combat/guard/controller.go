// Package guard implements the block and parry stance of a battle entity.
package guard

import (
	"math"

	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// State is the stance the controller is in
type State int

// States
const (
	StateIdle State = iota
	StateGuarding
)

// StartInput carries what is needed to enter the stance
type StartInput struct {
	SkillID int
	Guard   *entities.Guard
	// Usable is false when the guard skill cannot currently be paid for or is restricted
	Usable  bool
	Evasion float64
}

// Mitigation describes what happened to an incoming hit
type Mitigation struct {
	Damage  int
	Guarded bool
	Parried bool
	// SuppressStates is true when the hit must not apply its status effects
	SuppressStates  bool
	CounterSkillIDs []int
	TPBonus         int
}

// Controller is the per-entity guard state machine: idle, guarding, and guarding
// with an open parry window.
type Controller struct {
	state        State
	skillID      int
	flat         int
	percent      int
	counterGuard []int
	counterParry []int
	parryTPBonus int
	parryFrames  int
}

// NewController creates an idle controller
func NewController() *Controller {
	return &Controller{}
}

// Start enters the guard stance. It reports false when already guarding, when the
// skill has no guard data, or when the skill is not usable.
func (c *Controller) Start(input *StartInput) bool {
	if input == nil || input.Guard == nil || !input.Usable || c.state == StateGuarding {
		return false
	}

	g := input.Guard
	c.state = StateGuarding
	c.skillID = input.SkillID
	c.flat = g.Flat
	c.percent = g.Percent
	c.counterGuard = append([]int(nil), g.CounterGuard...)
	c.counterParry = append([]int(nil), g.CounterParry...)
	c.parryTPBonus = g.ParryTPBonus
	c.parryFrames = 0

	if g.CanParry() {
		base := g.ParryDuration
		c.parryFrames = base + int(math.Floor(input.Evasion*float64(base)))
	}

	return true
}

// End leaves the stance and zeroes all reduction and parry state
func (c *Controller) End() {
	*c = Controller{}
}

// Update counts the parry window down by one frame
func (c *Controller) Update() {
	if c.parryFrames > 0 {
		c.parryFrames--
	}
}

// IsGuarding reports whether the stance is held
func (c *Controller) IsGuarding() bool {
	return c.state == StateGuarding
}

// IsParrying reports whether the parry window is open
func (c *Controller) IsParrying() bool {
	return c.state == StateGuarding && c.parryFrames > 0
}

// ParryFrames returns the frames left in the parry window
func (c *Controller) ParryFrames() int {
	return c.parryFrames
}

// SkillID returns the guard skill in use, zero when idle
func (c *Controller) SkillID() int {
	return c.skillID
}

// Reductions returns the flat and percent reductions currently applied
func (c *Controller) Reductions() (flat, percent int) {
	return c.flat, c.percent
}

// Mitigate applies the stance to an incoming hit. Healing passes through untouched.
// Inside the parry window the hit is negated, even a status-only one, and the window
// closes; otherwise the percent reduction is applied before the
// flat one and the result never drops below zero.
func (c *Controller) Mitigate(damage int) *Mitigation {
	result := &Mitigation{Damage: damage}
	if c.state != StateGuarding || damage < 0 {
		return result
	}

	if c.parryFrames > 0 {
		c.parryFrames = 0
		result.Damage = 0
		result.Parried = true
		result.SuppressStates = true
		result.CounterSkillIDs = append([]int(nil), c.counterParry...)
		result.TPBonus = c.parryTPBonus
		return result
	}

	reduced := damage - int(math.Floor(float64(damage)*float64(c.percent)/100))
	reduced = max(reduced, 0) - c.flat
	result.Damage = max(reduced, 0)
	result.Guarded = true
	result.CounterSkillIDs = append([]int(nil), c.counterGuard...)
	return result
}
