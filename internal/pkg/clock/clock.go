// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-realtime/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Simulated is a clock that only moves when the simulation advances a frame, so
// offline runs stamp records with frame time instead of wall time
type Simulated struct {
	mu    sync.Mutex
	now   time.Time
	frame time.Duration
}

// NewSimulated creates a clock starting at start that moves by frame per Advance
func NewSimulated(start time.Time, frame time.Duration) *Simulated {
	return &Simulated{now: start, frame: frame}
}

// Now returns the simulated time
func (c *Simulated) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by one frame
func (c *Simulated) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.frame)
}
