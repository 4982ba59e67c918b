// Package timer provides the frame-count countdown used by every combat subsystem.
package timer

// Timer counts frames up to a fixed maximum. It is complete once the count reaches
// the maximum and stays complete until reset.
type Timer struct {
	frames int
	max    int
}

// New creates a timer that completes after duration frames
func New(duration int) *Timer {
	if duration < 0 {
		duration = 0
	}
	return &Timer{max: duration}
}

// NewWithOffset creates a timer that starts partway through its countdown
func NewWithOffset(duration, offset int) *Timer {
	t := New(duration)
	t.frames = min(max(offset, 0), t.max)
	return t
}

// Update advances the timer by one frame
func (t *Timer) Update() {
	if t.frames < t.max {
		t.frames++
	}
}

// IsComplete reports whether the countdown has finished
func (t *Timer) IsComplete() bool {
	return t.frames >= t.max
}

// Reset restarts the countdown from zero
func (t *Timer) Reset() {
	t.frames = 0
}

// SetMax changes the duration and restarts the countdown
func (t *Timer) SetMax(duration int) {
	if duration < 0 {
		duration = 0
	}
	t.max = duration
	t.frames = 0
}

// Complete jumps straight to the end of the countdown
func (t *Timer) Complete() {
	t.frames = t.max
}

// Frames returns the number of frames counted so far
func (t *Timer) Frames() int {
	return t.frames
}

// Max returns the countdown duration
func (t *Timer) Max() int {
	return t.max
}

// Remaining returns the frames left before completion
func (t *Timer) Remaining() int {
	return t.max - t.frames
}
