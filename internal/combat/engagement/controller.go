// Package engagement decides when a battler should start or stop fighting an opponent.
package engagement

import (
	"github.com/KirkDiggler/rpg-realtime/internal/combat/timer"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// RecheckInterval is the number of frames between engagement checks
const RecheckInterval = 15

// Controller throttles and evaluates engagement for one battler
type Controller struct {
	timer *timer.Timer
}

// NewController creates a controller. The offset staggers checks so that battlers
// spawned together do not all evaluate on the same frame.
func NewController(offset int) *Controller {
	return &Controller{
		timer: timer.NewWithOffset(RecheckInterval, ((offset%RecheckInterval)+RecheckInterval)%RecheckInterval),
	}
}

// Update advances the throttle by one frame
func (c *Controller) Update() {
	c.timer.Update()
}

// Ready reports whether a check is due
func (c *Controller) Ready() bool {
	return c.timer.IsComplete()
}

// Reset restarts the throttle after a check
func (c *Controller) Reset() {
	c.timer.Reset()
}

// Candidate is an opposing battler that could be engaged
type Candidate struct {
	ID       string
	Position entities.Point
	// Vision scales how far away the candidate can be noticed. Zero means unseeable.
	Vision float64
}

// Ranges are the detection distances of the evaluating battler
type Ranges struct {
	Sight             float64
	Pursuit           float64
	AlertSightBonus   float64
	AlertPursuitBonus float64
}

// EvaluateInput is the state an engagement check works from
type EvaluateInput struct {
	Position entities.Point
	Ranges   Ranges
	Alerted  bool
	Engaged  bool

	// Target is the current target while engaged. Nil means it no longer exists.
	Target *Candidate

	// Candidates are the living opponents considered when not engaged
	Candidates []Candidate
}

// Decision is the outcome of an engagement check
type Decision struct {
	Engage    bool
	Disengage bool
	TargetID  string
	Distance  float64
}

// SightRange returns the engage distance against a candidate
func (r Ranges) SightRange(alerted bool, vision float64) float64 {
	sight := r.Sight
	if alerted {
		sight += r.AlertSightBonus
	}
	return sight * vision
}

// PursuitRange returns the distance beyond which an engaged battler gives up
func (r Ranges) PursuitRange(alerted bool, vision float64) float64 {
	pursuit := r.Pursuit
	if alerted {
		pursuit += r.AlertPursuitBonus
	}
	return pursuit * vision
}

// Evaluate decides whether to engage the nearest visible opponent, or to disengage
// from a target that has escaped pursuit range
func (c *Controller) Evaluate(input *EvaluateInput) *Decision {
	if input.Engaged {
		return evaluatePursuit(input)
	}

	decision := &Decision{}
	for _, candidate := range input.Candidates {
		if candidate.Vision <= 0 {
			continue
		}

		distance := input.Position.DistanceTo(candidate.Position)
		if distance > input.Ranges.SightRange(input.Alerted, candidate.Vision) {
			continue
		}
		if decision.Engage && distance >= decision.Distance {
			continue
		}

		decision.Engage = true
		decision.TargetID = candidate.ID
		decision.Distance = distance
	}

	return decision
}

func evaluatePursuit(input *EvaluateInput) *Decision {
	if input.Target == nil {
		return &Decision{Disengage: true}
	}

	distance := input.Position.DistanceTo(input.Target.Position)
	decision := &Decision{TargetID: input.Target.ID, Distance: distance}
	if distance > input.Ranges.PursuitRange(input.Alerted, input.Target.Vision) {
		decision.Disengage = true
	}

	return decision
}
