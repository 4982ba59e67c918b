package simulation

import (
	"time"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/cooldown"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// SpawnInput defines the request for placing an entity
type SpawnInput struct {
	// EntityID is generated when empty
	EntityID   string
	TemplateID int
	Position   entities.Point
	Facing     entities.Direction
	// LeaderID makes the new entity follow an existing one
	LeaderID string
}

// SpawnOutput defines the response for placing an entity
type SpawnOutput struct {
	Entity *battler.Snapshot
}

// DespawnInput defines the request for removing an entity
type DespawnInput struct {
	EntityID string
}

// DespawnOutput defines the response for removing an entity
type DespawnOutput struct{}

// TickInput defines the request for advancing the simulation
type TickInput struct {
	// Frames defaults to one
	Frames int
}

// TickOutput defines the response for advancing the simulation
type TickOutput struct {
	// Frame is the number of frames simulated so far
	Frame int64
	// Destroyed lists entities removed during the tick
	Destroyed []string
	// Errors collects per-entity update failures. They never stop a tick.
	Errors []error
}

// GetEntityInput defines the request for reading one entity
type GetEntityInput struct {
	EntityID string
}

// GetEntityOutput defines the response for reading one entity
type GetEntityOutput struct {
	Entity *battler.Snapshot
}

// ListEntitiesInput defines the request for reading every entity
type ListEntitiesInput struct {
	// Team filters by team when set
	Team entities.Team
}

// ListEntitiesOutput defines the response for reading every entity, in update order
type ListEntitiesOutput struct {
	Entities []*battler.Snapshot
}

// EngageInput defines the request for forcing an engagement
type EngageInput struct {
	EntityID string
	TargetID string
}

// EngageOutput defines the response for forcing an engagement
type EngageOutput struct {
	Engaged bool
}

// DisengageInput defines the request for dropping combat
type DisengageInput struct {
	EntityID string
}

// DisengageOutput defines the response for dropping combat
type DisengageOutput struct {
	Disengaged bool
}

// UseToolInput defines the request for using an item
type UseToolInput struct {
	EntityID string
	ItemID   int
}

// UseToolOutput defines the response for using an item
type UseToolOutput struct {
	Used bool
}

// ExecuteSkillInput defines the request for using an equipped slot
type ExecuteSkillInput struct {
	EntityID string
	Key      cooldown.Key
	// AllyTargetID selects who ally-scoped skills support
	AllyTargetID string
}

// ExecuteSkillOutput defines the response for using an equipped slot
type ExecuteSkillOutput struct {
	Executed bool
}

// SetBusyInput defines the request for toggling the busy flag
type SetBusyInput struct {
	Busy bool
}

// SetBusyOutput defines the response for toggling the busy flag
type SetBusyOutput struct{}

// snapshotTTL is how long a persisted snapshot outlives its last tick
const snapshotTTL = 5 * time.Minute
