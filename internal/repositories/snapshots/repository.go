// Package snapshots stores the latest per-entity snapshot of a running simulation so
// presentation layers can read state without touching the simulation itself.
package snapshots

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotsmock github.com/KirkDiggler/rpg-realtime/internal/repositories/snapshots Repository

// Record is a stored snapshot
type Record struct {
	// Frame is the simulation frame the snapshot was taken on
	Frame     int64             `json:"frame"`
	SavedAt   time.Time         `json:"saved_at"`
	ExpiresAt time.Time         `json:"expires_at"`
	Snapshot  *battler.Snapshot `json:"snapshot"`
}

// SaveInput contains the snapshots taken on one frame
type SaveInput struct {
	Frame     int64
	Snapshots []*battler.Snapshot
	// TTL defaults to five minutes
	TTL time.Duration
}

// SaveOutput contains the result of saving snapshots
type SaveOutput struct {
	Saved int
}

// GetInput identifies the entity to read
type GetInput struct {
	EntityID string
}

// GetOutput contains the stored record
type GetOutput struct {
	Record *Record
}

// ListInput is reserved for filtering
type ListInput struct{}

// ListOutput contains every live record, ordered by entity id
type ListOutput struct {
	Records []*Record
}

// DeleteInput identifies the entity to forget
type DeleteInput struct {
	EntityID string
}

// DeleteOutput contains the result of a delete
type DeleteOutput struct {
	Deleted bool
}

// Repository defines snapshot storage operations
type Repository interface {
	// Save replaces the stored snapshot of every entity in the input
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get returns the latest snapshot of one entity
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns the latest snapshot of every entity
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes an entity's snapshot
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

const (
	defaultTTL = 5 * time.Minute

	errInputNil      = "input is required"
	errEntityIDEmpty = "entity ID cannot be empty"
)
