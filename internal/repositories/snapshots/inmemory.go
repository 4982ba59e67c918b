package snapshots

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	clock clock.Clock

	mu    sync.RWMutex
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores the snapshots
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := 0
	for _, snapshot := range input.Snapshots {
		if snapshot == nil || snapshot.ID == "" {
			continue
		}
		r.store[snapshot.ID] = &Record{
			Frame:     input.Frame,
			SavedAt:   now,
			ExpiresAt: now.Add(ttl),
			Snapshot:  snapshot,
		}
		saved++
	}

	return &SaveOutput{Saved: saved}, nil
}

// Get retrieves an entity's snapshot
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.EntityID]
	if !exists || r.clock.Now().After(record.ExpiresAt) {
		return nil, errors.NotFoundf("snapshot for %s not found", input.EntityID)
	}

	return &GetOutput{Record: record}, nil
}

// List returns every live snapshot ordered by entity id
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.clock.Now()
	records := make([]*Record, 0, len(r.store))
	for _, record := range r.store {
		if now.After(record.ExpiresAt) {
			continue
		}
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b *Record) int {
		return strings.Compare(a.Snapshot.ID, b.Snapshot.ID)
	})

	return &ListOutput{Records: records}, nil
}

// Delete removes an entity's snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.EntityID]
	delete(r.store, input.EntityID)

	return &DeleteOutput{Deleted: exists}, nil
}
