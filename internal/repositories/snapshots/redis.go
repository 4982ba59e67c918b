package snapshots

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-realtime/internal/redis"
)

const (
	// Key pattern: snapshot:{entity_id}
	snapshotKeyPrefix = "snapshot:"
	indexKey          = "snapshot_index"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save writes every snapshot and its index entry in one transaction
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if len(input.Snapshots) == 0 {
		return &SaveOutput{}, nil
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := r.clock.Now()

	pipe := r.client.TxPipeline()
	saved := 0
	for _, snapshot := range input.Snapshots {
		if snapshot == nil || snapshot.ID == "" {
			continue
		}

		data, err := json.Marshal(&Record{
			Frame:     input.Frame,
			SavedAt:   now,
			ExpiresAt: now.Add(ttl),
			Snapshot:  snapshot,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal snapshot %s", snapshot.ID)
		}

		pipe.Set(ctx, snapshotKeyPrefix+snapshot.ID, data, ttl)
		pipe.SAdd(ctx, indexKey, snapshot.ID)
		saved++
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store snapshots in Redis")
	}

	return &SaveOutput{Saved: saved}, nil
}

// Get reads one entity's snapshot
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	data, err := r.client.Get(ctx, snapshotKeyPrefix+input.EntityID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot for %s not found", input.EntityID)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot")
	}

	return &GetOutput{Record: &record}, nil
}

// List reads every indexed snapshot. Index entries whose snapshot expired are dropped.
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot index")
	}
	slices.Sort(ids)

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, &GetInput{EntityID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.DebugContext(ctx, "Dropping expired snapshot from index",
					"entity_id", id,
				)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		records = append(records, output.Record)
	}

	return &ListOutput{Records: records}, nil
}

// Delete removes an entity's snapshot and index entry
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, snapshotKeyPrefix+input.EntityID)
	pipe.SRem(ctx, indexKey, input.EntityID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot from Redis")
	}

	return &DeleteOutput{Deleted: del.Val() > 0}, nil
}
