package layout

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-mapgen/internal/redis"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

const (
	keyPrefix  = "layout:"
	defaultTTL = time.Hour

	errGridNil         = "grid cannot be nil"
	errEnvironmentNone = "environment cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to one hour
	TTL time.Duration
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
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed layout cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads a cached layout
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key.Environment == "" {
		return nil, errors.InvalidArgument(errEnvironmentNone)
	}

	key := input.Key.String()
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.NotFound("layout not found").WithMeta("key", key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get layout from Redis")
	}

	layout, err := decodeLayout(input.Key, data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		Layout: layout,
	}, nil
}

func decodeLayout(key Key, data []byte) (*Layout, error) {
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal layout %s", key)
	}
	if layout.Grid == nil || layout.Grid.Width() != key.Width || layout.Grid.Height() != key.Height {
		return nil, errors.Internalf("cached layout %s does not match its key", key)
	}
	if err := terrain.CheckEnclosed(layout.Grid); err != nil {
		return nil, errors.Wrapf(err, "cached layout %s", key)
	}
	if err := terrain.CheckConnected(layout.Grid); err != nil {
		return nil, errors.Wrapf(err, "cached layout %s", key)
	}
	return &layout, nil
}

// Save stores a layout with a TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key.Environment == "" {
		return nil, errors.InvalidArgument(errEnvironmentNone)
	}
	if input.Grid == nil {
		return nil, errors.InvalidArgument(errGridNil)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	layout := &Layout{
		Environment: input.Key.Environment,
		Algorithm:   input.Key.Algorithm,
		Seed:        input.Key.Seed,
		Grid:        input.Grid,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	data, err := json.Marshal(layout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal layout")
	}

	if err := r.client.Set(ctx, input.Key.String(), data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store layout in Redis")
	}

	return &SaveOutput{
		Layout: layout,
	}, nil
}

// Delete evicts a cached layout
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key.Environment == "" {
		return nil, errors.InvalidArgument(errEnvironmentNone)
	}

	n, err := r.client.Del(ctx, input.Key.String()).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete layout from Redis")
	}

	return &DeleteOutput{
		Deleted: n > 0,
	}, nil
}

// Sweep scans every cached layout and reports, or deletes, the entries that
// Get would reject
func (r *redisRepository) Sweep(ctx context.Context, input SweepInput) (*SweepOutput, error) {
	out := &SweepOutput{}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw := iter.Val()
		out.Checked++

		data, err := r.client.Get(ctx, raw).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// expired between scan and get
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read layout from Redis")
		}

		key, err := ParseKey(raw)
		if err == nil {
			_, err = decodeLayout(key, data)
		}
		if err != nil {
			slog.Warn("Corrupt cached layout",
				"key", raw,
				"error", err,
			)
			out.Corrupt = append(out.Corrupt, raw)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan layouts in Redis")
	}

	if input.Delete && len(out.Corrupt) > 0 {
		n, err := r.client.Del(ctx, out.Corrupt...).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete corrupt layouts from Redis")
		}
		out.Deleted = int(n)
	}

	return out, nil
}
