package main

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/level"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-mapgen/internal/redis"
	"github.com/KirkDiggler/rpg-mapgen/internal/repositories/layout"
)

// serviceOptions configures the level service built for a command
type serviceOptions struct {
	// RedisEndpoint enables the layout cache when set
	RedisEndpoint string
	CacheTTL      time.Duration
	// StableIDs numbers entities sequentially so seeded output is diffable
	StableIDs bool
}

func newLevelService(ctx context.Context, opts serviceOptions) (level.Service, func(), error) {
	var ids idgen.Generator = idgen.NewUUID("ent")
	if opts.StableIDs {
		ids = idgen.NewSequential("ent")
	}

	cfg := &level.Config{
		IDGenerator: ids,
		EventBus:    events.NewBus(),
		Clock:       clock.New(),
	}
	cleanup := func() {}

	if opts.RedisEndpoint != "" {
		client, err := redis.NewClient(opts.RedisEndpoint, &redis.Options{
			DialTimeout: 2 * time.Second,
			ReadTimeout: time.Second,
			MaxRetries:  1,
		})
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis endpoint")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable")
		}

		repo, err := layout.NewRedisRepository(&layout.Config{
			Client: client,
			Clock:  cfg.Clock,
			TTL:    opts.CacheTTL,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		cfg.LayoutRepo = repo
		cleanup = func() { _ = client.Close() }
	}

	svc, err := level.NewOrchestrator(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
