package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-realtime/internal/presentation"
	"github.com/KirkDiggler/rpg-realtime/internal/redis"
	"github.com/KirkDiggler/rpg-realtime/internal/repositories/snapshots"
	"github.com/KirkDiggler/rpg-realtime/internal/scenario"
)

// framesPerSecond is the nominal simulation rate
const framesPerSecond = 60

type setupConfig struct {
	catalogPath  string
	scenarioPath string
	redisAddr    string
	snapshotTTL  time.Duration
	idGen        idgen.Generator
	clock        clock.Clock
}

type setup struct {
	service simulation.Service
	player  *scenario.Player
	close   func()
}

// newSetup loads the catalog and scenario and wires a simulation with its optional
// Redis snapshot store
func newSetup(ctx context.Context, cfg *setupConfig) (*setup, error) {
	cat, err := catalog.LoadFile(cfg.catalogPath)
	if err != nil {
		return nil, err
	}

	sc, err := scenario.LoadFile(cfg.scenarioPath)
	if err != nil {
		return nil, err
	}

	arena, err := sc.NewMap()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build map")
	}

	closer := func() {}
	var repo snapshots.Repository
	if cfg.redisAddr != "" {
		client, err := redis.NewClient(cfg.redisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, err
		}
		closer = func() { _ = client.Close() }

		repo, err = snapshots.NewRedisRepository(&snapshots.Config{
			Client: client,
			Clock:  cfg.clock,
		})
		if err != nil {
			closer()
			return nil, errors.Wrap(err, "failed to create snapshot repository")
		}
		slog.Info("Persisting snapshots to redis", "addr", cfg.redisAddr)
	}

	service, err := simulation.NewOrchestrator(&simulation.Config{
		Catalog:     cat,
		Grid:        arena,
		Presenter:   presentation.NewLogPresenter(&presentation.LogConfig{Level: slog.LevelDebug}),
		Roller:      dice.DefaultRoller,
		IDGenerator: cfg.idGen,
		Snapshots:   repo,
		SnapshotTTL: cfg.snapshotTTL,
		Clock:       cfg.clock,
		Variables:   sc.Variables,
	})
	if err != nil {
		closer()
		return nil, errors.Wrap(err, "failed to create simulation")
	}

	player, err := scenario.NewPlayer(&scenario.PlayerConfig{
		Service:  service,
		Scenario: sc,
	})
	if err != nil {
		closer()
		return nil, errors.Wrap(err, "failed to create scenario player")
	}

	if err := player.Setup(ctx); err != nil {
		closer()
		return nil, err
	}

	return &setup{service: service, player: player, close: closer}, nil
}
