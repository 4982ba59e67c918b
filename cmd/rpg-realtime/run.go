package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
)

var (
	runCatalog  string
	runScenario string
	runTicks    int
	runRedis    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario offline",
	Long:  `Run a scenario for a fixed number of frames as fast as possible and print the final state of every entity as JSON.`,
	RunE:  runScenarioCmd,
}

func init() {
	runCmd.Flags().StringVar(&runCatalog, "catalog", "configs/catalog.yaml", "catalog file")
	runCmd.Flags().StringVar(&runScenario, "scenario", "configs/scenario.yaml", "scenario file")
	runCmd.Flags().IntVar(&runTicks, "ticks", 600, "frames to simulate")
	runCmd.Flags().StringVar(&runRedis, "redis", "", "redis address for snapshots, disabled when empty")
}

func runScenarioCmd(cmd *cobra.Command, _ []string) error {
	if runTicks <= 0 {
		return errors.InvalidArgument("ticks must be positive")
	}
	ctx := cmd.Context()

	s, err := newSetup(ctx, &setupConfig{
		catalogPath:  runCatalog,
		scenarioPath: runScenario,
		redisAddr:    runRedis,
		idGen:        idgen.NewSequential("entity"),
		clock:        clock.NewSimulated(time.Unix(0, 0).UTC(), time.Second/framesPerSecond),
	})
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.player.Run(ctx, runTicks)
	if err != nil {
		return err
	}

	slog.Info("Scenario finished",
		"frames", result.Frame,
		"destroyed", len(result.Destroyed),
		"errors", len(result.Errors),
	)
	for _, e := range result.Errors {
		slog.Warn("Simulation error", "error", e)
	}

	list, err := s.service.ListEntities(ctx, &simulation.ListEntitiesInput{})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(map[string]any{
		"frame":     result.Frame,
		"destroyed": result.Destroyed,
		"entities":  list.Entities,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
