package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-realtime/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-realtime/internal/scenario"
)

// simulationServiceName is the health check name reporting the tick loop
const simulationServiceName = "rpgrealtime.Simulation"

var (
	grpcPort      int
	serveTPS      int
	serveCatalog  string
	serveScenario string
	serveRedis    string
	serveTTL      time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation continuously",
	Long:  `Tick a scenario in real time and expose gRPC health checks while it runs. Snapshots go to Redis when configured.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC health server port")
	serveCmd.Flags().IntVar(&serveTPS, "tps", framesPerSecond, "frames simulated per second")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "configs/catalog.yaml", "catalog file")
	serveCmd.Flags().StringVar(&serveScenario, "scenario", "configs/scenario.yaml", "scenario file")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "redis address for snapshots, disabled when empty")
	serveCmd.Flags().DurationVar(&serveTTL, "snapshot-ttl", 5*time.Minute, "how long snapshots outlive their last tick")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveTPS <= 0 {
		return errors.InvalidArgument("tps must be positive")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	s, err := newSetup(ctx, &setupConfig{
		catalogPath:  serveCatalog,
		scenarioPath: serveScenario,
		redisAddr:    serveRedis,
		snapshotTTL:  serveTTL,
		idGen:        idgen.NewUUID("entity"),
		clock:        clock.New(),
	})
	if err != nil {
		return err
	}
	defer s.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", grpcPort)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(slog.Default())),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(slog.Default())),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(simulationServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	go func() {
		err := tickLoop(ctx, s.player, time.Second/time.Duration(serveTPS))
		healthServer.SetServingStatus(simulationServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		if err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}

// tickLoop plays the scenario one frame per interval until ctx is done
func tickLoop(ctx context.Context, player *scenario.Player, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			out, err := player.Run(ctx, 1)
			if err != nil {
				if errors.IsCanceled(err) {
					return nil
				}
				return errors.Wrap(err, "tick failed")
			}
			for _, e := range out.Errors {
				slog.Warn("Simulation error", "frame", out.Frame, "error", e)
			}
			for _, id := range out.Destroyed {
				slog.Info("Entity removed", "frame", out.Frame, "entity_id", id)
			}
		}
	}
}

func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic in gRPC handler", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}
