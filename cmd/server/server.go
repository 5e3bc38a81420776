package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/handlers/statistics/v1alpha1"
	characterorch "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/character"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/clock"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/idgen"
	characterrepo "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/character"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the statistics gRPC server backed by Redis character storage.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides server.port)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}

	redisClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	catalogs, err := loadCatalogs(ctx, cfg.Catalog)
	if err != nil {
		return err
	}

	realClock := clock.New()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	diceSessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: redisClient,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice session repository: %w", err)
	}

	characterService, err := characterorch.New(&characterorch.Config{
		CharacterRepo: characterRepo,
		Engine:        engine.New(),
		Catalogs:      catalogs,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: diceSessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		SessionTTL:      cfg.Dice.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
		DiceService:      diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create statistics handler: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "panic in gRPC handler", "panic", p)
		return errors.ToGRPCError(errors.Internal("internal error"))
	})
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterStatisticsServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting", "addr", cfg.Server.Addr())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// logFunc adapts go-grpc-middleware logging onto slog
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
