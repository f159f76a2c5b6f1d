package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
	"github.com/Esderin/Standard-of-Iron/internal/orchestrators/navigation"
	"github.com/Esderin/Standard-of-Iron/internal/pathfinding"
	"github.com/Esderin/Standard-of-Iron/internal/pkg/clock"
	"github.com/Esderin/Standard-of-Iron/internal/pkg/idgen"
	"github.com/Esderin/Standard-of-Iron/internal/redis"
	"github.com/Esderin/Standard-of-Iron/internal/repositories/levels"
)

var (
	grpcPort          int
	metricsPort       int
	redisAddr         string
	maxPendingResults int
	maxLevelCells     int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the pathing gRPC server backed by Redis level storage.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 9090, "Prometheus metrics port, 0 disables")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", envOrDefault("REDIS_ADDR", "localhost:6379"), "Redis address")
	serverCmd.Flags().IntVar(&maxPendingResults, "max-pending-results", 0, "Cap on unfetched path results per level, 0 is unbounded")
	serverCmd.Flags().IntVar(&maxLevelCells, "max-level-cells", pathfinding.DefaultMaxCells, "Largest width*height a level may have")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	err = redis.Ping(pingCtx, redisClient)
	pingCancel()
	if err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", redisAddr, err)
	}

	levelRepo, err := levels.NewRedis(&levels.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create level repository: %w", err)
	}

	navigationService, err := navigation.NewOrchestrator(&navigation.Config{
		LevelRepo:         levelRepo,
		IDGenerator:       idgen.NewUUID("lvl"),
		RequestIDs:        idgen.NewCounter(),
		Clock:             clock.New(),
		MaxPendingResults: maxPendingResults,
		MaxLevelCells:     maxLevelCells,
		Logger:            slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("failed to create navigation orchestrator: %w", err)
	}
	defer func() {
		if err := navigationService.Close(); err != nil {
			slog.Error("Failed to close navigation service", "error", err)
		}
	}()

	pathingHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Service: navigationService,
	})
	if err != nil {
		return fmt.Errorf("failed to create pathing handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterPathingServiceServer(srv, pathingHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)

	var metricsServer *http.Server
	if metricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", metricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("Metrics server starting", "port", metricsPort)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve metrics: %w", err)
			}
		}()
	}

	go func() {
		slog.Info("gRPC server starting", "port", grpcPort, "redis_addr", redisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}

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

// logFunc adapts the interceptor logger to slog. The interceptor levels share
// slog's numeric values.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
