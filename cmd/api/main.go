package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nulln0ne/suilipse/internal/config"
	"github.com/nulln0ne/suilipse/internal/handler"
	"github.com/nulln0ne/suilipse/internal/logging"
	"github.com/nulln0ne/suilipse/internal/metrics"
	"github.com/nulln0ne/suilipse/internal/service"
	"github.com/nulln0ne/suilipse/internal/sui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	suiClient, err := sui.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Sui fullnode: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	poolService := service.NewPoolService(logger, suiClient,
		service.WithCache(cfg.PoolCacheSize, cfg.PoolCacheTTL),
		service.WithMetrics(metrics.New(reg)),
	)
	poolHandler := handler.NewPoolHandler(logger, poolService)
	poolHandler.Register(app)
	app.Get("/metrics", handler.Metrics(reg))

	logger.Info("starting estimator", "addr", cfg.Addr, "rpc", cfg.RPCEndpoint, "cache_ttl", cfg.PoolCacheTTL)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			suiClient.Close()
			return fmt.Errorf("server error: %w", err)
		}
		suiClient.Close()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}

	suiClient.Close()
	return nil
}
