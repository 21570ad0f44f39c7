package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/cms-admin/internal/pkg/config"
	"github.com/FACorreiaa/cms-admin/internal/pkg/logger"
	"github.com/FACorreiaa/cms-admin/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	level := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = lvl
	}
	if err := logger.Init(level, zap.String("service", "cms-admin")); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := server.InitObservability(cfg.Observability, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv, err := server.New(ctx, cfg, logger.Log)
	if err != nil {
		return err
	}
	defer srv.Close()

	deps, err := srv.Dependencies()
	if err != nil {
		return err
	}
	router, err := server.SetupRouter(deps, logger.Log)
	if err != nil {
		return err
	}
	server.SetupAssets(router)
	srv.SetRouter(router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx, srv.HTTPServer(), "http", logger.Log)
	})
	if cfg.Observability.PprofAddr != "" {
		g.Go(func() error {
			return server.Serve(gctx, server.PprofServer(cfg.Observability.PprofAddr), "pprof", logger.Log)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server error", zap.Error(err))
		return err
	}
	logger.Log.Info("Graceful shutdown complete")
	return nil
}
