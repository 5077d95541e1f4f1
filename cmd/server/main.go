package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/cache"
	"github.com/oggyb/nearby/internal/config"
	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/notify"
	"github.com/oggyb/nearby/internal/realtime"
	"github.com/oggyb/nearby/internal/reconciler"
	"github.com/oggyb/nearby/internal/server"
	"github.com/oggyb/nearby/internal/service/boost"
	"github.com/oggyb/nearby/internal/service/discovery"
	"github.com/oggyb/nearby/internal/service/geofence"
	"github.com/oggyb/nearby/internal/service/location"
	"github.com/oggyb/nearby/internal/service/match"
	"github.com/oggyb/nearby/internal/service/wave"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB (schema is migrated on open)
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registry := realtime.NewRegistry()
	auth := realtime.NewAuthenticator(cfg.Auth)
	dispatcher := notify.NewDispatcher(database, redisCache, registry, cfg, log)

	appCtx := app.New(database, redisCache, log,
		app.WithConfig(cfg),
		app.WithNotifier(dispatcher),
	)

	// one tracker so that per-user geofence locks are shared by every caller
	tracker := geofence.NewTracker(appCtx)

	grpcServer := server.NewGRPCServer(log,
		location.NewRegistrar(appCtx, tracker),
		discovery.NewRegistrar(appCtx),
		match.NewRegistrar(appCtx),
		boost.NewRegistrar(appCtx),
		wave.NewRegistrar(appCtx),
	)
	router := server.NewRouter(appCtx, registry, auth)

	dispatcher.Start()
	rec := reconciler.New(appCtx)
	rec.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.ListenAndServe(gctx, cfg.GRPCAddr())
	})
	g.Go(func() error {
		return server.StartHTTPServer(gctx, cfg.HTTPAddr(), router, log)
	})
	g.Go(func() error {
		dispatcher.Run(gctx)
		return nil
	})

	err = g.Wait()

	log.Info("shutting down background workers")
	rec.Stop()
	dispatcher.Stop()

	if err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
