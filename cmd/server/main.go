package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/authdash/dashboard-api/internal/api"
	"github.com/authdash/dashboard-api/internal/core/ports"
	"github.com/authdash/dashboard-api/internal/infrastructure/config"
	"github.com/authdash/dashboard-api/internal/infrastructure/dashboard"
	mongodb "github.com/authdash/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/authdash/dashboard-api/internal/infrastructure/db/redis"
	"github.com/authdash/dashboard-api/internal/pkg/token"
	"github.com/authdash/dashboard-api/pkg/logger"

	_ "github.com/authdash/dashboard-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           Auth Dashboard API
// @version         1.0
// @description     Minimal authenticated REST backend: registration, login, and dashboard data.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options depend on config, so bootstrap with defaults just
		// to report the startup failure.
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer func() { _ = rdb.Close() }()

	var provider ports.DashboardProvider
	switch cfg.Dashboard.Source {
	case "redis":
		rp := dashboard.NewRedisProvider(rdb)
		if err := rp.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("dashboard seed failed")
		}
		provider = rp
	default:
		provider = dashboard.NewStaticProvider()
	}

	e := api.NewRouter(api.Deps{
		Users:      users,
		Dashboard:  provider,
		Tokens:     token.NewService(cfg.JWTSecret),
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
		CORSOrigin: cfg.CORSOrigin,
		Mongo:      db,
		Redis:      rdb,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
