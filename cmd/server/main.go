// Command server runs the fitness tracker API.
//
// @title        Fitness Tracker API
// @version      1.0
// @description  REST API for logging and tracking workout entries.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fittrack/fitness-tracker/internal/api"
	"github.com/fittrack/fitness-tracker/internal/core/service"
	"github.com/fittrack/fitness-tracker/internal/infrastructure/config"
	mongodb "github.com/fittrack/fitness-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/fitness-tracker/internal/infrastructure/db/redis"
	"github.com/fittrack/fitness-tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("client_url", cfg.ClientURL).
		Msg("starting fitness tracker API")

	// --- Store lifecycle: open here, closed on shutdown ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongodb.NewEntryRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create entry indexes")
	}

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.Options{
		Mongo:      db,
		Redis:      rdb,
		Tokens:     tokens,
		ClientURL:  cfg.ClientURL,
		Production: cfg.IsProduction(),
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("shutdown complete")
}
