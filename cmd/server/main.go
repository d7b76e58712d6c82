package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bistroboss/bistro-api/internal/api"
	"github.com/bistroboss/bistro-api/internal/infrastructure/config"
	mongodb "github.com/bistroboss/bistro-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/bistro-api/internal/infrastructure/db/redis"
	"github.com/bistroboss/bistro-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.ConnectionURI(),
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
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}
	if err := mongodb.NewCartRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure cart indexes")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.Stripe.SecretKey)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting bistro api")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("stopped")
}
