package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/dealerhub/dealer-portal/internal/api"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/config"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/db/mongo"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/db/redis"
	"github.com/dealerhub/dealer-portal/internal/infrastructure/queue"
	"github.com/dealerhub/dealer-portal/pkg/logger"
)

const shutdownGrace = 10 * time.Second

// @title           Dealer Portal
// @version         1.0
// @description     Session-aware gateway for the dealership management backend.
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().
		Str("env", cfg.Env).
		Str("session_backend", cfg.SessionBackend).
		Msg("starting dealer portal")

	if cfg.SessionSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = "dev-only-secret"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rdb *goredis.Client
	if cfg.SessionBackend != "memory" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection")
		}
		defer client.Close()
		rdb = client
	}

	var db *gomongo.Database
	var audit ports.AuditSink
	if cfg.Mongo.URI != "" {
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		db = database

		dispatcher := queue.NewDispatcher(cfg.AuditWorkers, mongo.NewAuditRepository(db), log)
		dispatcher.Start(ctx)
		audit = dispatcher
	}

	e := api.NewRouter(cfg, db, rdb, audit, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
