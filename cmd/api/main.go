package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghub/bloghub-api/internal/api"
	"github.com/bloghub/bloghub-api/internal/api/handler"
	"github.com/bloghub/bloghub-api/internal/core/service"
	"github.com/bloghub/bloghub-api/internal/infrastructure/config"
	mongodb "github.com/bloghub/bloghub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/bloghub-api/internal/infrastructure/db/redis"
	"github.com/bloghub/bloghub-api/internal/infrastructure/generator"
	"github.com/bloghub/bloghub-api/internal/infrastructure/sweep"
	"github.com/bloghub/bloghub-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        BlogHub API
// @version      1.0
// @description  Multi-tenant blogging platform: accounts, posts, comments, likes and an admin back office.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis (session cache) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := redisdb.NewCachedSessionRepository(mongodb.NewSessionRepository(db), rdb, log)
	postRepo := mongodb.NewPostRepository(db)
	aboutRepo := mongodb.NewAboutRepository(db)

	// --- Services ---
	sessionService := service.NewSessionService(sessionRepo, cfg.SessionTTL, log)
	guard := service.NewGuard(sessionService, userRepo, log)
	authService := service.NewAuthService(userRepo, sessionService, postRepo, cfg.BcryptCost, log)
	postService := service.NewPostService(postRepo, guard, log)
	adminService := service.NewAdminService(userRepo, postRepo, sessionService, cfg.BcryptCost, log)
	aboutService := service.NewAboutService(aboutRepo, log)

	// --- Background session sweep ---
	sweeper := sweep.NewSweeper(sessionRepo, cfg.SessionTTL, cfg.SweepInterval, log)
	sweeper.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Auth:      authService,
		Posts:     postService,
		Admin:     adminService,
		About:     aboutService,
		Generator: generator.NewComposer(),
		Guard:     guard,
		Cookies: handler.CookiePolicy{
			Secure: cfg.Production(),
			MaxAge: cfg.SessionTTL,
		},
		Mongo: db,
		Redis: rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
