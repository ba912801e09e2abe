package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nindium/bookclub-server/internal/config"
	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/middleware"
	"github.com/nindium/bookclub-server/internal/redis"
	"github.com/nindium/bookclub-server/internal/repository"
	"github.com/nindium/bookclub-server/internal/router"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	setLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	if cfg.AutoMigrate {
		if err := db.Migrate(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	var limiter middleware.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		limiter = middleware.NewRedisRateLimiter(redisClient.Client)
		log.Info().Msg("redis connected, using shared rate limiter")
	} else {
		limiter = middleware.NewMemoryRateLimiter()
		log.Info().Msg("REDIS_URL not set, using in-memory rate limiter")
	}

	handler := router.New(router.Dependencies{
		Config:      cfg,
		DB:          db,
		Admins:      repository.NewAdminRepository(db.DB),
		Books:       repository.NewBookRepository(db.DB),
		Reviews:     repository.NewReviewRepository(db.DB),
		Memberships: repository.NewMembershipRequestRepository(db.DB),
		Limiter:     limiter,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.AppEnv).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
