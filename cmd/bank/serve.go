package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/benx421/personal-bank/internal/config"
	"github.com/benx421/personal-bank/internal/db"
	"github.com/benx421/personal-bank/internal/events"
	"github.com/benx421/personal-bank/internal/handlers"
	"github.com/benx421/personal-bank/internal/lock"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the bank API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), a.cfg, a.logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting bank api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	locker, closeLocker, err := newLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	publisher := newPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	router, err := handlers.NewRouter(database, cfg, locker, publisher, logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

// newLocker returns a Redis-backed locker when REDIS_ADDR is set and an
// in-process one otherwise.
func newLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger) (lock.Locker, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, account locks are held in-process")
		return lock.NewLocalLocker(cfg.Ledger.LockWait), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("using redis account locks", "addr", cfg.Redis.Addr)
	locker := lock.NewRedisLocker(client, cfg.Ledger.LockTTL, cfg.Ledger.LockWait, logger)
	return locker, func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}, nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, ledger events are not published")
		return events.NoopPublisher{}
	}

	logger.Info("publishing ledger events", "topic", cfg.Kafka.Topic)
	return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
}
