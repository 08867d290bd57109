package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"delivery-matching/internal/logx"
	"delivery-matching/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API until its context is canceled.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container.
// Startup failures other than cancellation panic.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		panic(err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

type appResources struct {
	dig.In

	Redis     *redis.Client    `optional:"true"`
	Publisher *kafka.Publisher `optional:"true"`
}

func run(container *dig.Container) error {
	var runErr error
	if err := container.Invoke(func(
		ctx context.Context,
		server *http.Server,
		pool *pgxpool.Pool,
		logger logx.Logger,
		res appResources,
	) {
		runErr = appRun(ctx, server, pool, logger, res)
	}); err != nil {
		return err
	}
	return runErr
}

func appRun(ctx context.Context, server *http.Server, pool *pgxpool.Pool, logger logx.Logger, res appResources) error {
	defer closeResources(pool, res, logger)

	errCh := startServer(server, logger)
	select {
	case <-ctx.Done():
		logger.Info("shutting down delivery-matching")
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}
	gracefulShutdown(server, logger, shutdownTimeout)
	return ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("delivery-matching listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, res appResources, logger logx.Logger) {
	if err := res.Publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if res.Redis != nil {
		if err := res.Redis.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
