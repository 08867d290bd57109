package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-matching/internal/logx"
	"delivery-matching/internal/transport/kafka"
)

// WorkerRunner runs the delivery status consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is canceled
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	var runErr error
	if err := container.Invoke(func(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
		runErr = workerRun(ctx, pool, logger, consumer)
	}); err != nil {
		return err
	}
	return runErr
}

func workerRun(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS for the worker")
	}
	defer closeWorker(pool, logger, consumer)

	logger.Info("delivery-matching-worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
