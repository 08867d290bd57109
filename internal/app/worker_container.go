package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/dig"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/config"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
	"delivery-matching/internal/repository"
	"delivery-matching/internal/service/tracking"
	"delivery-matching/internal/transport/kafka"
)

const statusEventTimeout = 2 * time.Second

// MustBuildWorkerContainer builds the delivery status worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

// MustBuildWorker builds the worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		func(repo *repository.OrderRepo, logger logx.Logger) *tracking.Processor {
			return tracking.NewProcessor(repo, logger)
		},
		func(p *tracking.Processor) kafka.HandleFunc {
			return makeStatusHandler(p, statusEventTimeout)
		},
		provideConsumer,
	)
}

func provideConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.StatusTopic, h)
}

type statusHandler interface {
	Handle(ctx context.Context, e domain.DeliveryStatusEvent) error
}

// makeStatusHandler bounds each event and marks validation failures permanent so they are not redelivered.
func makeStatusHandler(h statusHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, e domain.DeliveryStatusEvent) error {
		hctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		err := h.Handle(hctx, e)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
