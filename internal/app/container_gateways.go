package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"delivery-matching/internal/config"
	"delivery-matching/internal/gateway/routing"
	"delivery-matching/internal/logx"
	"delivery-matching/internal/service/assignment"
	"delivery-matching/internal/transport/kafka"
)

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		provideRedis,
		provideEstimator,
		provideKafkaPublisher,
		provideActionPublisher,
	)
}

// provideRedis returns nil when no address is configured or the server is unreachable.
func provideRedis(ctx context.Context, cfg *config.Config, logger logx.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, route cache disabled",
			logx.String("addr", cfg.Redis.Addr),
			logx.Err(err),
		)
		_ = client.Close()
		return nil
	}
	return client
}

type estimatorIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Redis   *redis.Client      `optional:"true"`
	Retries prometheus.Counter `name:"routing_retries_total"`
}

// provideEstimator builds maps -> retry -> cache. A nil Estimator disables travel times.
func provideEstimator(in estimatorIn) (routing.Estimator, error) {
	rc := in.Config.Routing
	if rc.APIKey == "" {
		in.Logger.Info("routing api key not set, travel times disabled")
		return nil, nil
	}

	base, err := routing.NewMapsEstimator(rc.APIKey)
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	var est routing.Estimator = routing.NewRetryingEstimator(base, in.Logger, in.Retries, routing.RetryConfig{
		MaxAttempts: rc.MaxAttempts,
		BaseDelay:   rc.BaseDelay,
		MaxDelay:    rc.MaxDelay,
	})
	if in.Redis != nil {
		est = routing.NewCachedEstimator(est, in.Redis, rc.CacheTTL, in.Logger)
	}
	return est, nil
}

func provideKafkaPublisher(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
	return kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.ActionsTopic, logger.With(logx.String("component", "action-publisher")))
}

// provideActionPublisher keeps an unconfigured publisher a true nil interface.
func provideActionPublisher(p *kafka.Publisher) assignment.Publisher {
	if p == nil {
		return nil
	}
	return p
}
