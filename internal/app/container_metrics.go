package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-matching/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal  prometheus.Counter `name:"rate_limit_exceeded_total"`
	RoutingRetriesTotal     prometheus.Counter `name:"routing_retries_total"`
	TravelTimeFailuresTotal prometheus.Counter `name:"travel_time_failures_total"`
	OrderActionsTotal       *prometheus.CounterVec
	NearbyCandidates        prometheus.Histogram
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

// provideMetrics registers service metrics on the default registerer.
// Collectors registered earlier (tests, repeated container builds) are reused.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RoutingRetriesTotal, err = register("routing_retries_total", metrics.NewRoutingRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.TravelTimeFailuresTotal, err = register("travel_time_failures_total", metrics.NewTravelTimeFailuresTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.OrderActionsTotal, err = register("order_actions_total", metrics.NewOrderActionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.NearbyCandidates, err = register("nearby_candidates", metrics.NewNearbyCandidates()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}
