package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewRoutingRetriesTotal returns a Prometheus counter for retry attempts against the routing collaborator
func NewRoutingRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routing_retries_total",
		Help: "Total number of retry attempts performed against the routing collaborator",
	})
}

// NewTravelTimeFailuresTotal returns a Prometheus counter for candidates left without a travel-time estimate
func NewTravelTimeFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "travel_time_failures_total",
		Help: "Total number of candidates whose travel-time estimate could not be obtained",
	})
}

// NewOrderActionsTotal returns a Prometheus counter vector of driver actions by action and result
func NewOrderActionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_actions_total",
		Help: "Total number of driver accept/reject actions by result",
	}, []string{"action", "result"})
}

// NewNearbyCandidates returns a Prometheus histogram of the number of candidates returned per query
func NewNearbyCandidates() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nearby_candidates",
		Help:    "Number of candidate orders returned per nearby-orders query",
		Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
	})
}
