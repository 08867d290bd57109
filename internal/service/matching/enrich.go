package matching

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/gateway/routing"
	"delivery-matching/internal/geo"
	"delivery-matching/internal/logx"
)

// Enricher attaches best-effort travel times to candidates.
type Enricher struct {
	estimator routing.Estimator
	timeout   time.Duration
	failures  counter
	logger    logx.Logger
	now       func() time.Time
}

// NewEnricher creates an Enricher. A nil estimator turns enrichment off.
func NewEnricher(estimator routing.Estimator, callTimeout time.Duration, failures counter, logger logx.Logger) *Enricher {
	if callTimeout <= 0 {
		callTimeout = 2 * time.Second
	}
	return &Enricher{
		estimator: estimator,
		timeout:   callTimeout,
		failures:  failures,
		logger:    logger,
		now:       time.Now,
	}
}

// Enrich estimates travel time from origin to each candidate concurrently.
// A failed estimate leaves that candidate's TravelTime nil and never affects the others.
func (e *Enricher) Enrich(ctx context.Context, origin geo.Point, cands []domain.Candidate) {
	if e == nil || e.estimator == nil || len(cands) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(RankingCap)
	for i := range cands {
		g.Go(func() error {
			cands[i].TravelTime = e.estimate(ctx, origin, cands[i].Order)
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Enricher) estimate(ctx context.Context, origin geo.Point, o domain.Order) *domain.TravelTime {
	if o.Destination == nil {
		return nil
	}
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	est, err := e.estimator.Estimate(callCtx, origin, *o.Destination)
	if err != nil {
		if e.failures != nil {
			e.failures.Inc()
		}
		e.logger.Warn("travel time unavailable",
			logx.Int64("order_id", o.ID),
			logx.Err(err),
		)
		return nil
	}
	return &domain.TravelTime{
		Duration:         est.Duration,
		DurationValue:    est.DurationValue,
		Distance:         est.Distance,
		DistanceValue:    est.DistanceValue,
		EstimatedArrival: e.now().Add(time.Duration(est.DurationValue) * time.Second),
	}
}
