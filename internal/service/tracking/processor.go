package tracking

import (
	"context"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
)

// Processor applies delivery progress events to orders.
type Processor struct {
	store   statusStore
	logger  logx.Logger
	factory *transitionFactory
}

// NewProcessor creates a new tracking Processor.
func NewProcessor(store statusStore, logger logx.Logger) *Processor {
	p := &Processor{store: store, logger: logger}
	p.factory = newTransitionFactory(p.advance)
	return p
}

// Handle processes a single delivery status event.
// Events for statuses this service does not drive are skipped.
func (p *Processor) Handle(ctx context.Context, e domain.DeliveryStatusEvent) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("delivery status event skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", string(e.Status)),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) advance(ctx context.Context, e domain.DeliveryStatusEvent) error {
	n, err := p.store.AdvanceDeliveryStatus(ctx, e.OrderID, e.Status, e.Status.Predecessors())
	if err != nil {
		return err
	}
	if n == 0 {
		// stale, duplicate or out of order
		p.logger.Warn("delivery status transition not applied",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", string(e.Status)),
		)
		return nil
	}
	p.logger.Info("delivery status updated",
		logx.String("event", "delivery_status_updated"),
		logx.Int64("order_id", e.OrderID),
		logx.String("status", string(e.Status)),
	)
	return nil
}
