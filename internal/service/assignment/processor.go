package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
)

// Result messages returned to the driver app.
const (
	AcceptedMessage = "Order accepted successfully"
	RejectedMessage = "Order rejected"
)

// publishTimeout bounds how long a stored action waits on the event publisher
// before the result goes back to the driver.
const publishTimeout = 200 * time.Millisecond

// Processor applies accept and reject decisions.
// Accept relies on a single conditional update, so concurrent accepts on one order have exactly one winner.
type Processor struct {
	drivers    driverStore
	orders     orderStore
	rejections rejectionStore
	publisher  Publisher
	actions    counterVec
	logger     logx.Logger
	now        func() time.Time
}

// NewProcessor creates a Processor. publisher and actions may be nil.
func NewProcessor(
	drivers driverStore,
	orders orderStore,
	rejections rejectionStore,
	publisher Publisher,
	actions counterVec,
	logger logx.Logger,
) *Processor {
	return &Processor{
		drivers:    drivers,
		orders:     orders,
		rejections: rejections,
		publisher:  publisher,
		actions:    actions,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Accept assigns the order to the driver linked to userID.
func (p *Processor) Accept(ctx context.Context, userID string, orderID int64) (res domain.ActionResult, err error) {
	defer func() { p.record(domain.ActionAccept, err) }()

	driver, err := p.driver(ctx, userID)
	if err != nil {
		return domain.ActionResult{}, err
	}

	n, err := p.orders.AssignIfUnassigned(ctx, orderID, driver.ID)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if n == 0 {
		return domain.ActionResult{}, p.explainLostAccept(ctx, orderID)
	}

	p.publish(ctx, domain.ActionEvent{OrderID: orderID, DriverID: driver.ID, Action: domain.ActionAccept, OccurredAt: p.now()})
	return domain.ActionResult{
		OrderID:  orderID,
		DriverID: driver.ID,
		Action:   domain.ActionAccept,
		Message:  AcceptedMessage,
	}, nil
}

// Reject hides the order from the driver linked to userID. Repeating it is harmless.
func (p *Processor) Reject(ctx context.Context, userID string, orderID int64) (res domain.ActionResult, err error) {
	defer func() { p.record(domain.ActionReject, err) }()

	driver, err := p.driver(ctx, userID)
	if err != nil {
		return domain.ActionResult{}, err
	}

	created, err := p.rejections.InsertIgnoreDuplicate(ctx, driver.ID, orderID)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if created {
		p.publish(ctx, domain.ActionEvent{OrderID: orderID, DriverID: driver.ID, Action: domain.ActionReject, OccurredAt: p.now()})
	}
	return domain.ActionResult{
		OrderID:  orderID,
		DriverID: driver.ID,
		Action:   domain.ActionReject,
		Message:  RejectedMessage,
	}, nil
}

func (p *Processor) driver(ctx context.Context, userID string) (*domain.Driver, error) {
	d, err := p.drivers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load driver: %w", err)
	}
	if d == nil {
		return nil, apperr.ErrDriverNotFound
	}
	return d, nil
}

// explainLostAccept reads the order after a no-op update to tell the caller why.
func (p *Processor) explainLostAccept(ctx context.Context, orderID int64) error {
	o, err := p.orders.Get(ctx, orderID)
	switch {
	case err != nil:
		return fmt.Errorf("load order after failed accept: %w", err)
	case o == nil:
		return apperr.ErrOrderNotFound
	case o.Assigned():
		return apperr.ErrAlreadyAssigned
	default:
		return apperr.ErrOrderUnavailable
	}
}

func (p *Processor) publish(ctx context.Context, ev domain.ActionEvent) {
	if p.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.publisher.PublishAction(ctx, ev); err != nil {
		p.logger.Warn("publish order action failed",
			logx.Int64("order_id", ev.OrderID),
			logx.String("action", string(ev.Action)),
			logx.Err(err),
		)
	}
}

func (p *Processor) record(action domain.Action, err error) {
	if p.actions == nil {
		return
	}
	p.actions.WithLabelValues(string(action), resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrDriverNotFound):
		return "driver_not_found"
	case errors.Is(err, apperr.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, apperr.ErrOrderUnavailable):
		return "order_unavailable"
	default:
		return "error"
	}
}
