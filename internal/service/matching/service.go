package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
	"delivery-matching/internal/logx"
)

// InactiveMessage explains an empty candidate list for an offline or deactivated driver.
const InactiveMessage = "Driver is not active. Go online to receive nearby orders."

// Config holds matching limits.
type Config struct {
	Radius           RadiusPolicy
	OperationTimeout time.Duration
}

// Service answers nearby-order queries and dispatches driver actions.
// It keeps no state between calls: every query re-reads orders and rejections.
type Service struct {
	drivers    driverStore
	orders     orderStore
	actions    actionProcessor
	enricher   *Enricher
	cfg        Config
	candidates observer
	logger     logx.Logger
}

// NewService creates a matching Service.
func NewService(
	drivers driverStore,
	orders orderStore,
	actions actionProcessor,
	enricher *Enricher,
	cfg Config,
	candidates observer,
	logger logx.Logger,
) *Service {
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	return &Service{
		drivers:    drivers,
		orders:     orders,
		actions:    actions,
		enricher:   enricher,
		cfg:        cfg,
		candidates: candidates,
		logger:     logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// NearbyOrders returns the ranked candidate orders for the driver linked to userID.
// radiusKm <= 0 means "use the driver's own limit or the default".
func (s *Service) NearbyOrders(ctx context.Context, userID string, radiusKm float64) (domain.NearbyResult, error) {
	userID, err := validateUserID(userID)
	if err != nil {
		return domain.NearbyResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	driver, err := s.drivers.GetByUserID(ctx, userID)
	if err != nil {
		return domain.NearbyResult{}, fmt.Errorf("load driver: %w", err)
	}

	err = CheckDriver(driver)
	switch {
	case errors.Is(err, apperr.ErrDriverInactive):
		return domain.NearbyResult{
			Orders:         []domain.Candidate{},
			DriverLocation: driver.Location,
			SearchRadiusKm: s.cfg.Radius.Resolve(radiusKm, driver.MaxRadiusKm),
			Message:        InactiveMessage,
		}, nil
	case err != nil:
		return domain.NearbyResult{}, err
	}

	origin := *driver.Location
	radius := s.cfg.Radius.Resolve(radiusKm, driver.MaxRadiusKm)

	pool, err := s.orders.ListOpenForDriver(ctx, driver.ID, geo.BoundingBox(origin, radius))
	if err != nil {
		return domain.NearbyResult{}, fmt.Errorf("load open orders: %w", err)
	}

	cands := Rank(Eligible(origin, radius, pool))
	if s.candidates != nil {
		s.candidates.Observe(float64(len(cands)))
	}

	if err := s.attachItems(ctx, cands); err != nil {
		return domain.NearbyResult{}, err
	}
	s.enricher.Enrich(ctx, origin, cands)

	return domain.NearbyResult{
		Orders:         cands,
		DriverLocation: &origin,
		SearchRadiusKm: radius,
	}, nil
}

// HandleAction applies the driver's decision on an order.
func (s *Service) HandleAction(ctx context.Context, userID string, orderID int64, action domain.Action) (domain.ActionResult, error) {
	userID, err := validateUserID(userID)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if orderID <= 0 || !action.Valid() {
		return domain.ActionResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var res domain.ActionResult
	if action == domain.ActionAccept {
		res, err = s.actions.Accept(ctx, userID, orderID)
	} else {
		res, err = s.actions.Reject(ctx, userID, orderID)
	}
	if err != nil {
		return domain.ActionResult{}, err
	}

	s.logger.Info("driver action applied",
		logx.String("event", "order_"+string(action)),
		logx.Int64("order_id", res.OrderID),
		logx.Int64("driver_id", res.DriverID),
	)
	return res, nil
}

func (s *Service) attachItems(ctx context.Context, cands []domain.Candidate) error {
	if len(cands) == 0 {
		return nil
	}
	ids := make([]int64, len(cands))
	for i, c := range cands {
		ids[i] = c.Order.ID
	}
	items, err := s.orders.ItemsByOrderIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	for i := range cands {
		cands[i].Order.Items = items[cands[i].Order.ID]
	}
	return nil
}

func validateUserID(raw string) (string, error) {
	userID := strings.TrimSpace(raw)
	if userID == "" {
		return "", apperr.ErrInvalid
	}
	return userID, nil
}
