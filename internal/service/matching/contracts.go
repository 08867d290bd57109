package matching

import (
	"context"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
)

type driverStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Driver, error)
}

type orderStore interface {
	ListOpenForDriver(ctx context.Context, driverID int64, box geo.Box) ([]domain.Order, error)
	ItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]domain.OrderItem, error)
}

type actionProcessor interface {
	Accept(ctx context.Context, userID string, orderID int64) (domain.ActionResult, error)
	Reject(ctx context.Context, userID string, orderID int64) (domain.ActionResult, error)
}

type counter interface {
	Inc()
}

type observer interface {
	Observe(v float64)
}
