//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"delivery-matching/internal/domain"
)

type driverStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Driver, error)
}

type orderStore interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	AssignIfUnassigned(ctx context.Context, orderID, driverID int64) (int64, error)
}

type rejectionStore interface {
	InsertIgnoreDuplicate(ctx context.Context, driverID, orderID int64) (bool, error)
}

// Publisher announces stored driver actions to other services.
type Publisher interface {
	PublishAction(ctx context.Context, ev domain.ActionEvent) error
}

type counterVec interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
