package tracking

import (
	"context"

	"delivery-matching/internal/domain"
)

type statusStore interface {
	AdvanceDeliveryStatus(ctx context.Context, orderID int64, to domain.DeliveryStatus, from []domain.DeliveryStatus) (int64, error)
}
