package handlers

import (
	"context"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/service/matching"
)

type matchingUsecase interface {
	NearbyOrders(ctx context.Context, userID string, radiusKm float64) (domain.NearbyResult, error)
	HandleAction(ctx context.Context, userID string, orderID int64, action domain.Action) (domain.ActionResult, error)
}

// NewMatchingUsecase wires a matching Service into a matchingUsecase.
func NewMatchingUsecase(svc *matching.Service) matchingUsecase {
	return svc
}
