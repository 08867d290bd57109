package kafka

import (
	"fmt"
	"strings"
	"time"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
)

// DeliveryStatusDTO is the wire form of a delivery progress event
type DeliveryStatusDTO struct {
	OrderID        int64     `json:"order_id"`
	DeliveryStatus string    `json:"delivery_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ToDomain validates the DTO and converts it to a domain event
func (d DeliveryStatusDTO) ToDomain() (domain.DeliveryStatusEvent, error) {
	if d.OrderID <= 0 {
		return domain.DeliveryStatusEvent{}, fmt.Errorf("order_id %d: %w", d.OrderID, apperr.ErrInvalid)
	}
	status := domain.DeliveryStatus(strings.ToLower(strings.TrimSpace(d.DeliveryStatus)))
	if !status.Valid() {
		return domain.DeliveryStatusEvent{}, fmt.Errorf("delivery_status %q: %w", d.DeliveryStatus, apperr.ErrInvalid)
	}
	return domain.DeliveryStatusEvent{
		OrderID:    d.OrderID,
		Status:     status,
		OccurredAt: d.OccurredAt,
	}, nil
}

// ActionEventDTO is the wire form of a driver action event
type ActionEventDTO struct {
	OrderID    int64     `json:"order_id"`
	DriverID   int64     `json:"driver_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActionEventFromDomain converts a domain action event to its wire form
func ActionEventFromDomain(ev domain.ActionEvent) ActionEventDTO {
	return ActionEventDTO{
		OrderID:    ev.OrderID,
		DriverID:   ev.DriverID,
		Action:     string(ev.Action),
		OccurredAt: ev.OccurredAt.UTC(),
	}
}
