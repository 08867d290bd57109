package domain

import "time"

// ActionEvent is published after a driver action has been stored.
type ActionEvent struct {
	OrderID    int64
	DriverID   int64
	Action     Action
	OccurredAt time.Time
}

// DeliveryStatusEvent reports a delivery progress change from the tracking side.
type DeliveryStatusEvent struct {
	OrderID    int64
	Status     DeliveryStatus
	OccurredAt time.Time
}
