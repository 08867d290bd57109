package domain

import (
	"time"

	"delivery-matching/internal/geo"
)

// TravelTime is a routing estimate from the driver to an order destination.
type TravelTime struct {
	Duration         string
	DurationValue    int // seconds
	Distance         string
	DistanceValue    int // meters
	EstimatedArrival time.Time
}

// Candidate is an order offered to a driver, annotated per request.
// TravelTime is nil when no estimate is available.
type Candidate struct {
	Order      Order
	DistanceKm float64
	TravelTime *TravelTime
}

// NearbyResult is the answer to a nearby-orders query.
// Message is set when the driver cannot currently receive offers.
type NearbyResult struct {
	Orders         []Candidate
	DriverLocation *geo.Point
	SearchRadiusKm float64
	Message        string
}

// Action is a driver decision on an offered order.
type Action string

// List of driver actions
const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// Valid checks if the Action is valid
func (a Action) Valid() bool {
	return a == ActionAccept || a == ActionReject
}

// ActionResult acknowledges a processed driver action.
type ActionResult struct {
	OrderID  int64
	DriverID int64
	Action   Action
	Message  string
}

// Rejection excludes an order from one driver's candidate list.
type Rejection struct {
	DriverID  int64
	OrderID   int64
	CreatedAt time.Time
}
