package domain

import "delivery-matching/internal/geo"

// DriverStatus represents the operational status of a driver.
type DriverStatus string

// List of possible driver statuses
const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverOffline   DriverStatus = "offline"
)

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverAvailable, DriverBusy, DriverOffline:
		return true
	default:
		return false
	}
}

// Driver is the matching view of a driver profile.
// Location is nil until the driver shares a position.
type Driver struct {
	ID          int64
	UserID      string
	Location    *geo.Point
	Status      DriverStatus
	IsActive    bool
	MaxRadiusKm float64
}

// CanReceiveOrders reports whether the driver is in a state where offers make sense.
func (d Driver) CanReceiveOrders() bool {
	return d.IsActive && d.Status != DriverOffline
}
