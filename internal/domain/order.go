package domain

import (
	"time"

	"delivery-matching/internal/geo"
)

// OrderStatus is the commerce-side status of an order, owned by checkout.
type OrderStatus string

// List of order statuses
const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCancelled OrderStatus = "cancelled"
	OrderDelivered OrderStatus = "delivered"
)

// Closed reports whether the order can no longer be delivered.
func (s OrderStatus) Closed() bool {
	return s == OrderCancelled || s == OrderDelivered
}

// Address holds the stored delivery address fields, passed through for display.
type Address struct {
	Line1      string
	Line2      string
	City       string
	PostalCode string
}

// OrderItem is a read-only order line shown to drivers.
type OrderItem struct {
	OrderID     int64
	ProductName string
	VariantName string
	Quantity    int
	UnitPrice   int64
}

// Order is the matching view of a customer order.
type Order struct {
	ID               int64
	Number           string
	CustomerID       int64
	Status           OrderStatus
	DeliveryStatus   DeliveryStatus
	AssignedDriverID *int64
	Destination      *geo.Point
	Address          Address
	Total            int64
	CreatedAt        time.Time
	Items            []OrderItem
}

// Assigned reports whether a driver holds the order.
func (o Order) Assigned() bool {
	return o.AssignedDriverID != nil
}
