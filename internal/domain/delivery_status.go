package domain

// DeliveryStatus is the delivery lifecycle of an order.
//
//	pending -> assigned -> picked_up -> out_for_delivery -> delivered | failed
type DeliveryStatus string

// List of delivery statuses
const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryAssigned       DeliveryStatus = "assigned"
	DeliveryPickedUp       DeliveryStatus = "picked_up"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryFailed         DeliveryStatus = "failed"
)

var predecessors = map[DeliveryStatus][]DeliveryStatus{
	DeliveryAssigned:       {DeliveryPending},
	DeliveryPickedUp:       {DeliveryAssigned},
	DeliveryOutForDelivery: {DeliveryPickedUp},
	DeliveryDelivered:      {DeliveryOutForDelivery},
	DeliveryFailed:         {DeliveryAssigned, DeliveryPickedUp, DeliveryOutForDelivery},
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	if s == DeliveryPending {
		return true
	}
	_, ok := predecessors[s]
	return ok
}

// Terminal reports whether no further transition is possible.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// Predecessors returns the statuses from which s can be reached in one step.
func (s DeliveryStatus) Predecessors() []DeliveryStatus {
	prev := predecessors[s]
	out := make([]DeliveryStatus, len(prev))
	copy(out, prev)
	return out
}

// CanTransitionTo reports whether s -> next is an allowed step.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, p := range predecessors[next] {
		if p == s {
			return true
		}
	}
	return false
}
