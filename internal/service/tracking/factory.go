package tracking

import (
	"context"

	"delivery-matching/internal/domain"
)

type transitionFunc func(context.Context, domain.DeliveryStatusEvent) error

type transitionFactory struct {
	byStatus map[domain.DeliveryStatus]transitionFunc
}

// assigned is reachable only through an accepted offer, so it has no handler here.
func newTransitionFactory(advance transitionFunc) *transitionFactory {
	return &transitionFactory{
		byStatus: map[domain.DeliveryStatus]transitionFunc{
			domain.DeliveryPickedUp:       advance,
			domain.DeliveryOutForDelivery: advance,
			domain.DeliveryDelivered:      advance,
			domain.DeliveryFailed:         advance,
		},
	}
}

func (f *transitionFactory) get(status domain.DeliveryStatus) (transitionFunc, bool) {
	fn, ok := f.byStatus[status]
	return fn, ok
}
