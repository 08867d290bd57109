package matching

import (
	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
)

// RadiusPolicy bounds the search radius a driver may use, in kilometers.
type RadiusPolicy struct {
	DefaultKm float64
	MinKm     float64
	MaxKm     float64
}

// Resolve picks the effective radius: the requested one, else the driver's own limit,
// else the default; the result is clamped to [MinKm, MaxKm].
func (p RadiusPolicy) Resolve(requestedKm, driverMaxKm float64) float64 {
	r := requestedKm
	if r <= 0 {
		r = driverMaxKm
	}
	if r <= 0 {
		r = p.DefaultKm
	}
	if r < p.MinKm {
		r = p.MinKm
	}
	if r > p.MaxKm {
		r = p.MaxKm
	}
	return r
}

// CheckDriver validates that the driver may be offered orders.
// ErrDriverInactive is a soft outcome: callers answer with an empty list.
func CheckDriver(d *domain.Driver) error {
	switch {
	case d == nil:
		return apperr.ErrDriverNotFound
	case !d.CanReceiveOrders():
		return apperr.ErrDriverInactive
	case d.Location == nil || !d.Location.Valid():
		return apperr.ErrLocationUnavailable
	}
	return nil
}

// Eligible returns the orders from pool that the driver at origin may take within radiusKm,
// paired with their great-circle distance. Rejections are already excluded from pool by the store.
func Eligible(origin geo.Point, radiusKm float64, pool []domain.Order) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(pool))
	for _, o := range pool {
		if !openOrder(o) {
			continue
		}
		d := geo.DistanceKm(origin, *o.Destination)
		if d > radiusKm {
			continue
		}
		out = append(out, domain.Candidate{Order: o, DistanceKm: d})
	}
	return out
}

func openOrder(o domain.Order) bool {
	return !o.Assigned() &&
		o.DeliveryStatus == domain.DeliveryPending &&
		!o.Status.Closed() &&
		o.Destination != nil &&
		o.Destination.Valid()
}
