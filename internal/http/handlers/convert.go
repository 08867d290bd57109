package handlers

import (
	"math"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
)

func nearbyResultToResponse(res domain.NearbyResult) nearbyOrdersResponse {
	out := nearbyOrdersResponse{
		Orders:       make([]candidateDTO, 0, len(res.Orders)),
		SearchRadius: res.SearchRadiusKm,
		Message:      res.Message,
	}
	if res.DriverLocation != nil {
		loc := locationToDTO(*res.DriverLocation)
		out.DriverLocation = &loc
	}
	for _, c := range res.Orders {
		out.Orders = append(out.Orders, candidateToDTO(c))
	}
	return out
}

func candidateToDTO(c domain.Candidate) candidateDTO {
	o := c.Order
	dto := candidateDTO{
		ID:             o.ID,
		OrderNumber:    o.Number,
		Status:         string(o.Status),
		DeliveryStatus: string(o.DeliveryStatus),
		Total:          o.Total,
		CreatedAt:      o.CreatedAt,
		Address: addressDTO{
			Line1:      o.Address.Line1,
			Line2:      o.Address.Line2,
			City:       o.Address.City,
			PostalCode: o.Address.PostalCode,
		},
		Distance: roundKm(c.DistanceKm),
		Items:    make([]orderItemDTO, 0, len(o.Items)),
	}
	if o.Destination != nil {
		dto.Location = locationToDTO(*o.Destination)
	}
	if tt := c.TravelTime; tt != nil {
		dto.TravelTime = &travelTimeDTO{
			Duration:         tt.Duration,
			DurationValue:    tt.DurationValue,
			Distance:         tt.Distance,
			DistanceValue:    tt.DistanceValue,
			EstimatedArrival: tt.EstimatedArrival,
		}
	}
	for _, it := range o.Items {
		dto.Items = append(dto.Items, orderItemDTO{
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return dto
}

func locationToDTO(p geo.Point) locationDTO {
	return locationDTO{Lat: p.Lat, Lng: p.Lng}
}

// roundKm keeps two decimals, about ten meters.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
