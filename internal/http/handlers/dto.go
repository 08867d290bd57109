package handlers

import "time"

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type addressDTO struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type orderItemDTO struct {
	ProductName string `json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
}

type travelTimeDTO struct {
	Duration         string    `json:"duration"`
	DurationValue    int       `json:"durationValue"`
	Distance         string    `json:"distance"`
	DistanceValue    int       `json:"distanceValue"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
}

type candidateDTO struct {
	ID             int64          `json:"id"`
	OrderNumber    string         `json:"orderNumber"`
	Status         string         `json:"status"`
	DeliveryStatus string         `json:"deliveryStatus"`
	Total          int64          `json:"total"`
	CreatedAt      time.Time      `json:"createdAt"`
	Address        addressDTO     `json:"address"`
	Location       locationDTO    `json:"location"`
	Distance       float64        `json:"distance"`
	TravelTime     *travelTimeDTO `json:"travelTime"`
	Items          []orderItemDTO `json:"items"`
}

type nearbyOrdersResponse struct {
	Orders         []candidateDTO `json:"orders"`
	DriverLocation *locationDTO   `json:"driverLocation"`
	SearchRadius   float64        `json:"searchRadius"`
	Message        string         `json:"message,omitempty"`
}

type orderActionRequest struct {
	OrderID int64  `json:"order_id"`
	Action  string `json:"action"`
}

type orderActionResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}
