package routing

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"googlemaps.github.io/maps"

	"delivery-matching/internal/geo"
)

type distanceMatrixClient interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}

// MapsEstimator asks the Google Maps Distance Matrix API for driving estimates.
type MapsEstimator struct {
	client distanceMatrixClient
}

// NewMapsEstimator creates an estimator with the given API key.
// Extra options are passed to the maps client (base URL, HTTP client).
func NewMapsEstimator(apiKey string, opts ...maps.ClientOption) (*MapsEstimator, error) {
	all := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsEstimator{client: client}, nil
}

// Estimate returns the driving duration and distance from one point to another.
func (e *MapsEstimator) Estimate(ctx context.Context, from, to geo.Point) (Estimate, error) {
	resp, err := e.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{from.String()},
		Destinations: []string{to.String()},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		if ctx.Err() != nil {
			return Estimate{}, fmt.Errorf("maps distance matrix: %w", ctx.Err())
		}
		err = fmt.Errorf("maps distance matrix: %w", err)
		if isTransientMapsError(err) {
			return Estimate{}, Transient(err)
		}
		return Estimate{}, err
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 || resp.Rows[0].Elements[0] == nil {
		return Estimate{}, ErrNoRoute
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return Estimate{}, fmt.Errorf("%w: element status %s", ErrNoRoute, el.Status)
	}

	return Estimate{
		Duration:      humanDuration(el.Duration),
		DurationValue: int(el.Duration.Seconds()),
		Distance:      el.Distance.HumanReadable,
		DistanceValue: el.Distance.Meters,
	}, nil
}

func isTransientMapsError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "OVER_QUERY_LIMIT") || strings.Contains(msg, "UNKNOWN_ERROR")
}
