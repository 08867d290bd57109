package routing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-matching/internal/geo"
)

// Estimate is a driving estimate between two points.
type Estimate struct {
	Duration      string `json:"duration"`
	DurationValue int    `json:"duration_value"` // seconds
	Distance      string `json:"distance"`
	DistanceValue int    `json:"distance_value"` // meters
}

// Estimator returns a travel estimate from one point to another.
type Estimator interface {
	Estimate(ctx context.Context, from, to geo.Point) (Estimate, error)
}

// ErrNoRoute is returned when the collaborator has no route between the points.
var ErrNoRoute = errors.New("no route found")

// TransientError marks a failure worth retrying (quota, upstream hiccup, network).
type TransientError struct {
	Err error
}

func (e TransientError) Error() string {
	if e.Err == nil {
		return "transient routing error"
	}
	return e.Err.Error()
}

func (e TransientError) Unwrap() error { return e.Err }

// Transient wraps err as a TransientError.
func Transient(err error) error {
	return TransientError{Err: err}
}

// IsTransient reports whether err is marked as retryable.
func IsTransient(err error) bool {
	var te TransientError
	return errors.As(err, &te)
}

// humanDuration renders a duration the way routing UIs do: "1 min", "25 mins", "1 hour 5 mins".
func humanDuration(d time.Duration) string {
	mins := int((d + 30*time.Second) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return plural(m, "min")
	case m == 0:
		return plural(h, "hour")
	default:
		return plural(h, "hour") + " " + plural(m, "min")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
