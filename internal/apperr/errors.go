package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnprocessable indicates a well-formed request that cannot be served in the current state.
var ErrUnprocessable = errors.New("unprocessable")

// Matching errors. Each wraps one of the generic kinds above so callers can
// branch on either the exact cause or the broad kind.
var (
	ErrDriverNotFound      = fmt.Errorf("driver not found: %w", ErrNotFound)
	ErrOrderNotFound       = fmt.Errorf("order not found: %w", ErrNotFound)
	ErrLocationUnavailable = fmt.Errorf("driver location unavailable: %w", ErrUnprocessable)
	ErrAlreadyAssigned     = fmt.Errorf("order already assigned: %w", ErrConflict)
	ErrOrderUnavailable    = fmt.Errorf("order no longer available: %w", ErrConflict)
)

// ErrDriverInactive marks an offline or deactivated driver.
// It is an expected steady state: the matching service turns it into an empty result.
var ErrDriverInactive = errors.New("driver is not active")
