package handlers

import (
	"errors"
	"net/http"

	"delivery-matching/internal/apperr"
)

// Error kinds returned to clients alongside the message.
const (
	kindDriverNotFound      = "driver_not_found"
	kindLocationUnavailable = "location_unavailable"
	kindOrderNotFound       = "order_not_found"
	kindAlreadyAssigned     = "already_assigned"
	kindOrderUnavailable    = "order_unavailable"
	kindInvalidInput        = "invalid_input"
	kindUnauthorized        = "unauthorized"
	kindNotFound            = "not_found"
	kindInternal            = "internal"
)

type errorMapping struct {
	target error
	status int
	kind   string
	msg    string
}

// Specific causes come before the generic kinds they wrap.
var errorMappings = []errorMapping{
	{apperr.ErrDriverNotFound, http.StatusNotFound, kindDriverNotFound, "driver not found"},
	{apperr.ErrOrderNotFound, http.StatusNotFound, kindOrderNotFound, "order not found"},
	{apperr.ErrLocationUnavailable, http.StatusUnprocessableEntity, kindLocationUnavailable, "driver location unavailable"},
	{apperr.ErrAlreadyAssigned, http.StatusConflict, kindAlreadyAssigned, "order already taken by another driver"},
	{apperr.ErrOrderUnavailable, http.StatusConflict, kindOrderUnavailable, "order is no longer available"},
	{apperr.ErrInvalid, http.StatusBadRequest, kindInvalidInput, "invalid input"},
	{apperr.ErrNotFound, http.StatusNotFound, kindNotFound, "not found"},
	{apperr.ErrConflict, http.StatusConflict, kindOrderUnavailable, "conflict"},
}

func mapError(err error) (int, string, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.kind, m.msg
		}
	}
	return http.StatusInternalServerError, kindInternal, "internal error"
}
