package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
)

// NearbyHandler serves the driver-facing nearby orders API.
type NearbyHandler struct {
	usecase matchingUsecase
	logger  logx.Logger
}

// NewNearbyHandler creates a new NearbyHandler.
func NewNearbyHandler(logger logx.Logger, uc matchingUsecase) *NearbyHandler {
	return &NearbyHandler{usecase: uc, logger: logger}
}

// List handles GET /api/driver/nearby-orders?radius=<km>.
// An offline driver gets 200 with an empty list and a message.
func (h *NearbyHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	radius, ok := parseRadius(r.URL.Query().Get("radius"))
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, kindInvalidInput, "invalid radius")
		return
	}

	res, err := h.usecase.NearbyOrders(r.Context(), uid, radius)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nearbyResultToResponse(res))
}

// Action handles POST /api/driver/nearby-orders/action with {"order_id":..,"action":"accept"|"reject"}.
func (h *NearbyHandler) Action(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	var req orderActionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	action := domain.Action(strings.ToLower(strings.TrimSpace(req.Action)))
	if req.OrderID <= 0 || !action.Valid() {
		writeError(h.logger, w, r, http.StatusBadRequest, kindInvalidInput, "order_id and action (accept|reject) are required")
		return
	}

	res, err := h.usecase.HandleAction(r.Context(), uid, req.OrderID, action)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderActionResponse{Message: res.Message, OrderID: res.OrderID})
}

func (h *NearbyHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, msg := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			logx.String("request_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
	}
	writeError(h.logger, w, r, status, kind, msg)
}

// parseRadius accepts an empty value (meaning "driver default") or a positive finite number.
func parseRadius(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
