package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delivery-matching/internal/http/handlers"
	mw "delivery-matching/internal/http/middleware"
	"delivery-matching/internal/http/middleware/ratelimit"
	"delivery-matching/internal/logx"
)

// RequestTimeout bounds every API request, including the routing fan-out.
const RequestTimeout = 5 * time.Second

// New constructs a chi-based http.Handler with base middleware and routes.
// A nil limiter disables rate limiting.
func New(logger logx.Logger, h *handlers.Handlers, nearby *handlers.NearbyHandler, limiter *ratelimit.Middleware) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/driver", func(r chi.Router) {
		r.Use(middleware.Timeout(RequestTimeout))
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Get("/nearby-orders", nearby.List)
		r.Post("/nearby-orders/action", nearby.Action)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
