package httpadapter

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"github.com/bokzor/revenue-boost-sub004/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the frequency usecase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.FrequencyUseCase
	logger  *slog.Logger
	limiter *IPRateLimiter
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The storefront
// facing display endpoints are guarded by the per-IP rate limiter when one
// is provided; the stats endpoint is not, since it is called by the admin
// surface, not by visitors.
func NewHandler(svc port.FrequencyUseCase, logger *slog.Logger, limiter *IPRateLimiter) *Handler {
	h := &Handler{svc: svc, logger: logger, limiter: limiter}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/display/record", h.handleRecordDisplay)
			r.Post("/display/decide", h.handleDecide)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// clientIP extracts the original client address, preferring the first
// entry of X-Forwarded-For when present (the service sits behind the
// storefront proxy), falling back to RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
