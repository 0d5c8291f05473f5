// Package health implements the liveness endpoint.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler serves GET /health.
type Handler struct {
	log    *slog.Logger
	checks map[string]Pinger
}

// New creates a health handler checking the named dependencies.
func New(log *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

// ServeHTTP godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	report := map[string]string{"status": "ok"}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Error("dependency unavailable", sl.Op(op), slog.String("dependency", name), sl.Err(err))
			report[name] = "unavailable"
			report["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	response.JSON(w, r, status, response.StatusOKWithData(report))
}
