// Package list implements the paginated teacher catalogue.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Page bounds.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Service lists teachers.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]models.Teacher, error)
}

// Handler serves GET /teachers.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a list handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary List teachers
// @Description Returns a page of teachers, newest first. limit defaults to 10 and is capped at 100.
// @Tags Teachers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.Teacher
// @Failure 422 {object} response.ErrorResponse "Bad pagination"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /teachers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := intParam(r, "limit", DefaultLimit)
	if err != nil {
		response.Fail(w, r, log, err, "")
		return
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	offset, err := intParam(r, "offset", 0)
	if err != nil {
		response.Fail(w, r, log, err, "")
		return
	}

	teachers, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		response.Fail(w, r, log, err, "")
		return
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	log.Info("teachers listed", slog.Int("count", len(teachers)))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(teachers))
}

// intParam reads a non-negative integer query parameter.
func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.NewValidation(key, "field %s must be a non-negative integer", key)
	}
	return n, nil
}
