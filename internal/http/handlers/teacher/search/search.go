// Package search implements GET /teachers/search.
package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
	searchservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/search"
)

// Service finds teachers matching a filter.
type Service interface {
	Search(ctx context.Context, f models.SearchFilter) ([]models.Teacher, error)
}

// Handler serves GET /teachers/search.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a search handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Search teachers
// @Description All parameters are optional and combined with AND. area and grade take comma separated lists and match any listed value.
// @Tags Teachers
// @Produce json
// @Param subject query string false "Subject taught"
// @Param costMin query number false "Minimum cost per hour, inclusive"
// @Param costMax query number false "Maximum cost per hour, inclusive"
// @Param curriculum query string false "Curriculum" Enums(GES Curriculum, British Curriculum)
// @Param area query string false "Comma separated areas"
// @Param grade query string false "Comma separated grades"
// @Param teachingMode query string false "Teaching mode" Enums(Online, In-person, Both)
// @Success 200 {array} models.Teacher
// @Failure 422 {object} response.ErrorResponse "Non-numeric cost bound"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /teachers/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := searchservice.BuildFilter(r.URL.Query())
	if err != nil {
		response.Fail(w, r, log, err, "")
		return
	}

	teachers, err := h.service.Search(r.Context(), filter)
	if err != nil {
		response.Fail(w, r, log, err, "")
		return
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	log.Info("search done", slog.Int("count", len(teachers)))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(teachers))
}
