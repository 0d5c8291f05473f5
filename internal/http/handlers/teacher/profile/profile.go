// Package profile implements GET /profile for the authenticated teacher.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Service loads a teacher profile.
type Service interface {
	Profile(ctx context.Context, id string) (*models.Teacher, error)
}

// Handler serves GET /profile.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a profile handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Teacher profile
// @Description Returns the authenticated teacher without the password, with bookings most recent first.
// @Tags Teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Teacher
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Not a teacher account"
// @Failure 404 {object} response.ErrorResponse "Teacher not found"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, log, apperr.ErrAuthRequired, apperr.ErrAuthRequired.Error())
		return
	}
	if id.Role != models.RoleTeacher {
		response.Fail(w, r, log, apperr.ErrForbidden, "only teachers have a teacher profile")
		return
	}

	t, err := h.service.Profile(r.Context(), id.AccountID)
	if err != nil {
		response.Fail(w, r, log, err, "teacher not found")
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(t))
}
