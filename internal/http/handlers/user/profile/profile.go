// Package profile implements GET /users/profile.
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

// Service loads a student or parent profile.
type Service interface {
	Profile(ctx context.Context, id string) (*models.User, error)
}

// Handler serves GET /users/profile.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a profile handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Student or parent profile
// @Description Returns the authenticated account without the password, with bookings most recent first.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Not a student or parent account"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /users/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, log, apperr.ErrAuthRequired, apperr.ErrAuthRequired.Error())
		return
	}
	if !id.Role.IsLearner() {
		response.Fail(w, r, log, apperr.ErrForbidden, "only students and parents have a user profile")
		return
	}

	u, err := h.service.Profile(r.Context(), id.AccountID)
	if err != nil {
		response.Fail(w, r, log, err, "user not found")
		return
	}
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(u))
}
