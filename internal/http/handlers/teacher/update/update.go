// Package update implements the partial update of a teacher profile.
//
// Only fields present in the body are changed. Credentials (e-mail, username,
// password) are not part of the payload and cannot be changed here. The caller
// must be the teacher being updated.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/validate"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Service updates teacher profiles.
type Service interface {
	Update(ctx context.Context, caller models.Identity, id string, u models.TeacherUpdate) (*models.Teacher, error)
}

// Response is the payload of a successful update.
type Response struct {
	Message string          `json:"message" example:"Teacher updated"`
	Teacher *models.Teacher `json:"teacher"`
}

// Handler serves PUT /teachers/{id}.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates an update handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Update a teacher
// @Description Partially updates the authenticated teacher's own profile.
// @Tags Teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Param request body models.TeacherUpdate true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Teacher not found"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /teachers/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	caller, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, log, apperr.ErrAuthRequired, apperr.ErrAuthRequired.Error())
		return
	}
	id := chi.URLParam(r, "id")

	var req models.TeacherUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Fail(w, r, log, validate.First(err), "")
		return
	}

	t, err := h.service.Update(r.Context(), caller, id, req)
	if err != nil {
		msg := "teacher not found"
		if errors.Is(err, apperr.ErrForbidden) {
			msg = "you can only update your own profile"
		}
		response.Fail(w, r, log, err, msg)
		return
	}

	log.Info("teacher updated", slog.String("teacher_id", id))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Response{
		Message: "Teacher updated",
		Teacher: t,
	}))
}
