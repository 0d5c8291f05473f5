// Package create implements POST /bookings.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/validate"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Service books sessions.
type Service interface {
	Create(ctx context.Context, caller models.Identity, req models.BookingRequest) (*models.Booking, error)
}

// Handler serves POST /bookings.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a booking handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Book a teacher
// @Description Creates a pending booking for the authenticated student or parent.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BookingRequest true "Booking"
// @Success 201 {object} models.Booking
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "Not authenticated"
// @Failure 403 {object} response.ErrorResponse "Teachers cannot book"
// @Failure 404 {object} response.ErrorResponse "Teacher not found"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	caller, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, log, apperr.ErrAuthRequired, apperr.ErrAuthRequired.Error())
		return
	}

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Fail(w, r, log, validate.First(err), "")
		return
	}

	b, err := h.service.Create(r.Context(), caller, req)
	if err != nil {
		msg := "teacher not found"
		if errors.Is(err, apperr.ErrForbidden) {
			msg = "only students and parents can book"
		}
		response.Fail(w, r, log, err, msg)
		return
	}

	log.Info("booking created", slog.String("booking_id", b.ID), slog.String("teacher_id", b.TeacherID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(b))
}
