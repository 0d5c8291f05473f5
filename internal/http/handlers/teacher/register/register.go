// Package register implements teacher sign-up.
//
// The payload is validated field by field and the first violation is reported
// with 422. A taken e-mail or username answers 409. On success the account is
// created and a verification e-mail is sent; a failed e-mail does not undo the
// registration and is reported through verificationEmailSent.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/validate"
	"github.com/magabrotheeeer/tutor-marketplace/internal/metrics"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Service registers teachers.
type Service interface {
	Register(ctx context.Context, reg models.TeacherRegistration) (*models.RegistrationResult, error)
}

// Response is the payload of a successful registration.
type Response struct {
	Message string `json:"message" example:"Teacher created successfully. Please check your email for verification."`
	models.RegistrationResult
}

// Handler serves POST /register.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a registration handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Register a teacher
// @Description Creates a teacher account and sends a verification e-mail.
// @Tags Teachers
// @Accept json
// @Produce json
// @Param request body models.TeacherRegistration true "Teacher profile"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 409 {object} response.ErrorResponse "User has already signed up"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.TeacherRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		metrics.Registrations.WithLabelValues(string(models.KindTeacher), metrics.OutcomeRejected).Inc()
		response.Fail(w, r, log, validate.First(err), "")
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		outcome := metrics.OutcomeRejected
		if apperr.IsUnexpected(err) {
			outcome = metrics.OutcomeError
		}
		metrics.Registrations.WithLabelValues(string(models.KindTeacher), outcome).Inc()
		response.Fail(w, r, log, err, "user has already signed up")
		return
	}
	metrics.Registrations.WithLabelValues(string(models.KindTeacher), metrics.OutcomeSuccess).Inc()

	msg := "Teacher created successfully. Please check your email for verification."
	if !res.VerificationEmailSent {
		msg = "Teacher created successfully. The verification email could not be sent."
	}
	log.Info("teacher registered", slog.String("teacher_id", res.AccountID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(Response{
		Message:            msg,
		RegistrationResult: *res,
	}))
}
