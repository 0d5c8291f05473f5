// Package register implements student and parent sign-up.
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

// Service registers students and parents.
type Service interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.RegistrationResult, error)
}

// Response is the payload of a successful registration.
type Response struct {
	Message string `json:"message" example:"User created successfully. Please check your email for verification."`
	models.RegistrationResult
}

// Handler serves POST /users/register.
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
// @Summary Register a student or parent
// @Description Creates a student (default) or parent account and sends a verification e-mail.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UserRegistration true "Account"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 409 {object} response.ErrorResponse "User has already signed up"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /users/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		metrics.Registrations.WithLabelValues(string(models.KindUser), metrics.OutcomeRejected).Inc()
		response.Fail(w, r, log, validate.First(err), "")
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		outcome := metrics.OutcomeRejected
		if apperr.IsUnexpected(err) {
			outcome = metrics.OutcomeError
		}
		metrics.Registrations.WithLabelValues(string(models.KindUser), outcome).Inc()
		response.Fail(w, r, log, err, "user has already signed up")
		return
	}
	metrics.Registrations.WithLabelValues(string(models.KindUser), metrics.OutcomeSuccess).Inc()

	msg := "User created successfully. Please check your email for verification."
	if !res.VerificationEmailSent {
		msg = "User created successfully. The verification email could not be sent."
	}
	log.Info("user registered", slog.String("user_id", res.AccountID))
	response.JSON(w, r, http.StatusCreated, response.StatusOKWithData(Response{
		Message:            msg,
		RegistrationResult: *res,
	}))
}
