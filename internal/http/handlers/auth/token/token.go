// Package token implements the bearer token login endpoint.
package token

import (
	"context"
	"encoding/json"
	"errors"
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

// Service issues an access token for valid credentials.
type Service interface {
	IssueToken(ctx context.Context, kind models.AccountKind, login models.Login) (string, models.Summary, error)
}

// Response is the payload of a successful token login.
type Response struct {
	Message     string         `json:"message" example:"User logged in successfully"`
	AccessToken string         `json:"accessToken"`
	User        models.Summary `json:"user"`
}

// Handler serves POST /token and POST /users/token.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	kind     models.AccountKind
}

// New creates a token handler for accounts of the given kind.
func New(log *slog.Logger, service Service, kind models.AccountKind) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
		kind:     kind,
	}
}

// ServeHTTP godoc
// @Summary Token login
// @Description Checks the credentials and returns a signed access token valid for 48 hours.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.Login true "Credentials: userName or email, and password"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 401 {object} response.ErrorResponse "User not found or invalid credentials"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 429 {object} response.ErrorResponse "Too many requests"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /token [post]
// @Router /users/token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("kind", string(h.kind)),
	)

	var req models.Login
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Fail(w, r, log, validate.First(err), "")
		return
	}

	accessToken, user, err := h.service.IssueToken(r.Context(), h.kind, req)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrNotFound):
		metrics.LoginAttempts.WithLabelValues("token", metrics.OutcomeRejected).Inc()
		log.Info("user not found")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("user not found"))
		return
	case errors.Is(err, apperr.ErrInvalidCredentials):
		metrics.LoginAttempts.WithLabelValues("token", metrics.OutcomeRejected).Inc()
		log.Info("invalid credentials")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("invalid credentials"))
		return
	default:
		metrics.LoginAttempts.WithLabelValues("token", metrics.OutcomeError).Inc()
		response.Fail(w, r, log, err, "")
		return
	}
	metrics.LoginAttempts.WithLabelValues("token", metrics.OutcomeSuccess).Inc()

	log.Info("access token issued", slog.String("user_name", user.UserName))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Response{
		Message:     "User logged in successfully",
		AccessToken: accessToken,
		User:        user,
	}))
}
