// Package login implements the session login endpoint.
//
// The handler decodes and validates the credentials, asks the auth service to
// open a server-side session and hands the session id back as an HttpOnly
// cookie. The same handler serves teachers and students/parents; the account
// kind is fixed at construction.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/validate"
	"github.com/magabrotheeeer/tutor-marketplace/internal/metrics"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Service opens a session for valid credentials.
type Service interface {
	StartSession(ctx context.Context, kind models.AccountKind, login models.Login) (string, models.Summary, error)
}

// Response is the payload of a successful login.
type Response struct {
	Message string         `json:"message" example:"User logged in successfully"`
	User    models.Summary `json:"user"`
}

// Handler serves POST /login and POST /users/login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	kind     models.AccountKind
	cookie   config.Session
}

// New creates a login handler for accounts of the given kind.
func New(log *slog.Logger, service Service, kind models.AccountKind, cookie config.Session) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
		kind:     kind,
		cookie:   cookie,
	}
}

// ServeHTTP godoc
// @Summary Session login
// @Description Checks the credentials and opens a server-side session. The session id is returned in an HttpOnly cookie.
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
// @Router /login [post]
// @Router /users/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	sessionID, user, err := h.service.StartSession(r.Context(), h.kind, req)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("session", outcome(err)).Inc()
		failLogin(w, r, log, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("session", metrics.OutcomeSuccess).Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cookie.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("session opened", slog.String("user_name", user.UserName))
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Response{
		Message: "User logged in successfully",
		User:    user,
	}))
}

// failLogin keeps "user not found" and "invalid credentials" apart, both as 401.
func failLogin(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Info("user not found")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("user not found"))
	case errors.Is(err, apperr.ErrInvalidCredentials):
		log.Info("invalid credentials")
		response.JSON(w, r, http.StatusUnauthorized, response.Error("invalid credentials"))
	default:
		response.Fail(w, r, log, err, "")
	}
}

func outcome(err error) string {
	if apperr.IsUnexpected(err) {
		return metrics.OutcomeError
	}
	return metrics.OutcomeRejected
}
