// Package logout implements POST /logout.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
)

// Service destroys a session.
type Service interface {
	EndSession(ctx context.Context, sessionID string) error
}

// Response is the logout payload.
type Response struct {
	Message string `json:"message" example:"User logged out"`
}

// Handler serves POST /logout.
type Handler struct {
	log     *slog.Logger
	service Service
	cookie  config.Session
}

// New creates a logout handler.
func New(log *slog.Logger, service Service, cookie config.Session) *Handler {
	return &Handler{log: log, service: service, cookie: cookie}
}

// ServeHTTP godoc
// @Summary Logout
// @Description Destroys the current session, if any, and expires the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if c, err := r.Cookie(h.cookie.CookieName); err == nil && c.Value != "" {
		if err := h.service.EndSession(r.Context(), c.Value); err != nil {
			response.Fail(w, r, log, err, "")
			return
		}
		log.Info("session destroyed")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Response{Message: "User logged out"}))
}
