// Package verify implements the e-mail verification endpoint.
package verify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
)

// Service confirms a verification token.
type Service interface {
	Confirm(ctx context.Context, token string) error
}

// Response is the payload of a successful verification.
type Response struct {
	Message string `json:"message" example:"Email verified"`
}

// Handler serves POST /verify-email/{token}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a verification handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Verify e-mail
// @Description Confirms the token sent in the verification e-mail and marks the account verified.
// @Tags Auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} response.ErrorResponse "Token already used or unknown"
// @Failure 500 {object} response.ErrorResponse "Internal error"
// @Router /verify-email/{token} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := chi.URLParam(r, "token")
	if token == "" {
		response.JSON(w, r, http.StatusUnauthorized, response.Error(apperr.ErrTokenInvalid.Error()))
		return
	}

	if err := h.service.Confirm(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, apperr.ErrTokenInvalid):
			response.Fail(w, r, log, err, apperr.ErrTokenInvalid.Error())
		case errors.Is(err, apperr.ErrNotFound):
			response.Fail(w, r, log, err, "verification token not found")
		default:
			response.Fail(w, r, log, err, "")
		}
		return
	}

	log.Info("email verified")
	response.JSON(w, r, http.StatusOK, response.StatusOKWithData(Response{Message: "Email verified"}))
}
