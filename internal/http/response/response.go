// Package response holds the JSON envelope shared by all HTTP handlers and the
// centralized mapping from the error taxonomy to HTTP status codes.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
)

// Response is the envelope of every reply.
// Status is "OK" or "Error"; Error is set on failure, Data on success.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK marks a successful reply.
	StatusOK = "OK"
	// StatusError marks a failed reply.
	StatusError = "Error"
)

// StatusOKWithData wraps data in a successful Response.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error wraps msg in a failed Response.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// StatusFor maps an error of the taxonomy to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrTokenInvalid),
		errors.Is(err, apperr.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail replies with the status and message that err maps to. Validation errors
// carry their own message; other known errors use msg. Unexpected errors are
// logged and answered with a generic 500 that leaks nothing.
func Fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	if apperr.IsUnexpected(err) {
		log.Error("unexpected failure", sl.Err(err))
		JSON(w, r, http.StatusInternalServerError, Error("internal server error"))
		return
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		log.Info("validation failed", slog.String("field", ve.Field), sl.Err(err))
		JSON(w, r, http.StatusUnprocessableEntity, Error(ve.Message))
		return
	}

	log.Info("request rejected", sl.Err(err))
	JSON(w, r, StatusFor(err), Error(msg))
}
