// Package middlewarectx holds the HTTP middleware that authenticates requests
// and carries the caller identity through the request context.
//
// The Auth Gate runs an ordered chain of checks. Each check either does not
// apply to the request, authenticates it, or fails it; the first check that
// authenticates or fails decides the request.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/metrics"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Outcome is the verdict of a single check.
type Outcome int

// Check outcomes.
const (
	NotApplicable Outcome = iota
	Authenticated
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Authenticated:
		return "authenticated"
	case Failed:
		return "failed"
	default:
		return "not_applicable"
	}
}

// Result is returned by a Checker. Identity is set when Authenticated, Err when Failed.
type Result struct {
	Outcome  Outcome
	Identity models.Identity
	Err      error
}

// Checker inspects a request for one kind of credential.
type Checker func(r *http.Request) Result

// SessionResolver maps a session id to the identity bound to it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*models.Identity, bool, error)
}

// TokenVerifier checks a bearer token.
type TokenVerifier interface {
	VerifyToken(token string) (*models.Identity, error)
}

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom returns the identity the gate attached to ctx.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(models.Identity)
	return id, ok
}

// SessionCheck authenticates requests carrying a live session cookie. A missing,
// unknown or expired session does not apply, so later checks still run.
func SessionCheck(resolver SessionResolver, cookieName string) Checker {
	return func(r *http.Request) Result {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return Result{Outcome: NotApplicable}
		}
		id, found, err := resolver.ResolveSession(r.Context(), cookie.Value)
		if err != nil {
			return Result{Outcome: Failed, Err: err}
		}
		if !found {
			return Result{Outcome: NotApplicable}
		}
		return Result{Outcome: Authenticated, Identity: *id}
	}
}

// BearerCheck authenticates requests carrying "Authorization: Bearer <token>".
// A present header that is malformed or holds a bad token fails the request.
func BearerCheck(verifier TokenVerifier) Checker {
	const prefix = "Bearer "
	return func(r *http.Request) Result {
		header := r.Header.Get("Authorization")
		if header == "" {
			return Result{Outcome: NotApplicable}
		}
		if !strings.HasPrefix(header, prefix) {
			return Result{Outcome: Failed, Err: apperr.ErrTokenInvalid}
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		if token == "" {
			return Result{Outcome: Failed, Err: apperr.ErrTokenInvalid}
		}
		id, err := verifier.VerifyToken(token)
		if err != nil {
			return Result{Outcome: Failed, Err: err}
		}
		return Result{Outcome: Authenticated, Identity: *id}
	}
}

// Gate returns middleware that admits a request only when one of checks
// authenticates it. The checks run in order.
func Gate(log *slog.Logger, checks ...Checker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Gate"
			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			res := Result{Outcome: NotApplicable}
			for _, check := range checks {
				if res = check(r); res.Outcome != NotApplicable {
					break
				}
			}

			switch res.Outcome {
			case Authenticated:
				metrics.GateDecisions.WithLabelValues(string(res.Identity.Method), metrics.OutcomeSuccess).Inc()
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), res.Identity)))
			case Failed:
				if errors.Is(res.Err, apperr.ErrTokenInvalid) {
					metrics.GateDecisions.WithLabelValues("token", metrics.OutcomeRejected).Inc()
					log.Info("token rejected", sl.Err(res.Err))
					response.JSON(w, r, http.StatusUnauthorized, response.Error(apperr.ErrTokenInvalid.Error()))
					return
				}
				metrics.GateDecisions.WithLabelValues("session", metrics.OutcomeError).Inc()
				response.Fail(w, r, log, res.Err, "")
			default:
				metrics.GateDecisions.WithLabelValues("none", metrics.OutcomeRejected).Inc()
				log.Info("no credentials presented")
				response.JSON(w, r, http.StatusUnauthorized, response.Error(apperr.ErrAuthRequired.Error()))
			}
		})
	}
}
