// Package tutormarket wires the marketplace HTTP application together.
package tutormarket

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// swagger spec registration
	_ "github.com/magabrotheeeer/tutor-marketplace/docs"
	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/auth/token"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/auth/verify"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/booking/create"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/health"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/teacher/list"
	teacherprofile "github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/teacher/profile"
	teacherregister "github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/teacher/register"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/teacher/search"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/teacher/update"
	userprofile "github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/user/profile"
	userregister "github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
	authservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/auth"
	bookingservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/booking"
	teacherservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/teacher"
	userservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/user"
	"github.com/magabrotheeeer/tutor-marketplace/internal/services/verification"
)

// Services are the dependencies the routes are served by.
type Services struct {
	Auth         *authservice.Service
	Teacher      *teacherservice.Service
	User         *userservice.Service
	Booking      *bookingservice.Service
	Verification *verification.Service
	Health       map[string]health.Pinger
}

// RegisterRoutes mounts every endpoint on r.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, s Services) {
	// URLFormat is left out: it would cut verification tokens at their last dot.
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	gate := middlewarectx.Gate(logger,
		middlewarectx.SessionCheck(s.Auth, cfg.CookieName),
		middlewarectx.BearerCheck(s.Auth),
	)
	limiter := middlewarectx.NewLimiter(cfg.RateLimit)

	r.Route("/api/v1", func(r chi.Router) {
		// open endpoints
		r.Post("/register", teacherregister.New(logger, s.Teacher).ServeHTTP)
		r.Post("/logout", logout.New(logger, s.Auth, cfg.Session).ServeHTTP)
		r.Post("/verify-email/{token}", verify.New(logger, s.Verification).ServeHTTP)
		r.Get("/teachers", list.New(logger, s.Teacher).ServeHTTP)
		r.Get("/teachers/search", search.New(logger, s.Teacher).ServeHTTP)
		r.Post("/users/register", userregister.New(logger, s.User).ServeHTTP)

		// credential checks are throttled per client
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Post("/login", login.New(logger, s.Auth, models.KindTeacher, cfg.Session).ServeHTTP)
			r.Post("/token", token.New(logger, s.Auth, models.KindTeacher).ServeHTTP)
			r.Post("/users/login", login.New(logger, s.Auth, models.KindUser, cfg.Session).ServeHTTP)
			r.Post("/users/token", token.New(logger, s.Auth, models.KindUser).ServeHTTP)
		})

		// session or bearer token required
		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Get("/profile", teacherprofile.New(logger, s.Teacher).ServeHTTP)
			r.Put("/teachers/{id}", update.New(logger, s.Teacher).ServeHTTP)
			r.Get("/users/profile", userprofile.New(logger, s.User).ServeHTTP)
			r.Post("/bookings", create.New(logger, s.Booking).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, s.Health).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
