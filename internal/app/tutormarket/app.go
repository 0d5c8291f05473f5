package tutormarket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/handlers/health"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/smtp"
	"github.com/magabrotheeeer/tutor-marketplace/internal/migrations"
	authservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/auth"
	bookingservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/booking"
	"github.com/magabrotheeeer/tutor-marketplace/internal/services/sender"
	teacherservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/teacher"
	userservice "github.com/magabrotheeeer/tutor-marketplace/internal/services/user"
	"github.com/magabrotheeeer/tutor-marketplace/internal/services/verification"
	"github.com/magabrotheeeer/tutor-marketplace/internal/session"
	"github.com/magabrotheeeer/tutor-marketplace/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App owns the HTTP server and the connections it serves from.
type App struct {
	server *http.Server
	logger *slog.Logger
	pool   *pgxpool.Pool
	rdb    *redis.Client
}

// New connects to PostgreSQL and Redis, applies migrations and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	pool, err := repository.Connect(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrate(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("migrations applied")

	rdb, err := session.Connect(ctx, cfg.RedisConnection)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.New(pool)
	sessions := session.NewStore(rdb, cfg.SessionTTL)
	maker := jwt.NewJWTMaker(cfg.JWTSecretKey)
	mailer := sender.New(cfg.Mail, cfg.VerificationTTL, smtp.NewTransport(cfg.SMTP, logger), logger)
	verifier := verification.New(repo, maker, mailer, cfg.VerificationTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, Services{
		Auth:         authservice.New(repo, sessions, maker, cfg.AccessTTL),
		Teacher:      teacherservice.New(repo, verifier, logger),
		User:         userservice.New(repo, verifier, logger),
		Booking:      bookingservice.New(repo),
		Verification: verifier,
		Health: map[string]health.Pinger{
			"postgres": repo,
			"redis": health.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		},
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		pool:   pool,
		rdb:    rdb,
	}, nil
}

// migrate runs the embedded migrations over a database/sql view of the pool.
func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		_ = db.Close()
	}()
	return migrations.Run(db)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("failed to close redis client", sl.Err(err))
	}
	a.pool.Close()
}
