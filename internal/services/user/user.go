// Package user implements registration and profile for students and parents.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/password"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Repository is the user side of the credential store.
type Repository interface {
	EmailTaken(ctx context.Context, kind models.AccountKind, email string) (bool, error)
	CreateUser(ctx context.Context, u models.User) (string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListBookings(ctx context.Context, kind models.AccountKind, accountID string) ([]models.Booking, error)
}

// Verifier starts e-mail verification for a new account.
type Verifier interface {
	Issue(ctx context.Context, role models.Role, accountID, email, firstName string) error
}

// Service holds the student and parent use cases.
type Service struct {
	repo     Repository
	verifier Verifier
	log      *slog.Logger
}

// New creates a Service.
func New(repo Repository, verifier Verifier, log *slog.Logger) *Service {
	return &Service{repo: repo, verifier: verifier, log: log}
}

// Register creates a student or parent account and starts e-mail verification.
func (s *Service) Register(ctx context.Context, reg models.UserRegistration) (*models.RegistrationResult, error) {
	const op = "user.Register"

	taken, err := s.repo.EmailTaken(ctx, models.KindUser, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	}

	digest, err := password.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u := reg.User(digest)
	id, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &models.RegistrationResult{AccountID: id, VerificationEmailSent: true}
	if err = s.verifier.Issue(ctx, u.Role, id, u.Email, u.FirstName); err != nil {
		s.log.Warn("verification email not sent",
			sl.Op(op), slog.String("user_id", id), sl.Err(err))
		res.VerificationEmailSent = false
	}
	return res, nil
}

// Profile returns the account with its bookings, most recent first.
func (s *Service) Profile(ctx context.Context, id string) (*models.User, error) {
	const op = "user.Profile"

	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bookings, err := s.repo.ListBookings(ctx, models.KindUser, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Bookings = bookings
	return u, nil
}
