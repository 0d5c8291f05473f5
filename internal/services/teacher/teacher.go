// Package teacher implements registration, profile, catalogue and update
// operations for tutor accounts.
package teacher

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

// Repository is the teacher side of the credential store.
type Repository interface {
	EmailTaken(ctx context.Context, kind models.AccountKind, email string) (bool, error)
	CreateTeacher(ctx context.Context, t models.Teacher) (string, error)
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	ListTeachers(ctx context.Context, limit, offset int) ([]models.Teacher, error)
	SearchTeachers(ctx context.Context, f models.SearchFilter) ([]models.Teacher, error)
	UpdateTeacher(ctx context.Context, id string, u models.TeacherUpdate) (*models.Teacher, error)
	ListBookings(ctx context.Context, kind models.AccountKind, accountID string) ([]models.Booking, error)
}

// Verifier starts e-mail verification for a new account.
type Verifier interface {
	Issue(ctx context.Context, role models.Role, accountID, email, firstName string) error
}

// Service holds the teacher use cases.
type Service struct {
	repo     Repository
	verifier Verifier
	log      *slog.Logger
}

// New creates a Service.
func New(repo Repository, verifier Verifier, log *slog.Logger) *Service {
	return &Service{repo: repo, verifier: verifier, log: log}
}

// Register creates a teacher account from an already validated payload and
// starts e-mail verification. A verification failure is logged and reported in
// the result; the account is kept.
func (s *Service) Register(ctx context.Context, reg models.TeacherRegistration) (*models.RegistrationResult, error) {
	const op = "teacher.Register"

	taken, err := s.repo.EmailTaken(ctx, models.KindTeacher, reg.Email)
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
	id, err := s.repo.CreateTeacher(ctx, reg.Teacher(digest))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &models.RegistrationResult{AccountID: id, VerificationEmailSent: true}
	if err = s.verifier.Issue(ctx, models.RoleTeacher, id, reg.Email, reg.FirstName); err != nil {
		s.log.Warn("verification email not sent",
			sl.Op(op), slog.String("teacher_id", id), sl.Err(err))
		res.VerificationEmailSent = false
	}
	return res, nil
}

// Profile returns the teacher with its bookings, most recent first.
func (s *Service) Profile(ctx context.Context, id string) (*models.Teacher, error) {
	const op = "teacher.Profile"

	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bookings, err := s.repo.ListBookings(ctx, models.KindTeacher, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.Bookings = bookings
	return t, nil
}

// Get returns a single teacher. Ids that are not UUIDs cannot exist.
func (s *Service) Get(ctx context.Context, id string) (*models.Teacher, error) {
	const op = "teacher.Get"

	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	t, err := s.repo.GetTeacher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// List returns a page of the catalogue.
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.Teacher, error) {
	const op = "teacher.List"

	teachers, err := s.repo.ListTeachers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return teachers, nil
}

// Search returns the teachers matching f.
func (s *Service) Search(ctx context.Context, f models.SearchFilter) ([]models.Teacher, error) {
	const op = "teacher.Search"

	teachers, err := s.repo.SearchTeachers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return teachers, nil
}

// Update applies a partial update on behalf of caller. Teachers may only
// update their own profile. An unknown id is reported as not found before
// ownership is checked.
func (s *Service) Update(ctx context.Context, caller models.Identity, id string, u models.TeacherUpdate) (*models.Teacher, error) {
	const op = "teacher.Update"

	if _, err := s.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if caller.Role != models.RoleTeacher || caller.AccountID != id {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrForbidden)
	}
	if u.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", op, apperr.NewValidation("body", "no fields to update"))
	}

	t, err := s.repo.UpdateTeacher(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}
