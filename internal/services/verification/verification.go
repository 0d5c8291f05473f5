// Package verification issues and confirms e-mail verification tokens.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Repository stores verification records and flips the verified flag.
type Repository interface {
	CreateVerificationToken(ctx context.Context, vt models.VerificationToken) error
	GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error)
	DeleteVerificationToken(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, kind models.AccountKind, accountID string) error
}

// Mailer delivers the verification link.
type Mailer interface {
	SendVerification(ctx context.Context, to, firstName, token string) error
}

// Service runs the e-mail verification flow.
type Service struct {
	repo     Repository
	jwtMaker jwt.Maker
	mailer   Mailer
	ttl      time.Duration
	now      func() time.Time
}

// New creates a Service whose tokens expire ttl after issue.
func New(repo Repository, jwtMaker jwt.Maker, mailer Mailer, ttl time.Duration) *Service {
	return &Service{
		repo:     repo,
		jwtMaker: jwtMaker,
		mailer:   mailer,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue signs a verification token for the account, records it and mails the link.
// The record is kept when only the mail fails, so the token stays redeemable.
func (s *Service) Issue(ctx context.Context, role models.Role, accountID, email, firstName string) error {
	const op = "verification.Issue"

	token, err := s.jwtMaker.GenerateToken(accountID, string(role), jwt.AudienceEmailVerification, s.ttl)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.CreateVerificationToken(ctx, models.VerificationToken{
		AccountID:   accountID,
		AccountKind: role.Kind(),
		Token:       token,
		ExpiresAt:   s.now().Add(s.ttl),
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.mailer.SendVerification(ctx, email, firstName, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Confirm redeems token: the account is marked verified and the record removed.
func (s *Service) Confirm(ctx context.Context, token string) error {
	const op = "verification.Confirm"

	claims, err := s.jwtMaker.ParseToken(token, jwt.AudienceEmailVerification)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	vt, err := s.repo.GetVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if vt.AccountID != claims.SubjectID() {
		return fmt.Errorf("%s: %w", op, apperr.ErrTokenInvalid)
	}
	if err = s.repo.MarkVerified(ctx, vt.AccountKind, vt.AccountID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.DeleteVerificationToken(ctx, vt.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
