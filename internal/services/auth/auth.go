// Package auth implements the login flows and resolves the credentials the
// Auth Gate sees: session ids and bearer tokens.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/password"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// CredentialStore looks accounts up by userName or email.
type CredentialStore interface {
	Credentials(ctx context.Context, kind models.AccountKind, userName, email string) (*models.Credentials, error)
}

// SessionStore keeps server-side sessions.
type SessionStore interface {
	Create(ctx context.Context, ref models.SessionRef) (string, error)
	Get(ctx context.Context, id string) (*models.SessionRef, bool, error)
	Destroy(ctx context.Context, id string) error
}

// Service authenticates accounts and hands out sessions and access tokens.
type Service struct {
	creds     CredentialStore
	sessions  SessionStore
	jwtMaker  jwt.Maker
	accessTTL time.Duration
}

// New creates a Service. Access tokens live for accessTTL.
func New(creds CredentialStore, sessions SessionStore, jwtMaker jwt.Maker, accessTTL time.Duration) *Service {
	return &Service{
		creds:     creds,
		sessions:  sessions,
		jwtMaker:  jwtMaker,
		accessTTL: accessTTL,
	}
}

// Authenticate checks the password of the account of kind named by login.
// An unknown account yields apperr.ErrNotFound, a wrong password
// apperr.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, kind models.AccountKind, login models.Login) (*models.Credentials, error) {
	const op = "auth.Authenticate"

	c, err := s.creds.Credentials(ctx, kind, login.UserName, login.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !password.Verify(login.Password, c.PasswordHash) {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	return c, nil
}

// StartSession authenticates and binds a new session to the account.
func (s *Service) StartSession(ctx context.Context, kind models.AccountKind, login models.Login) (string, models.Summary, error) {
	const op = "auth.StartSession"

	c, err := s.Authenticate(ctx, kind, login)
	if err != nil {
		return "", models.Summary{}, err
	}
	id, err := s.sessions.Create(ctx, models.SessionRef{AccountID: c.ID, Role: c.Role})
	if err != nil {
		return "", models.Summary{}, fmt.Errorf("%s: %w", op, err)
	}
	return id, c.Summary(), nil
}

// IssueToken authenticates and signs an access token for the account.
func (s *Service) IssueToken(ctx context.Context, kind models.AccountKind, login models.Login) (string, models.Summary, error) {
	const op = "auth.IssueToken"

	c, err := s.Authenticate(ctx, kind, login)
	if err != nil {
		return "", models.Summary{}, err
	}
	token, err := s.jwtMaker.GenerateToken(c.ID, string(c.Role), jwt.AudienceAccess, s.accessTTL)
	if err != nil {
		return "", models.Summary{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, c.Summary(), nil
}

// EndSession destroys the session, if any.
func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	const op = "auth.EndSession"
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResolveSession maps a session id to the identity bound to it.
// Unknown and expired sessions yield found == false.
func (s *Service) ResolveSession(ctx context.Context, sessionID string) (*models.Identity, bool, error) {
	const op = "auth.ResolveSession"

	ref, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, false, nil
	}
	return &models.Identity{
		AccountID: ref.AccountID,
		Role:      ref.Role,
		Method:    models.AuthMethodSession,
	}, true, nil
}

// VerifyToken checks an access token. Every failure wraps apperr.ErrTokenInvalid.
func (s *Service) VerifyToken(token string) (*models.Identity, error) {
	const op = "auth.VerifyToken"

	claims, err := s.jwtMaker.ParseToken(token, jwt.AudienceAccess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Identity{
		AccountID: claims.SubjectID(),
		Role:      models.Role(claims.Role),
		Method:    models.AuthMethodToken,
	}, nil
}
