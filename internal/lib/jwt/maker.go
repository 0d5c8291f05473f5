// Package jwt issues and verifies the signed, time-boxed tokens handed to clients.
//
// A token carries the account id as subject, the account role and an audience
// that separates access tokens from e-mail verification tokens. Verification
// failures are reported as apperr.ErrTokenInvalid no matter the cause, so a
// caller cannot tell a forged token from an expired one.
package jwt

import (
	"time"
)

// Token audiences.
const (
	AudienceAccess            = "access"
	AudienceEmailVerification = "email-verification"
)

// Maker issues and parses tokens.
type Maker interface {
	// GenerateToken signs a token for subjectID that expires ttl from now.
	GenerateToken(subjectID, role, audience string, ttl time.Duration) (string, error)
	// ParseToken verifies signature, expiry and audience and returns the claims.
	ParseToken(tokenStr, audience string) (*Claims, error)
}

// MakerImpl signs tokens with HS256 using a process-wide secret.
type MakerImpl struct {
	secretKey []byte
	now       func() time.Time
}

// Option configures a MakerImpl.
type Option func(*MakerImpl)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker creates a MakerImpl. The secret is loaded once at startup and never rotated.
func NewJWTMaker(secretKey string, opts ...Option) *MakerImpl {
	m := &MakerImpl{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
