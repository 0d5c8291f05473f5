package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
)

// Claims is the token payload. RegisteredClaims.Subject holds the account id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SubjectID returns the account id the token was issued for.
func (c *Claims) SubjectID() string {
	return c.Subject
}

// GenerateToken signs a token for subjectID valid for ttl.
func (m *MakerImpl) GenerateToken(subjectID, role, audience string, ttl time.Duration) (string, error) {
	const op = "jwt.GenerateToken"
	now := m.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken verifies tokenStr and returns its claims. Any failure wraps apperr.ErrTokenInvalid.
func (m *MakerImpl) ParseToken(tokenStr, audience string) (*Claims, error) {
	const op = "jwt.ParseToken"
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w (%v)", op, apperr.ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenInvalid)
	}
	return claims, nil
}
