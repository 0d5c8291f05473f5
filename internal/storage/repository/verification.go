package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// CreateVerificationToken stores the record linking token to its account.
func (s *Storage) CreateVerificationToken(ctx context.Context, vt models.VerificationToken) error {
	const op = "storage.CreateVerificationToken"

	_, err := s.db.Exec(ctx,
		`INSERT INTO verification_tokens (account_id, account_kind, token, expires_at)
		 VALUES ($1, $2, $3, $4)`,
		vt.AccountID, vt.AccountKind, vt.Token, vt.ExpiresAt)
	if err != nil {
		return wrap(op, err)
	}
	return nil
}

// GetVerificationToken looks a record up by the token string.
func (s *Storage) GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	const op = "storage.GetVerificationToken"

	var vt models.VerificationToken
	if err := s.db.QueryRow(ctx,
		`SELECT id, account_id, account_kind, token, expires_at, created_at
		 FROM verification_tokens
		 WHERE token = $1`, token,
	).Scan(&vt.ID, &vt.AccountID, &vt.AccountKind, &vt.Token, &vt.ExpiresAt, &vt.CreatedAt); err != nil {
		return nil, wrap(op, err)
	}
	return &vt, nil
}

// DeleteVerificationToken removes a record once it has been used.
func (s *Storage) DeleteVerificationToken(ctx context.Context, id string) error {
	const op = "storage.DeleteVerificationToken"

	tag, err := s.db.Exec(ctx, `DELETE FROM verification_tokens WHERE id = $1`, id)
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return nil
}
