// Package repository is the PostgreSQL credential and profile store: teachers,
// users, bookings and e-mail verification tokens.
//
// Every method wraps its failures with the operation name. A missing row is
// reported as apperr.ErrNotFound and a unique index violation as apperr.ErrConflict,
// so callers never look at pgx errors directly.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// DBTX is the part of *pgxpool.Pool the repository uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var _ DBTX = (*pgxpool.Pool)(nil)

// Storage runs queries against PostgreSQL.
type Storage struct {
	db DBTX
}

// New wraps an open pool.
func New(db DBTX) *Storage {
	return &Storage{db: db}
}

// Connect opens a pool for connString and checks that the server answers.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	const op = "storage.Connect"

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pool, nil
}

// Ping reports whether the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// wrap classifies err for callers outside the package.
func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w (%s)", op, apperr.ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// table maps an account kind to its table. The result is never user input.
func table(kind models.AccountKind) (string, error) {
	switch kind {
	case models.KindTeacher:
		return "teachers", nil
	case models.KindUser:
		return "users", nil
	default:
		return "", fmt.Errorf("unknown account kind %q", kind)
	}
}

// EmailTaken reports whether an account of kind already uses email.
func (s *Storage) EmailTaken(ctx context.Context, kind models.AccountKind, email string) (bool, error) {
	const op = "storage.EmailTaken"

	tbl, err := table(kind)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + tbl + ` WHERE email = $1)`
	if err = s.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, wrap(op, err)
	}
	return exists, nil
}

// Credentials finds the account of kind whose userName or email matches.
// Empty identifiers never match.
func (s *Storage) Credentials(ctx context.Context, kind models.AccountKind, userName, email string) (*models.Credentials, error) {
	const op = "storage.Credentials"

	tbl, err := table(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	query := `SELECT id, username, email, password_hash, role, first_name, last_name
			  FROM ` + tbl + `
			  WHERE ($1 <> '' AND username = $1) OR ($2 <> '' AND email = $2)
			  LIMIT 1`
	var c models.Credentials
	if err = s.db.QueryRow(ctx, query, userName, email).Scan(
		&c.ID, &c.UserName, &c.Email, &c.PasswordHash, &c.Role, &c.FirstName, &c.LastName,
	); err != nil {
		return nil, wrap(op, err)
	}
	return &c, nil
}

// MarkVerified flags the account as having confirmed its e-mail address.
func (s *Storage) MarkVerified(ctx context.Context, kind models.AccountKind, accountID string) error {
	const op = "storage.MarkVerified"

	tbl, err := table(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE `+tbl+` SET verified = TRUE, updated_at = NOW() WHERE id = $1`, accountID)
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return nil
}
