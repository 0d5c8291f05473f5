package repository

import (
	"context"

	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// CreateUser stores a student or parent account and returns its id.
func (s *Storage) CreateUser(ctx context.Context, u models.User) (string, error) {
	const op = "storage.CreateUser"

	query := `INSERT INTO users (first_name, last_name, phone_number, username, email, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var id string
	if err := s.db.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.PhoneNumber, u.UserName, u.Email, u.PasswordHash, u.Role,
	).Scan(&id); err != nil {
		return "", wrap(op, err)
	}
	return id, nil
}

// GetUser returns the user with id, without the password digest.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUser"

	query := `SELECT id, first_name, last_name, phone_number, username, email, role, verified,
				  created_at, updated_at
			  FROM users
			  WHERE id = $1`
	var u models.User
	if err := s.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.UserName, &u.Email, &u.Role, &u.Verified,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, wrap(op, err)
	}
	return &u, nil
}
