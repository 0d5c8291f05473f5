package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// CreateBooking stores b as pending and returns the stored record.
func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	const op = "storage.CreateBooking"

	query := `INSERT INTO bookings (user_id, teacher_id, timeslot, grade, date, area, subject, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, status, created_at, updated_at`
	if err := s.db.QueryRow(ctx, query,
		b.UserID, b.TeacherID, b.Timeslot, b.Grade, b.Date, b.Area, b.Subject, models.BookingPending,
	).Scan(&b.ID, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, wrap(op, err)
	}
	return &b, nil
}

// ListBookings returns the bookings of an account, most recent date first.
func (s *Storage) ListBookings(ctx context.Context, kind models.AccountKind, accountID string) ([]models.Booking, error) {
	const op = "storage.ListBookings"

	var column string
	switch kind {
	case models.KindTeacher:
		column = "teacher_id"
	case models.KindUser:
		column = "user_id"
	default:
		return nil, fmt.Errorf("%s: unknown account kind %q", op, kind)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, teacher_id, timeslot, grade, date, area, subject, status,
			  cancellation_reason, closure_reason, created_at, updated_at
		  FROM bookings
		  WHERE `+column+` = $1
		  ORDER BY date DESC`, accountID)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	result := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.TeacherID, &b.Timeslot, &b.Grade, &b.Date, &b.Area, &b.Subject, &b.Status,
			&b.CancellationReason, &b.ClosureReason, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}
