// Package booking lets students and parents book sessions with teachers.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Repository stores bookings and resolves the booked teacher.
type Repository interface {
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error)
}

// Service holds the booking use cases.
type Service struct {
	repo Repository
}

// New creates a Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create books a pending session for caller with the requested teacher.
func (s *Service) Create(ctx context.Context, caller models.Identity, req models.BookingRequest) (*models.Booking, error) {
	const op = "booking.Create"

	if !caller.Role.IsLearner() {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrForbidden)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if uuid.Validate(req.TeacherID) != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	if _, err = s.repo.GetTeacher(ctx, req.TeacherID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.repo.CreateBooking(ctx, models.Booking{
		UserID:    caller.AccountID,
		TeacherID: req.TeacherID,
		Timeslot:  req.Timeslot,
		Grade:     req.Grade,
		Date:      date,
		Area:      req.Area,
		Subject:   req.Subject,
		Status:    models.BookingPending,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.NewValidation("date", "field date must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
}
