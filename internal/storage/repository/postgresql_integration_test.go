//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/migrations"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := Connect(ctx, dsn)
	require.NoError(t, err)

	db := stdlib.OpenDBFromPool(pool)
	require.NoError(t, migrations.Run(db))

	t.Cleanup(func() {
		_ = db.Close()
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})
	return New(pool)
}

func newTeacher(userName, email string, cost float64, area ...string) models.Teacher {
	return models.Teacher{
		FirstName: "Ama", LastName: "Mensah", UserName: userName, Email: email,
		PasswordHash: "$2a$10$digest", PhoneNumber: "+233200000000",
		Subjects: []string{"Mathematics"}, Area: area, Curriculum: models.CurriculumGES,
		Grade: []string{"JHS 1"}, Experience: "5 years", TeachingMode: models.TeachingModeOnline,
		CostPerHour: cost, Qualifications: []string{"BSc"},
		Availability: []models.Slot{{Day: "Monday", StartTime: "10:00", EndTime: "12:00"}},
	}
}

func TestIntegration_TeacherLifecycle(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	id, err := s.CreateTeacher(ctx, newTeacher("ama", "ama@example.com", 40, "Accra"))
	require.NoError(t, err)

	_, err = s.CreateTeacher(ctx, newTeacher("ama", "other@example.com", 40, "Accra"))
	assert.ErrorIs(t, err, apperr.ErrConflict, "duplicate userName")

	_, err = s.CreateTeacher(ctx, newTeacher("other", "ama@example.com", 40, "Accra"))
	assert.ErrorIs(t, err, apperr.ErrConflict, "duplicate email")

	taken, err := s.EmailTaken(ctx, models.KindTeacher, "ama@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	creds, err := s.Credentials(ctx, models.KindTeacher, "ama", "")
	require.NoError(t, err)
	assert.Equal(t, id, creds.ID)
	assert.Equal(t, "$2a$10$digest", creds.PasswordHash)

	_, err = s.Credentials(ctx, models.KindTeacher, "", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound, "empty identifiers never match")

	got, err := s.GetTeacher(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
	assert.Equal(t, 40.0, got.CostPerHour)
	assert.Len(t, got.Availability, 1)

	mode := models.TeachingModeBoth
	updated, err := s.UpdateTeacher(ctx, id, models.TeacherUpdate{TeachingMode: &mode})
	require.NoError(t, err)
	assert.Equal(t, models.TeachingModeBoth, updated.TeachingMode)
	assert.Equal(t, "Ama", updated.FirstName, "absent fields stay untouched")

	require.NoError(t, s.MarkVerified(ctx, models.KindTeacher, id))
	got, err = s.GetTeacher(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Verified)
}

func TestIntegration_SearchTeachers(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	for i, tc := range []struct {
		cost float64
		area string
	}{{15, "Accra"}, {20, "Lagos"}, {35, "Abuja"}, {50, "Kumasi"}, {80, "Lagos"}} {
		_, err := s.CreateTeacher(ctx, newTeacher(
			"teacher"+string(rune('a'+i)), "t"+string(rune('a'+i))+"@example.com", tc.cost, tc.area))
		require.NoError(t, err)
	}

	lo, hi := 20.0, 50.0
	got, err := s.SearchTeachers(ctx, models.SearchFilter{Cost: &models.CostRange{Gte: &lo, Lte: &hi}})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = s.SearchTeachers(ctx, models.SearchFilter{Area: []string{"Lagos", "Abuja"}})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = s.SearchTeachers(ctx, models.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 5)

	page, err := s.ListTeachers(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestIntegration_BookingsAndVerification(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	teacherID, err := s.CreateTeacher(ctx, newTeacher("ama", "ama@example.com", 40, "Accra"))
	require.NoError(t, err)
	userID, err := s.CreateUser(ctx, models.User{
		FirstName: "Kofi", LastName: "Boateng", PhoneNumber: "+233", UserName: "kofi",
		Email: "kofi@example.com", PasswordHash: "digest", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	older := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 7)
	for _, d := range []time.Time{older, newer} {
		_, err = s.CreateBooking(ctx, models.Booking{
			UserID: userID, TeacherID: teacherID, Timeslot: models.Slot{Day: "Monday", StartTime: "10:00", EndTime: "11:00"},
			Grade: "JHS 1", Date: d, Area: "Accra", Subject: "Mathematics",
		})
		require.NoError(t, err)
	}

	bookings, err := s.ListBookings(ctx, models.KindUser, userID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.True(t, bookings[0].Date.Equal(newer), "most recent first")
	assert.Equal(t, models.BookingPending, bookings[0].Status)

	require.NoError(t, s.CreateVerificationToken(ctx, models.VerificationToken{
		AccountID: userID, AccountKind: models.KindUser, Token: "token-value", ExpiresAt: time.Now().Add(time.Hour),
	}))
	vt, err := s.GetVerificationToken(ctx, "token-value")
	require.NoError(t, err)
	assert.Equal(t, userID, vt.AccountID)
	require.NoError(t, s.DeleteVerificationToken(ctx, vt.ID))
	_, err = s.GetVerificationToken(ctx, "token-value")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
