package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) EmailTaken(ctx context.Context, kind models.AccountKind, email string) (bool, error) {
	args := m.Called(ctx, kind, email)
	return args.Bool(0), args.Error(1)
}

func (m *RepositoryMock) CreateUser(ctx context.Context, u models.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *RepositoryMock) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepositoryMock) ListBookings(ctx context.Context, kind models.AccountKind, accountID string) ([]models.Booking, error) {
	args := m.Called(ctx, kind, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type VerifierMock struct {
	mock.Mock
}

func (m *VerifierMock) Issue(ctx context.Context, role models.Role, accountID, email, firstName string) error {
	return m.Called(ctx, role, accountID, email, firstName).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

const userID = "8a1f0e2d-3c4b-4a59-8d7e-6f5a4b3c2d1e"

func TestService_Register(t *testing.T) {
	reg := models.UserRegistration{
		FirstName: "Kofi", LastName: "Boateng", PhoneNumber: "+233", UserName: "kofi",
		Email: "kofi@example.com", Password: "secret123",
	}

	t.Run("defaults to student", func(t *testing.T) {
		repo := new(RepositoryMock)
		verifier := new(VerifierMock)
		repo.On("EmailTaken", mock.Anything, models.KindUser, "kofi@example.com").Return(false, nil)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Role == models.RoleStudent && u.PasswordHash != "" && u.PasswordHash != "secret123"
		})).Return(userID, nil)
		verifier.On("Issue", mock.Anything, models.RoleStudent, userID, "kofi@example.com", "Kofi").Return(nil)

		got, err := New(repo, verifier, newNoopLogger()).Register(context.Background(), reg)
		require.NoError(t, err)
		assert.Equal(t, &models.RegistrationResult{AccountID: userID, VerificationEmailSent: true}, got)
		repo.AssertExpectations(t)
		verifier.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(RepositoryMock)
		repo.On("EmailTaken", mock.Anything, models.KindUser, "kofi@example.com").Return(true, nil)

		_, err := New(repo, new(VerifierMock), newNoopLogger()).Register(context.Background(), reg)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("mail failure", func(t *testing.T) {
		repo := new(RepositoryMock)
		verifier := new(VerifierMock)
		parent := reg
		parent.Role = models.RoleParent
		repo.On("EmailTaken", mock.Anything, models.KindUser, "kofi@example.com").Return(false, nil)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(userID, nil)
		verifier.On("Issue", mock.Anything, models.RoleParent, userID, mock.Anything, mock.Anything).
			Return(errors.New("smtp down"))

		got, err := New(repo, verifier, newNoopLogger()).Register(context.Background(), parent)
		require.NoError(t, err)
		assert.False(t, got.VerificationEmailSent)
	})
}

func TestService_Profile(t *testing.T) {
	repo := new(RepositoryMock)
	repo.On("GetUser", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	repo.On("ListBookings", mock.Anything, models.KindUser, userID).Return([]models.Booking{{ID: "b-1"}}, nil)

	got, err := New(repo, nil, newNoopLogger()).Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got.Bookings, 1)

	_, err = New(repo, nil, newNoopLogger()).Profile(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
