package auth_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/password"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
	"github.com/magabrotheeeer/tutor-marketplace/internal/services/auth"
)

type CredentialStoreMock struct {
	mock.Mock
}

func (m *CredentialStoreMock) Credentials(ctx context.Context, kind models.AccountKind, userName, email string) (*models.Credentials, error) {
	args := m.Called(ctx, kind, userName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credentials), args.Error(1)
}

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Create(ctx context.Context, ref models.SessionRef) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *SessionStoreMock) Get(ctx context.Context, id string) (*models.SessionRef, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.SessionRef), args.Bool(1), args.Error(2)
}

func (m *SessionStoreMock) Destroy(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

const rawPassword = "correct-horse"

func credentials(t *testing.T) *models.Credentials {
	t.Helper()
	digest, err := password.Hash(rawPassword)
	require.NoError(t, err)
	return &models.Credentials{
		ID: "t-1", UserName: "ama", Email: "ama@example.com", PasswordHash: digest,
		Role: models.RoleTeacher, FirstName: "Ama", LastName: "Mensah",
	}
}

func TestService_Authenticate(t *testing.T) {
	creds := credentials(t)

	tests := []struct {
		name    string
		login   models.Login
		setup   func(m *CredentialStoreMock)
		wantErr error
	}{
		{
			name:  "by userName",
			login: models.Login{UserName: "ama", Password: rawPassword},
			setup: func(m *CredentialStoreMock) {
				m.On("Credentials", mock.Anything, models.KindTeacher, "ama", "").Return(creds, nil)
			},
		},
		{
			name:  "by email",
			login: models.Login{Email: "ama@example.com", Password: rawPassword},
			setup: func(m *CredentialStoreMock) {
				m.On("Credentials", mock.Anything, models.KindTeacher, "", "ama@example.com").Return(creds, nil)
			},
		},
		{
			name:  "wrong password",
			login: models.Login{UserName: "ama", Password: "wrong"},
			setup: func(m *CredentialStoreMock) {
				m.On("Credentials", mock.Anything, models.KindTeacher, "ama", "").Return(creds, nil)
			},
			wantErr: apperr.ErrInvalidCredentials,
		},
		{
			name:  "unknown account",
			login: models.Login{UserName: "ghost", Password: rawPassword},
			setup: func(m *CredentialStoreMock) {
				m.On("Credentials", mock.Anything, models.KindTeacher, "ghost", "").
					Return(nil, fmt.Errorf("storage.Credentials: %w", apperr.ErrNotFound))
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(CredentialStoreMock)
			tt.setup(store)
			svc := auth.New(store, new(SessionStoreMock), jwt.NewJWTMaker("secret"), time.Hour)

			got, err := svc.Authenticate(context.Background(), models.KindTeacher, tt.login)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "t-1", got.ID)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestService_StartSession(t *testing.T) {
	creds := credentials(t)

	t.Run("success", func(t *testing.T) {
		store := new(CredentialStoreMock)
		sessions := new(SessionStoreMock)
		store.On("Credentials", mock.Anything, models.KindTeacher, "ama", "").Return(creds, nil)
		sessions.On("Create", mock.Anything, models.SessionRef{AccountID: "t-1", Role: models.RoleTeacher}).
			Return("sid", nil)

		svc := auth.New(store, sessions, jwt.NewJWTMaker("secret"), time.Hour)
		id, summary, err := svc.StartSession(context.Background(), models.KindTeacher,
			models.Login{UserName: "ama", Password: rawPassword})

		require.NoError(t, err)
		assert.Equal(t, "sid", id)
		assert.Equal(t, models.Summary{FirstName: "Ama", LastName: "Mensah", UserName: "ama"}, summary)
		sessions.AssertExpectations(t)
	})

	t.Run("wrong password creates no session", func(t *testing.T) {
		store := new(CredentialStoreMock)
		sessions := new(SessionStoreMock)
		store.On("Credentials", mock.Anything, models.KindTeacher, "ama", "").Return(creds, nil)

		svc := auth.New(store, sessions, jwt.NewJWTMaker("secret"), time.Hour)
		_, _, err := svc.StartSession(context.Background(), models.KindTeacher,
			models.Login{UserName: "ama", Password: "nope"})

		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is unexpected", func(t *testing.T) {
		store := new(CredentialStoreMock)
		sessions := new(SessionStoreMock)
		store.On("Credentials", mock.Anything, models.KindTeacher, "ama", "").Return(creds, nil)
		sessions.On("Create", mock.Anything, mock.Anything).Return("", errors.New("redis down"))

		svc := auth.New(store, sessions, jwt.NewJWTMaker("secret"), time.Hour)
		_, _, err := svc.StartSession(context.Background(), models.KindTeacher,
			models.Login{UserName: "ama", Password: rawPassword})

		require.Error(t, err)
		assert.True(t, apperr.IsUnexpected(err))
	})
}

func TestService_IssueAndVerifyToken(t *testing.T) {
	creds := credentials(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	maker := jwt.NewJWTMaker("secret", jwt.WithClock(func() time.Time { return clock }))

	store := new(CredentialStoreMock)
	store.On("Credentials", mock.Anything, models.KindTeacher, "", "ama@example.com").Return(creds, nil)

	svc := auth.New(store, new(SessionStoreMock), maker, 48*time.Hour)
	token, summary, err := svc.IssueToken(context.Background(), models.KindTeacher,
		models.Login{Email: "ama@example.com", Password: rawPassword})
	require.NoError(t, err)
	assert.Equal(t, "ama", summary.UserName)

	id, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{AccountID: "t-1", Role: models.RoleTeacher, Method: models.AuthMethodToken}, id)

	clock = now.Add(48*time.Hour - time.Second)
	_, err = svc.VerifyToken(token)
	assert.NoError(t, err, "valid until the expiry instant")

	clock = now.Add(48 * time.Hour)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperr.ErrTokenInvalid, "invalid at the expiry instant")
}

func TestService_VerifyToken_RejectsVerificationAudience(t *testing.T) {
	maker := jwt.NewJWTMaker("secret")
	token, err := maker.GenerateToken("t-1", "teacher", jwt.AudienceEmailVerification, time.Hour)
	require.NoError(t, err)

	svc := auth.New(new(CredentialStoreMock), new(SessionStoreMock), maker, time.Hour)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperr.ErrTokenInvalid)
}

func TestService_ResolveSession(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *SessionStoreMock)
		wantFound bool
		wantErr   bool
	}{
		{
			name: "bound session",
			setup: func(m *SessionStoreMock) {
				m.On("Get", mock.Anything, "sid").
					Return(&models.SessionRef{AccountID: "u-1", Role: models.RoleParent}, true, nil)
			},
			wantFound: true,
		},
		{
			name: "unknown session",
			setup: func(m *SessionStoreMock) {
				m.On("Get", mock.Anything, "sid").Return(nil, false, nil)
			},
		},
		{
			name: "store failure",
			setup: func(m *SessionStoreMock) {
				m.On("Get", mock.Anything, "sid").Return(nil, false, errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(SessionStoreMock)
			tt.setup(sessions)
			svc := auth.New(new(CredentialStoreMock), sessions, jwt.NewJWTMaker("secret"), time.Hour)

			id, found, err := svc.ResolveSession(context.Background(), "sid")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, &models.Identity{AccountID: "u-1", Role: models.RoleParent, Method: models.AuthMethodSession}, id)
			}
		})
	}
}

func TestService_EndSession(t *testing.T) {
	sessions := new(SessionStoreMock)
	sessions.On("Destroy", mock.Anything, "sid").Return(nil)

	svc := auth.New(new(CredentialStoreMock), sessions, jwt.NewJWTMaker("secret"), time.Hour)
	require.NoError(t, svc.EndSession(context.Background(), "sid"))
	sessions.AssertExpectations(t)
}
