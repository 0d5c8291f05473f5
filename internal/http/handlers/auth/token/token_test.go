package token

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) IssueToken(ctx context.Context, kind models.AccountKind, login models.Login) (string, models.Summary, error) {
	args := m.Called(ctx, kind, login)
	return args.String(0), args.Get(1).(models.Summary), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTokenHandler_ServeHTTP(t *testing.T) {
	login := models.Login{UserName: "ama", Password: "secret1"}
	summary := models.Summary{FirstName: "Ama", LastName: "Mensah", UserName: "ama"}

	tests := []struct {
		name       string
		body       string
		mockToken  string
		mockErr    error
		mockCall   bool
		wantStatus int
		wantError  string
	}{
		{name: "success", body: `{"userName":"ama","password":"secret1"}`, mockCall: true, mockToken: "jwt.token.value", wantStatus: http.StatusOK},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
		{name: "password too long", body: `{"userName":"ama","password":"` + string(bytes.Repeat([]byte("a"), 73)) + `"}`, wantStatus: http.StatusUnprocessableEntity, wantError: "field password must be at most 72 long"},
		{name: "unknown user", body: `{"userName":"ama","password":"secret1"}`, mockCall: true, mockErr: apperr.ErrNotFound, wantStatus: http.StatusUnauthorized, wantError: "user not found"},
		{name: "wrong password", body: `{"userName":"ama","password":"secret1"}`, mockCall: true, mockErr: apperr.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantError: "invalid credentials"},
		{name: "signing failure", body: `{"userName":"ama","password":"secret1"}`, mockCall: true, mockErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.mockCall {
				svc.On("IssueToken", mock.Anything, models.KindTeacher, login).Return(tt.mockToken, summary, tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), svc, models.KindTeacher)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/token", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				data := got["data"].(map[string]any)
				assert.Equal(t, tt.mockToken, data["accessToken"])
				assert.Equal(t, "User logged in successfully", data["message"])
				assert.Equal(t, "Ama", data["user"].(map[string]any)["firstName"])
			}
			assert.Empty(t, rec.Result().Cookies())
			svc.AssertExpectations(t)
		})
	}
}
