package list

import (
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

	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, limit, offset int) ([]models.Teacher, error) {
	args := m.Called(ctx, limit, offset)
	ts, _ := args.Get(0).([]models.Teacher)
	return ts, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListHandler_ServeHTTP(t *testing.T) {
	page := []models.Teacher{{ID: "t-1", UserName: "ama"}, {ID: "t-2", UserName: "kofi"}}

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		mockRes    []models.Teacher
		mockErr    error
		wantStatus int
		wantCount  int
		wantError  string
	}{
		{name: "defaults", query: "", wantLimit: 10, wantOffset: 0, mockRes: page, wantStatus: http.StatusOK, wantCount: 2},
		{name: "explicit page", query: "?limit=5&offset=20", wantLimit: 5, wantOffset: 20, mockRes: page[:1], wantStatus: http.StatusOK, wantCount: 1},
		{name: "limit capped", query: "?limit=1000", wantLimit: 100, mockRes: page, wantStatus: http.StatusOK, wantCount: 2},
		{name: "zero limit uses default", query: "?limit=0", wantLimit: 10, mockRes: page, wantStatus: http.StatusOK, wantCount: 2},
		{name: "empty catalogue", wantLimit: 10, wantStatus: http.StatusOK, wantCount: 0},
		{name: "bad limit", query: "?limit=ten", wantStatus: http.StatusUnprocessableEntity, wantError: "field limit must be a non-negative integer"},
		{name: "negative offset", query: "?offset=-1", wantStatus: http.StatusUnprocessableEntity, wantError: "field offset must be a non-negative integer"},
		{name: "store failure", wantLimit: 10, mockErr: errors.New("timeout"), wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.wantLimit != 0 {
				svc.On("List", mock.Anything, tt.wantLimit, tt.wantOffset).Return(tt.mockRes, tt.mockErr).Once()
			}

			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teachers"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Len(t, got["data"].([]any), tt.wantCount)
			}
			svc.AssertExpectations(t)
		})
	}
}
