package create

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

const teacherID = "6f1c2a9e-1d4b-4c1e-9a7f-0e2b3c4d5e6f"

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, caller models.Identity, req models.BookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, caller, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	student := models.Identity{AccountID: "u-1", Role: models.RoleStudent, Method: models.AuthMethodSession}
	valid := models.BookingRequest{
		TeacherID: teacherID,
		Timeslot:  models.Slot{Day: "Monday", StartTime: "10:00", EndTime: "11:00"},
		Grade:     "JHS1",
		Date:      "2025-03-10",
		Area:      "Accra",
		Subject:   "Math",
	}

	tests := []struct {
		name       string
		identity   *models.Identity
		mutate     func(r *models.BookingRequest)
		mockCall   bool
		mockRes    *models.Booking
		mockErr    error
		wantStatus int
		wantError  string
	}{
		{
			name:     "booked",
			identity: &student,
			mockCall: true,
			mockRes: &models.Booking{
				ID: "b-1", UserID: "u-1", TeacherID: teacherID, Status: models.BookingPending,
				Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous",
			wantStatus: http.StatusUnauthorized,
			wantError:  "user not authenticated",
		},
		{
			name:       "teacher id not a uuid",
			identity:   &student,
			mutate:     func(r *models.BookingRequest) { r.TeacherID = "42" },
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field teacher can contain only uuid",
		},
		{
			name:       "missing subject",
			identity:   &student,
			mutate:     func(r *models.BookingRequest) { r.Subject = "" },
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field subject is a required field",
		},
		{
			name:       "teacher caller",
			identity:   &models.Identity{AccountID: teacherID, Role: models.RoleTeacher},
			mockCall:   true,
			mockErr:    fmt.Errorf("booking.Create: %w", apperr.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantError:  "only students and parents can book",
		},
		{
			name:       "unknown teacher",
			identity:   &student,
			mockCall:   true,
			mockErr:    fmt.Errorf("booking.Create: %w", apperr.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "teacher not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			svc := new(MockService)
			if tt.mockCall {
				svc.On("Create", mock.Anything, *tt.identity, req).Return(tt.mockRes, tt.mockErr).Once()
			}

			body, err := json.Marshal(req)
			require.NoError(t, err)
			r := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
			if tt.identity != nil {
				r = r.WithContext(middlewarectx.WithIdentity(r.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				data := got["data"].(map[string]any)
				assert.Equal(t, "pending", data["status"])
				assert.Equal(t, teacherID, data["teacher"])
			}
			svc.AssertExpectations(t)
		})
	}
}
