package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
)

type loginPayload struct {
	UserName string `json:"userName" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestFirst(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		payload   loginPayload
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing password",
			payload:   loginPayload{UserName: "kofi"},
			wantField: "password",
			wantMsg:   "field password is a required field",
		},
		{
			name:      "neither userName nor email",
			payload:   loginPayload{Password: "secret"},
			wantField: "userName",
			wantMsg:   "field userName is required when email is missing",
		},
		{
			name:      "multibyte password over the bcrypt limit",
			payload:   loginPayload{UserName: "kofi", Password: strings.Repeat("é", 40)},
			wantField: "password",
			wantMsg:   "field password must be at most 72 bytes long",
		},
		{
			name:      "reports only the first violation",
			payload:   loginPayload{Email: "not-an-email"},
			wantField: "email",
			wantMsg:   "field email must be a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := First(v.Struct(tt.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation))

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func TestFirst_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, First(v.Struct(loginPayload{Email: "ama@example.com", Password: "secret"})))
	assert.NoError(t, First(v.Struct(loginPayload{UserName: "kofi", Password: strings.Repeat("é", 36)})))
}

func TestFirst_PassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Equal(t, other, First(other))
}
