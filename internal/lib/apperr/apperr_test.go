package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("services.search.BuildFilter: %w", NewValidation("costMin", "field %s must be a number", "costMin"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "services.search.BuildFilter: field costMin must be a number", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "costMin", ve.Field)
}

func TestIsUnexpected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "not found", err: fmt.Errorf("storage.GetTeacher: %w", ErrNotFound), want: false},
		{name: "conflict", err: ErrConflict, want: false},
		{name: "token", err: fmt.Errorf("jwt.ParseToken: %w", ErrTokenInvalid), want: false},
		{name: "validation", err: NewValidation("email", "field email is a required field"), want: false},
		{name: "infra", err: errors.New("dial tcp: connection refused"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnexpected(tt.err))
		})
	}
}
