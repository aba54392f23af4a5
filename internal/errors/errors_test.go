package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ShuffleError
		expected string
	}{
		{
			name:     "code and message",
			err:      NewValidationError(ErrCodeLengthMismatch, "length differs"),
			expected: "[ERR_LENGTH_MISMATCH] length differs",
		},
		{
			name: "with context sorted by key",
			err: NewValidationError(ErrCodeOutOfOrder, "letter out of order").
				WithContext("index", 4).
				WithContext("char", "b"),
			expected: "[ERR_OUT_OF_ORDER] letter out of order (char=b index=4)",
		},
		{
			name:     "with cause",
			err:      NewIOError(ErrCodeFileNotFound, "cannot open word list", errors.New("no such file")),
			expected: "[ERR_FILE_NOT_FOUND] cannot open word list: no such file",
		},
		{
			name:     "no code",
			err:      &ShuffleError{Type: ErrorTypeInternal, Message: "boom"},
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestShuffleError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewIOError(ErrCodeFileUnreadable, "read failed", cause)

	wrapped := fmt.Errorf("loading: %w", err)

	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, &ShuffleError{Type: ErrorTypeIO, Code: ErrCodeFileUnreadable})
	assert.NotErrorIs(t, wrapped, &ShuffleError{Type: ErrorTypeIO, Code: ErrCodeFileNotFound})

	var se *ShuffleError
	require.ErrorAs(t, wrapped, &se)
	assert.Equal(t, "read failed", se.Message)
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewConfigError(ErrCodeConfigInvalid, "bad strategy"))

	assert.True(t, HasCode(err, ErrCodeConfigInvalid))
	assert.False(t, HasCode(err, ErrCodeInternalError))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeConfigInvalid))
	assert.False(t, HasCode(nil, ErrCodeConfigInvalid))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError(ErrCodeWordNotAllowed, "nope")))
	assert.False(t, IsValidationError(NewInternalError(ErrCodeInternalError, "nope", nil)))
	assert.False(t, IsValidationError(errors.New("plain")))
}
