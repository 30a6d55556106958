package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "nil error", err: nil, want: UnknownErrorMessage},
		{name: "empty message", err: emptyError{}, want: UnknownErrorMessage},
		{name: "plain error", err: ErrFetchFailed, want: "failed to fetch data"},
		{name: "wrapped error", err: fmt.Errorf("transactions: %w", ErrFetchFailed), want: "transactions: failed to fetch data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	err := NewUserError("Could not load transactions", ErrFetchFailed)

	assert.Equal(t, "Could not load transactions: failed to fetch data", err.Error())
	assert.True(t, errors.Is(err, ErrFetchFailed))

	var userErr *UserError
	assert.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Could not load transactions", userErr.UserMessage)

	bare := NewUserError("nothing to show", nil)
	assert.Equal(t, "nothing to show", bare.Error())
}
