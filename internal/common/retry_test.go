package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryOptions{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     2 * time.Millisecond,
	Multiplier:   2,
}

func TestWithRetry(t *testing.T) {
	errBusy := errors.New("database is locked")

	tests := []struct {
		name      string
		failures  int
		retryable bool
		wantCalls int
		wantErr   []error
	}{
		{name: "succeeds first time", failures: 0, retryable: true, wantCalls: 1},
		{name: "succeeds after retries", failures: 2, retryable: true, wantCalls: 3},
		{name: "gives up", failures: 5, retryable: true, wantCalls: 3, wantErr: []error{ErrMaxRetries, errBusy}},
		{name: "permanent error", failures: 5, retryable: false, wantCalls: 1, wantErr: []error{errBusy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= tt.failures {
					return &RetryableError{Err: errBusy, Retryable: tt.retryable}
				}
				return nil
			}, fastRetry)

			assert.Equal(t, tt.wantCalls, calls)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestWithRetry_PermanentErrorIsUnwrapped(t *testing.T) {
	err := WithRetry(context.Background(), func() error {
		return &RetryableError{Err: ErrNotFound}
	}, fastRetry)

	require.Error(t, err)
	var retryableErr *RetryableError
	assert.False(t, errors.As(err, &retryableErr))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := WithRetry(ctx, func() error {
		calls++
		cancel()
		return errors.New("busy")
	}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Hour})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
