// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Data source errors.
	ErrFetchFailed = errors.New("failed to fetch data")
	ErrNotFound    = errors.New("not found")

	// Domain value errors.
	ErrUnknownCategory        = errors.New("unknown category")
	ErrInvalidSortField       = errors.New("invalid sort field")
	ErrInvalidSortDirection   = errors.New("invalid sort direction")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UnknownErrorMessage is shown when a failure carries no message of its own.
const UnknownErrorMessage = "Unknown error"

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// ErrorMessage returns a human-readable message for err, falling back to
// UnknownErrorMessage when err is nil or has an empty message.
func ErrorMessage(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
