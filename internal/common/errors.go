// Package common defines shared sentinel errors used across client and
// server layers of the bookstore. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors. ErrInvalidCredentials deliberately covers both the
	// unknown-email and wrong-password cases so the response never reveals
	// which half failed.
	ErrInvalidCredentials = errors.New("invalid login attempt")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Catalog errors.
	ErrUnknownAuthor = errors.New("unknown author")
)

// ValidationError aggregates every reason a request was rejected so the
// caller sees the full list at once (weak password and duplicate email in
// one response, the way an identity framework reports them).
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Reasons, "; "))
}

// NewValidationError builds a ValidationError from one or more reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}
