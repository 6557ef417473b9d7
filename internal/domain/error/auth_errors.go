// Package error defines domain-specific errors for the accounts backend.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when the shared password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordNotConfigured is returned when no admin password hash is set.
	ErrPasswordNotConfigured = errors.New("server password is not configured")

	// ErrInvalidToken is returned when a session token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionNotFound is returned when a session has been revoked or expired.
	ErrSessionNotFound = errors.New("session not found")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidCredentials    AuthErrorCode = "AUTH-010001"
	ErrCodePasswordNotConfigured AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited           AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeInvalidToken  AuthErrorCode = "AUTH-020001"
	ErrCodeMissingToken  AuthErrorCode = "AUTH-020002"
	ErrCodeTrialReadOnly AuthErrorCode = "AUTH-020003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
