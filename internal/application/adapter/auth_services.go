package adapter

import (
	"context"
	"time"
)

// UserType distinguishes the shared-credential admin session from the
// credential-less trial session.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeTrial UserType = "trial"
)

// PasswordService defines the interface for shared-credential verification.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a stored hash.
	// Returns an error when they do not match.
	VerifyPassword(hashedPassword, password string) error
}

// SessionClaims carries the validated contents of a session token.
type SessionClaims struct {
	SessionID string
	UserType  UserType
}

// TokenService defines the interface for session token generation and validation.
type TokenService interface {
	// GenerateSessionToken creates a signed session token and registers the
	// session so it can be revoked on logout.
	GenerateSessionToken(ctx context.Context, userType UserType) (string, error)

	// ValidateSessionToken verifies the token signature and checks the
	// session is still registered.
	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)

	// RevokeSession removes a session from the registry.
	RevokeSession(ctx context.Context, sessionID string) error
}

// SessionStore defines the interface for the session registry.
type SessionStore interface {
	// Save registers a session ID for the given user type with a TTL.
	Save(ctx context.Context, sessionID string, userType UserType, ttl time.Duration) error

	// Get returns the user type of a registered session, or an error when
	// the session is unknown or expired.
	Get(ctx context.Context, sessionID string) (UserType, error)

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error
}
