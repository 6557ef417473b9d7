package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// SessionClaims represents the custom claims for session tokens.
type SessionClaims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. Tokens are
// signed JWTs whose jti is registered in the session store, so logout
// revokes a token before its expiry.
type tokenService struct {
	secret       []byte
	sessionTTL   time.Duration
	sessionStore adapter.SessionStore
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, sessionTTL time.Duration, sessionStore adapter.SessionStore) adapter.TokenService {
	return &tokenService{
		secret:       []byte(secret),
		sessionTTL:   sessionTTL,
		sessionStore: sessionStore,
	}
}

// GenerateSessionToken creates and registers a new session token.
func (s *tokenService) GenerateSessionToken(ctx context.Context, userType adapter.UserType) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now().UTC()

	claims := SessionClaims{
		UserType: string(userType),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.sessionStore.Save(ctx, sessionID, userType, s.sessionTTL); err != nil {
		return "", fmt.Errorf("failed to register session: %w", err)
	}

	return token, nil
}

// ValidateSessionToken verifies the signature and the session registration.
func (s *tokenService) ValidateSessionToken(ctx context.Context, tokenString string) (*adapter.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.ID == "" {
		return nil, domainerror.ErrInvalidToken
	}

	userType, err := s.sessionStore.Get(ctx, claims.ID)
	if err != nil {
		return nil, domainerror.ErrSessionNotFound
	}

	return &adapter.SessionClaims{
		SessionID: claims.ID,
		UserType:  userType,
	}, nil
}

// RevokeSession removes a session from the registry.
func (s *tokenService) RevokeSession(ctx context.Context, sessionID string) error {
	return s.sessionStore.Delete(ctx, sessionID)
}
