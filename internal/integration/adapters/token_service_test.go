package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
)

func newTestTokenService(t *testing.T) adapter.TokenService {
	t.Helper()
	store, _ := newTestStore(t)
	return NewTokenService("test-secret", time.Hour, store)
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("generated token validates and carries the user type", func(t *testing.T) {
		svc := newTestTokenService(t)

		token, err := svc.GenerateSessionToken(ctx, adapter.UserTypeAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateSessionToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserType != adapter.UserTypeAdmin {
			t.Errorf("expected admin, got %s", claims.UserType)
		}
		if claims.SessionID == "" {
			t.Error("expected a session ID")
		}
	})

	t.Run("revoked token stops validating before expiry", func(t *testing.T) {
		svc := newTestTokenService(t)

		token, err := svc.GenerateSessionToken(ctx, adapter.UserTypeTrial)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := svc.ValidateSessionToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.RevokeSession(ctx, claims.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateSessionToken(ctx, token); err == nil {
			t.Error("expected validation to fail after revocation")
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)

		token, err := svc.GenerateSessionToken(ctx, adapter.UserTypeAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateSessionToken(ctx, token+"x"); err == nil {
			t.Error("expected a tampered token to be rejected")
		}
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)
		store, _ := newTestStore(t)
		other := NewTokenService("other-secret", time.Hour, store)

		token, err := other.GenerateSessionToken(ctx, adapter.UserTypeAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateSessionToken(ctx, token); err == nil {
			t.Error("expected the token to be rejected")
		}
	})

	t.Run("garbage input is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)
		if _, err := svc.ValidateSessionToken(ctx, "not-a-jwt"); err == nil {
			t.Error("expected garbage to be rejected")
		}
	})
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := svc.HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.VerifyPassword(hash, "correct horse battery staple"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := svc.HashPassword("right")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.VerifyPassword(hash, "wrong"); err == nil {
			t.Error("expected verification to fail")
		}
	})
}
