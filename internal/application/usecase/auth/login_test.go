// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

type fakePasswordService struct {
	verifyErr error
}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hash, password string) error {
	return s.verifyErr
}

type fakeTokenService struct {
	token       string
	generateErr error
	lastType    adapter.UserType
	revoked     []string
}

func (s *fakeTokenService) GenerateSessionToken(ctx context.Context, userType adapter.UserType) (string, error) {
	s.lastType = userType
	return s.token, s.generateErr
}

func (s *fakeTokenService) ValidateSessionToken(ctx context.Context, token string) (*adapter.SessionClaims, error) {
	return &adapter.SessionClaims{SessionID: "sid", UserType: s.lastType}, nil
}

func (s *fakeTokenService) RevokeSession(ctx context.Context, sessionID string) error {
	s.revoked = append(s.revoked, sessionID)
	return nil
}

func TestLoginUseCase(t *testing.T) {
	t.Run("correct password yields an admin session", func(t *testing.T) {
		tokens := &fakeTokenService{token: "tok-1"}
		uc := NewLoginUseCase("some-bcrypt-hash", &fakePasswordService{}, tokens)

		output, err := uc.Execute(context.Background(), LoginInput{Password: "s3cret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Token != "tok-1" {
			t.Errorf("expected tok-1, got %s", output.Token)
		}
		if output.UserType != adapter.UserTypeAdmin {
			t.Errorf("expected admin session, got %s", output.UserType)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		uc := NewLoginUseCase(
			"some-bcrypt-hash",
			&fakePasswordService{verifyErr: errors.New("mismatch")},
			&fakeTokenService{token: "tok-1"},
		)

		_, err := uc.Execute(context.Background(), LoginInput{Password: "wrong"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
		}
	})

	t.Run("trial mode skips the credential", func(t *testing.T) {
		tokens := &fakeTokenService{token: "tok-trial"}
		uc := NewLoginUseCase(
			"some-bcrypt-hash",
			&fakePasswordService{verifyErr: errors.New("should not be called")},
			tokens,
		)

		output, err := uc.Execute(context.Background(), LoginInput{Trial: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.UserType != adapter.UserTypeTrial {
			t.Errorf("expected trial session, got %s", output.UserType)
		}
		if tokens.lastType != adapter.UserTypeTrial {
			t.Errorf("expected a trial token, got %s", tokens.lastType)
		}
	})

	t.Run("missing password hash is a configuration error", func(t *testing.T) {
		uc := NewLoginUseCase("", &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), LoginInput{Password: "anything"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodePasswordNotConfigured {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePasswordNotConfigured, authErr.Code)
		}
	})
}

func TestLogoutUseCase(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		tokens := &fakeTokenService{}
		uc := NewLogoutUseCase(tokens)

		if err := uc.Execute(context.Background(), LogoutInput{SessionID: "sid-9"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tokens.revoked) != 1 || tokens.revoked[0] != "sid-9" {
			t.Errorf("expected sid-9 revoked, got %v", tokens.revoked)
		}
	})
}
