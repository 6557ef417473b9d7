// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

// LoginInput represents the input for login.
type LoginInput struct {
	Password string
	// Trial requests a credential-less trial session.
	Trial bool
}

// LoginOutput represents the output of login.
type LoginOutput struct {
	Token    string
	UserType adapter.UserType
}

// LoginUseCase verifies the shared admin credential and issues a session
// token. Trial logins skip the credential and get a trial-scoped session.
type LoginUseCase struct {
	adminPasswordHash string
	passwordService   adapter.PasswordService
	tokenService      adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	adminPasswordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		adminPasswordHash: adminPasswordHash,
		passwordService:   passwordService,
		tokenService:      tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	userType := adapter.UserTypeAdmin

	if input.Trial {
		userType = adapter.UserTypeTrial
	} else {
		if uc.adminPasswordHash == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodePasswordNotConfigured,
				"server password is not configured",
				domainerror.ErrPasswordNotConfigured,
			)
		}
		if err := uc.passwordService.VerifyPassword(uc.adminPasswordHash, input.Password); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"incorrect password",
				domainerror.ErrInvalidCredentials,
			)
		}
	}

	token, err := uc.tokenService.GenerateSessionToken(ctx, userType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &LoginOutput{Token: token, UserType: userType}, nil
}
