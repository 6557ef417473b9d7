package auth

import (
	"context"
	"fmt"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	// SessionID comes from the validated token of the current request.
	SessionID string
}

// LogoutUseCase revokes the current session so the token stops working.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if err := uc.tokenService.RevokeSession(ctx, input.SessionID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
