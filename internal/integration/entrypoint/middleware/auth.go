// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionIDKey is the context key for the session identifier.
	SessionIDKey ContextKey = "session_id"
	// UserTypeKey is the context key for the session's user type.
	UserTypeKey ContextKey = "user_type"
)

// AuthMiddleware provides session token authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces a valid
// session token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateSessionToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired session",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(SessionIDKey), claims.SessionID)
		c.Set(string(UserTypeKey), claims.UserType)

		c.Next()
	}
}

// RequireWriteAccess returns a middleware that rejects mutating requests
// from trial sessions. Trial mode is browse-only.
func (m *AuthMiddleware) RequireWriteAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userType, ok := GetUserTypeFromContext(c); ok && userType == adapter.UserTypeTrial {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Trial sessions are read-only",
				Code:  string(domainerror.ErrCodeTrialReadOnly),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSessionIDFromContext extracts the session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(string(SessionIDKey))
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok
}

// GetUserTypeFromContext extracts the user type from the Gin context.
func GetUserTypeFromContext(c *gin.Context) (adapter.UserType, bool) {
	userType, exists := c.Get(string(UserTypeKey))
	if !exists {
		return "", false
	}
	t, ok := userType.(adapter.UserType)
	return t, ok
}

// IsTrialSession reports whether the current request runs under a trial
// session. Trial sessions read the trial dataset.
func IsTrialSession(c *gin.Context) bool {
	userType, ok := GetUserTypeFromContext(c)
	return ok && userType == adapter.UserTypeTrial
}
