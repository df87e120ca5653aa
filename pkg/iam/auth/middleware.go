package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/interviewmate/backend/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext is the resolved identity placed in request locals
type AuthContext struct {
	UserID      kernel.UserID
	ExternalUID kernel.ExternalUID
	Email       kernel.Email
	Role        Role
}

// TokenMiddleware validates bearer tokens and exposes role guards
type TokenMiddleware struct {
	tokenService TokenService
}

// NewAuthMiddleware creates a new token middleware
func NewAuthMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header and stores the AuthContext
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "malformed header")
		}

		claims, err := m.tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(authContextKey, AuthContext{
			UserID:      claims.UserID,
			ExternalUID: claims.ExternalUID,
			Email:       claims.Email,
			Role:        claims.Role,
		})

		return c.Next()
	}
}

// RequireRole allows only the listed roles through. Must run after Authenticate.
func (m *TokenMiddleware) RequireRole(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}

		for _, r := range roles {
			if authCtx.Role == r {
				return c.Next()
			}
		}

		return ErrForbiddenRole().WithDetail("role", authCtx.Role)
	}
}

// GetAuthContext extracts the authenticated identity from request locals
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(AuthContext)
	return authCtx, ok
}
