package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/fincalc-service/pkg/util/errorutil"
)

const (
	userIDKey    = "auth_user_id"
	userEmailKey = "auth_user_email"
)

// Identity describes the authenticated caller.
type Identity struct {
	UserID int64
	Email  string
}

// Middleware validates bearer tokens and injects the caller identity. Token
// verification requires no store access; handlers own any further lookups.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Every rejection maps
// to the same unauthorized envelope so callers cannot tell which check failed.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized()
	}

	claims, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return apperrors.NewUnauthorized()
	}

	c.Locals(userIDKey, claims.UserID)
	c.Locals(userEmailKey, claims.Email)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(userIDKey).(int64)
	if !ok {
		return Identity{}, false
	}
	email, _ := c.Locals(userEmailKey).(string)
	return Identity{UserID: id, Email: email}, true
}
