package middleware

import (
	"context"

	"educare/auth"
	"educare/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the c.Locals key holding the authenticated user's id.
const UserIDKey = "userId"

// Authenticator resolves a bearer token to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

// BearerAuth validates the Authorization header on every request and stores
// the caller's id in c.Locals(UserIDKey).
func BearerAuth(authenticator Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		identity, err := authenticator.Authenticate(c.UserContext(), token)
		if err != nil {
			return Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(UserIDKey, identity.ID)
		return c.Next()
	}
}

// UserID returns the id stored by BearerAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
