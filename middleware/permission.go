package middleware

import "github.com/gofiber/fiber/v2"

// OwnerOnly lets the request through only when the route parameter param
// names the authenticated user. It must run after BearerAuth.
func OwnerOnly(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserID(c)
		if userID == "" {
			return Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if c.Params(param) != userID {
			return Error(c, fiber.StatusForbidden, "You do not have permission to access this resource")
		}
		return c.Next()
	}
}
