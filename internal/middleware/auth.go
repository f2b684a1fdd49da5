package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/pkg/utils"
)

// AdminRequired validates the bearer token issued by the admin login and
// rejects tokens without the admin role.
func AdminRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}
		if claims.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden",
			})
		}

		c.Locals("admin_user", claims.UserID)
		return c.Next()
	}
}

// ClientRequired extracts the opaque client id that namespaces session
// storage. Clients generate it once and send it on every request.
func ClientRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := strings.TrimSpace(c.Get("X-Client-ID"))
		if clientID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing X-Client-ID header",
			})
		}

		c.Locals("client_id", clientID)
		return c.Next()
	}
}
