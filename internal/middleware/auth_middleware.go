package middleware

import (
	"strings"

	"go-stockdocs/internal/repository"
	"go-stockdocs/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token, resolves its subject by external
// uid and stashes the identity in the request locals. Protected handlers
// never see an unauthenticated request.
func RequireAuth(userRepo repository.UserRepository, tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByUID(claims.UID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		c.Locals("user_uid", user.UID)
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.FullName)

		return c.Next()
	}
}
