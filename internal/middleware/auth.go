package middleware

import (
	"context"
	"errors"
	"strings"

	"linkup/internal/token"

	"github.com/gofiber/fiber/v2"
)

// UserResolver loads the user referenced by a verified token. Returning an
// error means the account no longer exists and the session is dead.
type UserResolver func(ctx context.Context, userID uint) (interface{}, error)

// AuthRequired returns middleware that enforces authentication for protected
// routes. The verified user ID is stored in c.Locals("userID") and, when a
// resolver is given, the loaded user in c.Locals("user").
func AuthRequired(issuer *token.Issuer, resolve UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			AuthFailures.WithLabelValues("missing_header").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			AuthFailures.WithLabelValues("malformed_header").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		userID, err := issuer.VerifyAccess(parts[1])
		if err != nil {
			// An expired session is reported distinctly so clients know to
			// refresh rather than re-login.
			if errors.Is(err, token.ErrExpired) {
				AuthFailures.WithLabelValues("expired").Inc()
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Token expired",
				})
			}
			AuthFailures.WithLabelValues("invalid").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		if resolve != nil {
			user, err := resolve(c.UserContext(), userID)
			if err != nil {
				AuthFailures.WithLabelValues("unknown_user").Inc()
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}
			c.Locals("user", user)
		}

		c.Locals("userID", userID)

		return c.Next()
	}
}
