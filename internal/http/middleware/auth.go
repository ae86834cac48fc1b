package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/auth"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// UserLocalKey is the locals key holding the authenticated *model.User.
const UserLocalKey = "user"

// CurrentUser returns the authenticated user stored by Auth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}

// Auth validates the Bearer access token and loads the user into locals.
// Inactive accounts are rejected.
func Auth(users repository.UserRepository, tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return reject(c, fiber.StatusUnauthorized, "Missing authorization token")
		}

		claims, err := tokens.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			return reject(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := users.FindByUserID(c.UserContext(), claims.Subject)
		if err != nil {
			return reject(c, fiber.StatusUnauthorized, "User not found")
		}
		if user.Status != model.StatusActive {
			return reject(c, fiber.StatusBadRequest, "Inactive user")
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// RequireRole gates a route to the given roles. Admins always pass.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return reject(c, fiber.StatusUnauthorized, "Missing authorization token")
		}
		if user.Role == model.RoleAdmin {
			return c.Next()
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return reject(c, fiber.StatusForbidden, "Insufficient permissions")
	}
}

func reject(c *fiber.Ctx, status int, message string) error {
	code := strings.ToUpper(strings.ReplaceAll(message, " ", "_"))
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   code,
		"details": fiber.Map{},
	})
}
