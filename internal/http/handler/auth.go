package handler

import (
	"github.com/gofiber/fiber/v2"

	"ucoportal/internal/http/middleware"
	"ucoportal/internal/model"
	"ucoportal/internal/service"
)

// AuthHandler serves login, token refresh, and self-service profile routes.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in model.UserLogin
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Email == "" || in.Password == "" {
		return writeError(c, fiber.StatusBadRequest, "Email and password required")
	}

	res, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Login successful", res)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := c.FormValue("refresh_token_str")
	if token == "" {
		return writeError(c, fiber.StatusBadRequest, "Refresh token required")
	}

	res, err := h.auth.Refresh(c.UserContext(), token)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Token refreshed", res)
}

// Logout acknowledges the request; tokens are stateless and expire on
// their own.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return ok(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return ok(c, "Current user", middleware.CurrentUser(c))
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in model.UserUpdate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.auth.UpdateProfile(c.UserContext(), middleware.CurrentUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Profile updated successfully", user)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	current := c.FormValue("current_password")
	next := c.FormValue("new_password")
	if current == "" || next == "" {
		return writeError(c, fiber.StatusBadRequest, "Current and new password required")
	}

	if err := h.auth.ChangePassword(c.UserContext(), middleware.CurrentUser(c).UserID, current, next); err != nil {
		return fail(c, err)
	}
	return ok(c, "Password changed successfully", nil)
}
