package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ucoportal/internal/service"
)

// envelope is the standard success response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

func ok(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusOK, message, data)
}

func created(c *fiber.Ctx, message string, data any) error {
	return respond(c, fiber.StatusCreated, message, data)
}

// errorCode derives the machine-readable code from a message, e.g.
// "FBO not found" becomes "FBO_NOT_FOUND".
func errorCode(message string) string {
	code := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, message)
	return strings.ToUpper(strings.Join(strings.Fields(code), "_"))
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errorCode(message),
		"details": fiber.Map{},
	})
}

// fail translates a service error into the error envelope. Unexpected errors
// are logged and masked.
func fail(c *fiber.Ctx, err error) error {
	if svcErr, handled := service.AsError(err); handled {
		return writeError(c, svcErr.Status, svcErr.Message)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return writeError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is the Fiber global error handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if fiberErr, isFiber := err.(*fiber.Error); isFiber {
			return writeError(c, fiberErr.Code, fiberErr.Message)
		}
		return fail(c, err)
	}
}
