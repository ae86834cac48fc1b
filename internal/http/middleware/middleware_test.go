package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/auth"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/repository/mocks"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDLocalKey).(string))
	})

	t.Run("generates when missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	})

	t.Run("propagates incoming", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "abc-123", string(body))
	})
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", "ucoportal", time.Hour, 24*time.Hour)
	user := &model.User{UserID: "USR1", Role: model.RoleCollectionTeam, Status: model.StatusActive}

	newApp := func(users repository.UserRepository) *fiber.App {
		app := fiber.New()
		app.Get("/secure", Auth(users, tokens), func(c *fiber.Ctx) error {
			return c.SendString(CurrentUser(c).UserID)
		})
		return app
	}

	t.Run("valid token", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByUserID", mock.Anything, "USR1").Return(user, nil)

		token, err := tokens.IssueAccess(user.UserID, user.Role)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newApp(users).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "USR1", string(body))
	})

	t.Run("missing header", func(t *testing.T) {
		resp, err := newApp(new(mocks.MockUserRepository)).Test(httptest.NewRequest("GET", "/secure", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "MISSING_AUTHORIZATION_TOKEN", payload["error"])
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		refresh, err := tokens.IssueRefresh(user.UserID, user.Role)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+refresh)
		resp, err := newApp(new(mocks.MockUserRepository)).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("inactive user", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByUserID", mock.Anything, "USR1").
			Return(&model.User{UserID: "USR1", Status: model.StatusSuspended}, nil)

		token, err := tokens.IssueAccess("USR1", model.RoleCollectionTeam)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := newApp(users).Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "Inactive user", payload["message"])
	})
}

func TestRequireRole(t *testing.T) {
	newApp := func(user *model.User) *fiber.App {
		app := fiber.New()
		app.Get("/admin-only",
			func(c *fiber.Ctx) error {
				if user != nil {
					c.Locals(UserLocalKey, user)
				}
				return c.Next()
			},
			RequireRole(model.RoleEnrollmentTeam),
			func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
		)
		return app
	}

	tests := []struct {
		name       string
		user       *model.User
		wantStatus int
	}{
		{"matching role", &model.User{Role: model.RoleEnrollmentTeam}, fiber.StatusOK},
		{"admin bypasses", &model.User{Role: model.RoleAdmin}, fiber.StatusOK},
		{"wrong role", &model.User{Role: model.RoleCollectionTeam}, fiber.StatusForbidden},
		{"unauthenticated", nil, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newApp(tt.user).Test(httptest.NewRequest("GET", "/admin-only", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
