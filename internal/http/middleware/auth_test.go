package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credtrack/internal/apperror"
	"credtrack/internal/auth"
	"credtrack/internal/model"
)

func errorCodeHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return c.Status(fiber.StatusTeapot).SendString(string(apperror.CodeOf(err)))
	}
}

func TestAuthenticate(t *testing.T) {
	gate := auth.NewGate("test-secret", time.Hour)
	accountID := uuid.New().String()

	app := fiber.New(fiber.Config{ErrorHandler: errorCodeHandler()})
	app.Use(Authenticate(gate))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"account_id": id.AccountID, "role": string(id.Role)})
	})

	t.Run("valid token stores identity", func(t *testing.T) {
		token, err := gate.Issue(accountID, model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing header is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, string(apperror.CodeUnauthenticated), string(body))
	})

	t.Run("garbage token is an invalid session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, string(apperror.CodeInvalidSession), string(body))
	})

	t.Run("expired token is an invalid session", func(t *testing.T) {
		expiredGate := auth.NewGate("test-secret", -time.Minute)
		token, err := expiredGate.Issue(accountID, model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		otherGate := auth.NewGate("other-secret", time.Hour)
		token, err := otherGate.Issue(accountID, model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	gate := auth.NewGate("test-secret", time.Hour)

	app := fiber.New(fiber.Config{ErrorHandler: errorCodeHandler()})
	app.Use(Authenticate(gate))
	app.Use(RequireRole(gate, model.RoleAdmin))
	app.Get("/restricted", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := gate.Issue(uuid.New().String(), model.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("user role is forbidden", func(t *testing.T) {
		token, err := gate.Issue(uuid.New().String(), model.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, string(apperror.CodeForbidden), string(body))
	})
}
