package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stmarys-portal/app/models"
)

// A forgot-password request must not change any credentials and must not
// reveal whether the address is registered.
func TestForgotPasswordDoesNotResetOrEnumerate(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/forgot-password", ForgotPasswordAPI)

	for _, email := range []string{"admin@stmarys.ac.ug", "nobody@example.com"} {
		body := strings.NewReader(`{"email": "` + email + `", "new_password": "hijacked123"}`)
		req := httptest.NewRequest("POST", "/auth/forgot-password", body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &payload))
		assert.Contains(t, payload, "message")
		assert.NotContains(t, payload, "user_found")
	}
}

func TestResetPasswordRequiresAdmin(t *testing.T) {
	for _, userType := range []models.UserType{models.UserTypeTeacher, models.UserTypeStudent, models.UserTypeParent} {
		app := fiber.New()
		app.Post("/api/auth/reset-password", func(c *fiber.Ctx) error {
			c.Locals("user_type", userType)
			return c.Next()
		}, RequireUserType(models.UserTypeAdmin), func(c *fiber.Ctx) error {
			t.Fatalf("reset handler reached by %s", userType)
			return nil
		})

		req := httptest.NewRequest("POST", "/api/auth/reset-password", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	}
}
