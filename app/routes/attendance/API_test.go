package attendance

import (
	"net/http/httptest"
	"testing"

	"stmarys-portal/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// marked_by references teachers(id), so non-teacher callers must yield
// no marker rather than their users.id.
func TestMarkerTeacherIDNonTeacher(t *testing.T) {
	for _, userType := range []models.UserType{models.UserTypeAdmin, ""} {
		app := fiber.New()
		var got *string
		var gotErr error
		app.Get("/check", func(c *fiber.Ctx) error {
			c.Locals("user_id", "9f1d9a1e-0000-0000-0000-000000000001")
			c.Locals("user_type", userType)
			got, gotErr = markerTeacherID(c)
			return nil
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/check", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		assert.NoError(t, gotErr)
		assert.Nil(t, got, "user type %q", userType)
	}
}
