package rayid_test

import (
	"net/http/httptest"
	"testing"

	"server-props/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/ping", func(c *fiber.Ctx) error {
		id, _ := c.Locals(rayid.LocalsKey).(string)
		return c.SendString(id)
	})

	t.Run("Generates ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("Propagates incoming ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "ray-123")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "ray-123", resp.Header.Get(rayid.HeaderName))
	})
}
