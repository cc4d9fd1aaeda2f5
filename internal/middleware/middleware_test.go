package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireOwner(), func(c *fiber.Ctx) error {
		return c.SendString(OwnerFrom(c).String())
	})
	return app
}

func TestRequireOwner(t *testing.T) {
	app := ownerApp()
	owner := uuid.New()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusBadRequest},
		{"malformed", "not-a-uuid", fiber.StatusBadRequest},
		{"nil uuid", uuid.Nil.String(), fiber.StatusBadRequest},
		{"valid", owner.String(), fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set(OwnerHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestOwnerFrom_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(OwnerFrom(c).String())
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimiter(1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
