package util

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/cv-matcher/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSuccessResponse(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{
			Message:    "ok",
			Data:       []int{1},
			Pagination: response.NewPagination(1, 10, 1, 1),
		})
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.NotNil(t, body["pagination"])
	assert.NotContains(t, body, "meta")
}

func TestErrorResponse(t *testing.T) {
	t.Run("defaults to 500 and exposes the cause", func(t *testing.T) {
		code, body := call(t, func(c *fiber.Ctx) error {
			return ErrorResponse(c, ErrorResponseFormat{Message: "failed"}, errors.New("db down"))
		})
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "db down", body["dev_message"])
	})

	t.Run("form errors become details", func(t *testing.T) {
		formErr := NewFormError("validation failed", map[string]string{"title": "title is required"})
		code, body := call(t, func(c *fiber.Ctx) error {
			return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: formErr.Message}, formErr)
		})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, map[string]any{"title": "title is required"}, body["details"])
	})
}
