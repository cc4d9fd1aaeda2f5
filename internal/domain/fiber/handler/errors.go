package handler

import (
	"errors"
	"strconv"

	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/fadilmartias/cv-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes err with the status its sentinel maps to. Internal errors get
// the generic message; the others carry their own text.
func fail(c *fiber.Ctx, message string, err error) error {
	code := statusFor(err)
	if code != fiber.StatusInternalServerError {
		message = err.Error()
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func badRequest(c *fiber.Ctx, message string, details any) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
		Details: details,
	})
}

func invalidForm(c *fiber.Ctx, formErr *util.FormError) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: formErr.Message,
	}, formErr)
}

// paramID parses a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
