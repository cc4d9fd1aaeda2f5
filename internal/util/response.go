package util

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/fadilmartias/cv-matcher/internal/response"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every API response. Field order is the wire order.
type Envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
	DevMessage string               `json:"dev_message,omitempty"`
	Details    any                  `json:"details,omitempty"`
	Trace      string               `json:"trace,omitempty"`
}

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

// FormError carries per-field validation messages.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(Envelope{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorResponse writes the error envelope. Field errors from a *FormError in
// errs become details. dev_message and trace are only sent outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := Envelope{
		Message: params.Message,
		Details: params.Details,
	}

	var cause error
	if len(errs) > 0 {
		cause = errs[0]
	}
	var formErr *FormError
	if body.Details == nil && errors.As(cause, &formErr) {
		body.Details = formErr.Errors
	}

	if config.LoadAppConfig().Env != "production" {
		body.DevMessage = params.DevMessage
		if body.DevMessage == "" && cause != nil {
			body.DevMessage = cause.Error()
		}
		body.Trace = params.Trace
		if body.Trace == "" && cause != nil {
			body.Trace = string(debug.Stack())
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
