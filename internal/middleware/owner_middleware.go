package middleware

import (
	"github.com/fadilmartias/cv-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	OwnerHeader = "X-User-ID"
	ownerKey    = "owner_id"
)

// RequireOwner rejects requests without a valid X-User-ID and stores the
// parsed id for OwnerFrom.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(OwnerHeader)
		if raw == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: OwnerHeader + " header is required",
			})
		}
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: OwnerHeader + " must be a valid UUID",
			}, err)
		}
		c.Locals(ownerKey, id)
		return c.Next()
	}
}

// OwnerFrom returns uuid.Nil when RequireOwner did not run.
func OwnerFrom(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(ownerKey).(uuid.UUID)
	return id
}
