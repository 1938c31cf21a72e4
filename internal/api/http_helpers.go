package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhachhotu/feedback/internal/services"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiValidationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "invalid input",
		"fields": fieldErrors,
	})
}

// respondPolicyError keeps the taxonomy distinct at the boundary: a policy
// denial becomes 403 with the policy's own reason, a missing record becomes
// 404, anything else is a 500.
func respondPolicyError(c *fiber.Ctx, err error) error {
	var denial *services.ForbiddenError
	if errors.As(err, &denial) {
		return apiError(c, fiber.StatusForbidden, denial.Reason)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
