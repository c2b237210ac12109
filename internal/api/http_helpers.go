package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// notFoundOrInternal maps the repository not-found sentinel to 404; an
// ownership miss is indistinguishable from a missing row on purpose.
func notFoundOrInternal(c *fiber.Ctx, err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, resource+" not found")
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to load "+resource)
}
