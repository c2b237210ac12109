package api

import (
	"github.com/gofiber/fiber/v2"
)

const (
	contextProfessionalKey = "current_professional_id"
	contextStudentKey      = "current_student_id"
)

// AuthRequired admits only professional tokens. Portal tokens cannot reach
// professional routes.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	claims, err := handler.parseToken(c)
	if err != nil || claims.Role != roleProfessional {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextProfessionalKey, claims.AccountID)
	return c.Next()
}

// PortalAuthRequired admits only student portal tokens.
func (handler *Handler) PortalAuthRequired(c *fiber.Ctx) error {
	claims, err := handler.parseToken(c)
	if err != nil || claims.Role != roleStudent {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextStudentKey, claims.AccountID)
	return c.Next()
}

func currentProfessionalID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(contextProfessionalKey).(uint)
	return id, ok && id != 0
}

func currentStudentID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(contextStudentKey).(uint)
	return id, ok && id != 0
}
