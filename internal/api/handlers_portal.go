package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) PortalLogin(c *fiber.Ctx) error {
	input := portalLoginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	cpf, err := normalizeCPF(input.CPF)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cpf")
	}

	student, err := handler.portalService.Authenticate(cpf, input.AccessCode)
	if err != nil {
		if errors.Is(err, services.ErrPortalAccessDenied) {
			return apiError(c, fiber.StatusUnauthorized, "access denied")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	if err := handler.setAuthCookie(c, student.ID, roleStudent, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{"ok": true, "student": student})
}

func (handler *Handler) PortalLogout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) PortalOverview(c *fiber.Ctx) error {
	studentID, ok := currentStudentID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.portalService.Overview(studentID)
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(overview)
}

func (handler *Handler) PortalEvolution(c *fiber.Ctx) error {
	studentID, ok := currentStudentID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	view, err := handler.portalService.Evolution(studentID)
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(view)
}

// PortalDailyRecipes serves today's rotation. The selection is recomputed
// from (cpf, date) on every call, so repeated requests within the day return
// the same list without persisting anything.
func (handler *Handler) PortalDailyRecipes(c *fiber.Ctx) error {
	studentID, ok := currentStudentID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rotation, err := handler.portalService.DailyRecipes(c.Context(), studentID, time.Now())
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(rotation)
}
