package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) GetDashboardStats(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.dashboardService.Stats(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) CreateInsight(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := insightInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.StudentID == 0 || input.Title == "" {
		return apiError(c, fiber.StatusBadRequest, "student and title are required")
	}

	insight, err := handler.insightService.Create(professionalID, services.InsightInput{
		StudentID:       input.StudentID,
		Type:            input.Type,
		Priority:        input.Priority,
		Title:           input.Title,
		Description:     input.Description,
		SuggestedAction: input.SuggestedAction,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInsightType):
			return apiError(c, fiber.StatusBadRequest, "invalid insight type")
		case errors.Is(err, services.ErrInvalidInsightPriority):
			return apiError(c, fiber.StatusBadRequest, "invalid insight priority")
		}
		return notFoundOrInternal(c, err, "student")
	}
	return c.Status(fiber.StatusCreated).JSON(insight)
}

func (handler *Handler) ListInsights(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	insights, err := handler.insightService.List(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list insights")
	}
	return c.JSON(insights)
}

func (handler *Handler) ApplyInsight(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	insightID, err := c.ParamsInt("id")
	if err != nil || insightID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid insight id")
	}

	if err := handler.insightService.Apply(professionalID, uint(insightID), time.Now()); err != nil {
		return notFoundOrInternal(c, err, "insight")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetInsightStats(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.dashboardService.InsightStats(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insight stats")
	}
	return c.JSON(stats)
}
