package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := workoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.StudentID == 0 || input.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "student and name are required")
	}

	workout, err := handler.planService.CreateWorkout(professionalID, input.StudentID, services.WorkoutInput{
		Name:    input.Name,
		Type:    input.Type,
		Notes:   input.Notes,
		Details: input.Details,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidWorkoutType) {
			return apiError(c, fiber.StatusBadRequest, "invalid workout type")
		}
		return notFoundOrInternal(c, err, "student")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workouts, err := handler.planService.ListWorkouts(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) DeactivateWorkout(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	workoutID, err := c.ParamsInt("id")
	if err != nil || workoutID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	if err := handler.planService.DeactivateWorkout(professionalID, uint(workoutID)); err != nil {
		return notFoundOrInternal(c, err, "workout")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CreateDiet(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dietInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.StudentID == 0 || input.Name == "" {
		return apiError(c, fiber.StatusBadRequest, "student and name are required")
	}

	diet, err := handler.planService.CreateDiet(professionalID, input.StudentID, services.DietInput{
		Name:   input.Name,
		Type:   input.Type,
		Notes:  input.Notes,
		Totals: input.Totals,
		Meals:  input.Meals,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidDietType) {
			return apiError(c, fiber.StatusBadRequest, "invalid diet type")
		}
		return notFoundOrInternal(c, err, "student")
	}
	return c.Status(fiber.StatusCreated).JSON(diet)
}

func (handler *Handler) ListDiets(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	diets, err := handler.planService.ListDiets(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list diets")
	}
	return c.JSON(diets)
}

func (handler *Handler) DeactivateDiet(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	dietID, err := c.ParamsInt("id")
	if err != nil || dietID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid diet id")
	}

	if err := handler.planService.DeactivateDiet(professionalID, uint(dietID)); err != nil {
		return notFoundOrInternal(c, err, "diet")
	}
	return c.JSON(fiber.Map{"ok": true})
}
