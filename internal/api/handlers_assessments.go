package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) CreateAssessment(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	input := assessmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	evaluationDate := time.Time{}
	if input.EvaluationDate != "" {
		evaluationDate, err = parseDateParam(input.EvaluationDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid evaluation date")
		}
	}

	serviceInput := services.AssessmentInput{
		EvaluationDate: evaluationDate,

		WeightKG:       input.WeightKG,
		HeightCM:       input.HeightCM,
		BodyFatPercent: input.BodyFatPercent,

		WaistCM:         input.WaistCM,
		AbdomenCM:       input.AbdomenCM,
		HipCM:           input.HipCM,
		ChestCM:         input.ChestCM,
		ArmRelaxedCM:    input.ArmRelaxedCM,
		ArmContractedCM: input.ArmContractedCM,
		ThighCM:         input.ThighCM,
		CalfCM:          input.CalfCM,

		BloodPressure: input.BloodPressure,
		HeartRateBPM:  input.HeartRateBPM,

		Injuries:     input.Injuries,
		Medications:  input.Medications,
		Objective:    input.Objective,
		Observations: input.Observations,
	}

	// Photo bytes never pass through this API; the storage collaborator gets
	// opaque keys minted here and uploads against them.
	if input.AttachPhotoBefore {
		serviceInput.PhotoBeforeKey = uuid.NewString()
	}
	if input.AttachPhotoAfter {
		serviceInput.PhotoAfterKey = uuid.NewString()
	}

	assessment, err := handler.assessmentService.Create(professionalID, uint(studentID), serviceInput, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWeight), errors.Is(err, services.ErrInvalidHeight):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return notFoundOrInternal(c, err, "student")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(assessment)
}

func (handler *Handler) ListAssessments(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	history, err := handler.assessmentService.History(professionalID, uint(studentID))
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(history)
}

func (handler *Handler) GetStudentEvolution(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	view, err := handler.assessmentService.Evolution(professionalID, uint(studentID))
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(view)
}

func (handler *Handler) DeleteAssessment(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	assessmentID, err := c.ParamsInt("id")
	if err != nil || assessmentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid assessment id")
	}

	if err := handler.assessmentService.Delete(professionalID, uint(assessmentID)); err != nil {
		return notFoundOrInternal(c, err, "assessment")
	}
	return c.JSON(fiber.Map{"ok": true})
}
