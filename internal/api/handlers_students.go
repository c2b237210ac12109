package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/models"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) CreateStudent(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, errMessage := handler.parseStudentInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	student, accessCode, err := handler.studentService.Create(professionalID, input)
	if err != nil {
		if errors.Is(err, services.ErrCPFTaken) {
			return apiError(c, fiber.StatusConflict, "cpf already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create student")
	}

	// The plain access code is shown exactly once.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"student":     student,
		"access_code": accessCode,
	})
}

func (handler *Handler) ListStudents(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	students, err := handler.studentService.List(professionalID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list students")
	}
	return c.JSON(students)
}

func (handler *Handler) GetStudent(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, err := handler.studentService.Get(professionalID, uint(studentID))
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(student)
}

func (handler *Handler) UpdateStudent(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	input, errMessage := handler.parseStudentInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	if err := handler.studentService.Update(professionalID, uint(studentID), input); err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeactivateStudent(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	if err := handler.studentService.Deactivate(professionalID, uint(studentID)); err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RegenerateStudentAccessCode(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	accessCode, err := handler.studentService.RegenerateAccessCode(professionalID, uint(studentID))
	if err != nil {
		return notFoundOrInternal(c, err, "student")
	}
	return c.JSON(fiber.Map{"access_code": accessCode})
}

func (handler *Handler) parseStudentInput(c *fiber.Ctx) (services.StudentInput, string) {
	input := studentInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.StudentInput{}, "invalid input"
	}

	if input.FullName == "" {
		return services.StudentInput{}, "full name is required"
	}
	cpf, err := normalizeCPF(input.CPF)
	if err != nil {
		return services.StudentInput{}, "invalid cpf"
	}
	if input.Email != "" {
		if err := validateEmail(input.Email); err != nil {
			return services.StudentInput{}, "invalid email"
		}
	}
	switch input.Gender {
	case "", models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return services.StudentInput{}, "invalid gender"
	}

	birthDate, err := parseOptionalDateParam(input.BirthDate, handler.location)
	if err != nil {
		return services.StudentInput{}, "invalid birth date"
	}

	return services.StudentInput{
		FullName:  input.FullName,
		CPF:       cpf,
		Email:     input.Email,
		Phone:     input.Phone,
		BirthDate: birthDate,
		Gender:    input.Gender,
		Objective: input.Objective,
		Notes:     input.Notes,
	}, ""
}
