package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/models"
	"github.com/rbatista-dev/performafit/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if strings.TrimSpace(input.FullName) == "" {
		return apiError(c, fiber.StatusBadRequest, "full name is required")
	}
	if err := validateEmail(input.Email); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	cpf, err := normalizeCPF(input.CPF)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cpf")
	}
	if !models.ValidProfessionalType(input.Type) {
		return apiError(c, fiber.StatusBadRequest, "invalid professional type")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	professional, err := handler.authService.Register(services.RegisterProfessionalInput{
		FullName:       input.FullName,
		Email:          input.Email,
		CPF:            cpf,
		Phone:          input.Phone,
		Type:           input.Type,
		Specialization: input.Specialization,
		LicenseNumber:  input.LicenseNumber,
		Password:       input.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailOrCPFTaken) {
			return apiError(c, fiber.StatusConflict, "email or cpf already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(professional)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	professional, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, services.ErrAccountInactive):
			return apiError(c, fiber.StatusForbidden, "account inactive")
		default:
			return apiError(c, fiber.StatusInternalServerError, "login failed")
		}
	}

	if err := handler.setAuthCookie(c, professional.ID, roleProfessional, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{"ok": true, "professional": professional})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	professionalID, ok := currentProfessionalID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	professional, err := handler.authService.FindByID(professionalID)
	if err != nil {
		return notFoundOrInternal(c, err, "professional")
	}
	return c.JSON(professional)
}
