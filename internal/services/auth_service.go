package services

import (
	"errors"
	"strings"

	"github.com/rbatista-dev/performafit/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
	ErrEmailOrCPFTaken    = errors.New("email or cpf already registered")
)

type AuthProfessionalRepository interface {
	FindByID(professionalID uint) (models.Professional, error)
	FindByNormalizedEmail(email string) (models.Professional, error)
	ExistsByEmailOrCPF(email string, cpf string) (bool, error)
	Create(professional *models.Professional) error
}

type AuthService struct {
	professionals AuthProfessionalRepository
}

func NewAuthService(professionals AuthProfessionalRepository) *AuthService {
	return &AuthService{professionals: professionals}
}

type RegisterProfessionalInput struct {
	FullName       string
	Email          string
	CPF            string
	Phone          string
	Type           string
	Specialization string
	LicenseNumber  string
	Password       string
}

func (service *AuthService) Register(input RegisterProfessionalInput) (models.Professional, error) {
	email := NormalizeEmail(input.Email)

	taken, err := service.professionals.ExistsByEmailOrCPF(email, input.CPF)
	if err != nil {
		return models.Professional{}, err
	}
	if taken {
		return models.Professional{}, ErrEmailOrCPFTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Professional{}, err
	}

	professional := models.Professional{
		FullName:       strings.TrimSpace(input.FullName),
		Email:          email,
		CPF:            input.CPF,
		Phone:          strings.TrimSpace(input.Phone),
		Type:           input.Type,
		Specialization: strings.TrimSpace(input.Specialization),
		LicenseNumber:  strings.TrimSpace(input.LicenseNumber),
		PasswordHash:   string(passwordHash),
		IsActive:       true,
	}
	if err := service.professionals.Create(&professional); err != nil {
		return models.Professional{}, err
	}
	return professional, nil
}

// Authenticate resolves a professional by email and verifies the password.
// Unknown emails and wrong passwords report the same error; inactive
// accounts are rejected only after the password checks out.
func (service *AuthService) Authenticate(email string, password string) (models.Professional, error) {
	professional, err := service.professionals.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Professional{}, ErrInvalidCredentials
		}
		return models.Professional{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(professional.PasswordHash), []byte(password)) != nil {
		return models.Professional{}, ErrInvalidCredentials
	}
	if !professional.IsActive {
		return models.Professional{}, ErrAccountInactive
	}

	return professional, nil
}

func (service *AuthService) FindByID(professionalID uint) (models.Professional, error) {
	return service.professionals.FindByID(professionalID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
