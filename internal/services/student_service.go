package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
	"github.com/rbatista-dev/performafit/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var ErrCPFTaken = errors.New("cpf already registered")

// accessCodeAlphabet avoids characters students confuse when typing codes
// from paper (0/O, 1/l/I).
const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const accessCodeLength = 8

type StudentRepository interface {
	Create(student *models.Student) error
	ListByProfessional(professionalID uint) ([]models.Student, error)
	FindOwned(studentID uint, professionalID uint) (models.Student, error)
	ExistsByCPF(cpf string) (bool, error)
	UpdateOwned(studentID uint, professionalID uint, updates map[string]any) error
}

type StudentService struct {
	students StudentRepository
}

func NewStudentService(students StudentRepository) *StudentService {
	return &StudentService{students: students}
}

type StudentInput struct {
	FullName  string
	CPF       string
	Email     string
	Phone     string
	BirthDate *time.Time
	Gender    string
	Objective string
	Notes     string
}

// Create registers a student under the professional and issues the portal
// access code. The plain code is returned exactly once; only its bcrypt
// hash is stored.
func (service *StudentService) Create(professionalID uint, input StudentInput) (models.Student, string, error) {
	taken, err := service.students.ExistsByCPF(input.CPF)
	if err != nil {
		return models.Student{}, "", err
	}
	if taken {
		return models.Student{}, "", ErrCPFTaken
	}

	accessCode, accessCodeHash, err := newAccessCode()
	if err != nil {
		return models.Student{}, "", err
	}

	student := models.Student{
		ProfessionalID: professionalID,
		FullName:       strings.TrimSpace(input.FullName),
		CPF:            input.CPF,
		Email:          NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		BirthDate:      input.BirthDate,
		Gender:         input.Gender,
		Objective:      strings.TrimSpace(input.Objective),
		Notes:          strings.TrimSpace(input.Notes),
		AccessCodeHash: accessCodeHash,
		IsActive:       true,
	}
	if err := service.students.Create(&student); err != nil {
		return models.Student{}, "", err
	}
	return student, accessCode, nil
}

func (service *StudentService) List(professionalID uint) ([]models.Student, error) {
	return service.students.ListByProfessional(professionalID)
}

func (service *StudentService) Get(professionalID uint, studentID uint) (models.Student, error) {
	return service.students.FindOwned(studentID, professionalID)
}

func (service *StudentService) Update(professionalID uint, studentID uint, input StudentInput) error {
	updates := map[string]any{
		"full_name": strings.TrimSpace(input.FullName),
		"email":     NormalizeEmail(input.Email),
		"phone":     strings.TrimSpace(input.Phone),
		"gender":    input.Gender,
		"objective": strings.TrimSpace(input.Objective),
		"notes":     strings.TrimSpace(input.Notes),
	}
	if input.BirthDate != nil {
		updates["birth_date"] = *input.BirthDate
	}
	return service.students.UpdateOwned(studentID, professionalID, updates)
}

func (service *StudentService) Deactivate(professionalID uint, studentID uint) error {
	return service.students.UpdateOwned(studentID, professionalID, map[string]any{"is_active": false})
}

// RegenerateAccessCode replaces the portal access code for a student the
// professional owns and returns the new plain code once.
func (service *StudentService) RegenerateAccessCode(professionalID uint, studentID uint) (string, error) {
	if _, err := service.students.FindOwned(studentID, professionalID); err != nil {
		return "", err
	}

	accessCode, accessCodeHash, err := newAccessCode()
	if err != nil {
		return "", err
	}
	if err := service.students.UpdateOwned(studentID, professionalID, map[string]any{
		"access_code_hash": accessCodeHash,
	}); err != nil {
		return "", err
	}
	return accessCode, nil
}

func newAccessCode() (string, string, error) {
	code, err := security.RandomString(accessCodeLength, accessCodeAlphabet)
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}
