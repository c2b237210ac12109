package models

import "time"

const (
	ProfessionalTypeTrainer      = "personal_trainer"
	ProfessionalTypeNutritionist = "nutritionist"
	ProfessionalTypeBoth         = "both"
)

func ValidProfessionalType(value string) bool {
	switch value {
	case ProfessionalTypeTrainer, ProfessionalTypeNutritionist, ProfessionalTypeBoth:
		return true
	}
	return false
}

type Professional struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	CPF            string    `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	Phone          string    `json:"phone"`
	Type           string    `gorm:"not null" json:"type"`
	Specialization string    `json:"specialization"`
	LicenseNumber  string    `json:"license_number"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
