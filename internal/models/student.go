package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Student struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ProfessionalID uint       `gorm:"not null;index" json:"professional_id"`
	FullName       string     `gorm:"not null" json:"full_name"`
	CPF            string     `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender         string     `json:"gender"`
	Objective      string     `json:"objective"`
	Notes          string     `json:"notes"`
	AccessCodeHash string     `json:"-"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
