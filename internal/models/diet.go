package models

import "time"

const (
	DietTypeWeightLoss  = "weight_loss"
	DietTypeHypertrophy = "hypertrophy"
	DietTypeMaintenance = "maintenance"
	DietTypeTherapeutic = "therapeutic"
)

func ValidDietType(value string) bool {
	switch value {
	case DietTypeWeightLoss, DietTypeHypertrophy, DietTypeMaintenance, DietTypeTherapeutic:
		return true
	}
	return false
}

// Diet is a nutrition plan. Type doubles as the filter key into the external
// recipe collection; there is no ownership link between diets and recipes.
type Diet struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	StudentID      uint       `gorm:"not null;index" json:"student_id"`
	ProfessionalID uint       `gorm:"not null;index" json:"professional_id"`
	Name           string     `gorm:"not null" json:"name"`
	Type           string     `gorm:"not null" json:"type"`
	Notes          string     `json:"notes"`
	Totals         DietTotals `gorm:"serializer:json" json:"totals"`
	Meals          []DietMeal `gorm:"serializer:json;not null" json:"meals"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type DietTotals struct {
	Calories float64 `json:"calories,omitempty"`
	ProteinG float64 `json:"protein_g,omitempty"`
	CarbsG   float64 `json:"carbs_g,omitempty"`
	FatsG    float64 `json:"fats_g,omitempty"`
}

type DietMeal struct {
	Name  string   `json:"name"`
	Time  string   `json:"time,omitempty"`
	Order int      `json:"order,omitempty"`
	Foods []string `json:"foods,omitempty"`
}
