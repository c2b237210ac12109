package models

import "time"

const (
	WorkoutTypeHypertrophy = "hypertrophy"
	WorkoutTypeStrength    = "strength"
	WorkoutTypeResistance  = "resistance"
	WorkoutTypeWeightLoss  = "weight_loss"
)

func ValidWorkoutType(value string) bool {
	switch value {
	case WorkoutTypeHypertrophy, WorkoutTypeStrength, WorkoutTypeResistance, WorkoutTypeWeightLoss:
		return true
	}
	return false
}

type Workout struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StudentID      uint      `gorm:"not null;index" json:"student_id"`
	ProfessionalID uint      `gorm:"not null;index" json:"professional_id"`
	Name           string    `gorm:"not null" json:"name"`
	Type           string    `gorm:"not null" json:"type"`
	// Notes holds free text only. Legacy rows piggybacked a JSON payload on
	// this column; it is parsed once at the storage boundary into Details.
	Notes     string         `json:"notes"`
	Details   WorkoutDetails `gorm:"serializer:json" json:"details"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type WorkoutDetails struct {
	Exercises    []WorkoutExercise `json:"exercises,omitempty"`
	WeeklyVolume int               `json:"weekly_volume,omitempty"`
}

type WorkoutExercise struct {
	Name      string `json:"name"`
	Sets      string `json:"sets"`
	Reps      string `json:"reps"`
	Equipment string `json:"equipment,omitempty"`
	Order     int    `json:"order,omitempty"`
}
