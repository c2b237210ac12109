package models

import "time"

const (
	InsightTypeRetention   = "retention"
	InsightTypePerformance = "performance"
	InsightTypeNutrition   = "nutrition"
	InsightTypeHealth      = "health"
)

const (
	InsightPriorityLow    = "low"
	InsightPriorityMedium = "medium"
	InsightPriorityHigh   = "high"
)

type Insight struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ProfessionalID  uint       `gorm:"not null;index" json:"professional_id"`
	StudentID       uint       `gorm:"not null;index" json:"student_id"`
	Type            string     `gorm:"not null" json:"type"`
	Priority        string     `gorm:"not null;default:medium" json:"priority"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"not null" json:"description"`
	SuggestedAction string     `json:"suggested_action"`
	IsResolved      bool       `gorm:"not null;default:false" json:"is_resolved"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
