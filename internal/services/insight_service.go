package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
)

var (
	ErrInvalidInsightType     = errors.New("invalid insight type")
	ErrInvalidInsightPriority = errors.New("invalid insight priority")
)

type InsightRepository interface {
	Create(insight *models.Insight) error
	ListByProfessional(professionalID uint) ([]models.Insight, error)
	ResolveOwned(insightID uint, professionalID uint, resolvedAt time.Time) error
}

type InsightStudentReader interface {
	FindOwned(studentID uint, professionalID uint) (models.Student, error)
}

type InsightService struct {
	insights InsightRepository
	students InsightStudentReader
}

func NewInsightService(insights InsightRepository, students InsightStudentReader) *InsightService {
	return &InsightService{insights: insights, students: students}
}

type InsightInput struct {
	StudentID       uint
	Type            string
	Priority        string
	Title           string
	Description     string
	SuggestedAction string
}

// Create records an insight against a student the professional owns. An
// empty priority defaults to medium.
func (service *InsightService) Create(professionalID uint, input InsightInput) (models.Insight, error) {
	if !validInsightType(input.Type) {
		return models.Insight{}, ErrInvalidInsightType
	}
	priority := input.Priority
	if priority == "" {
		priority = models.InsightPriorityMedium
	}
	if !validInsightPriority(priority) {
		return models.Insight{}, ErrInvalidInsightPriority
	}

	student, err := service.students.FindOwned(input.StudentID, professionalID)
	if err != nil {
		return models.Insight{}, err
	}

	insight := models.Insight{
		ProfessionalID:  professionalID,
		StudentID:       student.ID,
		Type:            input.Type,
		Priority:        priority,
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		SuggestedAction: strings.TrimSpace(input.SuggestedAction),
	}
	if err := service.insights.Create(&insight); err != nil {
		return models.Insight{}, err
	}
	return insight, nil
}

func (service *InsightService) List(professionalID uint) ([]models.Insight, error) {
	return service.insights.ListByProfessional(professionalID)
}

// Apply marks an insight resolved for the owning professional.
func (service *InsightService) Apply(professionalID uint, insightID uint, now time.Time) error {
	return service.insights.ResolveOwned(insightID, professionalID, now)
}

func validInsightType(value string) bool {
	switch value {
	case models.InsightTypeRetention, models.InsightTypePerformance, models.InsightTypeNutrition, models.InsightTypeHealth:
		return true
	}
	return false
}

func validInsightPriority(value string) bool {
	switch value {
	case models.InsightPriorityLow, models.InsightPriorityMedium, models.InsightPriorityHigh:
		return true
	}
	return false
}
