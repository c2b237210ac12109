package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
	"github.com/rbatista-dev/performafit/internal/recipes"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPortalAccessDenied = errors.New("portal access denied")

// DailyRecipeCount is how many suggestions the portal shows per day.
const DailyRecipeCount = 5

type RecipeSource interface {
	RecipesByDiet(ctx context.Context, dietType string) ([]recipes.Recipe, error)
}

type PortalWorkoutReader interface {
	ListActiveByStudent(studentID uint) ([]models.Workout, error)
}

type PortalDietReader interface {
	ListActiveByStudent(studentID uint) ([]models.Diet, error)
}

type PortalAssessmentReader interface {
	ListByStudent(studentID uint) ([]models.Assessment, error)
	FindLatestByStudent(studentID uint) (models.Assessment, error)
}

type PortalStudentReader interface {
	FindByCPF(cpf string) (models.Student, error)
	FindByID(studentID uint) (models.Student, error)
}

// PortalService serves the read-only student surface. It never mutates
// anything owned by the professional.
type PortalService struct {
	students    PortalStudentReader
	workouts    PortalWorkoutReader
	diets       PortalDietReader
	assessments PortalAssessmentReader
	recipes     RecipeSource
	location    *time.Location
}

func NewPortalService(
	students PortalStudentReader,
	workouts PortalWorkoutReader,
	diets PortalDietReader,
	assessments PortalAssessmentReader,
	recipeSource RecipeSource,
	location *time.Location,
) *PortalService {
	if location == nil {
		location = time.UTC
	}
	return &PortalService{
		students:    students,
		workouts:    workouts,
		diets:       diets,
		assessments: assessments,
		recipes:     recipeSource,
		location:    location,
	}
}

// Authenticate checks a student's CPF and access code. Unknown CPFs,
// inactive students and wrong codes all report the same error.
func (service *PortalService) Authenticate(cpf string, accessCode string) (models.Student, error) {
	student, err := service.students.FindByCPF(cpf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrPortalAccessDenied
		}
		return models.Student{}, err
	}
	if !student.IsActive || student.AccessCodeHash == "" {
		return models.Student{}, ErrPortalAccessDenied
	}
	if bcrypt.CompareHashAndPassword([]byte(student.AccessCodeHash), []byte(accessCode)) != nil {
		return models.Student{}, ErrPortalAccessDenied
	}
	return student, nil
}

type PortalOverview struct {
	Student          models.Student     `json:"student"`
	Workouts         []models.Workout   `json:"workouts"`
	Diets            []models.Diet      `json:"diets"`
	LatestAssessment *models.Assessment `json:"latest_assessment,omitempty"`
}

func (service *PortalService) Overview(studentID uint) (PortalOverview, error) {
	student, err := service.students.FindByID(studentID)
	if err != nil {
		return PortalOverview{}, err
	}

	workouts, err := service.workouts.ListActiveByStudent(studentID)
	if err != nil {
		return PortalOverview{}, err
	}
	for index := range workouts {
		UpgradeWorkoutNotes(&workouts[index])
	}

	diets, err := service.diets.ListActiveByStudent(studentID)
	if err != nil {
		return PortalOverview{}, err
	}
	for index := range diets {
		UpgradeDietNotes(&diets[index])
	}

	overview := PortalOverview{
		Student:  student,
		Workouts: workouts,
		Diets:    diets,
	}

	latest, err := service.assessments.FindLatestByStudent(studentID)
	if err == nil {
		overview.LatestAssessment = &latest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PortalOverview{}, err
	}

	return overview, nil
}

func (service *PortalService) Evolution(studentID uint) (ComparisonView, error) {
	history, err := service.assessments.ListByStudent(studentID)
	if err != nil {
		return ComparisonView{}, err
	}
	return CompareSeries(history, DefaultMetricSpecs()), nil
}

// DailyRecipes returns today's rotation for the student's latest active
// diet. The student always sees a page: no diet, an empty pool or a recipe
// service failure all degrade to an empty list.
func (service *PortalService) DailyRecipes(ctx context.Context, studentID uint, now time.Time) ([]recipes.Recipe, error) {
	student, err := service.students.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	diets, err := service.diets.ListActiveByStudent(studentID)
	if err != nil {
		return nil, err
	}
	if len(diets) == 0 {
		return []recipes.Recipe{}, nil
	}
	activeDiet := diets[len(diets)-1]

	pool, err := service.recipes.RecipesByDiet(ctx, activeDiet.Type)
	if err != nil {
		log.Printf("recipe source unavailable for diet %q: %v", activeDiet.Type, err)
		return []recipes.Recipe{}, nil
	}

	dateKey := DailyRotationKey(now, service.location)
	return SelectDaily(pool, student.CPF, dateKey, DailyRecipeCount), nil
}
