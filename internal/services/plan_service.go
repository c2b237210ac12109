package services

import (
	"errors"
	"strings"

	"github.com/rbatista-dev/performafit/internal/models"
)

var (
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	ErrInvalidDietType    = errors.New("invalid diet type")
)

type WorkoutRepository interface {
	Create(workout *models.Workout) error
	ListByProfessional(professionalID uint) ([]models.Workout, error)
	ListActiveByStudent(studentID uint) ([]models.Workout, error)
	DeactivateOwned(workoutID uint, professionalID uint) error
}

type DietRepository interface {
	Create(diet *models.Diet) error
	ListByProfessional(professionalID uint) ([]models.Diet, error)
	ListActiveByStudent(studentID uint) ([]models.Diet, error)
	DeactivateOwned(dietID uint, professionalID uint) error
}

type PlanStudentReader interface {
	FindOwned(studentID uint, professionalID uint) (models.Student, error)
}

// PlanService manages workout and diet plans. Reads pass through the legacy
// notes shim so rows written before the typed columns existed come back with
// the same structure as new rows.
type PlanService struct {
	workouts WorkoutRepository
	diets    DietRepository
	students PlanStudentReader
}

func NewPlanService(workouts WorkoutRepository, diets DietRepository, students PlanStudentReader) *PlanService {
	return &PlanService{workouts: workouts, diets: diets, students: students}
}

type WorkoutInput struct {
	Name    string
	Type    string
	Notes   string
	Details models.WorkoutDetails
}

func (service *PlanService) CreateWorkout(professionalID uint, studentID uint, input WorkoutInput) (models.Workout, error) {
	if !models.ValidWorkoutType(input.Type) {
		return models.Workout{}, ErrInvalidWorkoutType
	}
	student, err := service.students.FindOwned(studentID, professionalID)
	if err != nil {
		return models.Workout{}, err
	}

	workout := models.Workout{
		StudentID:      student.ID,
		ProfessionalID: professionalID,
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		Notes:          strings.TrimSpace(input.Notes),
		Details:        input.Details,
		IsActive:       true,
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (service *PlanService) ListWorkouts(professionalID uint) ([]models.Workout, error) {
	workouts, err := service.workouts.ListByProfessional(professionalID)
	if err != nil {
		return nil, err
	}
	for index := range workouts {
		UpgradeWorkoutNotes(&workouts[index])
	}
	return workouts, nil
}

func (service *PlanService) DeactivateWorkout(professionalID uint, workoutID uint) error {
	return service.workouts.DeactivateOwned(workoutID, professionalID)
}

type DietInput struct {
	Name   string
	Type   string
	Notes  string
	Totals models.DietTotals
	Meals  []models.DietMeal
}

func (service *PlanService) CreateDiet(professionalID uint, studentID uint, input DietInput) (models.Diet, error) {
	if !models.ValidDietType(input.Type) {
		return models.Diet{}, ErrInvalidDietType
	}
	student, err := service.students.FindOwned(studentID, professionalID)
	if err != nil {
		return models.Diet{}, err
	}

	diet := models.Diet{
		StudentID:      student.ID,
		ProfessionalID: professionalID,
		Name:           strings.TrimSpace(input.Name),
		Type:           input.Type,
		Notes:          strings.TrimSpace(input.Notes),
		Totals:         input.Totals,
		Meals:          input.Meals,
		IsActive:       true,
	}
	if err := service.diets.Create(&diet); err != nil {
		return models.Diet{}, err
	}
	return diet, nil
}

func (service *PlanService) ListDiets(professionalID uint) ([]models.Diet, error) {
	diets, err := service.diets.ListByProfessional(professionalID)
	if err != nil {
		return nil, err
	}
	for index := range diets {
		UpgradeDietNotes(&diets[index])
	}
	return diets, nil
}

func (service *PlanService) DeactivateDiet(professionalID uint, dietID uint) error {
	return service.diets.DeactivateOwned(dietID, professionalID)
}
