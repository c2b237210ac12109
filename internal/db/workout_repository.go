package db

import (
	"github.com/rbatista-dev/performafit/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutRepository) ListByProfessional(professionalID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListActiveByStudent(studentID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("student_id = ? AND is_active = ?", studentID, true).
		Order("created_at ASC, id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) DeactivateOwned(workoutID uint, professionalID uint) error {
	result := repo.database.Model(&models.Workout{}).
		Where("id = ? AND professional_id = ?", workoutID, professionalID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *WorkoutRepository) CountByProfessional(professionalID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Workout{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
