package db

import (
	"github.com/rbatista-dev/performafit/internal/models"
	"gorm.io/gorm"
)

type DietRepository struct {
	database *gorm.DB
}

func NewDietRepository(database *gorm.DB) *DietRepository {
	return &DietRepository{database: database}
}

func (repo *DietRepository) Create(diet *models.Diet) error {
	return repo.database.Create(diet).Error
}

func (repo *DietRepository) ListByProfessional(professionalID uint) ([]models.Diet, error) {
	diets := make([]models.Diet, 0)
	if err := repo.database.
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Find(&diets).Error; err != nil {
		return nil, err
	}
	return diets, nil
}

func (repo *DietRepository) ListActiveByStudent(studentID uint) ([]models.Diet, error) {
	diets := make([]models.Diet, 0)
	if err := repo.database.
		Where("student_id = ? AND is_active = ?", studentID, true).
		Order("created_at ASC, id ASC").
		Find(&diets).Error; err != nil {
		return nil, err
	}
	return diets, nil
}

func (repo *DietRepository) DeactivateOwned(dietID uint, professionalID uint) error {
	result := repo.database.Model(&models.Diet{}).
		Where("id = ? AND professional_id = ?", dietID, professionalID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *DietRepository) CountByProfessional(professionalID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Diet{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
