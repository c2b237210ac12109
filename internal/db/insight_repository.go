package db

import (
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
	"gorm.io/gorm"
)

type InsightRepository struct {
	database *gorm.DB
}

func NewInsightRepository(database *gorm.DB) *InsightRepository {
	return &InsightRepository{database: database}
}

func (repo *InsightRepository) Create(insight *models.Insight) error {
	return repo.database.Create(insight).Error
}

func (repo *InsightRepository) ListByProfessional(professionalID uint) ([]models.Insight, error) {
	insights := make([]models.Insight, 0)
	if err := repo.database.
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (repo *InsightRepository) ResolveOwned(insightID uint, professionalID uint, resolvedAt time.Time) error {
	result := repo.database.Model(&models.Insight{}).
		Where("id = ? AND professional_id = ?", insightID, professionalID).
		Updates(map[string]any{
			"is_resolved": true,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *InsightRepository) CountByResolution(professionalID uint, resolved bool) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Insight{}).
		Where("professional_id = ? AND is_resolved = ?", professionalID, resolved).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *InsightRepository) CountByProfessional(professionalID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Insight{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
