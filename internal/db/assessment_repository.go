package db

import (
	"github.com/rbatista-dev/performafit/internal/models"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) Create(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

// ListByStudent returns the full history ascending by evaluation date, the
// order the evolution comparator expects.
func (repo *AssessmentRepository) ListByStudent(studentID uint) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := repo.database.
		Where("student_id = ?", studentID).
		Order("evaluation_date ASC, id ASC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) FindLatestByStudent(studentID uint) (models.Assessment, error) {
	var assessment models.Assessment
	if err := repo.database.
		Where("student_id = ?", studentID).
		Order("evaluation_date DESC, id DESC").
		First(&assessment).Error; err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

// DeleteOwned removes an assessment only when it belongs to a student of the
// given professional. Assessments have no update path.
func (repo *AssessmentRepository) DeleteOwned(assessmentID uint, professionalID uint) error {
	result := repo.database.Exec(
		`DELETE FROM assessments WHERE id = ? AND student_id IN
		 (SELECT id FROM students WHERE professional_id = ?)`,
		assessmentID, professionalID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
