package db

import (
	"github.com/rbatista-dev/performafit/internal/models"
	"gorm.io/gorm"
)

// StudentRepository scopes every professional-facing query by the owning
// professional so ownership is enforced at the data-access boundary.
type StudentRepository struct {
	database *gorm.DB
}

func NewStudentRepository(database *gorm.DB) *StudentRepository {
	return &StudentRepository{database: database}
}

func (repo *StudentRepository) Create(student *models.Student) error {
	return repo.database.Create(student).Error
}

func (repo *StudentRepository) ListByProfessional(professionalID uint) ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := repo.database.
		Where("professional_id = ?", professionalID).
		Order("full_name ASC, id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *StudentRepository) FindOwned(studentID uint, professionalID uint) (models.Student, error) {
	var student models.Student
	if err := repo.database.
		Where("id = ? AND professional_id = ?", studentID, professionalID).
		First(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (repo *StudentRepository) FindByCPF(cpf string) (models.Student, error) {
	var student models.Student
	if err := repo.database.Where("cpf = ?", cpf).First(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (repo *StudentRepository) FindByID(studentID uint) (models.Student, error) {
	var student models.Student
	if err := repo.database.First(&student, studentID).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (repo *StudentRepository) ExistsByCPF(cpf string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Student{}).
		Where("cpf = ?", cpf).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *StudentRepository) UpdateOwned(studentID uint, professionalID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Student{}).
		Where("id = ? AND professional_id = ?", studentID, professionalID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *StudentRepository) CountByProfessional(professionalID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Student{}).
		Where("professional_id = ?", professionalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
