package db

import "gorm.io/gorm"

type Repositories struct {
	Professionals *ProfessionalRepository
	Students      *StudentRepository
	Assessments   *AssessmentRepository
	Workouts      *WorkoutRepository
	Diets         *DietRepository
	Insights      *InsightRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Professionals: NewProfessionalRepository(database),
		Students:      NewStudentRepository(database),
		Assessments:   NewAssessmentRepository(database),
		Workouts:      NewWorkoutRepository(database),
		Diets:         NewDietRepository(database),
		Insights:      NewInsightRepository(database),
	}
}
