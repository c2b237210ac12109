package services

import (
	"errors"
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
)

var (
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	ErrInvalidHeight = errors.New("height must be greater than zero")
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	ListByStudent(studentID uint) ([]models.Assessment, error)
	FindLatestByStudent(studentID uint) (models.Assessment, error)
	DeleteOwned(assessmentID uint, professionalID uint) error
}

type AssessmentStudentReader interface {
	FindOwned(studentID uint, professionalID uint) (models.Student, error)
}

type AssessmentService struct {
	assessments AssessmentRepository
	students    AssessmentStudentReader
}

func NewAssessmentService(assessments AssessmentRepository, students AssessmentStudentReader) *AssessmentService {
	return &AssessmentService{assessments: assessments, students: students}
}

// AssessmentInput carries the raw measurements for one evaluation event.
// Height is centimeters; display layers convert if they want meters.
type AssessmentInput struct {
	EvaluationDate time.Time

	WeightKG       float64
	HeightCM       float64
	BodyFatPercent float64

	WaistCM         float64
	AbdomenCM       float64
	HipCM           float64
	ChestCM         float64
	ArmRelaxedCM    float64
	ArmContractedCM float64
	ThighCM         float64
	CalfCM          float64

	BloodPressure string
	HeartRateBPM  int

	Injuries     string
	Medications  string
	Objective    string
	Observations string

	PhotoBeforeKey string
	PhotoAfterKey  string
}

// Create validates the required measurements, resolves the student under the
// acting professional, computes the derived metrics once and stores the full
// record. Derived values are never recomputed after this point.
func (service *AssessmentService) Create(professionalID uint, studentID uint, input AssessmentInput, now time.Time) (models.Assessment, error) {
	if input.WeightKG <= 0 {
		return models.Assessment{}, ErrInvalidWeight
	}
	if input.HeightCM <= 0 {
		return models.Assessment{}, ErrInvalidHeight
	}

	student, err := service.students.FindOwned(studentID, professionalID)
	if err != nil {
		return models.Assessment{}, err
	}

	derived := ComputeDerived(
		RawMeasurements{
			WeightKG:       input.WeightKG,
			HeightCM:       input.HeightCM,
			BodyFatPercent: input.BodyFatPercent,
			WaistCM:        input.WaistCM,
			HipCM:          input.HipCM,
		},
		Subject{
			Age:    AgeAt(student.BirthDate, now),
			Gender: student.Gender,
		},
	)

	evaluationDate := input.EvaluationDate
	if evaluationDate.IsZero() {
		evaluationDate = now
	}

	assessment := models.Assessment{
		StudentID:      student.ID,
		EvaluationDate: evaluationDate,

		WeightKG:       input.WeightKG,
		HeightCM:       input.HeightCM,
		BodyFatPercent: input.BodyFatPercent,

		WaistCM:         input.WaistCM,
		AbdomenCM:       input.AbdomenCM,
		HipCM:           input.HipCM,
		ChestCM:         input.ChestCM,
		ArmRelaxedCM:    input.ArmRelaxedCM,
		ArmContractedCM: input.ArmContractedCM,
		ThighCM:         input.ThighCM,
		CalfCM:          input.CalfCM,

		BloodPressure: input.BloodPressure,
		HeartRateBPM:  input.HeartRateBPM,

		Injuries:     input.Injuries,
		Medications:  input.Medications,
		Objective:    input.Objective,
		Observations: input.Observations,

		PhotoBeforeKey: input.PhotoBeforeKey,
		PhotoAfterKey:  input.PhotoAfterKey,

		BMI:           derived.BMI,
		FatMassKG:     derived.FatMassKG,
		LeanMassKG:    derived.LeanMassKG,
		BMRKcal:       derived.BMRKcal,
		DailyKcal:     derived.DailyKcal,
		WaistHipRatio: derived.WaistHipRatio,
	}

	if err := service.assessments.Create(&assessment); err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

// History returns the student's assessments ascending by evaluation date,
// after confirming ownership.
func (service *AssessmentService) History(professionalID uint, studentID uint) ([]models.Assessment, error) {
	if _, err := service.students.FindOwned(studentID, professionalID); err != nil {
		return nil, err
	}
	return service.assessments.ListByStudent(studentID)
}

// Evolution builds the latest-versus-previous comparison for the student.
func (service *AssessmentService) Evolution(professionalID uint, studentID uint) (ComparisonView, error) {
	history, err := service.History(professionalID, studentID)
	if err != nil {
		return ComparisonView{}, err
	}
	return CompareSeries(history, DefaultMetricSpecs()), nil
}

func (service *AssessmentService) Delete(professionalID uint, assessmentID uint) error {
	return service.assessments.DeleteOwned(assessmentID, professionalID)
}
