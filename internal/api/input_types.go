package api

import "github.com/rbatista-dev/performafit/internal/models"

type registerInput struct {
	FullName       string `json:"full_name" form:"full_name"`
	Email          string `json:"email" form:"email"`
	CPF            string `json:"cpf" form:"cpf"`
	Phone          string `json:"phone" form:"phone"`
	Type           string `json:"type" form:"type"`
	Specialization string `json:"specialization" form:"specialization"`
	LicenseNumber  string `json:"license_number" form:"license_number"`
	Password       string `json:"password" form:"password"`
}

type loginInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type portalLoginInput struct {
	CPF        string `json:"cpf" form:"cpf"`
	AccessCode string `json:"access_code" form:"access_code"`
}

type studentInput struct {
	FullName  string `json:"full_name" form:"full_name"`
	CPF       string `json:"cpf" form:"cpf"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	BirthDate string `json:"birth_date" form:"birth_date"`
	Gender    string `json:"gender" form:"gender"`
	Objective string `json:"objective" form:"objective"`
	Notes     string `json:"notes" form:"notes"`
}

type assessmentInput struct {
	EvaluationDate string `json:"evaluation_date" form:"evaluation_date"`

	WeightKG       float64 `json:"weight_kg" form:"weight_kg"`
	HeightCM       float64 `json:"height_cm" form:"height_cm"`
	BodyFatPercent float64 `json:"body_fat_percent" form:"body_fat_percent"`

	WaistCM         float64 `json:"waist_cm" form:"waist_cm"`
	AbdomenCM       float64 `json:"abdomen_cm" form:"abdomen_cm"`
	HipCM           float64 `json:"hip_cm" form:"hip_cm"`
	ChestCM         float64 `json:"chest_cm" form:"chest_cm"`
	ArmRelaxedCM    float64 `json:"arm_relaxed_cm" form:"arm_relaxed_cm"`
	ArmContractedCM float64 `json:"arm_contracted_cm" form:"arm_contracted_cm"`
	ThighCM         float64 `json:"thigh_cm" form:"thigh_cm"`
	CalfCM          float64 `json:"calf_cm" form:"calf_cm"`

	BloodPressure string `json:"blood_pressure" form:"blood_pressure"`
	HeartRateBPM  int    `json:"heart_rate_bpm" form:"heart_rate_bpm"`

	Injuries     string `json:"injuries" form:"injuries"`
	Medications  string `json:"medications" form:"medications"`
	Objective    string `json:"objective" form:"objective"`
	Observations string `json:"observations" form:"observations"`

	AttachPhotoBefore bool `json:"attach_photo_before" form:"attach_photo_before"`
	AttachPhotoAfter  bool `json:"attach_photo_after" form:"attach_photo_after"`
}

type workoutInput struct {
	StudentID uint                  `json:"student_id" form:"student_id"`
	Name      string                `json:"name" form:"name"`
	Type      string                `json:"type" form:"type"`
	Notes     string                `json:"notes" form:"notes"`
	Details   models.WorkoutDetails `json:"details"`
}

type insightInput struct {
	StudentID       uint   `json:"student_id" form:"student_id"`
	Type            string `json:"type" form:"type"`
	Priority        string `json:"priority" form:"priority"`
	Title           string `json:"title" form:"title"`
	Description     string `json:"description" form:"description"`
	SuggestedAction string `json:"suggested_action" form:"suggested_action"`
}

type dietInput struct {
	StudentID uint              `json:"student_id" form:"student_id"`
	Name      string            `json:"name" form:"name"`
	Type      string            `json:"type" form:"type"`
	Notes     string            `json:"notes" form:"notes"`
	Totals    models.DietTotals `json:"totals"`
	Meals     []models.DietMeal `json:"meals"`
}
