package models

import "time"

// Assessment is one physical evaluation of a student. Raw measurements are
// stored exactly as entered (height in centimeters); the derived fields are
// computed once at creation time and never recomputed, so historical rows
// keep the values the professional saw when the assessment was taken.
type Assessment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StudentID uint `gorm:"not null;index" json:"student_id"`

	EvaluationDate time.Time `gorm:"not null;index" json:"evaluation_date"`

	WeightKG       float64 `gorm:"not null" json:"weight_kg"`
	HeightCM       float64 `gorm:"not null" json:"height_cm"`
	BodyFatPercent float64 `json:"body_fat_percent"`

	WaistCM         float64 `json:"waist_cm"`
	AbdomenCM       float64 `json:"abdomen_cm"`
	HipCM           float64 `json:"hip_cm"`
	ChestCM         float64 `json:"chest_cm"`
	ArmRelaxedCM    float64 `json:"arm_relaxed_cm"`
	ArmContractedCM float64 `json:"arm_contracted_cm"`
	ThighCM         float64 `json:"thigh_cm"`
	CalfCM          float64 `json:"calf_cm"`

	BloodPressure string `json:"blood_pressure"`
	HeartRateBPM  int    `json:"heart_rate_bpm"`

	Injuries     string `json:"injuries"`
	Medications  string `json:"medications"`
	Objective    string `json:"objective"`
	Observations string `json:"observations"`

	PhotoBeforeKey string `json:"photo_before_key"`
	PhotoAfterKey  string `json:"photo_after_key"`

	BMI        float64 `gorm:"column:bmi" json:"bmi"`
	FatMassKG  float64 `json:"fat_mass_kg"`
	LeanMassKG float64 `json:"lean_mass_kg"`
	BMRKcal    float64 `gorm:"column:bmr_kcal" json:"bmr_kcal"`
	DailyKcal  float64 `json:"daily_kcal"`
	// WaistHipRatio is 0 when the hip measurement was not taken; readers must
	// treat 0 as "unavailable", not as a valid ratio.
	WaistHipRatio float64 `json:"waist_hip_ratio"`

	CreatedAt time.Time `json:"created_at"`
}
