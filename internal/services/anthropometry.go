package services

import (
	"math"
	"time"

	"github.com/rbatista-dev/performafit/internal/models"
)

// DefaultSubjectAge is assumed for the metabolic formulas when a student has
// no birth date on file.
const DefaultSubjectAge = 30

// sedentaryActivityFactor converts BMR into an estimated daily expenditure.
// Only the sedentary level is supported.
const sedentaryActivityFactor = 1.2

type RawMeasurements struct {
	WeightKG       float64
	HeightCM       float64
	BodyFatPercent float64
	WaistCM        float64
	HipCM          float64
}

type Subject struct {
	Age    int
	Gender string
}

type DerivedMetrics struct {
	BMI        float64 `json:"bmi"`
	FatMassKG  float64 `json:"fat_mass_kg"`
	LeanMassKG float64 `json:"lean_mass_kg"`
	BMRKcal    float64 `json:"bmr_kcal"`
	DailyKcal  float64 `json:"daily_kcal"`
	// WaistHipRatio is 0 when the hip measurement is missing ("unavailable").
	WaistHipRatio float64 `json:"waist_hip_ratio"`
}

// ComputeDerived calculates the derived body-composition and metabolic
// metrics from raw measurements. Missing optional inputs default to zero and
// never block the rest of the computation; every stored value is rounded to
// two decimals.
func ComputeDerived(input RawMeasurements, subject Subject) DerivedMetrics {
	metrics := DerivedMetrics{}

	if input.HeightCM > 0 {
		heightM := input.HeightCM / 100
		metrics.BMI = round2(input.WeightKG / (heightM * heightM))
	}

	metrics.FatMassKG = round2(input.WeightKG * input.BodyFatPercent / 100)
	metrics.LeanMassKG = round2(input.WeightKG - metrics.FatMassKG)

	bmr := mifflinStJeor(input.WeightKG, input.HeightCM, subject.Age, subject.Gender)
	metrics.BMRKcal = round2(bmr)
	metrics.DailyKcal = round2(bmr * sedentaryActivityFactor)

	if input.HipCM > 0 {
		metrics.WaistHipRatio = round2(input.WaistCM / input.HipCM)
	}

	return metrics
}

// mifflinStJeor estimates resting energy expenditure in kcal. The female
// variant subtracts 161; every other gender value gets the +5 constant.
func mifflinStJeor(weightKG float64, heightCM float64, age int, gender string) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == models.GenderFemale {
		return base - 161
	}
	return base + 5
}

// AgeAt derives age by calendar-year subtraction, ignoring whether the
// birthday already happened this year. That matches how historical BMR
// values were produced, so it stays this way until product decides
// otherwise. A nil birth date falls back to DefaultSubjectAge.
func AgeAt(birthDate *time.Time, now time.Time) int {
	if birthDate == nil || birthDate.IsZero() {
		return DefaultSubjectAge
	}
	return now.Year() - birthDate.Year()
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
