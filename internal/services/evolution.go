package services

import (
	"math"

	"github.com/rbatista-dev/performafit/internal/models"
)

const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
	DirectionNeutral  = "neutral"
)

// MetricSpec names one tracked metric and how to read it off an assessment.
// LowerIsBetter is presentation data supplied by the caller; the comparator
// itself only classifies direction.
type MetricSpec struct {
	Key           string
	LowerIsBetter bool
	Value         func(models.Assessment) float64
}

type MetricComparison struct {
	Key           string  `json:"key"`
	HasPriorData  bool    `json:"has_prior_data"`
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	Delta         float64 `json:"delta"`
	AbsDelta      float64 `json:"abs_delta"`
	Direction     string  `json:"direction"`
	LowerIsBetter bool    `json:"lower_is_better"`
}

type ComparisonView struct {
	HasComparison bool               `json:"has_comparison"`
	Metrics       []MetricComparison `json:"metrics"`
}

// DefaultMetricSpecs tracks the metrics the evolution report shows, with the
// UI's conventional polarity for each.
func DefaultMetricSpecs() []MetricSpec {
	return []MetricSpec{
		{Key: "weight_kg", LowerIsBetter: true, Value: func(a models.Assessment) float64 { return a.WeightKG }},
		{Key: "body_fat_percent", LowerIsBetter: true, Value: func(a models.Assessment) float64 { return a.BodyFatPercent }},
		{Key: "bmi", LowerIsBetter: true, Value: func(a models.Assessment) float64 { return a.BMI }},
		{Key: "waist_cm", LowerIsBetter: true, Value: func(a models.Assessment) float64 { return a.WaistCM }},
		{Key: "hip_cm", LowerIsBetter: false, Value: func(a models.Assessment) float64 { return a.HipCM }},
		{Key: "lean_mass_kg", LowerIsBetter: false, Value: func(a models.Assessment) float64 { return a.LeanMassKG }},
	}
}

// CompareSeries builds the evolution view from a history ordered ascending
// by evaluation date. It compares the latest entry against the one before
// it, metric by metric. With fewer than two entries every metric reports
// "no prior data"; the comparator never fabricates a baseline and never
// writes to the history.
func CompareSeries(history []models.Assessment, metrics []MetricSpec) ComparisonView {
	view := ComparisonView{Metrics: make([]MetricComparison, 0, len(metrics))}

	if len(history) < 2 {
		for _, metric := range metrics {
			view.Metrics = append(view.Metrics, MetricComparison{
				Key:           metric.Key,
				LowerIsBetter: metric.LowerIsBetter,
			})
		}
		return view
	}

	current := history[len(history)-1]
	previous := history[len(history)-2]
	view.HasComparison = true

	for _, metric := range metrics {
		currentValue := metric.Value(current)
		previousValue := metric.Value(previous)
		delta := currentValue - previousValue

		view.Metrics = append(view.Metrics, MetricComparison{
			Key:           metric.Key,
			HasPriorData:  true,
			Current:       currentValue,
			Previous:      previousValue,
			Delta:         delta,
			AbsDelta:      round1(math.Abs(delta)),
			Direction:     classifyDirection(delta),
			LowerIsBetter: metric.LowerIsBetter,
		})
	}

	return view
}

func classifyDirection(delta float64) string {
	switch {
	case delta > 0:
		return DirectionIncrease
	case delta < 0:
		return DirectionDecrease
	default:
		return DirectionNeutral
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
