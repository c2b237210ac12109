package services

import (
	"encoding/json"
	"strings"

	"github.com/rbatista-dev/performafit/internal/models"
)

// Early versions of the product piggybacked structured payloads on the
// free-text notes column: workout exercises, diet totals and meals all
// arrived as ad hoc JSON blobs. New writes store typed columns; these shims
// run once at the storage boundary so reads of legacy rows surface the same
// typed structures and the rest of the system never parses JSON out of
// notes.

type legacyWorkoutNotes struct {
	Exercises    []models.WorkoutExercise `json:"exercises"`
	WeeklyVolume int                      `json:"weekly_volume"`
}

type legacyDietNotes struct {
	Totals *models.DietTotals `json:"totals"`
	Meals  []models.DietMeal  `json:"meals"`
}

// UpgradeWorkoutNotes moves a legacy JSON payload out of the notes column
// into the typed details field. Rows already carrying typed details, and
// rows whose notes are plain free text, pass through unchanged.
func UpgradeWorkoutNotes(workout *models.Workout) {
	if workout == nil || len(workout.Details.Exercises) > 0 {
		return
	}

	payload, ok := decodeLegacyPayload[legacyWorkoutNotes](workout.Notes)
	if !ok || len(payload.Exercises) == 0 {
		return
	}

	workout.Details = models.WorkoutDetails{
		Exercises:    payload.Exercises,
		WeeklyVolume: payload.WeeklyVolume,
	}
	workout.Notes = ""
}

// UpgradeDietNotes is the diet-side twin of UpgradeWorkoutNotes.
func UpgradeDietNotes(diet *models.Diet) {
	if diet == nil {
		return
	}
	if diet.Totals != (models.DietTotals{}) || len(diet.Meals) > 0 {
		return
	}

	payload, ok := decodeLegacyPayload[legacyDietNotes](diet.Notes)
	if !ok {
		return
	}
	if payload.Totals == nil && len(payload.Meals) == 0 {
		return
	}

	if payload.Totals != nil {
		diet.Totals = *payload.Totals
	}
	diet.Meals = payload.Meals
	diet.Notes = ""
}

func decodeLegacyPayload[T any](notes string) (T, bool) {
	var payload T

	trimmed := strings.TrimSpace(notes)
	if !strings.HasPrefix(trimmed, "{") {
		return payload, false
	}

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return payload, false
	}
	return payload, true
}
