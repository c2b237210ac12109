package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)

	status, body, _ := requestJSON(t, app, http.MethodGet, "/healthz", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
}

func TestProfessionalRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)

	paths := []string{"/api/students", "/api/workouts", "/api/diets", "/api/dashboard/stats", "/api/insights"}
	for _, path := range paths {
		status, _, _ := requestJSON(t, app, http.MethodGet, path, "", nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("GET %s without a session expected 401, got %d", path, status)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing name", payload: map[string]any{"email": "a@b.com", "cpf": "11122233344", "type": "both", "password": "secret123"}},
		{name: "bad email", payload: map[string]any{"full_name": "A", "email": "nope", "cpf": "11122233344", "type": "both", "password": "secret123"}},
		{name: "bad cpf", payload: map[string]any{"full_name": "A", "email": "a@b.com", "cpf": "123", "type": "both", "password": "secret123"}},
		{name: "bad type", payload: map[string]any{"full_name": "A", "email": "a@b.com", "cpf": "11122233344", "type": "wizard", "password": "secret123"}},
		{name: "short password", payload: map[string]any{"full_name": "A", "email": "a@b.com", "cpf": "11122233344", "type": "both", "password": "123"}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			status, body, _ := requestJSON(t, app, http.MethodPost, "/api/auth/register", "", testCase.payload)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", status, body)
			}
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	_ = mustRegisterAndLogin(t, app)

	status, _, _ := requestJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "rafael@example.com",
		"password": "wrong-password",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", status)
	}
}

func TestStudentAssessmentFlow(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	cookie := mustRegisterAndLogin(t, app)
	student := mustCreateStudent(t, app, cookie)

	assessmentsPath := fmt.Sprintf("/api/students/%d/assessments", student.Student.ID)
	evolutionPath := fmt.Sprintf("/api/students/%d/evolution", student.Student.ID)

	// Missing weight is rejected before anything is stored.
	status, body, _ := requestJSON(t, app, http.MethodPost, assessmentsPath, cookie, map[string]any{
		"height_cm": 165,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing weight, got %d: %s", status, body)
	}

	status, body, _ = requestJSON(t, app, http.MethodPost, assessmentsPath, cookie, map[string]any{
		"evaluation_date":  "2026-08-01",
		"weight_kg":        60,
		"height_cm":        165,
		"body_fat_percent": 25,
		"waist_cm":         70,
		"hip_cm":           100,
	})
	if status != http.StatusCreated {
		t.Fatalf("create assessment expected 201, got %d: %s", status, body)
	}

	first := struct {
		ID            uint    `json:"id"`
		BMI           float64 `json:"bmi"`
		BMRKcal       float64 `json:"bmr_kcal"`
		DailyKcal     float64 `json:"daily_kcal"`
		WaistHipRatio float64 `json:"waist_hip_ratio"`
	}{}
	decodeJSON(t, body, &first)
	if first.BMI != 22.04 {
		t.Fatalf("expected stored BMI 22.04, got %v", first.BMI)
	}
	// Female student born 1996, so the Mifflin-St Jeor female constant applies.
	if first.BMRKcal != 1320.25 {
		t.Fatalf("expected BMR 1320.25, got %v", first.BMRKcal)
	}
	if first.DailyKcal != 1584.3 {
		t.Fatalf("expected daily kcal 1584.3, got %v", first.DailyKcal)
	}
	if first.WaistHipRatio != 0.7 {
		t.Fatalf("expected waist-hip ratio 0.7, got %v", first.WaistHipRatio)
	}

	status, body, _ = requestJSON(t, app, http.MethodGet, evolutionPath, cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("evolution expected 200, got %d: %s", status, body)
	}
	evolution := struct {
		HasComparison bool `json:"has_comparison"`
	}{}
	decodeJSON(t, body, &evolution)
	if evolution.HasComparison {
		t.Fatalf("expected no comparison after a single assessment")
	}

	status, body, _ = requestJSON(t, app, http.MethodPost, assessmentsPath, cookie, map[string]any{
		"evaluation_date":  "2026-09-15",
		"weight_kg":        58,
		"height_cm":        165,
		"body_fat_percent": 23,
		"waist_cm":         68,
		"hip_cm":           99,
	})
	if status != http.StatusCreated {
		t.Fatalf("second assessment expected 201, got %d: %s", status, body)
	}

	status, body, _ = requestJSON(t, app, http.MethodGet, assessmentsPath, cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("list assessments expected 200, got %d: %s", status, body)
	}
	var history []struct {
		WeightKG float64 `json:"weight_kg"`
	}
	decodeJSON(t, body, &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(history))
	}

	status, body, _ = requestJSON(t, app, http.MethodGet, evolutionPath, cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("evolution expected 200, got %d: %s", status, body)
	}
	richer := struct {
		HasComparison bool `json:"has_comparison"`
		Metrics       []struct {
			Key       string  `json:"key"`
			Direction string  `json:"direction"`
			AbsDelta  float64 `json:"abs_delta"`
		} `json:"metrics"`
	}{}
	decodeJSON(t, body, &richer)
	if !richer.HasComparison {
		t.Fatalf("expected a comparison after two assessments")
	}
	for _, metric := range richer.Metrics {
		if metric.Key == "weight_kg" {
			if metric.Direction != "decrease" || metric.AbsDelta != 2.0 {
				t.Fatalf("expected weight decrease of 2.0, got %+v", metric)
			}
		}
	}
}

func TestOwnershipIsolation(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	cookie := mustRegisterAndLogin(t, app)
	student := mustCreateStudent(t, app, cookie)

	// A second professional must not see or touch the first one's student.
	status, body, _ := requestJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"full_name": "Outro Profissional",
		"email":     "outro@example.com",
		"cpf":       "55566677788",
		"type":      "nutritionist",
		"password":  "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("second register expected 201, got %d: %s", status, body)
	}
	status, body, otherCookie := requestJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "outro@example.com",
		"password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("second login expected 200, got %d: %s", status, body)
	}

	studentPath := fmt.Sprintf("/api/students/%d", student.Student.ID)
	status, _, _ = requestJSON(t, app, http.MethodGet, studentPath, otherCookie, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for another professional's student, got %d", status)
	}

	assessmentsPath := fmt.Sprintf("/api/students/%d/assessments", student.Student.ID)
	status, _, _ = requestJSON(t, app, http.MethodPost, assessmentsPath, otherCookie, map[string]any{
		"weight_kg": 80,
		"height_cm": 180,
	})
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 creating an assessment for an unowned student, got %d", status)
	}

	var students []struct {
		ID uint `json:"id"`
	}
	status, body, _ = requestJSON(t, app, http.MethodGet, "/api/students", otherCookie, nil)
	if status != http.StatusOK {
		t.Fatalf("list students expected 200, got %d: %s", status, body)
	}
	decodeJSON(t, body, &students)
	if len(students) != 0 {
		t.Fatalf("second professional should see no students, got %d", len(students))
	}
}

func TestDuplicateStudentCPF(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	cookie := mustRegisterAndLogin(t, app)
	_ = mustCreateStudent(t, app, cookie)

	status, body, _ := requestJSON(t, app, http.MethodPost, "/api/students", cookie, map[string]any{
		"full_name": "Outra Maria",
		"cpf":       "98765432100",
	})
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate cpf, got %d: %s", status, body)
	}
}

func TestWorkoutAndDietFlow(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	cookie := mustRegisterAndLogin(t, app)
	student := mustCreateStudent(t, app, cookie)

	status, body, _ := requestJSON(t, app, http.MethodPost, "/api/workouts", cookie, map[string]any{
		"student_id": student.Student.ID,
		"name":       "Treino A",
		"type":       "hypertrophy",
		"details": map[string]any{
			"exercises": []map[string]any{
				{"name": "Supino reto", "sets": "4", "reps": "10"},
			},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create workout expected 201, got %d: %s", status, body)
	}

	status, body, _ = requestJSON(t, app, http.MethodPost, "/api/workouts", cookie, map[string]any{
		"student_id": student.Student.ID,
		"name":       "Treino B",
		"type":       "crossfit",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown workout type, got %d: %s", status, body)
	}

	status, body, _ = requestJSON(t, app, http.MethodPost, "/api/diets", cookie, map[string]any{
		"student_id": student.Student.ID,
		"name":       "Cutting",
		"type":       "weight_loss",
		"totals":     map[string]any{"calories": 1800, "protein_g": 140},
	})
	if status != http.StatusCreated {
		t.Fatalf("create diet expected 201, got %d: %s", status, body)
	}

	var workouts []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	status, body, _ = requestJSON(t, app, http.MethodGet, "/api/workouts", cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("list workouts expected 200, got %d: %s", status, body)
	}
	decodeJSON(t, body, &workouts)
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}

	status, _, _ = requestJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/workouts/%d", workouts[0].ID), cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("deactivate workout expected 200, got %d", status)
	}
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	app := newSmokeApp(t)
	cookie := mustRegisterAndLogin(t, app)
	_ = mustCreateStudent(t, app, cookie)

	status, body, _ := requestJSON(t, app, http.MethodGet, "/api/dashboard/stats", cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard stats expected 200, got %d: %s", status, body)
	}
	stats := struct {
		StudentCount int64 `json:"student_count"`
	}{}
	decodeJSON(t, body, &stats)
	if stats.StudentCount != 1 {
		t.Fatalf("expected 1 student counted, got %d", stats.StudentCount)
	}
}
