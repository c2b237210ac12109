package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rbatista-dev/performafit/internal/db"
	"github.com/rbatista-dev/performafit/internal/recipes"
)

// stubRecipeSource serves a fixed pool so smoke tests never reach the
// external recipe service.
type stubRecipeSource struct {
	pool []recipes.Recipe
}

func (stub stubRecipeSource) RecipesByDiet(ctx context.Context, dietType string) ([]recipes.Recipe, error) {
	return stub.pool, nil
}

func defaultStubPool() []recipes.Recipe {
	pool := make([]recipes.Recipe, 0, 8)
	for i := 0; i < 8; i++ {
		pool = append(pool, recipes.Recipe{
			Name:     fmt.Sprintf("Receita %d", i+1),
			DietType: "weight_loss",
			Calories: float64(200 + 10*i),
		})
	}
	return pool
}

func newSmokeApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "smoke.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, "smoke_test_secret", time.UTC, "", false)
	handler.WithRecipeSource(stubRecipeSource{pool: defaultStubPool()})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)
	return app
}

func requestJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) (int, []byte, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s encode payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}

	sessionCookie := ""
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			sessionCookie = cookie.Name + "=" + cookie.Value
		}
	}

	return response.StatusCode, responseBody, sessionCookie
}

func decodeJSON(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %s: %v", string(body), err)
	}
}

func mustRegisterAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	status, body, _ := requestJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"full_name": "Rafael Batista",
		"email":     "rafael@example.com",
		"cpf":       "11122233344",
		"type":      "both",
		"password":  "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register expected 201, got %d: %s", status, body)
	}

	status, body, cookie := requestJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "rafael@example.com",
		"password": "secret123",
	})
	if status != http.StatusOK {
		t.Fatalf("login expected 200, got %d: %s", status, body)
	}
	if cookie == "" {
		t.Fatalf("login did not set a session cookie")
	}
	return cookie
}

type createdStudent struct {
	Student struct {
		ID  uint   `json:"id"`
		CPF string `json:"cpf"`
	} `json:"student"`
	AccessCode string `json:"access_code"`
}

func mustCreateStudent(t *testing.T, app *fiber.App, cookie string) createdStudent {
	t.Helper()

	// Born 30 calendar years ago so the metabolic expectations below stay
	// valid whenever the suite runs.
	birthDate := fmt.Sprintf("%d-05-10", time.Now().Year()-30)

	status, body, _ := requestJSON(t, app, http.MethodPost, "/api/students", cookie, map[string]any{
		"full_name":  "Maria Souza",
		"cpf":        "987.654.321-00",
		"gender":     "female",
		"birth_date": birthDate,
		"objective":  "weight loss",
	})
	if status != http.StatusCreated {
		t.Fatalf("create student expected 201, got %d: %s", status, body)
	}

	created := createdStudent{}
	decodeJSON(t, body, &created)
	if created.Student.ID == 0 {
		t.Fatalf("create student returned no id: %s", body)
	}
	if created.Student.CPF != "98765432100" {
		t.Fatalf("expected normalized cpf 98765432100, got %q", created.Student.CPF)
	}
	if len(created.AccessCode) != 8 {
		t.Fatalf("expected 8-character access code, got %q", created.AccessCode)
	}
	return created
}
