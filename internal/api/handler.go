package api

import (
	"net/http"
	"time"

	"github.com/rbatista-dev/performafit/internal/db"
	"github.com/rbatista-dev/performafit/internal/recipes"
	"github.com/rbatista-dev/performafit/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService       *services.AuthService
	studentService    *services.StudentService
	assessmentService *services.AssessmentService
	planService       *services.PlanService
	portalService     *services.PortalService
	dashboardService  *services.DashboardService
	insightService    *services.InsightService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, recipeServiceURL string, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}

	repositories := db.NewRepositories(database)
	recipeSource := recipes.NewClient(recipeServiceURL, &http.Client{Timeout: 15 * time.Second})

	handler.repositories = repositories
	handler.authService = services.NewAuthService(repositories.Professionals)
	handler.studentService = services.NewStudentService(repositories.Students)
	handler.assessmentService = services.NewAssessmentService(repositories.Assessments, repositories.Students)
	handler.planService = services.NewPlanService(repositories.Workouts, repositories.Diets, repositories.Students)
	handler.portalService = services.NewPortalService(
		repositories.Students,
		repositories.Workouts,
		repositories.Diets,
		repositories.Assessments,
		recipeSource,
		location,
	)
	handler.dashboardService = services.NewDashboardService(
		repositories.Students,
		repositories.Workouts,
		repositories.Diets,
		repositories.Insights,
	)
	handler.insightService = services.NewInsightService(repositories.Insights, repositories.Students)

	return handler
}

// WithRecipeSource swaps the recipe backend, used by tests to avoid the
// external service.
func (handler *Handler) WithRecipeSource(source services.RecipeSource) *Handler {
	handler.portalService = services.NewPortalService(
		handler.repositories.Students,
		handler.repositories.Workouts,
		handler.repositories.Diets,
		handler.repositories.Assessments,
		source,
		handler.location,
	)
	return handler
}
