package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	students := api.Group("/students", handler.AuthRequired)
	students.Get("", handler.ListStudents)
	students.Post("", handler.CreateStudent)
	students.Get("/:id", handler.GetStudent)
	students.Put("/:id", handler.UpdateStudent)
	students.Delete("/:id", handler.DeactivateStudent)
	students.Post("/:id/access-code", handler.RegenerateStudentAccessCode)
	students.Get("/:id/assessments", handler.ListAssessments)
	students.Post("/:id/assessments", handler.CreateAssessment)
	students.Get("/:id/evolution", handler.GetStudentEvolution)

	assessments := api.Group("/assessments", handler.AuthRequired)
	assessments.Delete("/:id", handler.DeleteAssessment)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Delete("/:id", handler.DeactivateWorkout)

	diets := api.Group("/diets", handler.AuthRequired)
	diets.Get("", handler.ListDiets)
	diets.Post("", handler.CreateDiet)
	diets.Delete("/:id", handler.DeactivateDiet)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/stats", handler.GetDashboardStats)

	insights := api.Group("/insights", handler.AuthRequired)
	insights.Get("", handler.ListInsights)
	insights.Post("", handler.CreateInsight)
	insights.Get("/stats", handler.GetInsightStats)
	insights.Post("/:id/apply", handler.ApplyInsight)

	portal := api.Group("/portal")
	portal.Post("/login", handler.PortalLogin)
	portal.Post("/logout", handler.PortalLogout)
	portal.Get("/overview", handler.PortalAuthRequired, handler.PortalOverview)
	portal.Get("/evolution", handler.PortalAuthRequired, handler.PortalEvolution)
	portal.Get("/recipes", handler.PortalAuthRequired, handler.PortalDailyRecipes)
}
