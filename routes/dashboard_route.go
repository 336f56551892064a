package routes

import (
	"acaodocente/configs"
	handlers "acaodocente/handlers/dashboard"
	"acaodocente/middlewares"
	"acaodocente/models"
	"acaodocente/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerDashboardRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, authService services.IAuthService) {
	requireAuth := middlewares.AuthMiddleware(authService)
	requireActive := middlewares.StatusMiddleware(authService)

	homeHandler := handlers.NewHomeHandler(db)
	app.Get("/", requireAuth, requireActive, homeHandler.HomePage)
	app.Get("/api/dashboard-data", requireAuth, requireActive, homeHandler.DashboardData)

	teacherHandler := handlers.NewTeacherHandler(db)
	teachersGroup := app.Group("/teachers", requireAuth, requireActive)
	teachersGroup.Get("/", teacherHandler.ListTeachers)
	teachersGroup.Get("/create", teacherHandler.ShowCreateTeacher)
	teachersGroup.Post("/create", teacherHandler.CreateTeacher)
	teachersGroup.Get("/edit/:id", teacherHandler.ShowUpdateTeacher)
	teachersGroup.Post("/edit/:id", teacherHandler.UpdateTeacher)
	teachersGroup.Post("/delete/:id", teacherHandler.DeleteTeacher)
	teachersGroup.Get("/template", teacherHandler.DownloadTemplate)
	teachersGroup.Post("/import", teacherHandler.ImportTeachers)

	courseHandler := handlers.NewCourseHandler(db)
	coursesGroup := app.Group("/courses", requireAuth, requireActive)
	coursesGroup.Get("/", courseHandler.ListCourses)
	coursesGroup.Get("/create", courseHandler.ShowCreateCourse)
	coursesGroup.Post("/create", courseHandler.CreateCourse)
	coursesGroup.Get("/edit/:id", courseHandler.ShowUpdateCourse)
	coursesGroup.Post("/edit/:id", courseHandler.UpdateCourse)
	coursesGroup.Post("/delete/:id", courseHandler.DeleteCourse)

	evaluatorHandler := handlers.NewEvaluatorHandler(db)
	evaluatorsGroup := app.Group("/evaluators", requireAuth, requireActive)
	evaluatorsGroup.Get("/", evaluatorHandler.ListEvaluators)
	evaluatorsGroup.Get("/create", evaluatorHandler.ShowCreateEvaluator)
	evaluatorsGroup.Post("/create", evaluatorHandler.CreateEvaluator)
	evaluatorsGroup.Get("/edit/:id", evaluatorHandler.ShowUpdateEvaluator)
	evaluatorsGroup.Post("/edit/:id", evaluatorHandler.UpdateEvaluator)
	evaluatorsGroup.Post("/delete/:id", evaluatorHandler.DeleteEvaluator)

	evaluationHandler := handlers.NewEvaluationHandler(db, cfg)
	evaluationsGroup := app.Group("/evaluations", requireAuth, requireActive)
	evaluationsGroup.Get("/", evaluationHandler.ListEvaluations)
	evaluationsGroup.Get("/create", evaluationHandler.ShowCreateEvaluation)
	evaluationsGroup.Post("/create", evaluationHandler.CreateEvaluation)
	evaluationsGroup.Get("/view/:id", evaluationHandler.ViewEvaluation)
	evaluationsGroup.Get("/edit/:id", evaluationHandler.ShowUpdateEvaluation)
	evaluationsGroup.Post("/edit/:id", evaluationHandler.UpdateEvaluation)
	evaluationsGroup.Post("/complete/:id", evaluationHandler.CompleteEvaluation)
	evaluationsGroup.Post("/delete/:id", evaluationHandler.DeleteEvaluation)

	reportHandler := handlers.NewReportHandler(db)
	reportsGroup := app.Group("/reports", requireAuth, requireActive)
	reportsGroup.Get("/", reportHandler.ShowReports)
	reportsGroup.Get("/evaluation/:id", reportHandler.DownloadEvaluationReport)
	reportsGroup.Get("/teacher/:teacherId", reportHandler.DownloadConsolidatedReport)

	// Gestão de usuários é restrita aos administradores.
	userHandler := handlers.NewUserHandler(db)
	adminGroup := app.Group("/users", requireAuth, requireActive,
		middlewares.RoleMiddleware(authService, models.RoleAdmin))
	adminGroup.Get("/", userHandler.ListUsers)
	adminGroup.Get("/create", userHandler.ShowCreateUser)
	adminGroup.Post("/create", userHandler.CreateUser)
	adminGroup.Get("/edit/:id", userHandler.ShowUpdateUser)
	adminGroup.Post("/edit/:id", userHandler.UpdateUser)
	adminGroup.Post("/delete/:id", userHandler.DeleteUser)
}
