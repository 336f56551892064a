package routes

import (
	handlers "acaodocente/handlers/auth"
	"acaodocente/middlewares"
	"acaodocente/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerAuthRoutes(app *fiber.App, db *gorm.DB, authService services.IAuthService) {
	authHandler := handlers.NewAuthHandler(db)

	app.Get("/login", middlewares.GuestMiddleware(authService), authHandler.ShowLogin)
	app.Post("/login", middlewares.GuestMiddleware(authService), authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	profileGroup := app.Group("/profile")
	profileGroup.Use(
		middlewares.AuthMiddleware(authService),
		middlewares.StatusMiddleware(authService),
	)
	profileGroup.Get("/", authHandler.Profile)
	profileGroup.Post("/password", authHandler.UpdatePassword)
}
