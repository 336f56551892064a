package routes

import (
	"acaodocente/configs"
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig) {
	app.Use(logger.New())

	authService := services.NewAuthService(db)

	registerAuthRoutes(app, db, authService)
	registerDashboardRoutes(app, db, cfg, authService)
}

// RootRedirector cobre qualquer rota não registrada: usuários logados voltam
// para o painel, os demais para o login. Deve ser instalado por último, depois
// de todas as rotas.
func RootRedirector(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/login")
	}

	if _, err := utils.GetUserIDFromSession(sess); err != nil {
		return c.Redirect("/login")
	}

	return c.Redirect("/")
}
