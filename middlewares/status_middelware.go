package middlewares

import (
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
)

func StatusMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Redirect("/login")
		}

		userID, err := utils.GetUserIDFromSession(sess)
		if err != nil {
			return c.Redirect("/login")
		}

		user, err := authService.GetUserProfile(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Usuário não encontrado")
		}

		if !user.Status {
			return c.Status(fiber.StatusForbidden).SendString("Usuário inativo")
		}

		return c.Next()
	}
}
