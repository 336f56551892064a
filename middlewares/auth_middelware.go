package middlewares

import (
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Redirect("/login")
		}

		userID, err := utils.GetUserIDFromSession(sess)
		if err != nil {
			return c.Redirect("/login")
		}

		if _, err := authService.GetUserProfile(userID); err != nil {
			_ = sess.Destroy()
			return c.Redirect("/login")
		}

		return c.Next()
	}
}
