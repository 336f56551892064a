package middlewares

import (
	"acaodocente/models"
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
)

// RoleMiddleware libera a rota apenas para os perfis informados.
func RoleMiddleware(authService services.IAuthService, allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Sessão não iniciada")
		}

		userID, err := utils.GetUserIDFromSession(sess)
		if err != nil {
			return c.Status(fiber.StatusForbidden).SendString("Acesso não autorizado")
		}

		user, err := authService.GetUserProfile(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Não foi possível carregar o usuário")
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).SendString("Você não tem permissão para esta operação")
	}
}
