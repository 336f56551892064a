package utils

import (
	"acaodocente/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

func InitializeSessionStore(s *session.Store) {
	store = s
}

func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	if store == nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session store not initialized")
	}
	return store.Get(c)
}

func GetUserRoleFromSession(sess *session.Session) (models.UserRole, error) {
	if role, ok := sess.Get("user_role").(models.UserRole); ok {
		return role, nil
	}

	if roleStr, ok := sess.Get("user_role").(string); ok {
		return models.UserRole(roleStr), nil
	}

	return "", fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida ou perfil de usuário ausente")
}

func GetUserIDFromSession(sess *session.Session) (uint, error) {
	userID, ok := sess.Get("user_id").(uint)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida ou ID de usuário ausente")
	}
	return userID, nil
}
