package handlers

import (
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, err := utils.GetFlashMessages(c)
	if err != nil {
		utils.Log.Warn("Página de login: falha ao ler mensagens flash", zap.Error(err))
	}

	return c.Render("auth/auth_login", fiber.Map{
		"Title":     "Entrar",
		"CsrfToken": c.Locals("csrf"),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/auth_layout")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		utils.SLog.Warnf("Requisição de login não pôde ser lida: %v", err)
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Preencha o usuário e a senha.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if request.Username == "" || request.Password == "" {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Preencha o usuário e a senha.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	user, err := h.service.Authenticate(request.Username, request.Password)
	if err != nil {
		var errMsg string
		switch err {
		case services.ErrInvalidCredentials:
			errMsg = "Usuário ou senha inválidos."
		case services.ErrUserInactive:
			errMsg = "Sua conta está inativa. Procure o administrador do sistema."
		default:
			errMsg = "Ocorreu um problema durante o login. Tente novamente."
			utils.Log.Error("Erro inesperado no serviço de autenticação",
				zap.String("username", request.Username),
				zap.Error(err),
			)
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sess, sessionErr := utils.SessionStart(c)
	if sessionErr != nil {
		utils.Log.Error("Falha ao iniciar a sessão (login)",
			zap.Uint("user_id", user.ID),
			zap.String("username", user.Username),
			zap.Error(sessionErr),
		)
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Não foi possível iniciar a sessão. Tente novamente.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	sess.Set("user_id", user.ID)
	sess.Set("user_role", string(user.Role))
	sess.Set("user_name", user.Name)

	if saveErr := sess.Save(); saveErr != nil {
		utils.Log.Error("Falha ao gravar a sessão (login)",
			zap.Uint("user_id", user.ID),
			zap.String("username", user.Username),
			zap.Error(saveErr),
		)
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Os dados da sessão não puderam ser gravados.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Login realizado com sucesso.")
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Perfil: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		sess, sessionErr := utils.SessionStart(c)
		if sessionErr != nil {
			utils.Log.Error("Perfil: falha ao iniciar a sessão", zap.Error(sessionErr))
			_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro de sessão, faça login novamente.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		id, idErr := utils.GetUserIDFromSession(sess)
		if idErr != nil {
			utils.Log.Warn("Perfil: sessão sem user_id válido", zap.Error(idErr))
			_ = sess.Destroy()
			_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Sessão inválida, faça login novamente.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		userID = id
	}

	user, err := h.service.GetUserProfile(userID)
	if err != nil {
		var errMsg string
		if err == services.ErrUserNotFound {
			errMsg = "Perfil não encontrado, faça login novamente."
			utils.Log.Warn("Perfil: usuário não encontrado", zap.Uint("user_id", userID))
			if sess, _ := utils.SessionStart(c); sess != nil {
				_ = sess.Destroy()
			}
		} else {
			errMsg = "Erro ao carregar os dados do perfil."
			utils.Log.Error("Perfil: erro ao buscar o usuário", zap.Uint("user_id", userID), zap.Error(err))
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return c.Render("auth/auth_profile", fiber.Map{
		"Title":     "Meu Perfil",
		"User":      user,
		"CsrfToken": c.Locals("csrf"),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var request struct {
		CurrentPassword string `form:"current_password"`
		NewPassword     string `form:"new_password"`
		ConfirmPassword string `form:"confirm_password"`
	}

	if err := c.BodyParser(&request); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}

	if request.NewPassword != request.ConfirmPassword {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "A confirmação não confere com a nova senha.")
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro de sessão, faça login novamente.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Sessão inválida, faça login novamente.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := h.service.UpdatePassword(userID, request.CurrentPassword, request.NewPassword); err != nil {
		var errMsg string
		switch err {
		case services.ErrCurrentPasswordIncorrect, services.ErrPasswordTooShort, services.ErrPasswordSameAsOld:
			errMsg = err.Error()
		default:
			errMsg = "Erro ao atualizar a senha. Tente novamente."
			utils.Log.Error("Erro inesperado ao atualizar a senha", zap.Uint("user_id", userID), zap.Error(err))
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Senha atualizada com sucesso.")
	return c.Redirect("/profile", fiber.StatusSeeOther)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		utils.Log.Warn("Logout: falha ao recuperar a sessão", zap.Error(err))
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := sess.Destroy(); err != nil {
		utils.Log.Error("Logout: falha ao encerrar a sessão", zap.Error(err))
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Você saiu do sistema.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}
