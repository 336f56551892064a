package handlers

import (
	"fmt"
	"strconv"

	"acaodocente/models"
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserHandler struct {
	service services.IUserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{service: services.NewUserService(db)}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Lista de usuários: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	var params utils.ListParams
	if err := c.QueryParser(&params); err != nil {
		utils.Log.Warn("Lista de usuários: parâmetros de consulta inválidos, usando padrões.", zap.Error(err))
		params = utils.ListParams{}
	}

	paginatedResult, dbErr := h.service.GetAllUsersPaginated(params)

	renderData := fiber.Map{
		"Title":     "Usuários",
		"CsrfToken": c.Locals("csrf"),
		"Result":    paginatedResult,
		"Params":    params,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}

	if dbErr != nil {
		utils.Log.Error("Lista de usuários: erro de banco de dados", zap.Error(dbErr))
		renderData["Error"] = "Erro ao carregar a lista de usuários."
		renderData["Result"] = &utils.PaginatedResult{
			Data: []models.User{},
			Meta: utils.PaginationMeta{CurrentPage: params.Page, PerPage: params.PerPage},
		}
	}

	return c.Render("dashboard/users/users_list", renderData, "layouts/main_layout")
}

type userForm struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
	Status   string `form:"status"`
}

func (f *userForm) toModel() *models.User {
	return &models.User{
		Name:     f.Name,
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		Role:     models.UserRole(f.Role),
		Status:   f.Status == "true" || f.Status == "on",
	}
}

func (h *UserHandler) ShowCreateUser(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Cadastro de usuário: falha ao ler mensagens flash", zap.Error(flashErr))
	}
	return c.Render("dashboard/users/users_form", fiber.Map{
		"Title":     "Novo Usuário",
		"CsrfToken": c.Locals("csrf"),
		"Roles":     models.ValidUserRoles(),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req userForm

	renderError := func(errorMsg string, statusCode int) error {
		return c.Status(statusCode).Render("dashboard/users/users_form", fiber.Map{
			"Title":     "Novo Usuário",
			"CsrfToken": c.Locals("csrf"),
			"Roles":     models.ValidUserRoles(),
			"Error":     errorMsg,
			"FormData":  req,
		}, "layouts/main_layout")
	}

	if err := c.BodyParser(&req); err != nil {
		utils.SLog.Warnf("Cadastro de usuário: formulário não pôde ser lido: %v", err)
		return renderError("Dados do formulário inválidos.", fiber.StatusBadRequest)
	}

	if err := h.service.CreateUser(req.toModel()); err != nil {
		switch err.(type) {
		case models.ModelError, services.UserServiceError:
			return renderError(err.Error(), fiber.StatusBadRequest)
		default:
			return renderError("Erro ao cadastrar o usuário.", fiber.StatusInternalServerError)
		}
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Usuário cadastrado com sucesso.")
	return c.Redirect("/users", fiber.StatusFound)
}

func (h *UserHandler) ShowUpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Usuário inválido.")
		return c.Redirect("/users", fiber.StatusSeeOther)
	}

	user, err := h.service.GetUserByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Usuário não encontrado.")
		return c.Redirect("/users", fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Edição de usuário: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return c.Render("dashboard/users/users_form", fiber.Map{
		"Title":     "Editar Usuário",
		"CsrfToken": c.Locals("csrf"),
		"User":      user,
		"Roles":     models.ValidUserRoles(),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Usuário inválido.")
		return c.Redirect("/users", fiber.StatusSeeOther)
	}

	var req userForm
	if err := c.BodyParser(&req); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect(fmt.Sprintf("/users/edit/%d", id), fiber.StatusSeeOther)
	}

	if err := h.service.UpdateUser(uint(id), req.toModel()); err != nil {
		var errMsg string
		switch err {
		case services.ErrUserServiceUserNotFound:
			errMsg = "Usuário não encontrado."
		default:
			errMsg = err.Error()
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/users/edit/%d", id), fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Usuário atualizado com sucesso.")
	return c.Redirect("/users", fiber.StatusFound)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Usuário inválido.")
		return c.Redirect("/users", fiber.StatusSeeOther)
	}

	sess, sessErr := utils.SessionStart(c)
	if sessErr == nil {
		if currentID, idErr := utils.GetUserIDFromSession(sess); idErr == nil && currentID == uint(id) {
			_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Você não pode excluir o próprio usuário.")
			return c.Redirect("/users", fiber.StatusSeeOther)
		}
	}

	if err := h.service.DeleteUser(uint(id)); err != nil {
		var errMsg string
		switch err {
		case services.ErrUserServiceUserNotFound:
			errMsg = "Usuário não encontrado."
		default:
			errMsg = "Erro ao excluir o usuário."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/users", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Usuário excluído com sucesso.")
	return c.Redirect("/users", fiber.StatusFound)
}
