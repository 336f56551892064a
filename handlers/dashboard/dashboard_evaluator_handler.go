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

type EvaluatorHandler struct {
	service services.IEvaluatorService
}

func NewEvaluatorHandler(db *gorm.DB) *EvaluatorHandler {
	return &EvaluatorHandler{service: services.NewEvaluatorService(db)}
}

func (h *EvaluatorHandler) ListEvaluators(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Lista de avaliadores: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	evaluators, dbErr := h.service.GetAllEvaluators()

	renderData := fiber.Map{
		"Title":      "Avaliadores",
		"CsrfToken":  c.Locals("csrf"),
		"Evaluators": evaluators,
		"Success":    flashData.Success,
		"Error":      flashData.Error,
	}

	if dbErr != nil {
		utils.Log.Error("Lista de avaliadores: erro de banco de dados", zap.Error(dbErr))
		renderData["Error"] = "Erro ao carregar a lista de avaliadores."
		renderData["Evaluators"] = []models.Evaluator{}
	}

	return c.Render("dashboard/evaluators/evaluators_list", renderData, "layouts/main_layout")
}

type evaluatorForm struct {
	Name  string `form:"name"`
	Role  string `form:"role"`
	Email string `form:"email"`
}

func (f *evaluatorForm) toModel() *models.Evaluator {
	return &models.Evaluator{Name: f.Name, Role: f.Role, Email: f.Email}
}

func (h *EvaluatorHandler) ShowCreateEvaluator(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Cadastro de avaliador: falha ao ler mensagens flash", zap.Error(flashErr))
	}
	return c.Render("dashboard/evaluators/evaluators_form", fiber.Map{
		"Title":     "Novo Avaliador",
		"CsrfToken": c.Locals("csrf"),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *EvaluatorHandler) CreateEvaluator(c *fiber.Ctx) error {
	var req evaluatorForm

	renderError := func(errorMsg string, statusCode int) error {
		return c.Status(statusCode).Render("dashboard/evaluators/evaluators_form", fiber.Map{
			"Title":     "Novo Avaliador",
			"CsrfToken": c.Locals("csrf"),
			"Error":     errorMsg,
			"FormData":  req,
		}, "layouts/main_layout")
	}

	if err := c.BodyParser(&req); err != nil {
		utils.SLog.Warnf("Cadastro de avaliador: formulário não pôde ser lido: %v", err)
		return renderError("Dados do formulário inválidos.", fiber.StatusBadRequest)
	}

	if err := h.service.CreateEvaluator(req.toModel()); err != nil {
		switch err {
		case services.ErrEvaluatorNameRequired, services.ErrEvaluatorRoleRequired:
			return renderError(err.Error(), fiber.StatusBadRequest)
		default:
			return renderError("Erro ao cadastrar o avaliador.", fiber.StatusInternalServerError)
		}
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliador cadastrado com sucesso.")
	return c.Redirect("/evaluators", fiber.StatusFound)
}

func (h *EvaluatorHandler) ShowUpdateEvaluator(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliador inválido.")
		return c.Redirect("/evaluators", fiber.StatusSeeOther)
	}

	evaluator, err := h.service.GetEvaluatorByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliador não encontrado.")
		return c.Redirect("/evaluators", fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Edição de avaliador: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return c.Render("dashboard/evaluators/evaluators_form", fiber.Map{
		"Title":     "Editar Avaliador",
		"CsrfToken": c.Locals("csrf"),
		"Evaluator": evaluator,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *EvaluatorHandler) UpdateEvaluator(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliador inválido.")
		return c.Redirect("/evaluators", fiber.StatusSeeOther)
	}

	var req evaluatorForm
	if err := c.BodyParser(&req); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect(fmt.Sprintf("/evaluators/edit/%d", id), fiber.StatusSeeOther)
	}

	if err := h.service.UpdateEvaluator(uint(id), req.toModel()); err != nil {
		var errMsg string
		switch err {
		case services.ErrEvaluatorNotFound:
			errMsg = "Avaliador não encontrado."
		case services.ErrEvaluatorNameRequired, services.ErrEvaluatorRoleRequired:
			errMsg = err.Error()
		default:
			errMsg = "Erro ao atualizar o avaliador."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/evaluators/edit/%d", id), fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliador atualizado com sucesso.")
	return c.Redirect("/evaluators", fiber.StatusFound)
}

func (h *EvaluatorHandler) DeleteEvaluator(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliador inválido.")
		return c.Redirect("/evaluators", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteEvaluator(uint(id)); err != nil {
		var errMsg string
		switch err {
		case services.ErrEvaluatorNotFound:
			errMsg = "Avaliador não encontrado."
		default:
			errMsg = err.Error()
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/evaluators", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliador excluído com sucesso.")
	return c.Redirect("/evaluators", fiber.StatusFound)
}
