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

type TeacherHandler struct {
	service       services.ITeacherService
	importService services.IImportService
}

func NewTeacherHandler(db *gorm.DB) *TeacherHandler {
	return &TeacherHandler{
		service:       services.NewTeacherService(db),
		importService: services.NewImportService(db),
	}
}

func (h *TeacherHandler) ListTeachers(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Lista de docentes: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	var params utils.ListParams
	if err := c.QueryParser(&params); err != nil {
		utils.Log.Warn("Lista de docentes: parâmetros de consulta inválidos, usando padrões.", zap.Error(err))
		params = utils.ListParams{}
	}

	paginatedResult, dbErr := h.service.GetTeachersPaginated(params)

	renderData := fiber.Map{
		"Title":     "Docentes",
		"CsrfToken": c.Locals("csrf"),
		"Result":    paginatedResult,
		"Params":    params,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
		"Warning":   flashData.Warning,
	}

	if dbErr != nil {
		utils.Log.Error("Lista de docentes: erro de banco de dados", zap.Error(dbErr))
		renderData["Error"] = "Erro ao carregar a lista de docentes."
		renderData["Result"] = &utils.PaginatedResult{
			Data: []models.Teacher{},
			Meta: utils.PaginationMeta{CurrentPage: params.Page, PerPage: params.PerPage},
		}
	}

	return c.Render("dashboard/teachers/teachers_list", renderData, "layouts/main_layout")
}

func (h *TeacherHandler) ShowCreateTeacher(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Cadastro de docente: falha ao ler mensagens flash", zap.Error(flashErr))
	}
	return c.Render("dashboard/teachers/teachers_form", fiber.Map{
		"Title":     "Novo Docente",
		"CsrfToken": c.Locals("csrf"),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

type teacherForm struct {
	Name     string `form:"name"`
	Area     string `form:"area"`
	Subjects string `form:"subjects"`
	Workload string `form:"workload"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
}

func (f *teacherForm) toModel() *models.Teacher {
	workload, _ := strconv.Atoi(f.Workload)
	return &models.Teacher{
		Name:     f.Name,
		Area:     f.Area,
		Subjects: f.Subjects,
		Workload: workload,
		Email:    f.Email,
		Phone:    f.Phone,
	}
}

func (h *TeacherHandler) CreateTeacher(c *fiber.Ctx) error {
	var req teacherForm

	renderError := func(errorMsg string, statusCode int) error {
		return c.Status(statusCode).Render("dashboard/teachers/teachers_form", fiber.Map{
			"Title":     "Novo Docente",
			"CsrfToken": c.Locals("csrf"),
			"Error":     errorMsg,
			"FormData":  req,
		}, "layouts/main_layout")
	}

	if err := c.BodyParser(&req); err != nil {
		utils.SLog.Warnf("Cadastro de docente: formulário não pôde ser lido: %v", err)
		return renderError("Dados do formulário inválidos.", fiber.StatusBadRequest)
	}

	if err := h.service.CreateTeacher(req.toModel()); err != nil {
		switch err {
		case services.ErrTeacherNameRequired, services.ErrTeacherAreaRequired:
			return renderError(err.Error(), fiber.StatusBadRequest)
		default:
			return renderError("Erro ao cadastrar o docente.", fiber.StatusInternalServerError)
		}
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Docente cadastrado com sucesso.")
	return c.Redirect("/teachers", fiber.StatusFound)
}

func (h *TeacherHandler) ShowUpdateTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente inválido.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	teacher, err := h.service.GetTeacherByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente não encontrado.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Edição de docente: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return c.Render("dashboard/teachers/teachers_form", fiber.Map{
		"Title":     "Editar Docente",
		"CsrfToken": c.Locals("csrf"),
		"Teacher":   teacher,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *TeacherHandler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente inválido.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	var req teacherForm
	if err := c.BodyParser(&req); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect(fmt.Sprintf("/teachers/edit/%d", id), fiber.StatusSeeOther)
	}

	if err := h.service.UpdateTeacher(uint(id), req.toModel()); err != nil {
		var errMsg string
		switch err {
		case services.ErrTeacherNotFound:
			errMsg = "Docente não encontrado."
		case services.ErrTeacherNameRequired, services.ErrTeacherAreaRequired:
			errMsg = err.Error()
		default:
			errMsg = "Erro ao atualizar o docente."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/teachers/edit/%d", id), fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Docente atualizado com sucesso.")
	return c.Redirect("/teachers", fiber.StatusFound)
}

func (h *TeacherHandler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente inválido.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteTeacher(uint(id)); err != nil {
		var errMsg string
		switch err {
		case services.ErrTeacherNotFound:
			errMsg = "Docente não encontrado."
		default:
			errMsg = err.Error()
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Docente excluído com sucesso.")
	return c.Redirect("/teachers", fiber.StatusFound)
}

// DownloadTemplate entrega a planilha modelo usada na importação em lote.
func (h *TeacherHandler) DownloadTemplate(c *fiber.Ctx) error {
	content, err := h.importService.GenerateTeachersTemplate()
	if err != nil {
		utils.Log.Error("Falha ao gerar a planilha modelo de docentes", zap.Error(err))
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao gerar a planilha modelo.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="modelo_docentes.xlsx"`)
	return c.Send(content)
}

func (h *TeacherHandler) ImportTeachers(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Selecione uma planilha para importar.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Log.Error("Importação de docentes: falha ao abrir o arquivo enviado", zap.Error(err))
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Não foi possível ler a planilha enviada.")
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}
	defer file.Close()

	result, err := h.importService.ImportTeachersFromExcel(file)
	if err != nil {
		utils.Log.Error("Importação de docentes: falha ao processar a planilha", zap.Error(err))
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao processar a planilha: "+err.Error())
		return c.Redirect("/teachers", fiber.StatusSeeOther)
	}

	if result.Success > 0 {
		_ = utils.SetFlashMessage(c, utils.FlashSuccessKey,
			fmt.Sprintf("%d docente(s) importado(s) com sucesso.", result.Success))
	}
	if len(result.Warnings) > 0 {
		_ = utils.SetFlashMessage(c, utils.FlashWarningKey,
			fmt.Sprintf("%d linha(s) ignorada(s): %s", len(result.Warnings), result.Warnings[0]))
	}
	if len(result.Errors) > 0 {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey,
			fmt.Sprintf("%d linha(s) com erro: %s", len(result.Errors), result.Errors[0]))
	}

	return c.Redirect("/teachers", fiber.StatusFound)
}
