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

type CourseHandler struct {
	service services.ICourseService
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{service: services.NewCourseService(db)}
}

func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Lista de cursos: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	courses, dbErr := h.service.GetAllCourses()

	renderData := fiber.Map{
		"Title":     "Cursos",
		"CsrfToken": c.Locals("csrf"),
		"Courses":   courses,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}

	if dbErr != nil {
		utils.Log.Error("Lista de cursos: erro de banco de dados", zap.Error(dbErr))
		renderData["Error"] = "Erro ao carregar a lista de cursos."
		renderData["Courses"] = []models.Course{}
	}

	return c.Render("dashboard/courses/courses_list", renderData, "layouts/main_layout")
}

type courseForm struct {
	Name                string `form:"name"`
	Period              string `form:"period"`
	CurriculumComponent string `form:"curriculum_component"`
	ClassCode           string `form:"class_code"`
}

func (f *courseForm) toModel() *models.Course {
	return &models.Course{
		Name:                f.Name,
		Period:              f.Period,
		CurriculumComponent: f.CurriculumComponent,
		ClassCode:           f.ClassCode,
	}
}

func (h *CourseHandler) ShowCreateCourse(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Cadastro de curso: falha ao ler mensagens flash", zap.Error(flashErr))
	}
	return c.Render("dashboard/courses/courses_form", fiber.Map{
		"Title":     "Novo Curso",
		"CsrfToken": c.Locals("csrf"),
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req courseForm

	renderError := func(errorMsg string, statusCode int) error {
		return c.Status(statusCode).Render("dashboard/courses/courses_form", fiber.Map{
			"Title":     "Novo Curso",
			"CsrfToken": c.Locals("csrf"),
			"Error":     errorMsg,
			"FormData":  req,
		}, "layouts/main_layout")
	}

	if err := c.BodyParser(&req); err != nil {
		utils.SLog.Warnf("Cadastro de curso: formulário não pôde ser lido: %v", err)
		return renderError("Dados do formulário inválidos.", fiber.StatusBadRequest)
	}

	if err := h.service.CreateCourse(req.toModel()); err != nil {
		switch err {
		case services.ErrCourseNameRequired, services.ErrCoursePeriodRequired:
			return renderError(err.Error(), fiber.StatusBadRequest)
		default:
			return renderError("Erro ao cadastrar o curso.", fiber.StatusInternalServerError)
		}
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Curso cadastrado com sucesso.")
	return c.Redirect("/courses", fiber.StatusFound)
}

func (h *CourseHandler) ShowUpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Curso inválido.")
		return c.Redirect("/courses", fiber.StatusSeeOther)
	}

	course, err := h.service.GetCourseByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Curso não encontrado.")
		return c.Redirect("/courses", fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Edição de curso: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return c.Render("dashboard/courses/courses_form", fiber.Map{
		"Title":     "Editar Curso",
		"CsrfToken": c.Locals("csrf"),
		"Course":    course,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Curso inválido.")
		return c.Redirect("/courses", fiber.StatusSeeOther)
	}

	var req courseForm
	if err := c.BodyParser(&req); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect(fmt.Sprintf("/courses/edit/%d", id), fiber.StatusSeeOther)
	}

	if err := h.service.UpdateCourse(uint(id), req.toModel()); err != nil {
		var errMsg string
		switch err {
		case services.ErrCourseNotFound:
			errMsg = "Curso não encontrado."
		case services.ErrCourseNameRequired, services.ErrCoursePeriodRequired:
			errMsg = err.Error()
		default:
			errMsg = "Erro ao atualizar o curso."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect(fmt.Sprintf("/courses/edit/%d", id), fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Curso atualizado com sucesso.")
	return c.Redirect("/courses", fiber.StatusFound)
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Curso inválido.")
		return c.Redirect("/courses", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteCourse(uint(id)); err != nil {
		var errMsg string
		switch err {
		case services.ErrCourseNotFound:
			errMsg = "Curso não encontrado."
		default:
			errMsg = err.Error()
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/courses", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Curso excluído com sucesso.")
	return c.Redirect("/courses", fiber.StatusFound)
}
