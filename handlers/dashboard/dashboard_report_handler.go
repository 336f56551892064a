package handlers

import (
	"fmt"
	"strconv"
	"time"

	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReportHandler struct {
	reportService     services.IReportService
	evaluationService services.IEvaluationService
	teacherService    services.ITeacherService
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		reportService:     services.NewReportService(),
		evaluationService: services.NewEvaluationService(db, nil, nil),
		teacherService:    services.NewTeacherService(db),
	}
}

func (h *ReportHandler) ShowReports(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Relatórios: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	teachers, err := h.teacherService.GetAllTeachers()
	if err != nil {
		utils.Log.Error("Relatórios: falha ao listar docentes", zap.Error(err))
	}

	return c.Render("dashboard/reports/reports_home", fiber.Map{
		"Title":     "Relatórios",
		"CsrfToken": c.Locals("csrf"),
		"Teachers":  teachers,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
	}, "layouts/main_layout")
}

// DownloadEvaluationReport entrega o PDF individual de uma avaliação.
func (h *ReportHandler) DownloadEvaluationReport(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	evaluation, err := h.evaluationService.GetEvaluationByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação não encontrada.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	content, err := h.reportService.GenerateEvaluationReport(evaluation)
	if err != nil {
		utils.Log.Error("Falha ao gerar o PDF da avaliação", zap.Uint("evaluation_id", uint(id)), zap.Error(err))
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao gerar o relatório em PDF.")
		return c.Redirect(fmt.Sprintf("/evaluations/view/%d", id), fiber.StatusSeeOther)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="avaliacao_%d.pdf"`, id))
	return c.Send(content)
}

// DownloadConsolidatedReport entrega o PDF consolidado de um docente,
// opcionalmente restrito a um intervalo de datas (start_date e end_date no
// formato 2006-01-02).
func (h *ReportHandler) DownloadConsolidatedReport(c *fiber.Ctx) error {
	teacherID, err := strconv.ParseUint(c.Params("teacherId"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente inválido.")
		return c.Redirect("/reports", fiber.StatusSeeOther)
	}

	teacher, err := h.teacherService.GetTeacherByID(uint(teacherID))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Docente não encontrado.")
		return c.Redirect("/reports", fiber.StatusSeeOther)
	}

	var start, end *time.Time
	if raw := c.Query("start_date"); raw != "" {
		if parsed, parseErr := time.Parse("2006-01-02", raw); parseErr == nil {
			start = &parsed
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if parsed, parseErr := time.Parse("2006-01-02", raw); parseErr == nil {
			// Inclui o dia final inteiro.
			endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
			end = &endOfDay
		}
	}

	evaluations, err := h.evaluationService.GetEvaluationsByTeacher(uint(teacherID), start, end)
	if err != nil {
		utils.Log.Error("Relatório consolidado: falha ao buscar as avaliações",
			zap.Uint("teacher_id", uint(teacherID)),
			zap.Error(err),
		)
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao buscar as avaliações do docente.")
		return c.Redirect("/reports", fiber.StatusSeeOther)
	}

	content, err := h.reportService.GenerateConsolidatedReport(teacher, evaluations)
	if err != nil {
		if err == services.ErrReportNoEvaluations {
			_ = utils.SetFlashMessage(c, utils.FlashWarningKey, err.Error())
			return c.Redirect("/reports", fiber.StatusSeeOther)
		}
		utils.Log.Error("Falha ao gerar o relatório consolidado",
			zap.Uint("teacher_id", uint(teacherID)),
			zap.Error(err),
		)
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao gerar o relatório em PDF.")
		return c.Redirect("/reports", fiber.StatusSeeOther)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="consolidado_docente_%d.pdf"`, teacherID))
	return c.Send(content)
}
