package handlers

import (
	"fmt"
	"strconv"
	"time"

	"acaodocente/configs"
	"acaodocente/models"
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EvaluationHandler struct {
	service          services.IEvaluationService
	teacherService   services.ITeacherService
	courseService    services.ICourseService
	evaluatorService services.IEvaluatorService
	uploadDir        string
}

func NewEvaluationHandler(db *gorm.DB, cfg configs.AppConfig) *EvaluationHandler {
	mailService := services.NewMailService(cfg.Mail)
	reportService := services.NewReportService()
	return &EvaluationHandler{
		service:          services.NewEvaluationService(db, reportService, mailService),
		teacherService:   services.NewTeacherService(db),
		courseService:    services.NewCourseService(db),
		evaluatorService: services.NewEvaluatorService(db),
		uploadDir:        cfg.UploadDir,
	}
}

func (h *EvaluationHandler) ListEvaluations(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Lista de avaliações: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	var params utils.ListParams
	if err := c.QueryParser(&params); err != nil {
		utils.Log.Warn("Lista de avaliações: parâmetros de consulta inválidos, usando padrões.", zap.Error(err))
		params = utils.ListParams{}
	}

	paginatedResult, dbErr := h.service.GetEvaluationsPaginated(params)

	renderData := fiber.Map{
		"Title":     "Avaliações",
		"CsrfToken": c.Locals("csrf"),
		"Result":    paginatedResult,
		"Params":    params,
		"Success":   flashData.Success,
		"Error":     flashData.Error,
		"Warning":   flashData.Warning,
	}

	if dbErr != nil {
		utils.Log.Error("Lista de avaliações: erro de banco de dados", zap.Error(dbErr))
		renderData["Error"] = "Erro ao carregar a lista de avaliações."
		renderData["Result"] = &utils.PaginatedResult{
			Data: []models.Evaluation{},
			Meta: utils.PaginationMeta{CurrentPage: params.Page, PerPage: params.PerPage},
		}
	}

	return c.Render("dashboard/evaluations/evaluations_list", renderData, "layouts/main_layout")
}

// evaluationForm espelha o formulário de acompanhamento. Os aspectos chegam
// como "Sim", "Não", "Não se aplica" ou vazio.
type evaluationForm struct {
	TeacherID      uint   `form:"teacher_id"`
	CourseID       uint   `form:"course_id"`
	EvaluatorID    uint   `form:"evaluator_id"`
	EvaluationDate string `form:"evaluation_date"`
	Period         string `form:"period"`
	ClassTime      string `form:"class_time"`

	PlanningSchedule          string `form:"planning_schedule"`
	PlanningLessonPlan        string `form:"planning_lesson_plan"`
	PlanningEvaluation        string `form:"planning_evaluation"`
	PlanningDocuments         string `form:"planning_documents"`
	PlanningDiversified       string `form:"planning_diversified"`
	PlanningLocalWork         string `form:"planning_local_work"`
	PlanningTools             string `form:"planning_tools"`
	PlanningEducationalPortal string `form:"planning_educational_portal"`

	ClassPresentation           string `form:"class_presentation"`
	ClassKnowledge              string `form:"class_knowledge"`
	ClassStudentPerformance     string `form:"class_student_performance"`
	ClassAttendance             string `form:"class_attendance"`
	ClassDifficulties           string `form:"class_difficulties"`
	ClassTheoreticalPractical   string `form:"class_theoretical_practical"`
	ClassPreviousLesson         string `form:"class_previous_lesson"`
	ClassObjectives             string `form:"class_objectives"`
	ClassQuestions              string `form:"class_questions"`
	ClassContentAssimilation    string `form:"class_content_assimilation"`
	ClassStudentParticipation   string `form:"class_student_participation"`
	ClassRecoveryProcess        string `form:"class_recovery_process"`
	ClassSchoolPedagogy         string `form:"class_school_pedagogy"`
	ClassLearningExercises      string `form:"class_learning_exercises"`
	ClassDiscipline             string `form:"class_discipline"`
	ClassEducationalOrientation string `form:"class_educational_orientation"`
	ClassTeachingStrategies     string `form:"class_teaching_strategies"`
	ClassMachinesEquipment      string `form:"class_machines_equipment"`
	ClassSafetyProcedures       string `form:"class_safety_procedures"`

	PlanningObservations string `form:"planning_observations"`
	ClassObservations    string `form:"class_observations"`
	GeneralObservations  string `form:"general_observations"`
}

func (f *evaluationForm) apply(evaluation *models.Evaluation) {
	evaluation.TeacherID = f.TeacherID
	evaluation.CourseID = f.CourseID
	evaluation.EvaluatorID = f.EvaluatorID
	evaluation.Period = f.Period
	evaluation.ClassTime = f.ClassTime

	if f.EvaluationDate != "" {
		if parsed, err := time.Parse("2006-01-02", f.EvaluationDate); err == nil {
			evaluation.EvaluationDate = parsed
		}
	}

	evaluation.PlanningSchedule = f.PlanningSchedule
	evaluation.PlanningLessonPlan = f.PlanningLessonPlan
	evaluation.PlanningEvaluation = f.PlanningEvaluation
	evaluation.PlanningDocuments = f.PlanningDocuments
	evaluation.PlanningDiversified = f.PlanningDiversified
	evaluation.PlanningLocalWork = f.PlanningLocalWork
	evaluation.PlanningTools = f.PlanningTools
	evaluation.PlanningEducationalPortal = f.PlanningEducationalPortal

	evaluation.ClassPresentation = f.ClassPresentation
	evaluation.ClassKnowledge = f.ClassKnowledge
	evaluation.ClassStudentPerformance = f.ClassStudentPerformance
	evaluation.ClassAttendance = f.ClassAttendance
	evaluation.ClassDifficulties = f.ClassDifficulties
	evaluation.ClassTheoreticalPractical = f.ClassTheoreticalPractical
	evaluation.ClassPreviousLesson = f.ClassPreviousLesson
	evaluation.ClassObjectives = f.ClassObjectives
	evaluation.ClassQuestions = f.ClassQuestions
	evaluation.ClassContentAssimilation = f.ClassContentAssimilation
	evaluation.ClassStudentParticipation = f.ClassStudentParticipation
	evaluation.ClassRecoveryProcess = f.ClassRecoveryProcess
	evaluation.ClassSchoolPedagogy = f.ClassSchoolPedagogy
	evaluation.ClassLearningExercises = f.ClassLearningExercises
	evaluation.ClassDiscipline = f.ClassDiscipline
	evaluation.ClassEducationalOrientation = f.ClassEducationalOrientation
	evaluation.ClassTeachingStrategies = f.ClassTeachingStrategies
	evaluation.ClassMachinesEquipment = f.ClassMachinesEquipment
	evaluation.ClassSafetyProcedures = f.ClassSafetyProcedures

	evaluation.PlanningObservations = f.PlanningObservations
	evaluation.ClassObservations = f.ClassObservations
	evaluation.GeneralObservations = f.GeneralObservations
}

func (h *EvaluationHandler) renderForm(c *fiber.Ctx, data fiber.Map) error {
	teachers, err := h.teacherService.GetAllTeachers()
	if err != nil {
		utils.Log.Error("Formulário de avaliação: falha ao listar docentes", zap.Error(err))
	}
	courses, err := h.courseService.GetAllCourses()
	if err != nil {
		utils.Log.Error("Formulário de avaliação: falha ao listar cursos", zap.Error(err))
	}
	evaluators, err := h.evaluatorService.GetAllEvaluators()
	if err != nil {
		utils.Log.Error("Formulário de avaliação: falha ao listar avaliadores", zap.Error(err))
	}

	data["CsrfToken"] = c.Locals("csrf")
	data["Teachers"] = teachers
	data["Courses"] = courses
	data["Evaluators"] = evaluators

	return c.Render("dashboard/evaluations/evaluations_form", data, "layouts/main_layout")
}

func (h *EvaluationHandler) ShowCreateEvaluation(c *fiber.Ctx) error {
	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Nova avaliação: falha ao ler mensagens flash", zap.Error(flashErr))
	}
	return h.renderForm(c, fiber.Map{
		"Title":   "Nova Avaliação",
		"Success": flashData.Success,
		"Error":   flashData.Error,
	})
}

// attachmentFromRequest grava o anexo opcional do formulário, se houver.
func (h *EvaluationHandler) attachmentFromRequest(c *fiber.Ctx) *utils.UploadedFileInfo {
	fileHeader, err := c.FormFile("attachment")
	if err != nil || fileHeader == nil {
		return nil
	}

	info, err := utils.SaveUploadedFile(c, fileHeader, h.uploadDir)
	if err != nil {
		utils.Log.Error("Falha ao gravar o anexo da avaliação",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		return nil
	}
	return info
}

func (h *EvaluationHandler) CreateEvaluation(c *fiber.Ctx) error {
	var req evaluationForm
	if err := c.BodyParser(&req); err != nil {
		utils.SLog.Warnf("Nova avaliação: formulário não pôde ser lido: %v", err)
		return h.renderForm(c, fiber.Map{
			"Title": "Nova Avaliação",
			"Error": "Dados do formulário inválidos.",
		})
	}

	var evaluation models.Evaluation
	req.apply(&evaluation)

	if err := h.service.CreateEvaluation(&evaluation, h.attachmentFromRequest(c)); err != nil {
		switch err {
		case services.ErrEvaluationRefsRequired, services.ErrEvaluationPeriodRequired:
			return h.renderForm(c, fiber.Map{
				"Title":    "Nova Avaliação",
				"Error":    err.Error(),
				"FormData": req,
			})
		default:
			return h.renderForm(c, fiber.Map{
				"Title":    "Nova Avaliação",
				"Error":    "Erro ao gravar a avaliação.",
				"FormData": req,
			})
		}
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliação registrada com sucesso.")
	return c.Redirect(fmt.Sprintf("/evaluations/view/%d", evaluation.ID), fiber.StatusFound)
}

func (h *EvaluationHandler) ViewEvaluation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	evaluation, err := h.service.GetEvaluationByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação não encontrada.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Visualização de avaliação: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return c.Render("dashboard/evaluations/evaluations_view", fiber.Map{
		"Title":              "Avaliação",
		"CsrfToken":          c.Locals("csrf"),
		"Evaluation":         evaluation,
		"PlanningPercentage": evaluation.PlanningPercentage(),
		"ClassPercentage":    evaluation.ClassPercentage(),
		"Success":            flashData.Success,
		"Error":              flashData.Error,
		"Warning":            flashData.Warning,
	}, "layouts/main_layout")
}

func (h *EvaluationHandler) ShowUpdateEvaluation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	evaluation, err := h.service.GetEvaluationByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação não encontrada.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	if evaluation.IsCompleted {
		_ = utils.SetFlashMessage(c, utils.FlashWarningKey, "Avaliações finalizadas não podem ser editadas.")
		return c.Redirect(fmt.Sprintf("/evaluations/view/%d", id), fiber.StatusSeeOther)
	}

	flashData, flashErr := utils.GetFlashMessages(c)
	if flashErr != nil {
		utils.Log.Warn("Edição de avaliação: falha ao ler mensagens flash", zap.Error(flashErr))
	}

	return h.renderForm(c, fiber.Map{
		"Title":      "Editar Avaliação",
		"Evaluation": evaluation,
		"Success":    flashData.Success,
		"Error":      flashData.Error,
	})
}

func (h *EvaluationHandler) UpdateEvaluation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	evaluation, err := h.service.GetEvaluationByID(uint(id))
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação não encontrada.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	if evaluation.IsCompleted {
		_ = utils.SetFlashMessage(c, utils.FlashWarningKey, "Avaliações finalizadas não podem ser editadas.")
		return c.Redirect(fmt.Sprintf("/evaluations/view/%d", id), fiber.StatusSeeOther)
	}

	var req evaluationForm
	if err := c.BodyParser(&req); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect(fmt.Sprintf("/evaluations/edit/%d", id), fiber.StatusSeeOther)
	}
	req.apply(evaluation)

	if err := h.service.UpdateEvaluation(evaluation, h.attachmentFromRequest(c)); err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Erro ao atualizar a avaliação.")
		return c.Redirect(fmt.Sprintf("/evaluations/edit/%d", id), fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliação atualizada com sucesso.")
	return c.Redirect(fmt.Sprintf("/evaluations/view/%d", id), fiber.StatusFound)
}

// CompleteEvaluation finaliza o acompanhamento e dispara o envio do relatório
// para o docente. O resultado do e-mail vira mensagem flash, nunca erro HTTP.
func (h *EvaluationHandler) CompleteEvaluation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	result, err := h.service.CompleteEvaluation(uint(id))
	if err != nil {
		var errMsg string
		switch err {
		case services.ErrEvaluationNotFound:
			errMsg = "Avaliação não encontrada."
		default:
			errMsg = "Erro ao finalizar a avaliação."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	switch {
	case result.EmailSent:
		_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliação finalizada e relatório enviado por e-mail.")
	case result.EmailErr != nil:
		_ = utils.SetFlashMessage(c, utils.FlashWarningKey, "Avaliação finalizada, mas o envio do relatório por e-mail falhou.")
	default:
		_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliação finalizada com sucesso.")
	}

	return c.Redirect(fmt.Sprintf("/evaluations/view/%d", id), fiber.StatusFound)
}

func (h *EvaluationHandler) DeleteEvaluation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, "Avaliação inválida.")
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteEvaluation(uint(id)); err != nil {
		var errMsg string
		switch err {
		case services.ErrEvaluationNotFound:
			errMsg = "Avaliação não encontrada."
		default:
			errMsg = "Erro ao excluir a avaliação."
		}
		_ = utils.SetFlashMessage(c, utils.FlashErrorKey, errMsg)
		return c.Redirect("/evaluations", fiber.StatusSeeOther)
	}

	_ = utils.SetFlashMessage(c, utils.FlashSuccessKey, "Avaliação excluída com sucesso.")
	return c.Redirect("/evaluations", fiber.StatusFound)
}
