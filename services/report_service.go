package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"acaodocente/models"

	"github.com/go-pdf/fpdf"
)

type ReportServiceError string

func (e ReportServiceError) Error() string {
	return string(e)
}

const (
	ErrReportNoEvaluations ReportServiceError = "nenhuma avaliação encontrada para o período especificado"
	ErrReportGeneric       ReportServiceError = "erro ao gerar o relatório"
)

type IReportService interface {
	GenerateEvaluationReport(evaluation *models.Evaluation) ([]byte, error)
	GenerateConsolidatedReport(teacher *models.Teacher, evaluations []models.Evaluation) ([]byte, error)
}

type ReportService struct{}

func NewReportService() IReportService {
	return &ReportService{}
}

type reportAspect struct {
	label  string
	answer string
}

func planningAspects(e *models.Evaluation) []reportAspect {
	return []reportAspect{
		{"Elabora cronograma de aula", e.PlanningSchedule},
		{"Planeja a aula", e.PlanningLessonPlan},
		{"Planeja instrumentos de avaliação", e.PlanningEvaluation},
		{"Conhece os documentos estruturantes", e.PlanningDocuments},
		{"Utiliza instrumentos diversificados", e.PlanningDiversified},
		{"Prepara previamente o local de trabalho", e.PlanningLocalWork},
		{"Disponibiliza ferramentas", e.PlanningTools},
		{"Utiliza o Portal Educacional", e.PlanningEducationalPortal},
	}
}

func classAspects(e *models.Evaluation) []reportAspect {
	return []reportAspect{
		{"Apresentação pessoal", e.ClassPresentation},
		{"Conhecimento dos assuntos", e.ClassKnowledge},
		{"Acompanha o desempenho dos alunos", e.ClassStudentPerformance},
		{"Registra ocorrências e frequência", e.ClassAttendance},
		{"Realiza levantamento de dificuldades", e.ClassDifficulties},
		{"Integra aprendizado teórico e prático", e.ClassTheoreticalPractical},
		{"Retoma a aula anterior", e.ClassPreviousLesson},
		{"Explicita os objetivos da aula", e.ClassObjectives},
		{"Propõe questões aos alunos", e.ClassQuestions},
		{"Verifica a assimilação do conteúdo", e.ClassContentAssimilation},
		{"Estimula a participação dos alunos", e.ClassStudentParticipation},
		{"Conduz o processo de recuperação", e.ClassRecoveryProcess},
		{"Segue a pedagogia da escola", e.ClassSchoolPedagogy},
		{"Aplica exercícios de fixação", e.ClassLearningExercises},
		{"Mantém a disciplina em sala", e.ClassDiscipline},
		{"Encaminha à Orientação Educacional", e.ClassEducationalOrientation},
		{"Diversifica estratégias de ensino", e.ClassTeachingStrategies},
		{"Orienta o uso de máquinas e equipamentos", e.ClassMachinesEquipment},
		{"Cumpre os procedimentos de segurança", e.ClassSafetyProcedures},
	}
}

// GenerateEvaluationReport monta o PDF individual de acompanhamento.
func (s *ReportService) GenerateEvaluationReport(evaluation *models.Evaluation) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("RELATÓRIO DE ACOMPANHAMENTO DOCENTE"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeInfoRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(50, 8, tr(label), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, tr(value), "1", 1, "L", false, 0, "")
	}

	writeInfoRow("Docente:", evaluation.Teacher.Name)
	writeInfoRow("Curso:", evaluation.Course.Name)
	writeInfoRow("Período:", evaluation.Period)
	writeInfoRow("Data:", evaluation.EvaluationDate.Format("02/01/2006"))
	writeInfoRow("Avaliador:", evaluation.Evaluator.Name)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("RESUMO DOS RESULTADOS"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Planejamento: %.1f%% atendido", evaluation.PlanningPercentage())), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Condução da aula: %.1f%% atendido", evaluation.ClassPercentage())), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection := func(title string, aspects []reportAspect) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, aspect := range aspects {
			answer := aspect.answer
			if answer == "" {
				answer = "-"
			}
			pdf.CellFormat(140, 6, tr(aspect.label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(answer), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(4)
	}

	writeSection("PLANEJAMENTO", planningAspects(evaluation))
	writeSection("CONDUÇÃO DA AULA", classAspects(evaluation))

	writeObservations := func(title, text string) {
		if text == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(text), "", "L", false)
		pdf.Ln(2)
	}

	writeObservations("Observações sobre o planejamento", evaluation.PlanningObservations)
	writeObservations("Observações sobre a aula", evaluation.ClassObservations)
	writeObservations("Observações gerais", evaluation.GeneralObservations)

	if evaluation.IsCompleted && evaluation.EvaluatorSignatureDate != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Finalizada e assinada em %s",
			evaluation.EvaluatorSignatureDate.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	}

	return outputPDF(pdf)
}

// GenerateConsolidatedReport monta o PDF consolidado de um docente com uma
// linha por avaliação e as médias do período.
func (s *ReportService) GenerateConsolidatedReport(teacher *models.Teacher, evaluations []models.Evaluation) ([]byte, error) {
	if len(evaluations) == 0 {
		return nil, ErrReportNoEvaluations
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("RELATÓRIO CONSOLIDADO DE ACOMPANHAMENTO"), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Docente: "+teacher.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Área: "+teacher.Area), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Gerado em: "+time.Now().Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(28, 7, tr("Data"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(80, 7, tr("Curso"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, tr("Planejamento"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, tr("Aula"), "1", 1, "C", true, 0, "")

	var planningSum, classSum float64
	pdf.SetFont("Helvetica", "", 9)
	for i := range evaluations {
		evaluation := &evaluations[i]
		planningPct := evaluation.PlanningPercentage()
		classPct := evaluation.ClassPercentage()
		planningSum += planningPct
		classSum += classPct

		courseName := evaluation.Course.Name
		if len(courseName) > 45 {
			courseName = courseName[:45] + "..."
		}
		pdf.CellFormat(28, 6, evaluation.EvaluationDate.Format("02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(80, 6, tr(courseName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.1f%%", planningPct), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.1f%%", classPct), "1", 1, "C", false, 0, "")
	}

	count := float64(len(evaluations))
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(108, 7, tr(fmt.Sprintf("Média (%d avaliações)", len(evaluations))), "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.1f%%", planningSum/count), "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.1f%%", classSum/count), "1", 1, "C", true, 0, "")

	return outputPDF(pdf)
}

func outputPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportGeneric, strings.TrimSpace(err.Error()))
	}
	return buffer.Bytes(), nil
}

var _ IReportService = (*ReportService)(nil)
