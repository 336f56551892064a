package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Respostas possíveis dos aspectos avaliados. "Não se aplica" fica fora do
// denominador no cálculo dos percentuais.
const (
	AnswerYes           = "Sim"
	AnswerNo            = "Não"
	AnswerNotApplicable = "Não se aplica"
)

type Evaluation struct {
	gorm.Model
	TeacherID   uint `gorm:"not null;index"`
	CourseID    uint `gorm:"not null;index"`
	EvaluatorID uint `gorm:"not null;index"`

	EvaluationDate time.Time `gorm:"index"`
	Period         string    `gorm:"size:20;not null"`
	ClassTime      string    `gorm:"size:20"`

	// Aspectos de planejamento
	PlanningSchedule          string `gorm:"size:20"`
	PlanningLessonPlan        string `gorm:"size:20"`
	PlanningEvaluation        string `gorm:"size:20"`
	PlanningDocuments         string `gorm:"size:20"`
	PlanningDiversified       string `gorm:"size:20"`
	PlanningLocalWork         string `gorm:"size:20"`
	PlanningTools             string `gorm:"size:20"`
	PlanningEducationalPortal string `gorm:"size:20"`

	// Aspectos de condução da aula
	ClassPresentation          string `gorm:"size:20"`
	ClassKnowledge             string `gorm:"size:20"`
	ClassStudentPerformance    string `gorm:"size:20"`
	ClassAttendance            string `gorm:"size:20"`
	ClassDifficulties          string `gorm:"size:20"`
	ClassTheoreticalPractical  string `gorm:"size:20"`
	ClassPreviousLesson        string `gorm:"size:20"`
	ClassObjectives            string `gorm:"size:20"`
	ClassQuestions             string `gorm:"size:20"`
	ClassContentAssimilation   string `gorm:"size:20"`
	ClassStudentParticipation  string `gorm:"size:20"`
	ClassRecoveryProcess       string `gorm:"size:20"`
	ClassSchoolPedagogy        string `gorm:"size:20"`
	ClassLearningExercises     string `gorm:"size:20"`
	ClassDiscipline            string `gorm:"size:20"`
	ClassEducationalOrientation string `gorm:"size:20"`
	ClassTeachingStrategies    string `gorm:"size:20"`
	ClassMachinesEquipment     string `gorm:"size:20"`
	ClassSafetyProcedures      string `gorm:"size:20"`

	PlanningObservations string `gorm:"type:text"`
	ClassObservations    string `gorm:"type:text"`
	GeneralObservations  string `gorm:"type:text"`

	TeacherSignatureDate   *time.Time
	EvaluatorSignatureDate *time.Time
	IsCompleted            bool `gorm:"default:false;index"`

	Teacher     Teacher               `gorm:"foreignKey:TeacherID"`
	Course      Course                `gorm:"foreignKey:CourseID"`
	Evaluator   Evaluator             `gorm:"foreignKey:EvaluatorID"`
	Attachments []EvaluationAttachment `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) (err error) {
	if e.EvaluationDate.IsZero() {
		e.EvaluationDate = time.Now().UTC()
	}
	return nil
}

func (e *Evaluation) planningAnswers() []string {
	return []string{
		e.PlanningSchedule, e.PlanningLessonPlan, e.PlanningEvaluation,
		e.PlanningDocuments, e.PlanningDiversified, e.PlanningLocalWork,
		e.PlanningTools, e.PlanningEducationalPortal,
	}
}

func (e *Evaluation) classAnswers() []string {
	return []string{
		e.ClassPresentation, e.ClassKnowledge, e.ClassStudentPerformance,
		e.ClassAttendance, e.ClassDifficulties, e.ClassTheoreticalPractical,
		e.ClassPreviousLesson, e.ClassObjectives, e.ClassQuestions,
		e.ClassContentAssimilation, e.ClassStudentParticipation,
		e.ClassRecoveryProcess, e.ClassSchoolPedagogy, e.ClassLearningExercises,
		e.ClassDiscipline, e.ClassEducationalOrientation, e.ClassTeachingStrategies,
		e.ClassMachinesEquipment, e.ClassSafetyProcedures,
	}
}

// PlanningPercentage retorna o percentual de respostas "Sim" na seção de
// planejamento, com uma casa decimal.
func (e *Evaluation) PlanningPercentage() float64 {
	return percentageOfYes(e.planningAnswers())
}

// ClassPercentage retorna o percentual de respostas "Sim" na seção de
// condução da aula, com uma casa decimal.
func (e *Evaluation) ClassPercentage() float64 {
	return percentageOfYes(e.classAnswers())
}

func percentageOfYes(answers []string) float64 {
	totalApplicable := 0
	yesCount := 0
	for _, answer := range answers {
		if answer == "" || answer == AnswerNotApplicable {
			continue
		}
		totalApplicable++
		if answer == AnswerYes {
			yesCount++
		}
	}
	if totalApplicable == 0 {
		return 0
	}
	pct := float64(yesCount) / float64(totalApplicable) * 100
	return math.Round(pct*10) / 10
}
