package models

import "testing"

func TestPlanningPercentage(t *testing.T) {
	tests := []struct {
		name       string
		evaluation Evaluation
		want       float64
	}{
		{
			name:       "sem respostas",
			evaluation: Evaluation{},
			want:       0,
		},
		{
			name: "todas sim",
			evaluation: Evaluation{
				PlanningSchedule:          AnswerYes,
				PlanningLessonPlan:        AnswerYes,
				PlanningEvaluation:        AnswerYes,
				PlanningDocuments:         AnswerYes,
				PlanningDiversified:       AnswerYes,
				PlanningLocalWork:         AnswerYes,
				PlanningTools:             AnswerYes,
				PlanningEducationalPortal: AnswerYes,
			},
			want: 100,
		},
		{
			name: "metade sim",
			evaluation: Evaluation{
				PlanningSchedule:   AnswerYes,
				PlanningLessonPlan: AnswerNo,
			},
			want: 50,
		},
		{
			name: "não se aplica fora do denominador",
			evaluation: Evaluation{
				PlanningSchedule:   AnswerYes,
				PlanningLessonPlan: AnswerYes,
				PlanningEvaluation: AnswerNo,
				PlanningDocuments:  AnswerNotApplicable,
				PlanningTools:      AnswerNotApplicable,
			},
			want: 66.7,
		},
		{
			name: "apenas não se aplica",
			evaluation: Evaluation{
				PlanningSchedule:   AnswerNotApplicable,
				PlanningLessonPlan: AnswerNotApplicable,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.evaluation.PlanningPercentage(); got != tt.want {
				t.Errorf("PlanningPercentage() = %v, esperado %v", got, tt.want)
			}
		})
	}
}

func TestClassPercentageRounding(t *testing.T) {
	// 1 sim entre 3 aplicáveis: 33.333... arredonda para 33.3.
	evaluation := Evaluation{
		ClassPresentation: AnswerYes,
		ClassKnowledge:    AnswerNo,
		ClassAttendance:   AnswerNo,
	}

	if got := evaluation.ClassPercentage(); got != 33.3 {
		t.Errorf("ClassPercentage() = %v, esperado 33.3", got)
	}
}

func TestClassPercentageIgnoresPlanningAnswers(t *testing.T) {
	evaluation := Evaluation{
		PlanningSchedule:  AnswerNo,
		ClassPresentation: AnswerYes,
	}

	if got := evaluation.ClassPercentage(); got != 100 {
		t.Errorf("ClassPercentage() = %v, respostas de planejamento não deveriam contar", got)
	}
}
