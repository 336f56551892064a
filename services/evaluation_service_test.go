package services

import (
	"errors"
	"testing"

	"acaodocente/database/migrations"
	"acaodocente/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubReportService struct {
	err error
}

func (s *stubReportService) GenerateEvaluationReport(evaluation *models.Evaluation) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

func (s *stubReportService) GenerateConsolidatedReport(teacher *models.Teacher, evaluations []models.Evaluation) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type stubMailService struct {
	sent []string
	err  error
}

func (s *stubMailService) SendEvaluationEmail(to string, evaluation *models.Evaluation, reportPDF []byte) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

func openEvaluationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir o banco de teste: %v", err)
	}

	for _, migrate := range []func(*gorm.DB) error{
		migrations.MigrateUsersTable,
		migrations.MigrateTeachersTable,
		migrations.MigrateCoursesTable,
		migrations.MigrateEvaluatorsTable,
		migrations.MigrateEvaluationsTable,
	} {
		if err := migrate(db); err != nil {
			t.Fatalf("migração falhou: %v", err)
		}
	}

	return db
}

func seedEvaluationRefs(t *testing.T, db *gorm.DB, teacherEmail string) (teacher models.Teacher, course models.Course, evaluator models.Evaluator) {
	t.Helper()

	teacher = models.Teacher{Name: "João Pereira", Area: "Mecânica", Email: teacherEmail}
	course = models.Course{Name: "Técnico em Mecânica", Period: "1° Sem/26", CurriculumComponent: "Metrologia"}
	evaluator = models.Evaluator{Name: "Carla Dias", Role: "Coordenadora"}

	for _, record := range []interface{}{&teacher, &course, &evaluator} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("seed das referências falhou: %v", err)
		}
	}
	return teacher, course, evaluator
}

func TestCreateEvaluationValidatesReferences(t *testing.T) {
	db := openEvaluationTestDB(t)
	service := NewEvaluationService(db, &stubReportService{}, &stubMailService{})

	err := service.CreateEvaluation(&models.Evaluation{Period: "1° Sem/26"}, nil)
	if err != ErrEvaluationRefsRequired {
		t.Errorf("sem referências: err = %v, esperado ErrEvaluationRefsRequired", err)
	}

	teacher, course, evaluator := seedEvaluationRefs(t, db, "")
	err = service.CreateEvaluation(&models.Evaluation{
		TeacherID:   teacher.ID,
		CourseID:    course.ID,
		EvaluatorID: evaluator.ID,
	}, nil)
	if err != ErrEvaluationPeriodRequired {
		t.Errorf("sem período: err = %v, esperado ErrEvaluationPeriodRequired", err)
	}
}

func TestCompleteEvaluationSendsReport(t *testing.T) {
	db := openEvaluationTestDB(t)
	mail := &stubMailService{}
	service := NewEvaluationService(db, &stubReportService{}, mail)

	teacher, course, evaluator := seedEvaluationRefs(t, db, "joao.pereira@senai.br")
	evaluation := models.Evaluation{
		TeacherID:   teacher.ID,
		CourseID:    course.ID,
		EvaluatorID: evaluator.ID,
		Period:      "1° Sem/26",
	}
	if err := service.CreateEvaluation(&evaluation, nil); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	result, err := service.CompleteEvaluation(evaluation.ID)
	if err != nil {
		t.Fatalf("finalização falhou: %v", err)
	}

	if !result.Evaluation.IsCompleted {
		t.Error("a avaliação deveria estar marcada como finalizada")
	}
	if result.Evaluation.TeacherSignatureDate == nil || result.Evaluation.EvaluatorSignatureDate == nil {
		t.Error("as datas de assinatura deveriam estar preenchidas")
	}
	if !result.EmailSent {
		t.Error("o relatório deveria ter sido enviado por e-mail")
	}
	if len(mail.sent) != 1 || mail.sent[0] != "joao.pereira@senai.br" {
		t.Errorf("destinatários = %v, esperado o e-mail do docente", mail.sent)
	}
}

func TestCompleteEvaluationSurvivesMailFailure(t *testing.T) {
	db := openEvaluationTestDB(t)
	mail := &stubMailService{err: errors.New("smtp fora do ar")}
	service := NewEvaluationService(db, &stubReportService{}, mail)

	teacher, course, evaluator := seedEvaluationRefs(t, db, "joao.pereira@senai.br")
	evaluation := models.Evaluation{
		TeacherID:   teacher.ID,
		CourseID:    course.ID,
		EvaluatorID: evaluator.ID,
		Period:      "1° Sem/26",
	}
	if err := service.CreateEvaluation(&evaluation, nil); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	result, err := service.CompleteEvaluation(evaluation.ID)
	if err != nil {
		t.Fatalf("a falha de e-mail não deveria derrubar a finalização: %v", err)
	}

	if result.EmailSent {
		t.Error("EmailSent deveria ser falso com o SMTP fora do ar")
	}
	if result.EmailErr == nil {
		t.Error("EmailErr deveria registrar a falha de envio")
	}

	reloaded, err := service.GetEvaluationByID(evaluation.ID)
	if err != nil {
		t.Fatalf("releitura falhou: %v", err)
	}
	if !reloaded.IsCompleted {
		t.Error("a finalização deveria persistir mesmo sem o envio do e-mail")
	}
}

func TestCompleteEvaluationSkipsMailWithoutAddress(t *testing.T) {
	db := openEvaluationTestDB(t)
	mail := &stubMailService{}
	service := NewEvaluationService(db, &stubReportService{}, mail)

	teacher, course, evaluator := seedEvaluationRefs(t, db, "")
	evaluation := models.Evaluation{
		TeacherID:   teacher.ID,
		CourseID:    course.ID,
		EvaluatorID: evaluator.ID,
		Period:      "1° Sem/26",
	}
	if err := service.CreateEvaluation(&evaluation, nil); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	result, err := service.CompleteEvaluation(evaluation.ID)
	if err != nil {
		t.Fatalf("finalização falhou: %v", err)
	}
	if result.EmailSent {
		t.Error("docente sem e-mail não deveria receber envio")
	}
	if len(mail.sent) != 0 {
		t.Errorf("nenhum e-mail deveria sair, enviados: %v", mail.sent)
	}
}
