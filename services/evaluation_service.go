package services

import (
	"time"

	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EvaluationServiceError string

func (e EvaluationServiceError) Error() string {
	return string(e)
}

const (
	ErrEvaluationNotFound       EvaluationServiceError = "avaliação não encontrada"
	ErrEvaluationCreationFailed EvaluationServiceError = "a avaliação não pôde ser gravada no banco de dados"
	ErrEvaluationUpdateFailed   EvaluationServiceError = "a avaliação não pôde ser atualizada no banco de dados"
	ErrEvaluationDeletionFailed EvaluationServiceError = "erro ao excluir a avaliação"
	ErrEvaluationRefsRequired   EvaluationServiceError = "docente, curso e avaliador são obrigatórios"
	ErrEvaluationPeriodRequired EvaluationServiceError = "o período da avaliação é obrigatório"
)

// CompleteResult descreve o desfecho da finalização: a avaliação em si e o
// resultado do envio do relatório por e-mail, que nunca derruba a operação.
type CompleteResult struct {
	Evaluation *models.Evaluation
	EmailSent  bool
	EmailErr   error
}

type IEvaluationService interface {
	GetEvaluationsPaginated(params utils.ListParams) (*utils.PaginatedResult, error)
	GetEvaluationByID(id uint) (*models.Evaluation, error)
	GetRecentEvaluations(limit int) ([]models.Evaluation, error)
	GetEvaluationsByTeacher(teacherID uint, start, end *time.Time) ([]models.Evaluation, error)
	CreateEvaluation(evaluation *models.Evaluation, attachment *utils.UploadedFileInfo) error
	UpdateEvaluation(evaluation *models.Evaluation, attachment *utils.UploadedFileInfo) error
	CompleteEvaluation(id uint) (*CompleteResult, error)
	DeleteEvaluation(id uint) error
	GetEvaluationCount() (int64, error)
}

type EvaluationService struct {
	repo    repositories.IEvaluationRepository
	reports IReportService
	mail    IMailService
}

func NewEvaluationService(db *gorm.DB, reports IReportService, mail IMailService) IEvaluationService {
	return &EvaluationService{
		repo:    repositories.NewEvaluationRepository(db),
		reports: reports,
		mail:    mail,
	}
}

func (s *EvaluationService) GetEvaluationsPaginated(params utils.ListParams) (*utils.PaginatedResult, error) {
	normalizeListParams(&params)

	evaluations, totalCount, err := s.repo.FindAndPaginate(params)
	if err != nil {
		return nil, err
	}

	return &utils.PaginatedResult{
		Data: evaluations,
		Meta: utils.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  utils.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *EvaluationService) GetEvaluationByID(id uint) (*models.Evaluation, error) {
	evaluation, err := s.repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEvaluationNotFound
		}
		utils.Log.Error("Erro ao buscar avaliação", zap.Uint("evaluation_id", id), zap.Error(err))
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) GetRecentEvaluations(limit int) ([]models.Evaluation, error) {
	return s.repo.FindRecent(limit)
}

func (s *EvaluationService) GetEvaluationsByTeacher(teacherID uint, start, end *time.Time) ([]models.Evaluation, error) {
	return s.repo.FindByTeacher(teacherID, start, end)
}

func (s *EvaluationService) CreateEvaluation(evaluation *models.Evaluation, attachment *utils.UploadedFileInfo) error {
	if evaluation.TeacherID == 0 || evaluation.CourseID == 0 || evaluation.EvaluatorID == 0 {
		return ErrEvaluationRefsRequired
	}
	if evaluation.Period == "" {
		return ErrEvaluationPeriodRequired
	}

	if err := s.repo.Create(evaluation); err != nil {
		utils.Log.Error("Erro de banco de dados ao criar avaliação",
			zap.Uint("teacher_id", evaluation.TeacherID),
			zap.Error(err),
		)
		return ErrEvaluationCreationFailed
	}

	if err := s.attach(evaluation.ID, attachment); err != nil {
		// A avaliação já existe; o anexo perdido é reportado mas não desfaz
		// a criação.
		utils.Log.Error("Avaliação criada, mas o anexo não foi gravado",
			zap.Uint("evaluation_id", evaluation.ID),
			zap.Error(err),
		)
	}

	utils.SLog.Infof("Avaliação criada (ID: %d)", evaluation.ID)
	return nil
}

func (s *EvaluationService) UpdateEvaluation(evaluation *models.Evaluation, attachment *utils.UploadedFileInfo) error {
	if err := s.repo.Save(evaluation); err != nil {
		utils.Log.Error("Erro de banco de dados ao atualizar avaliação",
			zap.Uint("evaluation_id", evaluation.ID),
			zap.Error(err),
		)
		return ErrEvaluationUpdateFailed
	}

	if err := s.attach(evaluation.ID, attachment); err != nil {
		utils.Log.Error("Avaliação atualizada, mas o anexo não foi gravado",
			zap.Uint("evaluation_id", evaluation.ID),
			zap.Error(err),
		)
	}

	utils.SLog.Infof("Avaliação atualizada (ID: %d)", evaluation.ID)
	return nil
}

// CompleteEvaluation marca a avaliação como finalizada, registra as datas de
// assinatura e tenta enviar o relatório em PDF para o docente. Falha no
// e-mail não reverte a finalização.
func (s *EvaluationService) CompleteEvaluation(id uint) (*CompleteResult, error) {
	evaluation, err := s.GetEvaluationByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	evaluation.IsCompleted = true
	evaluation.TeacherSignatureDate = &now
	evaluation.EvaluatorSignatureDate = &now

	if err := s.repo.Save(evaluation); err != nil {
		utils.Log.Error("Erro ao finalizar avaliação", zap.Uint("evaluation_id", id), zap.Error(err))
		return nil, ErrEvaluationUpdateFailed
	}

	result := &CompleteResult{Evaluation: evaluation}

	if evaluation.Teacher.Email == "" {
		utils.SLog.Infof("Avaliação %d finalizada; docente sem e-mail cadastrado", id)
		return result, nil
	}
	if s.reports == nil || s.mail == nil {
		return result, nil
	}

	pdf, err := s.reports.GenerateEvaluationReport(evaluation)
	if err != nil {
		utils.Log.Error("Falha ao gerar o relatório da avaliação",
			zap.Uint("evaluation_id", id),
			zap.Error(err),
		)
		result.EmailErr = err
		return result, nil
	}

	if err := s.mail.SendEvaluationEmail(evaluation.Teacher.Email, evaluation, pdf); err != nil {
		utils.Log.Error("Falha ao enviar o relatório por e-mail",
			zap.Uint("evaluation_id", id),
			zap.String("to", evaluation.Teacher.Email),
			zap.Error(err),
		)
		result.EmailErr = err
		return result, nil
	}

	result.EmailSent = true
	utils.SLog.Infof("Avaliação %d finalizada e relatório enviado para %s", id, evaluation.Teacher.Email)
	return result, nil
}

func (s *EvaluationService) DeleteEvaluation(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrEvaluationNotFound
		}
		utils.Log.Error("Erro ao excluir avaliação", zap.Uint("evaluation_id", id), zap.Error(err))
		return ErrEvaluationDeletionFailed
	}
	return nil
}

func (s *EvaluationService) GetEvaluationCount() (int64, error) {
	return s.repo.Count()
}

func (s *EvaluationService) attach(evaluationID uint, info *utils.UploadedFileInfo) error {
	if info == nil {
		return nil
	}
	return s.repo.AddAttachment(&models.EvaluationAttachment{
		EvaluationID:     evaluationID,
		Filename:         info.Filename,
		OriginalFilename: info.OriginalFilename,
		FilePath:         info.FilePath,
		FileSize:         info.FileSize,
		MimeType:         info.MimeType,
	})
}

var _ IEvaluationService = (*EvaluationService)(nil)
