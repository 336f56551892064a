package services

import (
	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EvaluatorServiceError string

func (e EvaluatorServiceError) Error() string {
	return string(e)
}

const (
	ErrEvaluatorNotFound       EvaluatorServiceError = "avaliador não encontrado"
	ErrEvaluatorCreationFailed EvaluatorServiceError = "o avaliador não pôde ser gravado no banco de dados"
	ErrEvaluatorUpdateFailed   EvaluatorServiceError = "o avaliador não pôde ser atualizado no banco de dados"
	ErrEvaluatorDeletionFailed EvaluatorServiceError = "erro ao excluir o avaliador; verifique se não há avaliações vinculadas"
	ErrEvaluatorNameRequired   EvaluatorServiceError = "o nome do avaliador é obrigatório"
	ErrEvaluatorRoleRequired   EvaluatorServiceError = "a função do avaliador é obrigatória"
)

type IEvaluatorService interface {
	GetAllEvaluators() ([]models.Evaluator, error)
	GetEvaluatorByID(id uint) (*models.Evaluator, error)
	CreateEvaluator(evaluator *models.Evaluator) error
	UpdateEvaluator(id uint, evaluatorData *models.Evaluator) error
	DeleteEvaluator(id uint) error
	GetEvaluatorCount() (int64, error)
}

type EvaluatorService struct {
	repo repositories.IEvaluatorRepository
}

func NewEvaluatorService(db *gorm.DB) IEvaluatorService {
	return &EvaluatorService{repo: repositories.NewEvaluatorRepository(db)}
}

func (s *EvaluatorService) GetAllEvaluators() ([]models.Evaluator, error) {
	return s.repo.FindAll()
}

func (s *EvaluatorService) GetEvaluatorByID(id uint) (*models.Evaluator, error) {
	evaluator, err := s.repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEvaluatorNotFound
		}
		utils.Log.Error("Erro ao buscar avaliador", zap.Uint("evaluator_id", id), zap.Error(err))
		return nil, err
	}
	return evaluator, nil
}

func (s *EvaluatorService) CreateEvaluator(evaluator *models.Evaluator) error {
	if evaluator.Name == "" {
		return ErrEvaluatorNameRequired
	}
	if evaluator.Role == "" {
		return ErrEvaluatorRoleRequired
	}

	if err := s.repo.Create(evaluator); err != nil {
		utils.Log.Error("Erro de banco de dados ao criar avaliador",
			zap.String("name", evaluator.Name),
			zap.Error(err),
		)
		return ErrEvaluatorCreationFailed
	}

	utils.SLog.Infof("Avaliador cadastrado: %s (ID: %d)", evaluator.Name, evaluator.ID)
	return nil
}

func (s *EvaluatorService) UpdateEvaluator(id uint, evaluatorData *models.Evaluator) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrEvaluatorNotFound
		}
		return err
	}

	updateData := map[string]interface{}{
		"name":  evaluatorData.Name,
		"role":  evaluatorData.Role,
		"email": evaluatorData.Email,
	}

	if err := s.repo.Update(id, updateData); err != nil {
		utils.Log.Error("Erro de banco de dados ao atualizar avaliador", zap.Uint("evaluator_id", id), zap.Error(err))
		return ErrEvaluatorUpdateFailed
	}

	utils.SLog.Infof("Avaliador atualizado (ID: %d)", id)
	return nil
}

func (s *EvaluatorService) DeleteEvaluator(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrEvaluatorNotFound
		}
		utils.Log.Error("Erro ao excluir avaliador", zap.Uint("evaluator_id", id), zap.Error(err))
		return ErrEvaluatorDeletionFailed
	}
	utils.SLog.Infof("Avaliador excluído (ID: %d)", id)
	return nil
}

func (s *EvaluatorService) GetEvaluatorCount() (int64, error) {
	return s.repo.Count()
}

var _ IEvaluatorService = (*EvaluatorService)(nil)
