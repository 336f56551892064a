package repositories

import (
	"acaodocente/models"
	"acaodocente/utils"

	"gorm.io/gorm"
)

type IEvaluatorRepository interface {
	FindAll() ([]models.Evaluator, error)
	FindByID(id uint) (*models.Evaluator, error)
	Create(evaluator *models.Evaluator) error
	Update(id uint, data map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

type EvaluatorRepository struct {
	db *gorm.DB
}

func NewEvaluatorRepository(db *gorm.DB) IEvaluatorRepository {
	return &EvaluatorRepository{db: db}
}

func (r *EvaluatorRepository) FindAll() ([]models.Evaluator, error) {
	var evaluators []models.Evaluator
	err := r.db.Order("name asc").Find(&evaluators).Error
	return evaluators, err
}

func (r *EvaluatorRepository) FindByID(id uint) (*models.Evaluator, error) {
	var evaluator models.Evaluator
	err := r.db.First(&evaluator, id).Error
	return &evaluator, err
}

func (r *EvaluatorRepository) Create(evaluator *models.Evaluator) error {
	return r.db.Create(evaluator).Error
}

func (r *EvaluatorRepository) Update(id uint, data map[string]interface{}) error {
	result := r.db.Model(&models.Evaluator{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 && len(data) > 0 {
		utils.Log.Warn("EvaluatorRepository.Update: nenhum registro afetado")
	}
	return nil
}

func (r *EvaluatorRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Evaluator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EvaluatorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Evaluator{}).Count(&count).Error
	return count, err
}

var _ IEvaluatorRepository = (*EvaluatorRepository)(nil)
