package repositories

import (
	"time"

	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IEvaluationRepository interface {
	FindAndPaginate(params utils.ListParams) ([]models.Evaluation, int64, error)
	FindAll() ([]models.Evaluation, error)
	FindByID(id uint) (*models.Evaluation, error)
	FindRecent(limit int) ([]models.Evaluation, error)
	FindByTeacher(teacherID uint, start, end *time.Time) ([]models.Evaluation, error)
	CountBetween(start, end time.Time) (int64, error)
	Create(evaluation *models.Evaluation) error
	Save(evaluation *models.Evaluation) error
	Delete(id uint) error
	Count() (int64, error)
	AddAttachment(attachment *models.EvaluationAttachment) error
}

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) IEvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) FindAndPaginate(params utils.ListParams) ([]models.Evaluation, int64, error) {
	var evaluations []models.Evaluation
	var totalCount int64

	query := r.db.Model(&models.Evaluation{})

	err := query.Count(&totalCount).Error
	if err != nil {
		utils.Log.Error("Erro ao contar avaliações (FindAndPaginate)", zap.Error(err))
		return nil, 0, err
	}

	if totalCount == 0 {
		return evaluations, 0, nil
	}

	offset := params.CalculateOffset()
	err = query.
		Preload("Teacher").
		Preload("Course").
		Preload("Evaluator").
		Order("evaluation_date desc").
		Limit(params.PerPage).
		Offset(offset).
		Find(&evaluations).Error
	if err != nil {
		utils.Log.Error("Erro ao buscar avaliações (FindAndPaginate)", zap.Error(err))
		return nil, totalCount, err
	}

	return evaluations, totalCount, nil
}

func (r *EvaluationRepository) FindAll() ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.Find(&evaluations).Error
	return evaluations, err
}

func (r *EvaluationRepository) FindByID(id uint) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := r.db.Preload(clause.Associations).First(&evaluation, id).Error
	return &evaluation, err
}

func (r *EvaluationRepository) FindRecent(limit int) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	err := r.db.
		Preload("Teacher").
		Preload("Course").
		Order("evaluation_date desc").
		Limit(limit).
		Find(&evaluations).Error
	return evaluations, err
}

func (r *EvaluationRepository) FindByTeacher(teacherID uint, start, end *time.Time) ([]models.Evaluation, error) {
	query := r.db.
		Preload("Teacher").
		Preload("Course").
		Preload("Evaluator").
		Where("teacher_id = ?", teacherID)
	if start != nil {
		query = query.Where("evaluation_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("evaluation_date <= ?", *end)
	}

	var evaluations []models.Evaluation
	err := query.Order("evaluation_date asc").Find(&evaluations).Error
	return evaluations, err
}

func (r *EvaluationRepository) CountBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Evaluation{}).
		Where("evaluation_date >= ? AND evaluation_date <= ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *EvaluationRepository) Create(evaluation *models.Evaluation) error {
	return r.db.Create(evaluation).Error
}

func (r *EvaluationRepository) Save(evaluation *models.Evaluation) error {
	return r.db.Save(evaluation).Error
}

func (r *EvaluationRepository) Delete(id uint) error {
	result := r.db.Select(clause.Associations).Delete(&models.Evaluation{Model: gorm.Model{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EvaluationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Evaluation{}).Count(&count).Error
	return count, err
}

func (r *EvaluationRepository) AddAttachment(attachment *models.EvaluationAttachment) error {
	return r.db.Create(attachment).Error
}

var _ IEvaluationRepository = (*EvaluationRepository)(nil)
