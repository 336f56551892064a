package repositories

import (
	"strings"
	"time"

	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ITeacherRepository interface {
	FindAll() ([]models.Teacher, error)
	FindAndPaginate(params utils.ListParams) ([]models.Teacher, int64, error)
	FindByID(id uint) (*models.Teacher, error)
	FindByName(name string) (*models.Teacher, error)
	FindWithoutEvaluationSince(since time.Time) ([]models.Teacher, error)
	Create(teacher *models.Teacher) error
	Update(id uint, data map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

type TeacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) ITeacherRepository {
	return &TeacherRepository{db: db}
}

func (r *TeacherRepository) FindAll() ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.Order("name asc").Find(&teachers).Error
	return teachers, err
}

func (r *TeacherRepository) FindAndPaginate(params utils.ListParams) ([]models.Teacher, int64, error) {
	var teachers []models.Teacher
	var totalCount int64

	query := r.db.Model(&models.Teacher{})

	if params.Name != "" {
		sqlQueryFragment, queryParams := utils.SQLFilter("name", params.Name)
		query = query.Where(sqlQueryFragment, queryParams...)
	}

	err := query.Count(&totalCount).Error
	if err != nil {
		utils.Log.Error("Erro ao contar docentes (FindAndPaginate)", zap.Error(err))
		return nil, 0, err
	}

	if totalCount == 0 {
		return teachers, 0, nil
	}

	sortBy := params.SortBy
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = utils.DefaultOrderBy
	}
	allowedSortColumns := map[string]bool{"id": true, "name": true, "area": true, "created_at": true}
	if _, ok := allowedSortColumns[sortBy]; !ok {
		sortBy = "name"
		orderBy = "asc"
	}
	query = query.Order(sortBy + " " + orderBy)

	offset := params.CalculateOffset()
	query = query.Limit(params.PerPage).Offset(offset)

	err = query.Find(&teachers).Error
	if err != nil {
		utils.Log.Error("Erro ao buscar docentes (FindAndPaginate)", zap.Error(err))
		return nil, totalCount, err
	}

	return teachers, totalCount, nil
}

func (r *TeacherRepository) FindByID(id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.First(&teacher, id).Error
	return &teacher, err
}

func (r *TeacherRepository) FindByName(name string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.Where("name = ?", name).First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindWithoutEvaluationSince lista docentes sem nenhuma avaliação registrada
// a partir da data informada.
func (r *TeacherRepository) FindWithoutEvaluationSince(since time.Time) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.
		Where("id NOT IN (?)", r.db.Model(&models.Evaluation{}).
			Select("teacher_id").
			Where("evaluation_date >= ?", since)).
		Order("name asc").
		Find(&teachers).Error
	return teachers, err
}

func (r *TeacherRepository) Create(teacher *models.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *TeacherRepository) Update(id uint, data map[string]interface{}) error {
	result := r.db.Model(&models.Teacher{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 && len(data) > 0 {
		utils.Log.Warn("TeacherRepository.Update: nenhum registro afetado", zap.Uint("teacher_id", id))
	}
	return nil
}

func (r *TeacherRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Teacher{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TeacherRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Teacher{}).Count(&count).Error
	return count, err
}

var _ ITeacherRepository = (*TeacherRepository)(nil)
