package repositories

import (
	"acaodocente/models"
	"acaodocente/utils"

	"gorm.io/gorm"
)

type ICourseRepository interface {
	FindAll() ([]models.Course, error)
	FindByID(id uint) (*models.Course, error)
	Create(course *models.Course) error
	Update(id uint, data map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) ICourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) FindAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("name asc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *CourseRepository) Update(id uint, data map[string]interface{}) error {
	result := r.db.Model(&models.Course{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 && len(data) > 0 {
		utils.Log.Warn("CourseRepository.Update: nenhum registro afetado")
	}
	return nil
}

func (r *CourseRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Course{}).Count(&count).Error
	return count, err
}

var _ ICourseRepository = (*CourseRepository)(nil)
