package services

import (
	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseServiceError string

func (e CourseServiceError) Error() string {
	return string(e)
}

const (
	ErrCourseNotFound       CourseServiceError = "curso não encontrado"
	ErrCourseCreationFailed CourseServiceError = "o curso não pôde ser gravado no banco de dados"
	ErrCourseUpdateFailed   CourseServiceError = "o curso não pôde ser atualizado no banco de dados"
	ErrCourseDeletionFailed CourseServiceError = "erro ao excluir o curso; verifique se não há avaliações vinculadas"
	ErrCourseNameRequired   CourseServiceError = "o nome do curso é obrigatório"
	ErrCoursePeriodRequired CourseServiceError = "o período do curso é obrigatório"
)

type ICourseService interface {
	GetAllCourses() ([]models.Course, error)
	GetCourseByID(id uint) (*models.Course, error)
	CreateCourse(course *models.Course) error
	UpdateCourse(id uint, courseData *models.Course) error
	DeleteCourse(id uint) error
	GetCourseCount() (int64, error)
}

type CourseService struct {
	repo repositories.ICourseRepository
}

func NewCourseService(db *gorm.DB) ICourseService {
	return &CourseService{repo: repositories.NewCourseRepository(db)}
}

func (s *CourseService) GetAllCourses() ([]models.Course, error) {
	return s.repo.FindAll()
}

func (s *CourseService) GetCourseByID(id uint) (*models.Course, error) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCourseNotFound
		}
		utils.Log.Error("Erro ao buscar curso", zap.Uint("course_id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *CourseService) CreateCourse(course *models.Course) error {
	if course.Name == "" {
		return ErrCourseNameRequired
	}
	if course.Period == "" {
		return ErrCoursePeriodRequired
	}

	if err := s.repo.Create(course); err != nil {
		utils.Log.Error("Erro de banco de dados ao criar curso",
			zap.String("name", course.Name),
			zap.Error(err),
		)
		return ErrCourseCreationFailed
	}

	utils.SLog.Infof("Curso cadastrado: %s (ID: %d)", course.Name, course.ID)
	return nil
}

func (s *CourseService) UpdateCourse(id uint, courseData *models.Course) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCourseNotFound
		}
		return err
	}

	updateData := map[string]interface{}{
		"name":                 courseData.Name,
		"period":               courseData.Period,
		"curriculum_component": courseData.CurriculumComponent,
		"class_code":           courseData.ClassCode,
	}

	if err := s.repo.Update(id, updateData); err != nil {
		utils.Log.Error("Erro de banco de dados ao atualizar curso", zap.Uint("course_id", id), zap.Error(err))
		return ErrCourseUpdateFailed
	}

	utils.SLog.Infof("Curso atualizado (ID: %d)", id)
	return nil
}

func (s *CourseService) DeleteCourse(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrCourseNotFound
		}
		utils.Log.Error("Erro ao excluir curso", zap.Uint("course_id", id), zap.Error(err))
		return ErrCourseDeletionFailed
	}
	utils.SLog.Infof("Curso excluído (ID: %d)", id)
	return nil
}

func (s *CourseService) GetCourseCount() (int64, error) {
	return s.repo.Count()
}

var _ ICourseService = (*CourseService)(nil)
