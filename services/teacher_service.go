package services

import (
	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TeacherServiceError string

func (e TeacherServiceError) Error() string {
	return string(e)
}

const (
	ErrTeacherNotFound       TeacherServiceError = "docente não encontrado"
	ErrTeacherCreationFailed TeacherServiceError = "o docente não pôde ser gravado no banco de dados"
	ErrTeacherUpdateFailed   TeacherServiceError = "o docente não pôde ser atualizado no banco de dados"
	ErrTeacherDeletionFailed TeacherServiceError = "erro ao excluir o docente; verifique se não há avaliações vinculadas"
	ErrTeacherNameRequired   TeacherServiceError = "o nome do docente é obrigatório"
	ErrTeacherAreaRequired   TeacherServiceError = "a área do docente é obrigatória"
)

type ITeacherService interface {
	GetAllTeachers() ([]models.Teacher, error)
	GetTeachersPaginated(params utils.ListParams) (*utils.PaginatedResult, error)
	GetTeacherByID(id uint) (*models.Teacher, error)
	CreateTeacher(teacher *models.Teacher) error
	UpdateTeacher(id uint, teacherData *models.Teacher) error
	DeleteTeacher(id uint) error
	GetTeacherCount() (int64, error)
}

type TeacherService struct {
	repo repositories.ITeacherRepository
}

func NewTeacherService(db *gorm.DB) ITeacherService {
	return &TeacherService{repo: repositories.NewTeacherRepository(db)}
}

func (s *TeacherService) GetAllTeachers() ([]models.Teacher, error) {
	return s.repo.FindAll()
}

func (s *TeacherService) GetTeachersPaginated(params utils.ListParams) (*utils.PaginatedResult, error) {
	normalizeListParams(&params)

	teachers, totalCount, err := s.repo.FindAndPaginate(params)
	if err != nil {
		return nil, err
	}

	return &utils.PaginatedResult{
		Data: teachers,
		Meta: utils.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  utils.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *TeacherService) GetTeacherByID(id uint) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTeacherNotFound
		}
		utils.Log.Error("Erro ao buscar docente", zap.Uint("teacher_id", id), zap.Error(err))
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) CreateTeacher(teacher *models.Teacher) error {
	if teacher.Name == "" {
		return ErrTeacherNameRequired
	}
	if teacher.Area == "" {
		return ErrTeacherAreaRequired
	}

	if err := s.repo.Create(teacher); err != nil {
		utils.Log.Error("Erro de banco de dados ao criar docente",
			zap.String("name", teacher.Name),
			zap.Error(err),
		)
		return ErrTeacherCreationFailed
	}

	utils.SLog.Infof("Docente cadastrado: %s (ID: %d)", teacher.Name, teacher.ID)
	return nil
}

func (s *TeacherService) UpdateTeacher(id uint, teacherData *models.Teacher) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrTeacherNotFound
		}
		return err
	}

	updateData := map[string]interface{}{
		"name":     teacherData.Name,
		"area":     teacherData.Area,
		"subjects": teacherData.Subjects,
		"workload": teacherData.Workload,
		"email":    teacherData.Email,
		"phone":    teacherData.Phone,
	}

	if err := s.repo.Update(id, updateData); err != nil {
		utils.Log.Error("Erro de banco de dados ao atualizar docente", zap.Uint("teacher_id", id), zap.Error(err))
		return ErrTeacherUpdateFailed
	}

	utils.SLog.Infof("Docente atualizado (ID: %d)", id)
	return nil
}

func (s *TeacherService) DeleteTeacher(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrTeacherNotFound
		}
		utils.Log.Error("Erro ao excluir docente", zap.Uint("teacher_id", id), zap.Error(err))
		return ErrTeacherDeletionFailed
	}
	utils.SLog.Infof("Docente excluído (ID: %d)", id)
	return nil
}

func (s *TeacherService) GetTeacherCount() (int64, error) {
	return s.repo.Count()
}

var _ ITeacherService = (*TeacherService)(nil)
