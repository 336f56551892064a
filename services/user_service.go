package services

import (
	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserServiceError string

func (e UserServiceError) Error() string {
	return string(e)
}

const (
	ErrUserServiceUserNotFound UserServiceError = "usuário não encontrado"
	ErrPasswordHashingFailed   UserServiceError = "erro ao gerar a senha"
	ErrUserCreationFailed      UserServiceError = "o usuário não pôde ser gravado no banco de dados"
	ErrUserUpdateFailed        UserServiceError = "o usuário não pôde ser atualizado no banco de dados"
	ErrUserDeletionFailed      UserServiceError = "erro de banco de dados ao excluir o usuário"
	ErrPasswordRequired        UserServiceError = "o campo senha é obrigatório"
)

type IUserService interface {
	GetAllUsersPaginated(params utils.ListParams) (*utils.PaginatedResult, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, userData *models.User) error
	DeleteUser(id uint) error
	GetUserCount() (int64, error)
}

type UserService struct {
	repo repositories.IUserRepository
}

func NewUserService(db *gorm.DB) IUserService {
	return &UserService{repo: repositories.NewUserRepository(db)}
}

func (s *UserService) GetAllUsersPaginated(params utils.ListParams) (*utils.PaginatedResult, error) {
	normalizeListParams(&params)

	users, totalCount, err := s.repo.FindAndPaginate(params)
	if err != nil {
		return nil, err
	}

	return &utils.PaginatedResult{
		Data: users,
		Meta: utils.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  utils.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Log.Warn("Usuário não encontrado (busca por ID)", zap.Uint("user_id", id))
			return nil, ErrUserServiceUserNotFound
		}
		utils.Log.Error("Erro ao buscar usuário (busca por ID)", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(user *models.User) error {
	if user.Password == "" {
		return ErrPasswordRequired
	}

	if err := user.SetPassword(user.Password); err != nil {
		utils.Log.Error("Criação de usuário: falha ao gerar a senha", zap.String("username", user.Username), zap.Error(err))
		return ErrPasswordHashingFailed
	}

	utils.Log.Info("Criando usuário...",
		zap.String("username", user.Username),
		zap.Any("role", user.Role),
	)

	if err := s.repo.Create(user); err != nil {
		utils.Log.Error("Erro de banco de dados ao criar usuário",
			zap.String("username", user.Username),
			zap.Error(err),
		)
		if modelErr, ok := err.(models.ModelError); ok {
			return modelErr
		}
		return ErrUserCreationFailed
	}

	utils.SLog.Infof("Usuário criado com sucesso: %s (ID: %d)", user.Username, user.ID)
	return nil
}

func (s *UserService) UpdateUser(id uint, userData *models.User) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Log.Warn("Usuário não atualizado: não encontrado", zap.Uint("user_id", id))
			return ErrUserServiceUserNotFound
		}
		utils.Log.Error("Usuário não atualizado: erro na verificação prévia", zap.Uint("user_id", id), zap.Error(err))
		return err
	}

	updateData := map[string]interface{}{
		"name":     userData.Name,
		"username": userData.Username,
		"email":    userData.Email,
		"status":   userData.Status,
		"role":     userData.Role,
	}

	if userData.Password != "" {
		hashed := models.User{}
		if err := hashed.SetPassword(userData.Password); err != nil {
			return ErrPasswordHashingFailed
		}
		updateData["password"] = hashed.Password
	}

	if err := s.repo.Update(id, updateData); err != nil {
		utils.Log.Error("Erro de banco de dados ao atualizar usuário", zap.Uint("user_id", id), zap.Error(err))
		return ErrUserUpdateFailed
	}

	utils.SLog.Infof("Usuário atualizado com sucesso (ID: %d)", id)
	return nil
}

func (s *UserService) DeleteUser(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserServiceUserNotFound
		}
		utils.Log.Error("Erro de banco de dados ao excluir usuário", zap.Uint("user_id", id), zap.Error(err))
		return ErrUserDeletionFailed
	}
	utils.SLog.Infof("Usuário excluído (ID: %d)", id)
	return nil
}

func (s *UserService) GetUserCount() (int64, error) {
	return s.repo.Count()
}

func normalizeListParams(params *utils.ListParams) {
	if params.Page <= 0 {
		params.Page = utils.DefaultPage
	}
	if params.PerPage <= 0 {
		params.PerPage = utils.DefaultPerPage
	} else if params.PerPage > utils.MaxPerPage {
		utils.Log.Warn("Quantidade por página acima do limite, usando o padrão",
			zap.Int("requested", params.PerPage),
			zap.Int("max", utils.MaxPerPage),
			zap.Int("default", utils.DefaultPerPage),
		)
		params.PerPage = utils.DefaultPerPage
	}
	if params.SortBy == "" {
		params.SortBy = utils.DefaultSortBy
	}
	if params.OrderBy == "" {
		params.OrderBy = utils.DefaultOrderBy
	}
}

var _ IUserService = (*UserService)(nil)
