package services

import (
	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ServiceError string

func (e ServiceError) Error() string {
	return string(e)
}

const (
	ErrInvalidCredentials       ServiceError = "credenciais inválidas"
	ErrUserNotFound             ServiceError = "usuário não encontrado"
	ErrUserInactive             ServiceError = "usuário inativo"
	ErrCurrentPasswordIncorrect ServiceError = "a senha atual está incorreta"
	ErrPasswordTooShort         ServiceError = "a nova senha deve ter pelo menos 6 caracteres"
	ErrPasswordSameAsOld        ServiceError = "a nova senha não pode ser igual à atual"
	ErrAuthGeneric              ServiceError = "erro durante a autenticação"
	ErrProfileGeneric           ServiceError = "erro ao carregar o perfil"
	ErrUpdatePasswordGeneric    ServiceError = "erro ao atualizar a senha"
	ErrHashingFailed            ServiceError = "erro ao gerar a nova senha"
	ErrDatabaseUpdateFailed     ServiceError = "falha na atualização do banco de dados"
)

type IAuthService interface {
	Authenticate(username, password string) (*models.User, error)
	GetUserProfile(id uint) (*models.User, error)
	UpdatePassword(userID uint, currentPass, newPassword string) error
}

type AuthService struct {
	repo repositories.IAuthRepository
}

func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewAuthRepository(db)}
}

func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.repo.FindUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Log.Warn("Autenticação falhou: usuário não encontrado", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		utils.Log.Error("Erro de autenticação (DB)",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, ErrAuthGeneric
	}

	if !user.Status {
		utils.Log.Warn("Autenticação falhou: usuário inativo",
			zap.String("username", username),
			zap.Uint("user_id", user.ID),
		)
		return nil, ErrUserInactive
	}

	if err := user.CheckPassword(password); err != nil {
		utils.Log.Warn("Autenticação falhou: senha inválida",
			zap.String("username", username),
			zap.Uint("user_id", user.ID),
		)
		return nil, ErrInvalidCredentials
	}

	utils.Log.Info("Autenticação bem-sucedida",
		zap.String("username", username),
		zap.Uint("user_id", user.ID),
	)
	return user, nil
}

func (s *AuthService) GetUserProfile(id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Log.Warn("Perfil não encontrado", zap.Uint("user_id", id))
			return nil, ErrUserNotFound
		}
		utils.Log.Error("Erro ao carregar o perfil (DB)",
			zap.Uint("user_id", id),
			zap.Error(err),
		)
		return nil, ErrProfileGeneric
	}
	return user, nil
}

func (s *AuthService) UpdatePassword(userID uint, currentPass, newPassword string) error {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Log.Warn("Troca de senha falhou: usuário não encontrado", zap.Uint("user_id", userID))
			return ErrUserNotFound
		}
		utils.Log.Error("Troca de senha: erro ao buscar o usuário",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return ErrUpdatePasswordGeneric
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPass)); err != nil {
		utils.Log.Warn("Troca de senha falhou: senha atual incorreta", zap.Uint("user_id", userID))
		return ErrCurrentPasswordIncorrect
	}

	if len(newPassword) < 6 {
		utils.Log.Warn("Troca de senha falhou: nova senha muito curta", zap.Uint("user_id", userID))
		return ErrPasswordTooShort
	}
	if currentPass == newPassword {
		utils.Log.Warn("Troca de senha falhou: nova senha igual à atual", zap.Uint("user_id", userID))
		return ErrPasswordSameAsOld
	}

	if err := user.SetPassword(newPassword); err != nil {
		utils.Log.Error("Troca de senha: falha ao gerar o hash",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return ErrHashingFailed
	}

	if err := s.repo.UpdateUser(user); err != nil {
		utils.Log.Error("Troca de senha: erro ao gravar o usuário",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return ErrDatabaseUpdateFailed
	}

	utils.Log.Info("Senha atualizada com sucesso", zap.Uint("user_id", userID))
	return nil
}

var _ IAuthService = (*AuthService)(nil)
