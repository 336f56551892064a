package seeders

import (
	"errors"

	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetAdminUserConfig descreve a conta administrativa garantida a cada boot.
func GetAdminUserConfig() models.User {
	return models.User{
		Username: "edson.lemes",
		Name:     "Edson Lemes",
		Role:     models.RoleAdmin,
		Email:    "edson.lemes@senai.br",
		Password: "senai103103",
	}
}

// EnsureAdminUser é a operação idempotente de seed: cria a conta admin se
// ela não existir e nunca altera os campos de uma conta já presente.
// Retorna se a conta foi criada nesta chamada.
func EnsureAdminUser(db *gorm.DB) (bool, error) {
	adminConfig := GetAdminUserConfig()

	var existing models.User
	err := db.Where("username = ?", adminConfig.Username).First(&existing).Error
	if err == nil {
		utils.SLog.Infof("Usuário admin '%s' já existe, seed ignorado.", adminConfig.Username)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Log.Error("Erro ao verificar o usuário admin",
			zap.String("username", adminConfig.Username),
			zap.Error(err),
		)
		return false, err
	}

	admin := models.User{
		Username: adminConfig.Username,
		Name:     adminConfig.Name,
		Role:     adminConfig.Role,
		Email:    adminConfig.Email,
		Status:   true,
	}
	if err := admin.SetPassword(adminConfig.Password); err != nil {
		utils.Log.Error("Falha ao gerar o hash da senha do admin",
			zap.String("username", adminConfig.Username),
			zap.Error(err),
		)
		return false, err
	}

	if err := db.Create(&admin).Error; err != nil {
		// Outro processo pode ter criado a conta entre o First e o Create;
		// a restrição de unicidade do username decide o vencedor.
		var raced models.User
		if recheckErr := db.Where("username = ?", adminConfig.Username).First(&raced).Error; recheckErr == nil {
			utils.SLog.Infof("Usuário admin '%s' criado por outro processo.", adminConfig.Username)
			return false, nil
		}
		utils.Log.Error("Falha ao criar o usuário admin",
			zap.String("username", adminConfig.Username),
			zap.Error(err),
		)
		return false, err
	}

	utils.SLog.Infof("Usuário admin '%s' criado com sucesso.", adminConfig.Username)
	return true, nil
}
