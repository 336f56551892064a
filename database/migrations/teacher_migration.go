package migrations

import (
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTeachersTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Teacher{}); err != nil {
		utils.Log.Error("Falha na migração da tabela teachers", zap.Error(err))
		return err
	}

	utils.SLog.Info("Tabela teachers migrada com sucesso")
	return nil
}
