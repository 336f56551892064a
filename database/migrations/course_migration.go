package migrations

import (
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCoursesTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Course{}); err != nil {
		utils.Log.Error("Falha na migração da tabela courses", zap.Error(err))
		return err
	}

	utils.SLog.Info("Tabela courses migrada com sucesso")
	return nil
}
