package migrations

import (
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEvaluatorsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Evaluator{}); err != nil {
		utils.Log.Error("Falha na migração da tabela evaluators", zap.Error(err))
		return err
	}

	utils.SLog.Info("Tabela evaluators migrada com sucesso")
	return nil
}
