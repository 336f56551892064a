package migrations

import (
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateEvaluationsTable cuida da tabela de avaliações e dos anexos; as
// tabelas referenciadas (teachers, courses, evaluators) precisam existir
// antes.
func MigrateEvaluationsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Evaluation{}); err != nil {
		utils.Log.Error("Falha na migração da tabela evaluations", zap.Error(err))
		return err
	}

	if err := db.AutoMigrate(&models.EvaluationAttachment{}); err != nil {
		utils.Log.Error("Falha na migração da tabela evaluation_attachments", zap.Error(err))
		return err
	}

	utils.SLog.Info("Tabelas evaluations e evaluation_attachments migradas com sucesso")
	return nil
}
