package migrations

import (
	"acaodocente/models"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		err := db.Exec(`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
				CREATE TYPE user_role AS ENUM ('admin', 'evaluator', 'teacher');
			END IF;
		END$$`).Error
		if err != nil {
			utils.Log.Error("Falha ao criar/verificar o enum user_role", zap.Error(err))
			return err
		}
		utils.SLog.Debug("Enum user_role verificado/criado")
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		utils.Log.Error("Falha na migração da tabela users", zap.Error(err))
		return err
	}

	utils.SLog.Info("Tabela users migrada com sucesso")
	return nil
}
