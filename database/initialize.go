package database

import (
	"acaodocente/database/migrations"
	"acaodocente/database/seeders"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize roda migrações e seed dentro de uma transação. É o caminho da
// ferramenta de linha de comando; o boot do servidor usa RunMigrationsInOrder
// e EnsureAdminUser diretamente, sem abortar o processo em caso de falha.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		utils.SLog.Info("Nenhuma flag de migrate ou seed informada, nada a fazer.")
		return
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			utils.Log.Fatal("Inicialização do banco falhou e foi revertida (panic)", zap.Any("panic_info", r))
		}
	}()

	utils.SLog.Info("Iniciando a preparação do banco de dados...")

	if migrate {
		utils.SLog.Info("Executando migrações...")
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			utils.Log.Fatal("Migração falhou", zap.Error(err))
		}
		utils.SLog.Info("Migrações concluídas.")
	} else {
		utils.SLog.Info("Flag de migrate ausente, etapa de migração ignorada.")
	}

	if seed {
		utils.SLog.Info("Executando seeders...")
		if _, err := seeders.EnsureAdminUser(tx); err != nil {
			tx.Rollback()
			utils.Log.Fatal("Seed falhou", zap.Error(err))
		}
		utils.SLog.Info("Seeders concluídos.")
	} else {
		utils.SLog.Info("Flag de seed ausente, etapa de seed ignorada.")
	}

	utils.SLog.Info("Efetivando a transação...")
	if err := tx.Commit().Error; err != nil {
		utils.Log.Fatal("Commit falhou", zap.Error(err))
	}

	utils.SLog.Info("Banco de dados preparado com sucesso")
}

// RunMigrationsInOrder cria as tabelas que faltam, na ordem das dependências
// de chave estrangeira.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"teachers", migrations.MigrateTeachersTable},
		{"courses", migrations.MigrateCoursesTable},
		{"evaluators", migrations.MigrateEvaluatorsTable},
		{"evaluations", migrations.MigrateEvaluationsTable},
	}

	for _, step := range steps {
		utils.SLog.Infof(" -> Migrando %s...", step.name)
		if err := step.run(db); err != nil {
			utils.Log.Error("Migração falhou", zap.String("table", step.name), zap.Error(err))
			return err
		}
	}

	utils.SLog.Info("Todas as migrações foram executadas com sucesso.")
	return nil
}
