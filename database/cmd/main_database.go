package main

import (
	"flag"
	"os"

	"acaodocente/configs"
	"acaodocente/database"
	"acaodocente/utils"

	"go.uber.org/zap"
)

// Ferramenta de preparação do banco: diferente do servidor, aqui qualquer
// falha é fatal e o processo sai com código diferente de zero.
func main() {
	utils.InitLogger()
	defer utils.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Executa as migrações (criação das tabelas que faltam)")
	seedFlag := flag.Bool("seed", false, "Executa os seeders (conta admin)")
	flag.Parse()

	cfg := configs.Load()
	dsn := configs.ResolveDatabaseDSN(cfg.DatabaseURL)

	db, err := configs.OpenDB(dsn)
	if err != nil {
		utils.Log.Error("Não foi possível conectar ao banco de dados", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		_ = configs.CloseDB(db)
	}()

	utils.SLog.Info("Executando a preparação do banco de dados...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	utils.SLog.Info("Preparação do banco de dados concluída.")
}
