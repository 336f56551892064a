package configs

import (
	"os"
	"strings"
	"time"

	"acaodocente/utils"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	deprecatedPostgresPrefix = "postgres://"
	modernPostgresPrefix     = "postgresql://"

	// Banco local usado quando DATABASE_URL não está definido.
	SQLiteFallbackPath = "teacher_evaluation.db"
)

// ResolveDatabaseDSN normaliza a string de conexão: o prefixo legado
// postgres:// vira postgresql:// e a ausência da variável cai no arquivo
// SQLite local.
func ResolveDatabaseDSN(raw string) string {
	if raw == "" {
		return SQLiteFallbackPath
	}
	if strings.HasPrefix(raw, deprecatedPostgresPrefix) {
		return modernPostgresPrefix + strings.TrimPrefix(raw, deprecatedPostgresPrefix)
	}
	return raw
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, modernPostgresPrefix)
}

// OpenDB abre a conexão gorm apropriada para o DSN resolvido e aplica os
// limites de pool vindos do ambiente.
func OpenDB(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if IsPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(getGormLogLevel()),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	maxIdleConns := utils.GetEnvAsInt("DB_MAX_IDLE_CONNS", 10)
	maxOpenConns := utils.GetEnvAsInt("DB_MAX_OPEN_CONNS", 100)
	connMaxLifetimeMinutes := utils.GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetimeMinutes) * time.Minute)

	utils.Log.Info("Conexão com o banco de dados estabelecida",
		zap.Bool("postgres", IsPostgresDSN(dsn)),
		zap.Int("max_idle_conns", maxIdleConns),
		zap.Int("max_open_conns", maxOpenConns),
		zap.Int("conn_max_lifetime_minutes", connMaxLifetimeMinutes),
	)

	return db, nil
}

func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		utils.Log.Error("Falha ao obter a conexão para fechamento", zap.Error(err))
		return err
	}

	if err := sqlDB.Close(); err != nil {
		utils.Log.Error("Erro ao fechar a conexão com o banco de dados", zap.Error(err))
		return err
	}

	utils.SLog.Info("Conexão com o banco de dados encerrada.")
	return nil
}

func getGormLogLevel() logger.LogLevel {
	switch os.Getenv("DB_LOG_LEVEL") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}
