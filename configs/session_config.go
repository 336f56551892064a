package configs

import (
	"encoding/gob"
	"time"

	"acaodocente/models"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/postgres/v3"
	"go.uber.org/zap"
)

// NewSessionStore cria o armazenamento de sessões: tabela "sessions" no
// Postgres quando disponível, memória do processo no fallback SQLite.
func NewSessionStore(dsn string) *session.Store {
	sessionExpirationHours := utils.GetEnvAsInt("SESSION_EXPIRATION_HOURS", 24)
	config := session.Config{
		Expiration:     time.Duration(sessionExpirationHours) * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}

	if IsPostgresDSN(dsn) {
		utils.Log.Info("Configurando armazenamento de sessões",
			zap.String("storage_type", "postgres"),
			zap.String("table", "sessions"),
		)
		config.Storage = postgres.New(postgres.Config{
			ConnectionURI: dsn,
			Reset:         false,
			Table:         "sessions",
			GCInterval:    10 * time.Second,
		})
	} else {
		utils.SLog.Info("Armazenamento de sessões em memória (banco local)")
	}

	store := session.New(config)

	utils.SLog.Infof("Sessões configuradas com expiração de %d horas", sessionExpirationHours)

	registerGobTypes()

	return store
}

func registerGobTypes() {
	gob.Register(models.UserRole(""))
	gob.Register(&models.User{})
	utils.SLog.Debug("Tipos registrados no gob para sessão: models.UserRole, *models.User")
}
