package configs

import (
	"crypto/sha256"
	"encoding/base64"

	"acaodocente/utils"

	"github.com/joho/godotenv"
)

// AppConfig reúne toda a configuração do processo, montada uma única vez em
// Load e repassada explicitamente a quem precisa dela.
type AppConfig struct {
	Env           string
	Port          string
	SessionSecret string
	DatabaseURL   string
	UploadDir     string
	MaxUploadMB   int

	Mail MailConfig
}

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		if utils.SLog != nil {
			utils.SLog.Debugw("Arquivo .env não carregado, usando variáveis do ambiente", "error", err)
		}
	}

	return AppConfig{
		Env:           utils.GetEnvWithDefault("APP_ENV", "development"),
		Port:          utils.GetEnvWithDefault("PORT", "5000"),
		SessionSecret: utils.GetEnvWithDefault("SESSION_SECRET", "dev-secret-key-change-in-production"),
		DatabaseURL:   utils.GetEnvWithDefault("DATABASE_URL", ""),
		UploadDir:     utils.GetEnvWithDefault("UPLOAD_FOLDER", "uploads"),
		MaxUploadMB:   utils.GetEnvAsInt("MAX_UPLOAD_MB", 16),
		Mail:          LoadMailConfig(),
	}
}

// CookieKey deriva do SESSION_SECRET a chave de 32 bytes (base64) exigida
// pelo middleware de cookies cifrados.
func (c AppConfig) CookieKey() string {
	sum := sha256.Sum256([]byte(c.SessionSecret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
