package utils

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvWithDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		if SLog != nil {
			SLog.Warnw("Variável de ambiente inteira inválida, usando o padrão",
				"key", key, "value", valueStr, "default", fallback)
		}
		return fallback
	}
	return value
}

// GetEnvAsBool treats "true", "on" and "1" (case-insensitive) as true,
// matching the MAIL_USE_TLS convention.
func GetEnvAsBool(key string, fallback bool) bool {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(valueStr)) {
	case "true", "on", "1":
		return true
	default:
		return false
	}
}
