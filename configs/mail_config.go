package configs

import (
	"acaodocente/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	Server        string
	Port          int
	UseTLS        bool
	Username      string
	Password      string
	DefaultSender string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		Server:        utils.GetEnvWithDefault("MAIL_SERVER", "localhost"),
		Port:          utils.GetEnvAsInt("MAIL_PORT", 587),
		UseTLS:        utils.GetEnvAsBool("MAIL_USE_TLS", true),
		Username:      utils.GetEnvWithDefault("MAIL_USERNAME", ""),
		Password:      utils.GetEnvWithDefault("MAIL_PASSWORD", ""),
		DefaultSender: utils.GetEnvWithDefault("MAIL_DEFAULT_SENDER", "noreply@senai.br"),
	}
}

func (m MailConfig) NewDialer() *gomail.Dialer {
	dialer := gomail.NewDialer(m.Server, m.Port, m.Username, m.Password)
	// Sem TLS explícito o gomail ainda tenta STARTTLS quando o servidor
	// anuncia suporte; UseTLS=false apenas não o exige.
	dialer.SSL = false
	return dialer
}
