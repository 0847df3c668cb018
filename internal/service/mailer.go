package service

import (
	"fmt"
	"net/smtp"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends transactional email. Failures are reported but callers treat
// delivery as best effort.
type Mailer interface {
	Send(to []string, subject, body string) error
}

type SMTPMailer struct {
	Cfg *config.EmailConfig
}

func NewSMTPMailer(cfg *config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{Cfg: cfg}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if !m.Cfg.Enabled {
		logger.Log.Debug("Email disabled, skipping send", zap.String("subject", subject))
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.Cfg.SMTPHost, m.Cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.Cfg.Username, m.Cfg.Password, m.Cfg.SMTPHost)

	msg := strings.Join([]string{
		"From: " + m.Cfg.FromAddress,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, m.Cfg.FromAddress, to, []byte(msg))
}
