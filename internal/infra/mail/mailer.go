// Package mail delivers transactional mail over SMTP. When no SMTP host
// is configured the mailer degrades to logging the message, which keeps
// local development working without a relay.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"sukhan/config"
	"sukhan/internal/domain/service"
)

type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		from:     cfg.Mail.From,
		logger:   logger,
	}
}

// SendOTP delivers a one-time verification code to the address.
func (m *smtpMailer) SendOTP(ctx context.Context, to, code string) error {
	if m.host == "" {
		m.logger.LogAttrs(ctx, slog.LevelInfo, "SMTP not configured, logging OTP instead",
			slog.String("to", to),
			slog.String("code", code),
		)

		return nil
	}

	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send otp mail: %w", err)
	}

	return nil
}
