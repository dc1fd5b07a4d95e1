package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"pet-shop-api/internal/config"
	"pet-shop-api/internal/logger"
)

// Mailer sends transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer returns an SMTP mailer, or one that only logs when SMTP is not configured.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return logMailer{}
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	return &smtpMailer{cfg: cfg, dialer: dialer}
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your Pet Shop password")
	msg.SetBody("text/plain", PasswordResetBody(token))

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send reset mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func PasswordResetBody(token string) string {
	return fmt.Sprintf("Use this token to reset your password:\n\n%s\n\nIf you did not ask for a reset you can ignore this mail.\n", token)
}

type logMailer struct{}

func (logMailer) SendPasswordReset(_ context.Context, to, _ string) error {
	logger.Debug("SMTP not configured, reset mail skipped", zap.String("to", to))
	return nil
}
