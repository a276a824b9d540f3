package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/chamados/servicedesk/internal/shared/config"
)

// Sender is the part of *gomail.Dialer the alert service needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	sender Sender
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return NewSMTPEmailServiceWithSender(cfg,
		gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword))
}

func NewSMTPEmailServiceWithSender(cfg config.EmailConfig, sender Sender) *SMTPEmailService {
	return &SMTPEmailService{config: cfg, sender: sender}
}

// NotifyLockout tells the configured administrators that a login was locked.
func (s *SMTPEmailService) NotifyLockout(_ context.Context, login string, blockedUntil time.Time, sourceIP string) error {
	if len(s.config.AlertRecipients) == 0 {
		return nil
	}

	until := blockedUntil.UTC().Format(time.RFC3339)
	subject := fmt.Sprintf("Login locked: %s", login)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Login locked after repeated failures</h2>
			<p>Login: <strong>%s</strong></p>
			<p>Last attempt from: %s</p>
			<p>Locked until: %s</p>
			<p>An administrator can lift the lock from the lockouts page.</p>
		</body>
		</html>
	`, html.EscapeString(login), html.EscapeString(sourceIP), until)

	plainBody := fmt.Sprintf(`
Login locked after repeated failures

Login: %s
Last attempt from: %s
Locked until: %s

An administrator can lift the lock from the lockouts page.
	`, login, sourceIP, until)

	return s.sendEmail(s.config.AlertRecipients, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to []string, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", strings.TrimSpace(plainBody))
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
