// File: services/notification/email.go
package notification

import (
	"fmt"
	"net/smtp"

	"venuely/config"
)

// mailCustomer sends a plain-text email over the configured SMTP relay.
// Skipped silently when no host is configured.
func (s *DefaultNotificationService) mailCustomer(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || to == "" {
		return nil
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		from, to, subject, body)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("mailCustomer: send to %s failed: %w", to, err)
	}
	return nil
}
