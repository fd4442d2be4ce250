package mailer

import (
	"fmt"
	"net/smtp"
	"time"
)

// Config holds SMTP transport credentials.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer is a Mailer on top of a plain-auth SMTP server.
type SMTPMailer struct {
	config Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		config: cfg,
	}
}

// Send delivers one HTML email through the configured SMTP server.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.config.From, to, subject, htmlBody,
	)

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// BuildConfirmationEmailBody renders the activation email carrying the
// one-time confirmation code.
func BuildConfirmationEmailBody(code string, expiry time.Duration) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Confirm your registration</title></head>
<body>
  <p>Welcome to kodeks24!</p>
  <p>Enter the following code to activate your account:</p>
  <p style="font-size:2em;font-weight:bold">%s</p>
  <p>The code expires in %d seconds. If you did not register, ignore this email.</p>
</body>
</html>`, code, int(expiry.Seconds()))
}
