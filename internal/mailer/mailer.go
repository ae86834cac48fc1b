// Package mailer sends plain-text notification emails over SMTP.
package mailer

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"ucoportal/internal/config"
)

// Mailer delivers a plain-text message to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	sender string
	log    zerolog.Logger
}

// NewSMTP returns a Mailer backed by the configured SMTP server. When
// credentials are missing it returns a no-op mailer so the portal keeps
// working in environments without email.
func NewSMTP(cfg config.SMTPConfig, log zerolog.Logger) Mailer {
	if cfg.Username == "" || cfg.Password == "" {
		log.Warn().Msg("smtp credentials not provided, email sending disabled")
		return nopMailer{log: log}
	}
	sender := cfg.Sender
	if sender == "" {
		sender = cfg.Username
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: sender,
		log:    log,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error().Err(err).Str("to", to).Msg("send email")
		return err
	}
	m.log.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

type nopMailer struct {
	log zerolog.Logger
}

func (m nopMailer) Send(to, subject, _ string) error {
	m.log.Debug().Str("to", to).Msg("skipping email, smtp disabled")
	return nil
}
