package contact

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/bencom-ar/storefront-backend/pkg/config"
	"github.com/bencom-ar/storefront-backend/pkg/logger"
)

// Email is a fully rendered message ready for delivery.
type Email struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers a rendered email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer builds a mailer that delivers through the configured relay.
func NewSMTPMailer(cfg config.SMTPConfig) (Mailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp relay not configured")
	}
	return &smtpMailer{cfg: cfg}, nil
}

func (m *smtpMailer) Send(ctx context.Context, email Email) error {
	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return fmt.Errorf("setting reply-to address: %w", err)
		}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.TextBody)
	if email.HTMLBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTMLBody)
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("building smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

type logMailer struct {
	logg *logger.Logger
}

// NewLogMailer builds a mailer that only logs the message. It stands in for
// the SMTP relay in local development.
func NewLogMailer(logg *logger.Logger) Mailer {
	return &logMailer{logg: logg}
}

func (m *logMailer) Send(ctx context.Context, email Email) error {
	if m.logg != nil {
		ctx = m.logg.WithFields(ctx, map[string]any{
			"to":       email.To,
			"subject":  email.Subject,
			"reply_to": email.ReplyTo,
		})
		m.logg.Info(ctx, "contact.mail.logged")
	}
	return nil
}
