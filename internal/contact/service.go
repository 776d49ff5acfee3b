package contact

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/bencom-ar/storefront-backend/pkg/config"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
)

// DefaultSubject is used when the sender leaves the subject blank.
const DefaultSubject = "Consulta desde web"

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SendInput carries a contact form submission.
type SendInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Service relays contact form submissions to the shop's inbox.
type Service interface {
	Send(ctx context.Context, input SendInput) error
}

type service struct {
	mailer Mailer
	cfg    config.SMTPConfig
}

// NewService builds the contact relay.
func NewService(mailer Mailer, cfg config.SMTPConfig) (Service, error) {
	if mailer == nil {
		return nil, fmt.Errorf("mailer required")
	}
	return &service{mailer: mailer, cfg: cfg}, nil
}

func (s *service) Send(ctx context.Context, input SendInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	if !emailPattern.MatchString(email) {
		return pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	if len(message) < 2 {
		return pkgerrors.New(pkgerrors.CodeValidation, "message is too short")
	}
	if subject == "" {
		subject = DefaultSubject
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	err := s.mailer.Send(ctx, Email{
		From:     from,
		To:       s.cfg.To,
		ReplyTo:  email,
		Subject:  subject,
		TextBody: textBody(name, email, message),
		HTMLBody: htmlBody(name, email, message),
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delivering contact email")
	}
	return nil
}

func textBody(name, email, message string) string {
	return fmt.Sprintf("Nombre: %s\nEmail: %s\n\n%s", name, email, message)
}

func htmlBody(name, email, message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
	return fmt.Sprintf("<p><strong>Nombre:</strong> %s<br/><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(email), escaped)
}
