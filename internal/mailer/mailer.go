package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/curaious/taskdeck/internal/config"
	gomail "github.com/wneessen/go-mail"
)

// Message is one outbound email. Body is HTML.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends transactional email. Workflow activities depend on this
// interface so tests can substitute a fake.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPMailer struct {
	client *gomail.Client
	sender string
}

func NewSMTPMailer(conf *config.Config) (*SMTPMailer, error) {
	client, err := gomail.NewClient(conf.SMTP_HOST,
		gomail.WithPort(conf.SMTP_PORT),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(conf.SMTP_USER),
		gomail.WithPassword(conf.SMTP_PASS),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		sender: conf.SMTP_SENDER_EMAIL,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mail := gomail.NewMsg()
	if err := mail.From(m.sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := mail.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextHTML, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}
