package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/spec-kit/air-quality-dashboard/internal/config"
)

// SMTPTransport sends over SMTP with mandatory STARTTLS and PLAIN auth.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
	timeout  time.Duration
}

// NewSMTPTransport builds a transport from configuration.
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	return &SMTPTransport{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		to:       cfg.To,
		timeout:  cfg.Timeout(),
	}
}

// Send dials the server, upgrades with STARTTLS, authenticates and delivers msg.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m, err := t.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(t.host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return err
	}
	return nil
}

func (t *SMTPTransport) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(t.port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(t.timeout),
	}
	if t.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(t.username),
			gomail.WithPassword(t.password),
		)
	}
	return opts
}

func (t *SMTPTransport) buildMessage(msg Message) (*gomail.Msg, error) {
	if t.from == "" || t.to == "" {
		return nil, errors.New("mail sender and recipient must be configured")
	}
	m := gomail.NewMsg(gomail.WithEncoding(gomail.NoEncoding))
	if err := m.From(t.from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(t.to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}
