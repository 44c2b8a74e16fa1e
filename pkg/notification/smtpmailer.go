package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	TLS      bool
	Username string
	Password string
	From     string
}

// SMTPMailer delivers mail over SMTP using go-mail.
type SMTPMailer struct {
	SMTPConfig SMTPConfig
	client     *mail.Client
}

func NewSMTPMailer(config SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTimeout(30 * time.Second),
	}

	// Only add authentication if username and password are provided
	if config.Username != "" && config.Password != "" {
		slog.Info("Adding authentication", "user", config.Username)
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(config.Username),
			mail.WithPassword(config.Password),
		)
	}

	if !config.TLS {
		slog.Info("Using NoTLS policy")
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{
				InsecureSkipVerify: true, // Skip hostname verification
			}),
			mail.WithTLSPolicy(mail.NoTLS),
		)
	} else {
		slog.Info("Using TLS Mandatory policy")
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{
				InsecureSkipVerify: true,
			}),
			mail.WithTLSPolicy(mail.TLSMandatory),
		)
	}

	slog.Info("Creating mail client", "Host", config.Host, "Port", config.Port)
	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		slog.Error("Failed to create mail client", "err", err)
		return nil, err
	}

	return &SMTPMailer{SMTPConfig: config, client: client}, nil
}

func (m *SMTPMailer) SendEmail(ctx context.Context, req EmailRequest) error {
	if len(req.To) == 0 {
		return fmt.Errorf("email request requires at least one To address")
	}

	msg := mail.NewMsg()

	from := req.FromEmail
	if from == "" {
		from = m.SMTPConfig.From
	}
	if req.FromName != "" {
		if err := msg.FromFormat(req.FromName, from); err != nil {
			slog.Error("Failed to set from address", "err", err)
			return err
		}
	} else {
		if err := msg.From(from); err != nil {
			slog.Error("Failed to set from address", "err", err)
			return err
		}
	}

	if err := msg.To(req.To...); err != nil {
		slog.Error("Failed to set to addresses", "err", err)
		return err
	}
	if len(req.CC) > 0 {
		if err := msg.Cc(req.CC...); err != nil {
			slog.Error("Failed to set cc addresses", "err", err)
			return err
		}
	}
	if len(req.BCC) > 0 {
		if err := msg.Bcc(req.BCC...); err != nil {
			slog.Error("Failed to set bcc addresses", "err", err)
			return err
		}
	}

	msg.Subject(req.Subject)
	msg.SetBodyString(mail.TypeTextHTML, req.Body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		slog.Error("Failed to send email", "err", err)
		return err
	}

	slog.Info("Email sent successfully", "to", req.To, "host", m.SMTPConfig.Host, "port", m.SMTPConfig.Port)
	return nil
}
