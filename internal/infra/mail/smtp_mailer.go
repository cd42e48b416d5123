// Package mail implements the Mailer service over plain SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"wellkart/config"
	"wellkart/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer implements service.Mailer using net/smtp. Transactional volume
// is low enough that a connection per message is fine.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth:   auth,
		from:   cfg.SMTP.From,
		logger: logger,
	}, nil
}

// Send delivers the mail. Failures surface to the caller; there is no retry queue.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send cancelled")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", mail.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mail.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(mail.Body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{mail.To}, []byte(msg.String())); err != nil {
		m.logger.Error("Failed to send mail",
			slog.String("to", mail.To),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Mail sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}
