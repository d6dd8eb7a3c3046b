package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/config"

	"go.uber.org/zap"
)

// ErrNotConfigured dikembalikan saat kredensial SMTP kosong; pesan hanya dicatat.
var ErrNotConfigured = errors.New("notify: smtp credentials not configured")

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendFunc sama dengan smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Option func(*smtpMailer)

func WithSendFunc(fn SendFunc) Option {
	return func(m *smtpMailer) { m.send = fn }
}

type smtpMailer struct {
	cfg    config.MailConfig
	send   SendFunc
	logger *zap.Logger
}

func NewMailer(cfg config.MailConfig, logger *zap.Logger, opts ...Option) Mailer {
	l := zap.L().Named("notify.mailer")
	if logger != nil {
		l = logger.Named("notify.mailer")
	}
	m := &smtpMailer{cfg: cfg, send: smtp.SendMail, logger: l}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("notify: empty recipient")
	}
	if !m.cfg.Enabled() {
		m.logger.Info("smtp not configured, email skipped",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return ErrNotConfigured
	}

	from := m.cfg.From
	envelope := from
	if addr, err := mail.ParseAddress(from); err == nil {
		envelope = addr.Address
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, envelope, []string{msg.To}, buildMessage(from, msg)); err != nil {
		m.logger.Error("send email failed", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	m.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func buildMessage(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
