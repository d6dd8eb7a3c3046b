package notify_test

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/config"
	"github.com/code-hero23/peopledesk-sub002/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	addr string
	from string
	to   []string
	body string
}

func capture(out *[]sentMail, err error) notify.SendFunc {
	return func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*out = append(*out, sentMail{addr: addr, from: from, to: to, body: string(msg)})
		return err
	}
}

func mailCfg() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.gmail.com",
		Port:     "587",
		User:     "hr@cookscape.test",
		Password: "pw",
		From:     "PeopleDesk HR <noreply@peopledesk.com>",
	}
}

func TestMailer_Send(t *testing.T) {
	ctx := context.Background()
	msg := notify.Message{To: "ravi@cookscape.test", Subject: "Hello", HTML: "<p>hi</p>"}

	t.Run("positive", func(t *testing.T) {
		var sent []sentMail
		m := notify.NewMailer(mailCfg(), zap.NewNop(), notify.WithSendFunc(capture(&sent, nil)))

		require.NoError(t, m.Send(ctx, msg))
		require.Len(t, sent, 1)
		assert.Equal(t, "smtp.gmail.com:587", sent[0].addr)
		assert.Equal(t, "noreply@peopledesk.com", sent[0].from)
		assert.Equal(t, []string{"ravi@cookscape.test"}, sent[0].to)
		assert.Contains(t, sent[0].body, "Subject: Hello\r\n")
		assert.Contains(t, sent[0].body, "Content-Type: text/html; charset=UTF-8\r\n")
		assert.Contains(t, sent[0].body, "\r\n\r\n<p>hi</p>")
	})

	t.Run("not configured only logs", func(t *testing.T) {
		var sent []sentMail
		cfg := mailCfg()
		cfg.Password = ""
		m := notify.NewMailer(cfg, zap.NewNop(), notify.WithSendFunc(capture(&sent, nil)))

		err := m.Send(ctx, msg)
		assert.ErrorIs(t, err, notify.ErrNotConfigured)
		assert.Empty(t, sent)
	})

	t.Run("negative smtp failure", func(t *testing.T) {
		var sent []sentMail
		boom := errors.New("connection refused")
		m := notify.NewMailer(mailCfg(), zap.NewNop(), notify.WithSendFunc(capture(&sent, boom)))

		err := m.Send(ctx, msg)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("negative empty recipient", func(t *testing.T) {
		var sent []sentMail
		m := notify.NewMailer(mailCfg(), zap.NewNop(), notify.WithSendFunc(capture(&sent, nil)))

		assert.Error(t, m.Send(ctx, notify.Message{Subject: "x"}))
		assert.Empty(t, sent)
	})
}

func TestCheckoutReminder(t *testing.T) {
	msg, err := notify.CheckoutReminder("ravi@cookscape.test", "Ravi <R&D>")
	require.NoError(t, err)

	assert.Equal(t, "ravi@cookscape.test", msg.To)
	assert.Equal(t, notify.CheckoutReminderSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "Hello <b>Ravi &lt;R&amp;D&gt;</b>")
	assert.Contains(t, msg.HTML, "11:59 PM")
}
