package notify

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// subject is kept verbatim from the legacy system.
const subject = `Livro com emprestimo atrasada`

type Config struct {
	Sender   string `yaml:"sender" envconfig:"MAIL_SENDER" required:"true"`
	Host     string `yaml:"host" envconfig:"SMTP_HOST"`
	Port     int    `yaml:"port" envconfig:"SMTP_PORT" default:"587"`
	User     string `yaml:"user" envconfig:"SMTP_USER"`
	Password string `yaml:"password" envconfig:"SMTP_PASSWORD"`
}

type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	log    *zap.Logger
}

func NewMailer(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		log:    log.Named("notify"),
	}
}

// NotifyOverdue sends one message to the given recipients. An empty
// recipient list is a no-op: no connection is opened. Errors go back to
// the caller; there is no retry here.
func (m *Mailer) NotifyOverdue(ctx context.Context, to []string, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.dialer.DialAndSend(msg)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "send mail")
		}
		m.log.Debug("overdue mail sent", zap.Int("recipients", len(to)))
		return nil
	}
}
