package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/shared/constant"
)

var ErrInvalidRecipient = errors.New("invalid recipient email")

// Mail is one outgoing message. Text is the plain part and HTML the optional alternative.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type mailerImpl struct {
	from   string
	dialer dialer
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &mailerImpl{
		from:   cfg.SMTP.From,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		otel:   otl,
	}
}

func (m *mailerImpl) Send(ctx context.Context, mail Mail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msg, err := m.build(mail)
	if err != nil {
		return err
	}

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", mail.To).Str("subject", mail.Subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")

	return nil
}

func (m *mailerImpl) build(mail Mail) (*gomail.Message, error) {
	if !strings.Contains(mail.To, "@") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, mail.To)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)

	if mail.HTML != "" {
		msg.AddAlternative("text/html", mail.HTML)
	}

	return msg, nil
}
