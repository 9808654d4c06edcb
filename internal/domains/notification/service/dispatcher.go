package service

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostel/infras/mailer"
	"hostel/infras/otel"
	"hostel/internal/domains/notification/model"
	"hostel/shared/constant"
)

// Dispatcher renders a message with its kind's template and delivers it over SMTP.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg model.Message) error
}

type dispatcherImpl struct {
	mailer mailer.Mailer
	otel   otel.Otel
}

func NewDispatcher(mailer mailer.Mailer, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		mailer: mailer,
		otel:   otel,
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, msg model.Message) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Dispatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("kind", string(msg.Kind))

	mail, err := Render(msg)
	if err != nil {
		log.Error().Err(err).Str("kind", string(msg.Kind)).Str("id", msg.ID).Msg("failed to render notification")

		return err
	}

	if err = d.mailer.Send(ctx, mail); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}

	return nil
}

// Render builds the mail for msg.
func Render(msg model.Message) (mailer.Mail, error) {
	tpl, ok := templates[msg.Kind]
	if !ok {
		return mailer.Mail{}, fmt.Errorf("%w: %q", model.ErrUnknownKind, msg.Kind)
	}

	fields := msg.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	var subject, body bytes.Buffer

	if err := tpl.subject.Execute(&subject, fields); err != nil {
		return mailer.Mail{}, fmt.Errorf("failed to render subject: %w", err)
	}

	if err := tpl.body.Execute(&body, fields); err != nil {
		return mailer.Mail{}, fmt.Errorf("failed to render body: %w", err)
	}

	return mailer.Mail{
		To:      msg.Recipient,
		Subject: subject.String(),
		Text:    body.String(),
	}, nil
}
