package service

//go:generate go run go.uber.org/mock/mockgen -source=./sender.go -destination=../mocks/sender_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/infras/rabbitmq"
	"hostel/internal/domains/notification/model"
	"hostel/shared/constant"
	"hostel/shared/timezone"
)

// Sender hands a notification to the configured driver. Callers treat failures as
// best-effort and never roll back on them.
type Sender interface {
	Send(ctx context.Context, kind model.Kind, recipient string, fields map[string]string) error
}

type senderImpl struct {
	driver     string
	topic      string
	kafka      kafka.Client
	rabbit     rabbitmq.Client
	dispatcher Dispatcher
	otel       otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, rabbit rabbitmq.Client, dispatcher Dispatcher, otel otel.Otel) Sender {
	driver := cfg.Notification.Driver
	if driver == constant.Empty {
		driver = model.DriverLog
	}

	return &senderImpl{
		driver:     driver,
		topic:      cfg.Notification.Topic,
		kafka:      kafka,
		rabbit:     rabbit,
		dispatcher: dispatcher,
		otel:       otel,
	}
}

func (s *senderImpl) Send(ctx context.Context, kind model.Kind, recipient string, fields map[string]string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("kind", string(kind))
	scope.SetAttribute("driver", s.driver)

	msg := model.Message{
		ID:        uuid.NewString(),
		Kind:      kind,
		Recipient: recipient,
		Fields:    fields,
		CreatedAt: timezone.Now(),
	}

	switch s.driver {
	case model.DriverKafka:
		err = s.kafka.SendMessages(ctx, s.topic, kafka.Message{Key: recipient, Value: msg})
	case model.DriverRabbitMQ:
		err = s.rabbit.Publish(ctx, s.topic, msg)
	case model.DriverSMTP:
		err = s.dispatcher.Dispatch(ctx, msg)
	case model.DriverLog:
		log.Info().Str("id", msg.ID).Str("kind", string(kind)).Str("recipient", recipient).Msg("notification")
	default:
		err = fmt.Errorf("%w: %q", model.ErrUnknownDriver, s.driver)
	}

	if err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Str("recipient", recipient).Msg("failed to send notification")

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
