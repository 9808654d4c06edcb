package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/rabbitmq"
	"hostel/internal/domains/notification/model"
)

// Worker drains the notification queue and dispatches every message. A message that
// fails to decode or deliver is logged and dropped.
type Worker struct {
	driver     string
	topic      string
	group      string
	kafka      kafka.Client
	rabbit     rabbitmq.Client
	dispatcher Dispatcher
}

func NewWorker(cfg *config.Config, kafka kafka.Client, rabbit rabbitmq.Client, dispatcher Dispatcher) *Worker {
	return &Worker{
		driver:     cfg.Notification.Driver,
		topic:      cfg.Notification.Topic,
		group:      cfg.Kafka.ConsumerGroup,
		kafka:      kafka,
		rabbit:     rabbit,
		dispatcher: dispatcher,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	log.Info().Str("driver", w.driver).Str("topic", w.topic).Msg("notifier started")

	switch w.driver {
	case model.DriverKafka:
		return w.kafka.Consume(ctx, w.group, w.topic, func(ctx context.Context, message kafkaGo.Message) error {
			msg, err := kafka.Decode[model.Message](message)
			if err != nil {
				return nil
			}

			w.handle(ctx, msg)

			return nil
		})
	case model.DriverRabbitMQ:
		return w.rabbit.Consume(ctx, w.topic, func(ctx context.Context, body []byte) error {
			var msg model.Message
			if err := json.Unmarshal(body, &msg); err != nil {
				log.Error().Err(err).Msg("failed to decode notification")

				return nil
			}

			w.handle(ctx, msg)

			return nil
		})
	default:
		return fmt.Errorf("%w: %q", model.ErrNoQueue, w.driver)
	}
}

func (w *Worker) handle(ctx context.Context, msg model.Message) {
	if err := w.dispatcher.Dispatch(ctx, msg); err != nil {
		log.Error().Err(err).Str("id", msg.ID).Str("kind", string(msg.Kind)).Msg("dropping notification")

		return
	}

	log.Debug().Str("id", msg.ID).Str("kind", string(msg.Kind)).Msg("notification delivered")
}
