package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/config"
	"hostel/infras/kafka"
	kafkaMocks "hostel/infras/kafka/mocks"
	"hostel/infras/rabbitmq"
	rabbitMocks "hostel/infras/rabbitmq/mocks"
	notifMocks "hostel/internal/domains/notification/mocks"
	"hostel/internal/domains/notification/model"
	"hostel/internal/domains/notification/service"
)

func workerConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Driver = driver
	cfg.Notification.Topic = "hostel.notifications"
	cfg.Kafka.ConsumerGroup = "notifier"

	return cfg
}

func TestWorker_RunKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	k := kafkaMocks.NewMockClient(ctrl)
	d := notifMocks.NewMockDispatcher(ctrl)

	body, err := json.Marshal(model.Message{ID: "n-1", Kind: model.KindBookingRejected, Recipient: "asha@hostel.test"})
	require.NoError(t, err)

	gomock.InOrder(
		d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg model.Message) error {
			assert.Equal(t, "n-1", msg.ID)

			return nil
		}),
		d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")),
	)

	k.EXPECT().Consume(gomock.Any(), "notifier", "hostel.notifications", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string, handler kafka.Handler) error {
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: body}))
			// delivery failures are dropped so the offset still commits
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: body}))
			// so are undecodable messages
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: []byte("{")}))

			return nil
		})

	w := service.NewWorker(workerConfig(model.DriverKafka), k, rabbitMocks.NewMockClient(ctrl), d)
	assert.NoError(t, w.Run(context.Background()))
}

func TestWorker_RunRabbitMQ(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := rabbitMocks.NewMockClient(ctrl)
	d := notifMocks.NewMockDispatcher(ctrl)

	body, err := json.Marshal(model.Message{ID: "n-2", Kind: model.KindOTP})
	require.NoError(t, err)

	d.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
	r.EXPECT().Consume(gomock.Any(), "hostel.notifications", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, handler rabbitmq.Handler) error {
			assert.NoError(t, handler(ctx, body))
			assert.NoError(t, handler(ctx, []byte("not json")))

			return nil
		})

	w := service.NewWorker(workerConfig(model.DriverRabbitMQ), kafkaMocks.NewMockClient(ctrl), r, d)
	assert.NoError(t, w.Run(context.Background()))
}

func TestWorker_RunWithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := service.NewWorker(workerConfig(model.DriverSMTP), kafkaMocks.NewMockClient(ctrl), rabbitMocks.NewMockClient(ctrl), notifMocks.NewMockDispatcher(ctrl))
	assert.ErrorIs(t, w.Run(context.Background()), model.ErrNoQueue)
}
