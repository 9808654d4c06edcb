package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/shared/constant"
)

const (
	prefetchCount  = 50
	maxBackoff     = 30 * time.Second
	initialBackoff = time.Second
)

var errDeliveriesClosed = errors.New("deliveries channel closed")

// Handler processes one delivery body. Returning an error rejects the message without requeue.
type Handler func(ctx context.Context, body []byte) error

// Client publishes JSON messages to durable queues and consumes them with manual acks.
type Client interface {
	Publish(ctx context.Context, queue string, value any) error
	Consume(ctx context.Context, queue string, handler Handler) error
	Close() error
}

type clientImpl struct {
	url  string
	otel otel.Otel

	mu   sync.Mutex
	conn *amqp.Connection
}

func New(cfg *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		url:  cfg.RabbitMQ.URL,
		otel: otl,
	}
}

// connection returns the shared connection, redialing when the broker dropped it.
func (c *clientImpl) connection() (*amqp.Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn, nil
	}

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	c.conn = conn

	return conn, nil
}

func declare(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return nil
}

func (c *clientImpl) Publish(ctx context.Context, queue string, value any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelBrokerScopeName, constant.OtelBrokerScopeName+".rabbitmq.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("queue", queue)

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal rabbitmq message: %w", err)
	}

	conn, err := c.connection()
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: dial failed")

		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err = declare(ch, queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: publish failed")

		return fmt.Errorf("failed to publish rabbitmq message: %w", err)
	}

	return nil
}

// Consume blocks until ctx is cancelled, redialing with exponential backoff whenever the
// connection or channel drops.
func (c *clientImpl) Consume(ctx context.Context, queue string, handler Handler) error {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			return nil
		}

		conn, err := c.connection()
		if err != nil {
			log.Error().Err(err).Dur("retry_in", backoff).Msg("rabbitmq: failed to dial broker")

			if !sleep(ctx, backoff) {
				return nil
			}

			backoff = min(backoff*2, maxBackoff)

			continue
		}

		backoff = initialBackoff

		err = c.consumeLoop(ctx, conn, queue, handler)
		if ctx.Err() != nil {
			return nil
		}

		log.Warn().Err(err).Str("queue", queue).Msg("rabbitmq: consume loop ended, reconnecting")

		if !sleep(ctx, 2*initialBackoff) {
			return nil
		}
	}
}

func (c *clientImpl) consumeLoop(ctx context.Context, conn *amqp.Connection, queue string, handler Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err = ch.Qos(prefetchCount, 0, false); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: set QoS failed")
	}

	if err = declare(ch, queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}

	for d := range deliveries {
		if err := handler(ctx, d.Body); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: handle message failed")

			_ = d.Nack(false, false)

			continue
		}

		_ = d.Ack(false)
	}

	return errDeliveriesClosed
}

func (c *clientImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}

	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close rabbitmq connection: %w", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
