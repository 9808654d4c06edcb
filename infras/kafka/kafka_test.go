package kafka_test

import (
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/infras/kafka"
)

type bookingEvent struct {
	Kind      string `json:"kind"`
	BookingID string `json:"booking_id"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: bookingEvent{Kind: "booking_confirmed", BookingID: "booking-1"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), raw.Key)
	assert.JSONEq(t, `{"kind":"booking_confirmed","booking_id":"booking-1"}`, string(raw.Value))

	decoded, err := kafka.Decode[bookingEvent](raw)
	require.NoError(t, err)
	assert.Equal(t, "booking_confirmed", decoded.Kind)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := kafka.Decode[bookingEvent](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}
