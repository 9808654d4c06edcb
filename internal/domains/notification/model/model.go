package model

import (
	"errors"
	"time"
)

type Kind string

const (
	KindBookingConfirmed Kind = "booking_confirmed"
	KindBookingRejected  Kind = "booking_rejected"
	KindOTP              Kind = "otp"
)

// Template fields.
const (
	FieldName      = "name"
	FieldCategory  = "category"
	FieldLocation  = "location"
	FieldMenu      = "menu"
	FieldNotes     = "notes"
	FieldCode      = "code"
	FieldTTL       = "ttl_minutes"
	FieldBookingID = "booking_id"
)

const (
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
	DriverSMTP     = "smtp"
	DriverLog      = "log"
)

var (
	ErrUnknownKind   = errors.New("unknown notification kind")
	ErrUnknownDriver = errors.New("unknown notification driver")
	ErrNoQueue       = errors.New("notification driver has no queue to consume")
)

// Message is the envelope published to the broker and consumed by the notifier.
type Message struct {
	ID        string            `json:"id"`
	Kind      Kind              `json:"kind"`
	Recipient string            `json:"recipient"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}
