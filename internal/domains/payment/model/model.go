package model

import (
	"time"

	"github.com/shopspring/decimal"

	"hostel/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID               = "id"
	FieldStudentID        = "student_id"
	FieldRoomID           = "room_id"
	FieldAmount           = "amount"
	FieldTransactionID    = "transaction_id"
	FieldStatus           = "status"
	FieldVerified         = "verified"
	FieldVerificationDate = "verification_date"
	FieldPaymentDate      = "payment_date"
	FieldNotes            = "notes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Payment is a student's claim to have paid for a room. room_id is cleared when the
// room is deleted, so a payment may outlive the room it was made for.
type Payment struct {
	ID               string          `db:"id"`
	StudentID        string          `db:"student_id"`
	RoomID           *string         `db:"room_id"`
	Amount           decimal.Decimal `db:"amount"`
	TransactionID    string          `db:"transaction_id"`
	Status           string          `db:"status"`
	Verified         bool            `db:"verified"`
	VerificationDate *time.Time      `db:"verification_date"`
	PaymentDate      time.Time       `db:"payment_date"`
	Notes            string          `db:"notes"`
	model.Metadata
}

// Room returns the room id or "" when the payment has none.
func (p Payment) Room() string {
	if p.RoomID == nil {
		return ""
	}

	return *p.RoomID
}
