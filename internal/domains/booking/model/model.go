package model

import (
	"time"

	"github.com/shopspring/decimal"

	"hostel/shared/model"
)

const (
	TableName  = "booking_requests"
	EntityName = "booking_request"

	FieldID            = "id"
	FieldStudentID     = "student_id"
	FieldRoomID        = "room_id"
	FieldAmount        = "amount"
	FieldTransactionID = "transaction_id"
	FieldStatus        = "status"
	FieldPaymentID     = "payment_id"
	FieldAdminNotes    = "admin_notes"
	FieldProcessedBy   = "processed_by"
	FieldProcessedAt   = "processed_at"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

const (
	NoteSuperseded      = "superseded by new booking request"
	NotePaymentExpired  = "payment expired"
	NotePaymentRejected = "payment rejected"
)

// BookingRequest is the unit an admin approves or rejects. It leaves pending exactly
// once; processed_by and processed_at record that exit.
type BookingRequest struct {
	ID            string          `db:"id"`
	StudentID     string          `db:"student_id"`
	RoomID        string          `db:"room_id"`
	Amount        decimal.Decimal `db:"amount"`
	TransactionID string          `db:"transaction_id"`
	Status        string          `db:"status"`
	PaymentID     *string         `db:"payment_id"`
	AdminNotes    string          `db:"admin_notes"`
	ProcessedBy   *string         `db:"processed_by"`
	ProcessedAt   *time.Time      `db:"processed_at"`
	model.Metadata
}

// Payment returns the linked payment id or "".
func (b BookingRequest) Payment() string {
	if b.PaymentID == nil {
		return ""
	}

	return *b.PaymentID
}
