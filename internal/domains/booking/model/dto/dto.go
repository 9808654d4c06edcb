package dto

import (
	"github.com/shopspring/decimal"

	"hostel/internal/domains/booking/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/timezone"
)

type SubmitBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required,uuid"`
	TransactionID string `json:"transaction_id" validate:"required,max=100"`
}

type SubmitBookingResponse struct {
	BookingID string `json:"booking_id"`
	PaymentID string `json:"payment_id"`
}

type DecisionRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type BookingFilter struct {
	Status    string `json:"status"     validate:"omitempty,oneof=pending approved rejected cancelled"`
	StudentID string `json:"student_id" validate:"omitempty,uuid"`
	RoomID    string `json:"room_id"    validate:"omitempty,uuid"`
}

func (f BookingFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStatus, f.Status))
	}

	if f.StudentID != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStudentID, f.StudentID))
	}

	if f.RoomID != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldRoomID, f.RoomID))
	}

	return gDto.And(filters...)
}

type BookingResponse struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id"`
	RoomID        string          `json:"room_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	PaymentID     *string         `json:"payment_id"`
	AdminNotes    string          `json:"admin_notes"`
	ProcessedBy   *string         `json:"processed_by"`
	ProcessedAt   *string         `json:"processed_at"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(m model.BookingRequest) {
	b.ID = m.ID
	b.StudentID = m.StudentID
	b.RoomID = m.RoomID
	b.Amount = m.Amount
	b.TransactionID = m.TransactionID
	b.Status = m.Status
	b.PaymentID = m.PaymentID
	b.AdminNotes = m.AdminNotes
	b.ProcessedBy = m.ProcessedBy

	if m.ProcessedAt != nil {
		processed := timezone.Format(*m.ProcessedAt, constant.DateFormat)
		b.ProcessedAt = &processed
	}

	b.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StatsResponse holds the dashboard counters.
type StatsResponse struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}
