package dto

import (
	"github.com/shopspring/decimal"

	"hostel/internal/domains/payment/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/timezone"
)

type PaymentFilter struct {
	Status    string `json:"status"     validate:"omitempty,oneof=pending confirmed failed"`
	StudentID string `json:"student_id" validate:"omitempty,uuid"`
}

// ToFilterGroup builds the listing filter. An empty filter matches every payment.
func (f PaymentFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStatus, f.Status))
	}

	if f.StudentID != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldStudentID, f.StudentID))
	}

	return gDto.And(filters...)
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	StudentID        string          `json:"student_id"`
	RoomID           *string         `json:"room_id"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionID    string          `json:"transaction_id"`
	Status           string          `json:"status"`
	Verified         bool            `json:"verified"`
	VerificationDate *string         `json:"verification_date"`
	PaymentDate      string          `json:"payment_date"`
	Notes            string          `json:"notes"`
	gDto.Metadata
}

func (p *PaymentResponse) FromModel(m model.Payment) {
	p.ID = m.ID
	p.StudentID = m.StudentID
	p.RoomID = m.RoomID
	p.Amount = m.Amount
	p.TransactionID = m.TransactionID
	p.Status = m.Status
	p.Verified = m.Verified
	p.PaymentDate = timezone.Format(m.PaymentDate, constant.DateFormat)
	p.Notes = m.Notes

	if m.VerificationDate != nil {
		verified := timezone.Format(*m.VerificationDate, constant.DateFormat)
		p.VerificationDate = &verified
	}

	p.Metadata.FromModel(m.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
