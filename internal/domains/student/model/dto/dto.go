package dto

import (
	"github.com/google/uuid"

	"hostel/internal/domains/student/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
)

type RegisterStudentRequest struct {
	Email             string `json:"email"               validate:"required,email,max=254"`
	Password          string `json:"password"            validate:"omitempty,min=8,max=72"`
	FirstName         string `json:"first_name"          validate:"required,max=100"`
	LastName          string `json:"last_name"           validate:"omitempty,max=100"`
	Name              string `json:"name"                validate:"omitempty,max=255"`
	Gender            string `json:"gender"              validate:"required,oneof=male female"`
	Department        string `json:"department"          validate:"omitempty,max=100"`
	Year              string `json:"year"                validate:"omitempty,oneof=1 2 3 4 PG1 PG2 MBA1 MBA2 PhD Other"`
	RollNumber        string `json:"roll_number"         validate:"omitempty,max=50"`
	PhoneNumber       string `json:"phone_number"        validate:"omitempty,phone"`
	ParentPhoneNumber string `json:"parent_phone_number" validate:"omitempty,phone"`
}

func (r *RegisterStudentRequest) ToModel(user, userID string) model.Student {
	name := r.Name
	if name == constant.Empty {
		name = model.FullName(r.FirstName, r.LastName)
	}

	year := r.Year
	if year == constant.Empty {
		year = "1"
	}

	return model.Student{
		ID:                uuid.NewString(),
		UserID:            userID,
		Email:             r.Email,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Name:              name,
		Gender:            r.Gender,
		Department:        r.Department,
		Year:              year,
		RollNumber:        r.RollNumber,
		PhoneNumber:       r.PhoneNumber,
		ParentPhoneNumber: r.ParentPhoneNumber,
		PaymentStatus:     model.PaymentStatusNoRequest,
		Metadata:          gModel.Stamp(user, timezone.Now()),
	}
}

type RegisterStudentResponse struct {
	StudentID string `json:"student_id"`
	UserID    string `json:"user_id"`
}

// UpdateProfileRequest carries the fields a student may change on their own profile.
type UpdateProfileRequest struct {
	FirstName         *string `db:"first_name"          json:"first_name"          validate:"omitempty,min=1,max=100"`
	LastName          *string `db:"last_name"           json:"last_name"           validate:"omitempty,min=1,max=100"`
	PhoneNumber       *string `db:"phone_number"        json:"phone_number"        validate:"omitempty,phone"`
	ParentPhoneNumber *string `db:"parent_phone_number" json:"parent_phone_number" validate:"omitempty,phone"`
}

// Name is the recomputed full name, set only when both names are given.
func (u *UpdateProfileRequest) Name() (string, bool) {
	if u.FirstName == nil || u.LastName == nil {
		return "", false
	}

	return model.FullName(*u.FirstName, *u.LastName), true
}

type StudentFilter struct {
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=no_request pending confirmed failed"`
	Gender        string `json:"gender"         validate:"omitempty,oneof=male female"`
	Search        string `json:"search"         validate:"omitempty,max=100"`
}

func (f StudentFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.PaymentStatus != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldPaymentStatus, f.PaymentStatus))
	}

	if f.Gender != constant.Empty {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldGender, f.Gender))
	}

	if f.Search != constant.Empty {
		filters = append(filters, gDto.Or(
			gDto.Filter{Table: model.TableName, Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: f.Search, ArgName: "search_name"},
			gDto.Filter{Table: model.TableName, Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: f.Search, ArgName: "search_email"},
			gDto.Filter{Table: model.TableName, Field: model.FieldRollNumber, Operator: gDto.FilterOperatorLike, Value: f.Search, ArgName: "search_roll"},
		))
	}

	return gDto.And(filters...)
}

type StudentResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Name              string  `json:"name"`
	Gender            string  `json:"gender"`
	Department        string  `json:"department"`
	Year              string  `json:"year"`
	RollNumber        string  `json:"roll_number"`
	PhoneNumber       string  `json:"phone_number"`
	ParentPhoneNumber string  `json:"parent_phone_number"`
	RoomID            *string `json:"room_id"`
	PaymentStatus     string  `json:"payment_status"`
	gDto.Metadata
}

func (s *StudentResponse) FromModel(m model.Student) {
	s.ID = m.ID
	s.UserID = m.UserID
	s.Email = m.Email
	s.FirstName = m.FirstName
	s.LastName = m.LastName
	s.Name = m.Name
	s.Gender = m.Gender
	s.Department = m.Department
	s.Year = m.Year
	s.RollNumber = m.RollNumber
	s.PhoneNumber = m.PhoneNumber
	s.ParentPhoneNumber = m.ParentPhoneNumber
	s.RoomID = m.RoomID
	s.PaymentStatus = m.PaymentStatus
	s.Metadata.FromModel(m.Metadata)
}

type GetStudentsResponse struct {
	Students  []StudentResponse `json:"students"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStudentsResponse) FromModels(models []model.Student, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Students = make([]StudentResponse, len(models))
	for i, mod := range models {
		r.Students[i].FromModel(mod)
	}
}
