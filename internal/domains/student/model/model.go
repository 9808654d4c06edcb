package model

import "hostel/shared/model"

const (
	TableName  = "students"
	EntityName = "student"

	FieldID                = "id"
	FieldUserID            = "user_id"
	FieldEmail             = "email"
	FieldFirstName         = "first_name"
	FieldLastName          = "last_name"
	FieldName              = "name"
	FieldGender            = "gender"
	FieldDepartment        = "department"
	FieldYear              = "year"
	FieldRollNumber        = "roll_number"
	FieldPhoneNumber       = "phone_number"
	FieldParentPhoneNumber = "parent_phone_number"
	FieldRoomID            = "room_id"
	FieldPaymentStatus     = "payment_status"
)

const (
	PaymentStatusNoRequest = "no_request"
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

// Student is the booking profile of a student user. A confirmed payment status always
// comes with a room.
type Student struct {
	ID                string  `db:"id"`
	UserID            string  `db:"user_id"`
	Email             string  `db:"email"`
	FirstName         string  `db:"first_name"`
	LastName          string  `db:"last_name"`
	Name              string  `db:"name"`
	Gender            string  `db:"gender"`
	Department        string  `db:"department"`
	Year              string  `db:"year"`
	RollNumber        string  `db:"roll_number"`
	PhoneNumber       string  `db:"phone_number"`
	ParentPhoneNumber string  `db:"parent_phone_number"`
	RoomID            *string `db:"room_id"`
	PaymentStatus     string  `db:"payment_status"`
	model.Metadata
}

// Room returns the assigned room id or "" when the student has none.
func (s Student) Room() string {
	if s.RoomID == nil {
		return ""
	}

	return *s.RoomID
}

// FullName joins first and last name the way profiles display them.
func FullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
