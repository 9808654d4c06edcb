package validator_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/shared/validator"
)

type registerStudentTest struct {
	FirstName   string          `json:"first_name"   validate:"required,max=50"`
	Email       string          `json:"email"        validate:"required,email"`
	Phone       string          `json:"phone"        validate:"required,phone"`
	Year        int             `json:"year"         validate:"gte=1,lte=5"`
	Preference  string          `json:"preference"   validate:"omitempty,oneof=Veg NonVeg"`
	Deposit     decimal.Decimal `json:"deposit"      validate:"positive"`
	Unsupported string          `json:"-"            validate:"empty"`
}

func validStudent() registerStudentTest {
	return registerStudentTest{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Phone:     "+919876543210",
		Year:      2,
		Deposit:   decimal.NewFromInt(18000),
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*registerStudentTest)
		wantErr string
	}{
		{name: "valid", mutate: func(*registerStudentTest) {}},
		{
			name:    "missing first name uses json name",
			mutate:  func(s *registerStudentTest) { s.FirstName = "" },
			wantErr: "first_name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(s *registerStudentTest) { s.Email = "not-an-email" },
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short phone",
			mutate:  func(s *registerStudentTest) { s.Phone = "12345" },
			wantErr: "phone must be a valid phone number",
		},
		{
			name:    "phone with letters",
			mutate:  func(s *registerStudentTest) { s.Phone = "98765abc10" },
			wantErr: "phone must be a valid phone number",
		},
		{
			name:    "year out of range",
			mutate:  func(s *registerStudentTest) { s.Year = 6 },
			wantErr: "year must be less than or equal to 5",
		},
		{
			name:    "unknown preference",
			mutate:  func(s *registerStudentTest) { s.Preference = "Vegan" },
			wantErr: "preference must be one of Veg NonVeg",
		},
		{
			name:    "zero deposit",
			mutate:  func(s *registerStudentTest) { s.Deposit = decimal.Zero },
			wantErr: "deposit must be greater than zero",
		},
		{
			name:    "negative deposit",
			mutate:  func(s *registerStudentTest) { s.Deposit = decimal.NewFromInt(-1) },
			wantErr: "deposit must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStudent()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates body", func(t *testing.T) {
		body := `{"first_name":"Asha","email":"asha@example.com","phone":"9876543210","year":1,"deposit":"500"}`

		var data registerStudentTest
		err := validator.Validate(strings.NewReader(body), &data)

		require.NoError(t, err)
		assert.Equal(t, "Asha", data.FirstName)
		assert.True(t, data.Deposit.Equal(decimal.NewFromInt(500)))
	})

	t.Run("malformed json", func(t *testing.T) {
		var data registerStudentTest
		err := validator.Validate(strings.NewReader(`{"first_name":`), &data)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode request body")
	})

	t.Run("valid json failing rules", func(t *testing.T) {
		var data registerStudentTest
		err := validator.Validate(strings.NewReader(`{"email":"x@y.z"}`), &data)

		require.Error(t, err)
		assert.Equal(t, "first_name is required", err.Error())
	})
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid uuid", field: "3f1c8a6e-53f2-4bb3-9f7d-8f0f6a2f1c10", tag: "uuid", wantErr: false},
		{name: "invalid uuid", field: "room-1", tag: "uuid", wantErr: true},
		{name: "six digit otp", field: "123456", tag: "len=6,numeric", wantErr: false},
		{name: "otp with letters", field: "12a456", tag: "len=6,numeric", wantErr: true},
		{name: "otp too short", field: "1234", tag: "len=6,numeric", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
