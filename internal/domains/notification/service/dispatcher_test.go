package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/infras/mailer"
	mailerMocks "hostel/infras/mailer/mocks"
	otelMocks "hostel/infras/otel/mocks"
	"hostel/internal/domains/notification/model"
	"hostel/internal/domains/notification/service"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		msg         model.Message
		wantSubject string
		contains    []string
		notContains []string
		wantErr     error
	}{
		{
			name: "booking confirmed lists the room",
			msg: model.Message{
				Kind:      model.KindBookingConfirmed,
				Recipient: "asha@hostel.test",
				Fields: map[string]string{
					model.FieldName:     "Asha Rao",
					model.FieldCategory: "2 Sharing AC",
					model.FieldLocation: "GH2",
					model.FieldMenu:     "veg",
				},
			},
			wantSubject: "Room Booking Confirmed",
			contains:    []string{"Hello Asha Rao", "Category: 2 Sharing AC", "Location: GH2", "Menu: veg"},
			notContains: []string{"Notes:"},
		},
		{
			name: "rejection carries the reason",
			msg: model.Message{
				Kind:   model.KindBookingRejected,
				Fields: map[string]string{model.FieldName: "Asha Rao", model.FieldNotes: "payment expired"},
			},
			wantSubject: "Room Booking Request Rejected",
			contains:    []string{"Reason: payment expired"},
		},
		{
			name: "otp code and validity",
			msg: model.Message{
				Kind:   model.KindOTP,
				Fields: map[string]string{model.FieldName: "Asha Rao", model.FieldCode: "042917", model.FieldTTL: "10"},
			},
			wantSubject: "Student Portal - Room Booking Verification",
			contains:    []string{"verification is: 042917", "valid for 10 minutes"},
		},
		{
			name:        "missing fields render empty",
			msg:         model.Message{Kind: model.KindBookingRejected},
			wantSubject: "Room Booking Request Rejected",
			contains:    []string{"Hello ,"},
		},
		{
			name:    "unknown kind",
			msg:     model.Message{Kind: "welcome"},
			wantErr: model.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail, err := service.Render(tt.msg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, mail.Subject)
			assert.Equal(t, tt.msg.Recipient, mail.To)

			for _, s := range tt.contains {
				assert.Contains(t, mail.Text, s)
			}

			for _, s := range tt.notContains {
				assert.NotContains(t, mail.Text, s)
			}
		})
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	msg := model.Message{ID: "n-1", Kind: model.KindOTP, Recipient: "asha@hostel.test", Fields: map[string]string{model.FieldCode: "123456"}}

	t.Run("sends rendered mail", func(t *testing.T) {
		m := mailerMocks.NewMockMailer(gomock.NewController(t))
		m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
			assert.Equal(t, "asha@hostel.test", mail.To)
			assert.Contains(t, mail.Text, "123456")

			return nil
		})

		assert.NoError(t, service.NewDispatcher(m, otelMocks.NewOtel()).Dispatch(context.Background(), msg))
	})

	t.Run("smtp failure", func(t *testing.T) {
		m := mailerMocks.NewMockMailer(gomock.NewController(t))
		m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		assert.Error(t, service.NewDispatcher(m, otelMocks.NewOtel()).Dispatch(context.Background(), msg))
	})

	t.Run("unknown kind never reaches smtp", func(t *testing.T) {
		m := mailerMocks.NewMockMailer(gomock.NewController(t))

		err := service.NewDispatcher(m, otelMocks.NewOtel()).Dispatch(context.Background(), model.Message{Kind: "welcome"})
		assert.ErrorIs(t, err, model.ErrUnknownKind)
	})
}
