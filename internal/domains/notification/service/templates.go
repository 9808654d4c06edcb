package service

import (
	"text/template"

	"hostel/internal/domains/notification/model"
)

type mailTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(kind model.Kind, subject, body string) mailTemplate {
	return mailTemplate{
		subject: template.Must(template.New(string(kind) + ".subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New(string(kind) + ".body").Option("missingkey=zero").Parse(body)),
	}
}

var templates = map[model.Kind]mailTemplate{
	model.KindBookingConfirmed: mustTemplate(model.KindBookingConfirmed,
		"Room Booking Confirmed",
		`Hello {{.name}},

Congratulations! Your room booking has been confirmed.

Room Details:
- Category: {{.category}}
- Location: {{.location}}
- Menu: {{.menu}}
{{if .notes}}
Notes: {{.notes}}
{{end}}
Please contact the hostel administration if you have any questions.

Regards,
Student Hostel Management Team
`),
	model.KindBookingRejected: mustTemplate(model.KindBookingRejected,
		"Room Booking Request Rejected",
		`Hello {{.name}},

We regret to inform you that your room booking request has been rejected.
{{if .notes}}
Reason: {{.notes}}
{{end}}
If you have any questions about this decision, please contact the hostel administration.

You can submit a new booking request for a different room if available.

Regards,
Student Hostel Management Team
`),
	model.KindOTP: mustTemplate(model.KindOTP,
		"Student Portal - Room Booking Verification",
		`Hello {{.name}},

Your OTP for room booking verification is: {{.code}}

This OTP is valid for {{.ttl_minutes}} minutes.

Regards,
Student Hostel Management Team
`),
}
