package router

import (
	"github.com/go-chi/chi/v5"

	"hostel/internal/handlers/auth"
	"hostel/internal/handlers/booking"
	"hostel/internal/handlers/otp"
	"hostel/internal/handlers/payment"
	"hostel/internal/handlers/room"
	"hostel/internal/handlers/student"
	"hostel/internal/handlers/user"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Student student.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	OTP     otp.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Student.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.OTP.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
