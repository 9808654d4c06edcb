//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hostel/config"
	"hostel/infras/jwt"
	"hostel/infras/kafka"
	"hostel/infras/mailer"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/rabbitmq"
	"hostel/infras/redis"
	"hostel/infras/s3"
	"hostel/internal/seed"
	"hostel/permissions"
	"hostel/shared/cache"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"

	authService "hostel/internal/domains/auth/service"
	bookingRepository "hostel/internal/domains/booking/repository"
	bookingService "hostel/internal/domains/booking/service"
	notificationService "hostel/internal/domains/notification/service"
	otpService "hostel/internal/domains/otp/service"
	paymentRepository "hostel/internal/domains/payment/repository"
	paymentService "hostel/internal/domains/payment/service"
	roomRepository "hostel/internal/domains/room/repository"
	roomService "hostel/internal/domains/room/service"
	studentRepository "hostel/internal/domains/student/repository"
	studentService "hostel/internal/domains/student/service"
	userRepository "hostel/internal/domains/user/repository"
	userService "hostel/internal/domains/user/service"

	authHandler "hostel/internal/handlers/auth"
	bookingHandler "hostel/internal/handlers/booking"
	otpHandler "hostel/internal/handlers/otp"
	paymentHandler "hostel/internal/handlers/payment"
	roomHandler "hostel/internal/handlers/room"
	studentHandler "hostel/internal/handlers/student"
	userHandler "hostel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	rabbitmq.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationService.NewDispatcher,
	notificationService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var studentDomain = wire.NewSet(
	studentRepository.New,
	studentService.New,
	provideTracker,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewPhoto,
	roomService.New,
	provideLedger,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
	provideStore,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	otpService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	userDomain,
	studentDomain,
	roomDomain,
	paymentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	studentHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	otpHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *notificationService.Worker {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		rabbitmq.New,
		mailer.New,
		notificationService.NewDispatcher,
		notificationService.NewWorker,
	)

	return &notificationService.Worker{}
}

func InitializeSeeder() *seed.Seeder {
	wire.Build(
		config.Get,
		otel.New,
		postgres.New,
		postgres.NewTransactor,
		roomRepository.New,
		userRepository.New,
		seed.New,
	)

	return &seed.Seeder{}
}
