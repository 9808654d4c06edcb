package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/booking/model"
	"hostel/internal/domains/booking/model/dto"
	"hostel/internal/domains/booking/repository"
	notifModel "hostel/internal/domains/notification/model"
	notifService "hostel/internal/domains/notification/service"
	otpService "hostel/internal/domains/otp/service"
	paymentModel "hostel/internal/domains/payment/model"
	paymentRepo "hostel/internal/domains/payment/repository"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	studentModel "hostel/internal/domains/student/model"
	studentRepo "hostel/internal/domains/student/repository"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
)

const defaultExpiryHours = 24

// Booking drives a student's request for a room through pending to a final state. Every
// mutation keeps the room ledger, the payment, the booking and the student consistent in
// one transaction; rows are locked in the order booking, student, payment, room.
type Booking interface {
	SubmitBooking(ctx context.Context, studentID string, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	Approve(ctx context.Context, bookingID, adminID, notes string) error
	Reject(ctx context.Context, bookingID, adminID, notes string) error
	// VerifyPayment confirms a payment, approving its pending booking when one exists. A
	// pending payment older than the expiry window is failed instead and ErrPaymentExpired
	// is returned once that is committed.
	VerifyPayment(ctx context.Context, paymentID, adminID string) error
	RejectPayment(ctx context.Context, paymentID, adminID string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListPending(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	ListByStudent(ctx context.Context, studentID string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	rooms      roomRepo.Ledger
	payments   paymentRepo.Store
	students   studentRepo.Tracker
	transactor postgres.Transactor
	sender     notifService.Sender
	otp        otpService.OTP
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
	now        func() time.Time
}

// notice is a notification prepared inside a transaction and sent after it commits.
type notice struct {
	kind      notifModel.Kind
	recipient string
	fields    map[string]string
}

func New(
	repo repository.Booking,
	rooms roomRepo.Ledger,
	payments paymentRepo.Store,
	students studentRepo.Tracker,
	transactor postgres.Transactor,
	sender notifService.Sender,
	otp otpService.OTP,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return NewWithClock(repo, rooms, payments, students, transactor, sender, otp, cache, cfg, otel, timezone.Now)
}

// NewWithClock is New with the clock used for payment expiry.
func NewWithClock(
	repo repository.Booking,
	rooms roomRepo.Ledger,
	payments paymentRepo.Store,
	students studentRepo.Tracker,
	transactor postgres.Transactor,
	sender notifService.Sender,
	otp otpService.OTP,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
	now func() time.Time,
) Booking {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		payments:   payments,
		students:   students,
		transactor: transactor,
		sender:     sender,
		otp:        otp,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
		now:        now,
	}
}

func (s *serviceImpl) SubmitBooking(ctx context.Context, studentID string, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var userID string

	actor := shared.Actor(ctx)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		pending, err := s.repo.FindPendingTx(ctx, tx, gDto.And(gDto.Eq(model.TableName, model.FieldStudentID, studentID)))
		if err != nil {
			return err
		}

		student, err := s.students.GetStudentTx(ctx, tx, studentID, true)
		if err != nil {
			return err
		}

		userID = student.UserID

		if err = s.checkOTP(ctx, student.UserID); err != nil {
			return err
		}

		room, err := s.rooms.GetRoomTx(ctx, tx, req.RoomID, false)
		if err != nil {
			return err
		}

		if room.AvailableSeats <= 0 || !room.Active {
			return model.ErrRoomUnavailable
		}

		if student.Room() != constant.Empty && student.PaymentStatus == studentModel.PaymentStatusConfirmed {
			return model.ErrAlreadyConfirmed
		}

		if student.PaymentStatus == studentModel.PaymentStatusPending {
			if err = s.supersedeTx(ctx, tx, student.ID, pending, actor); err != nil {
				return err
			}
		}

		if err = s.rooms.ReserveSeatTx(ctx, tx, room.ID); err != nil {
			if errors.Is(err, roomModel.ErrOutOfStock) {
				return model.ErrRoomUnavailable
			}

			return err
		}

		payment, err := s.payments.CreatePendingTx(ctx, tx, student.ID, room.ID, room.Price, req.TransactionID)
		if err != nil {
			return err
		}

		booking := model.BookingRequest{
			ID:            uuid.NewString(),
			StudentID:     student.ID,
			RoomID:        room.ID,
			Amount:        room.Price,
			TransactionID: req.TransactionID,
			Status:        model.StatusPending,
			PaymentID:     &payment.ID,
			Metadata:      gModel.Stamp(actor, timezone.Now()),
		}

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if err = s.students.HoldRoomTx(ctx, tx, student.ID, room.ID); err != nil {
			return err
		}

		res = dto.SubmitBookingResponse{BookingID: booking.ID, PaymentID: payment.ID}

		return nil
	})
	if err != nil {
		return res, s.txError(err, "failed to submit booking", studentID)
	}

	s.invalidateRooms(ctx)

	if s.cfg.Booking.RequireOTP {
		if err := s.otp.ClearVerified(ctx, userID); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("failed to clear otp marker")
		}
	}

	log.Info().Str("booking_id", res.BookingID).Str("student_id", studentID).Str("room_id", req.RoomID).Msg("booking submitted")

	return res, nil
}

func (s *serviceImpl) checkOTP(ctx context.Context, userID string) error {
	if !s.cfg.Booking.RequireOTP {
		return nil
	}

	verified, err := s.otp.IsVerified(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check otp marker: %w", err)
	}

	if !verified {
		return model.ErrOTPRequired
	}

	return nil
}

// supersedeTx fails every pending payment of the student, gives their seats back and
// cancels the bookings that were waiting on them. pending must already be locked.
func (s *serviceImpl) supersedeTx(ctx context.Context, tx *sqlx.Tx, studentID string, pending []model.BookingRequest, actor string) error {
	payments, err := s.payments.FindActivePendingTx(ctx, tx, studentID)
	if err != nil {
		return err
	}

	for _, payment := range payments {
		if err = s.payments.MarkFailedTx(ctx, tx, payment.ID); err != nil {
			return err
		}

		if payment.Room() != constant.Empty {
			if err = s.rooms.ReleaseSeatTx(ctx, tx, payment.Room()); err != nil {
				return err
			}
		}

		for _, booking := range pending {
			if booking.Payment() != payment.ID {
				continue
			}

			if err = s.repo.TransitionTx(ctx, tx, booking.ID, model.StatusCancelled, actor, model.NoteSuperseded); err != nil {
				return err
			}
		}

		log.Info().Str("payment_id", payment.ID).Str("student_id", studentID).Msg("pending payment superseded")
	}

	return s.students.ResetToNoRequestTx(ctx, tx, studentID)
}

func (s *serviceImpl) Approve(ctx context.Context, bookingID, adminID, notes string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var n notice

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, student, err := s.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		n, err = s.approveTx(ctx, tx, booking, student, adminID, notes)

		return err
	})
	if err != nil {
		return s.txError(err, "failed to approve booking", bookingID)
	}

	log.Info().Str("booking_id", bookingID).Str("admin_id", adminID).Msg("booking approved")

	s.notify(ctx, n)

	return nil
}

func (s *serviceImpl) Reject(ctx context.Context, bookingID, adminID, notes string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var n notice

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, student, err := s.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		n, err = s.rejectTx(ctx, tx, booking, student, adminID, notes)

		return err
	})
	if err != nil {
		return s.txError(err, "failed to reject booking", bookingID)
	}

	log.Info().Str("booking_id", bookingID).Str("admin_id", adminID).Msg("booking rejected")

	s.invalidateRooms(ctx)
	s.notify(ctx, n)

	return nil
}

func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, bookingID string) (model.BookingRequest, studentModel.Student, error) {
	booking, err := s.repo.GetBookingTx(ctx, tx, bookingID, true)
	if err != nil {
		return booking, studentModel.Student{}, err
	}

	if booking.Status != model.StatusPending {
		return booking, studentModel.Student{}, model.ErrInvalidTransition
	}

	student, err := s.students.GetStudentTx(ctx, tx, booking.StudentID, true)

	return booking, student, err
}

// approveTx confirms a locked pending booking. The seat was taken at submission, so the
// ledger is not touched.
func (s *serviceImpl) approveTx(
	ctx context.Context,
	tx *sqlx.Tx,
	booking model.BookingRequest,
	student studentModel.Student,
	adminID, notes string,
) (notice, error) {
	if err := s.repo.TransitionTx(ctx, tx, booking.ID, model.StatusApproved, adminID, notes); err != nil {
		return notice{}, err
	}

	if booking.Payment() != constant.Empty {
		if err := s.payments.MarkConfirmedTx(ctx, tx, booking.Payment()); err != nil {
			return notice{}, err
		}
	}

	if err := s.students.AssignRoomTx(ctx, tx, student.ID, booking.RoomID); err != nil {
		return notice{}, err
	}

	room, err := s.rooms.GetRoomTx(ctx, tx, booking.RoomID, false)
	if err != nil {
		return notice{}, err
	}

	return notice{
		kind:      notifModel.KindBookingConfirmed,
		recipient: student.Email,
		fields: map[string]string{
			notifModel.FieldName:      student.Name,
			notifModel.FieldBookingID: booking.ID,
			notifModel.FieldCategory:  room.Category,
			notifModel.FieldLocation:  room.Location,
			notifModel.FieldMenu:      room.Menu,
			notifModel.FieldNotes:     notes,
		},
	}, nil
}

// rejectTx releases the seat held by a locked pending booking. The student's room is
// cleared only while it still points at the booked room.
func (s *serviceImpl) rejectTx(
	ctx context.Context,
	tx *sqlx.Tx,
	booking model.BookingRequest,
	student studentModel.Student,
	adminID, notes string,
) (notice, error) {
	if err := s.repo.TransitionTx(ctx, tx, booking.ID, model.StatusRejected, adminID, notes); err != nil {
		return notice{}, err
	}

	if booking.Payment() != constant.Empty {
		if err := s.payments.MarkFailedTx(ctx, tx, booking.Payment()); err != nil {
			return notice{}, err
		}
	}

	if err := s.rooms.ReleaseSeatTx(ctx, tx, booking.RoomID); err != nil {
		return notice{}, err
	}

	if err := s.students.SetPaymentStatusTx(ctx, tx, student.ID, studentModel.PaymentStatusFailed); err != nil {
		return notice{}, err
	}

	if student.Room() == booking.RoomID {
		if err := s.students.ClearRoomTx(ctx, tx, student.ID); err != nil {
			return notice{}, err
		}
	}

	return notice{
		kind:      notifModel.KindBookingRejected,
		recipient: student.Email,
		fields: map[string]string{
			notifModel.FieldName:      student.Name,
			notifModel.FieldBookingID: booking.ID,
			notifModel.FieldNotes:     notes,
		},
	}, nil
}

// failPaymentTx settles a pending payment that has no pending booking.
func (s *serviceImpl) failPaymentTx(ctx context.Context, tx *sqlx.Tx, payment paymentModel.Payment, student studentModel.Student) error {
	if err := s.payments.MarkFailedTx(ctx, tx, payment.ID); err != nil {
		return err
	}

	if payment.Room() != constant.Empty {
		if err := s.rooms.ReleaseSeatTx(ctx, tx, payment.Room()); err != nil {
			return err
		}
	}

	if err := s.students.SetPaymentStatusTx(ctx, tx, student.ID, studentModel.PaymentStatusFailed); err != nil {
		return err
	}

	if payment.Room() != constant.Empty && student.Room() == payment.Room() {
		return s.students.ClearRoomTx(ctx, tx, student.ID)
	}

	return nil
}

// lockPayment takes the linked pending bookings, the student and the payment in lock order.
func (s *serviceImpl) lockPayment(
	ctx context.Context,
	tx *sqlx.Tx,
	paymentID string,
) ([]model.BookingRequest, paymentModel.Payment, studentModel.Student, error) {
	bookings, err := s.repo.FindPendingTx(ctx, tx, gDto.And(gDto.Eq(model.TableName, model.FieldPaymentID, paymentID)))
	if err != nil {
		return nil, paymentModel.Payment{}, studentModel.Student{}, err
	}

	payment, err := s.payments.GetPaymentTx(ctx, tx, paymentID, false)
	if err != nil {
		return nil, payment, studentModel.Student{}, err
	}

	student, err := s.students.GetStudentTx(ctx, tx, payment.StudentID, true)
	if err != nil {
		return nil, payment, student, err
	}

	payment, err = s.payments.GetPaymentTx(ctx, tx, paymentID, true)

	return bookings, payment, student, err
}

func (s *serviceImpl) expired(payment paymentModel.Payment) bool {
	hours := s.cfg.Booking.PaymentExpiryHours
	if hours <= 0 {
		hours = defaultExpiryHours
	}

	return s.now().Sub(payment.PaymentDate) > time.Duration(hours)*time.Hour
}

func (s *serviceImpl) VerifyPayment(ctx context.Context, paymentID, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		n       notice
		expired bool
	)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bookings, payment, student, err := s.lockPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if payment.Status == paymentModel.StatusPending && s.expired(payment) {
			expired = true

			if len(bookings) > 0 {
				n, err = s.rejectTx(ctx, tx, bookings[0], student, adminID, model.NotePaymentExpired)

				return err
			}

			return s.failPaymentTx(ctx, tx, payment, student)
		}

		if len(bookings) > 0 {
			n, err = s.approveTx(ctx, tx, bookings[0], student, adminID, constant.Empty)

			return err
		}

		switch payment.Status {
		case paymentModel.StatusConfirmed:
			return nil
		case paymentModel.StatusFailed:
			return paymentModel.ErrPaymentSettled
		}

		if payment.Room() == constant.Empty {
			return paymentModel.ErrPaymentNoRoom
		}

		if student.PaymentStatus == studentModel.PaymentStatusConfirmed && student.Room() != payment.Room() {
			return model.ErrAlreadyConfirmed
		}

		if err = s.payments.MarkConfirmedTx(ctx, tx, payment.ID); err != nil {
			return err
		}

		return s.students.AssignRoomTx(ctx, tx, student.ID, payment.Room())
	})
	if err != nil {
		return s.txError(err, "failed to verify payment", paymentID)
	}

	if expired {
		log.Info().Str("payment_id", paymentID).Msg("pending payment expired")

		s.invalidateRooms(ctx)
		s.notify(ctx, n)

		return paymentModel.ErrPaymentExpired // nolint:wrapcheck
	}

	log.Info().Str("payment_id", paymentID).Str("admin_id", adminID).Msg("payment verified")

	s.notify(ctx, n)

	return nil
}

func (s *serviceImpl) RejectPayment(ctx context.Context, paymentID, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var n notice

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bookings, payment, student, err := s.lockPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		if len(bookings) > 0 {
			n, err = s.rejectTx(ctx, tx, bookings[0], student, adminID, model.NotePaymentRejected)

			return err
		}

		switch payment.Status {
		case paymentModel.StatusFailed:
			return nil
		case paymentModel.StatusConfirmed:
			return paymentModel.ErrPaymentSettled
		}

		return s.failPaymentTx(ctx, tx, payment, student)
	})
	if err != nil {
		return s.txError(err, "failed to reject payment", paymentID)
	}

	log.Info().Str("payment_id", paymentID).Str("admin_id", adminID).Msg("payment rejected")

	s.invalidateRooms(ctx)
	s.notify(ctx, n)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking request")

		return res, fmt.Errorf("failed to get booking request: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, model.ErrBookingNotFound // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListPending(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error) {
	// oldest first so admins work the queue in arrival order
	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirAsc
	}

	return s.GetAll(ctx, req, dto.BookingFilter{Status: model.StatusPending})
}

func (s *serviceImpl) ListByStudent(ctx context.Context, studentID string, req gDto.QueryParams) (dto.GetBookingsResponse, error) {
	return s.GetAll(ctx, req, dto.BookingFilter{StudentID: studentID})
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group := filter.ToFilterGroup()

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking requests")

		return res, fmt.Errorf("failed to count booking requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking requests")

		return res, fmt.Errorf("failed to get booking requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counters := map[string]*int{
		model.StatusPending:   &res.Pending,
		model.StatusApproved:  &res.Approved,
		model.StatusRejected:  &res.Rejected,
		model.StatusCancelled: &res.Cancelled,
	}

	for status, counter := range counters {
		count, err := s.repo.Count(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldStatus, status)))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count booking requests")

			return dto.StatsResponse{}, fmt.Errorf("failed to count %s booking requests: %w", status, err)
		}

		*counter = count
	}

	return res, nil
}

// txError hands domain failures back untouched and wraps everything else.
func (s *serviceImpl) txError(err error, msg, id string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	log.Error().Err(err).Str("id", id).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

func (s *serviceImpl) invalidateRooms(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheGetRoom, constant.CacheGetAllRoom, constant.CacheCountRoom)
	}()
}

// notify sends n after commit. Delivery errors never reach the caller.
func (s *serviceImpl) notify(ctx context.Context, n notice) {
	if n.kind == constant.Empty || n.recipient == constant.Empty {
		return
	}

	go func(ctx context.Context) {
		if err := s.sender.Send(ctx, n.kind, n.recipient, n.fields); err != nil {
			log.Warn().Err(err).Str("kind", string(n.kind)).Str("recipient", n.recipient).Msg("notification dropped")
		}
	}(context.WithoutCancel(ctx))
}
