package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hostel/infras/postgres"
	"hostel/internal/domains/booking/model"
	notifModel "hostel/internal/domains/notification/model"
	paymentModel "hostel/internal/domains/payment/model"
	roomModel "hostel/internal/domains/room/model"
	studentModel "hostel/internal/domains/student/model"
	gDto "hostel/shared/dto"
)

var errInjected = errors.New("injected failure")

// memStore is an in-memory stand-in for the four tables. WithTx holds the store mutex for
// the whole unit of work and restores a snapshot when it fails, which gives the workflow
// the same all-or-nothing outcome a database transaction does.
type memStore struct {
	mu       sync.Mutex
	rooms    map[string]roomModel.Room
	payments map[string]paymentModel.Payment
	students map[string]studentModel.Student
	bookings map[string]model.BookingRequest
	failAt   string
	now      time.Time
}

func newMemStore(now time.Time) *memStore {
	return &memStore{
		rooms:    map[string]roomModel.Room{},
		payments: map[string]paymentModel.Payment{},
		students: map[string]studentModel.Student{},
		bookings: map[string]model.BookingRequest{},
		now:      now,
	}
}

func (m *memStore) addRoom(id string, capacity, available int, price int64) {
	m.rooms[id] = roomModel.Room{
		ID:             id,
		Category:       "2 Sharing",
		Location:       "GH2",
		Menu:           roomModel.MenuVeg,
		RoomsCount:     capacity,
		PaxPerRoom:     1,
		Capacity:       capacity,
		AvailableSeats: available,
		Price:          decimal.NewFromInt(price),
		Active:         true,
	}
}

func (m *memStore) addStudent(id string) {
	m.students[id] = studentModel.Student{
		ID:            id,
		UserID:        "user-" + id,
		Email:         id + "@hostel.test",
		Name:          "Student " + id,
		PaymentStatus: studentModel.PaymentStatusNoRequest,
	}
}

func (m *memStore) fail(step string) error {
	if m.failAt == step {
		return errInjected
	}

	return nil
}

func (m *memStore) seats(roomID string) int {
	return m.rooms[roomID].AvailableSeats
}

func (m *memStore) WithTx(ctx context.Context, fn postgres.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms, payments, students, bookings := maps.Clone(m.rooms), maps.Clone(m.payments), maps.Clone(m.students), maps.Clone(m.bookings)

	if err := fn(ctx, nil); err != nil {
		m.rooms, m.payments, m.students, m.bookings = rooms, payments, students, bookings

		return err
	}

	return nil
}

func ptr(v string) *string { return &v }

// ledger

func (m *memStore) ReserveSeatTx(_ context.Context, _ *sqlx.Tx, roomID string) error {
	if err := m.fail("ReserveSeatTx"); err != nil {
		return err
	}

	room, ok := m.rooms[roomID]
	if !ok {
		return roomModel.ErrRoomNotFound
	}

	if room.AvailableSeats <= 0 {
		return roomModel.ErrOutOfStock
	}

	room.AvailableSeats--
	m.rooms[roomID] = room

	return nil
}

func (m *memStore) ReleaseSeatTx(_ context.Context, _ *sqlx.Tx, roomID string) error {
	if err := m.fail("ReleaseSeatTx"); err != nil {
		return err
	}

	room, ok := m.rooms[roomID]
	if !ok {
		return roomModel.ErrRoomNotFound
	}

	room.AvailableSeats = min(room.AvailableSeats+1, room.Capacity)
	m.rooms[roomID] = room

	return nil
}

func (m *memStore) GetRoomTx(_ context.Context, _ *sqlx.Tx, roomID string, _ bool) (roomModel.Room, error) {
	room, ok := m.rooms[roomID]
	if !ok {
		return room, roomModel.ErrRoomNotFound
	}

	return room, nil
}

// payments

func (m *memStore) CreatePendingTx(_ context.Context, _ *sqlx.Tx, studentID, roomID string, amount decimal.Decimal, txnRef string) (paymentModel.Payment, error) {
	if err := m.fail("CreatePendingTx"); err != nil {
		return paymentModel.Payment{}, err
	}

	payment := paymentModel.Payment{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		RoomID:        ptr(roomID),
		Amount:        amount,
		TransactionID: txnRef,
		Status:        paymentModel.StatusPending,
		PaymentDate:   m.now,
	}
	m.payments[payment.ID] = payment

	return payment, nil
}

func (m *memStore) settle(paymentID, status string) error {
	payment, ok := m.payments[paymentID]
	if !ok {
		return paymentModel.ErrPaymentNotFound
	}

	payment.Status = status
	payment.Verified = true
	m.payments[paymentID] = payment

	return nil
}

func (m *memStore) MarkConfirmedTx(_ context.Context, _ *sqlx.Tx, paymentID string) error {
	if err := m.fail("MarkConfirmedTx"); err != nil {
		return err
	}

	return m.settle(paymentID, paymentModel.StatusConfirmed)
}

func (m *memStore) MarkFailedTx(_ context.Context, _ *sqlx.Tx, paymentID string) error {
	if err := m.fail("MarkFailedTx"); err != nil {
		return err
	}

	return m.settle(paymentID, paymentModel.StatusFailed)
}

func (m *memStore) FindActivePendingTx(_ context.Context, _ *sqlx.Tx, studentID string) ([]paymentModel.Payment, error) {
	var out []paymentModel.Payment

	for _, p := range m.payments {
		if p.StudentID == studentID && p.Status == paymentModel.StatusPending {
			out = append(out, p)
		}
	}

	return out, nil
}

func (m *memStore) GetPaymentTx(_ context.Context, _ *sqlx.Tx, paymentID string, _ bool) (paymentModel.Payment, error) {
	payment, ok := m.payments[paymentID]
	if !ok {
		return payment, paymentModel.ErrPaymentNotFound
	}

	return payment, nil
}

// students

func (m *memStore) update(studentID string, fn func(*studentModel.Student)) error {
	student, ok := m.students[studentID]
	if !ok {
		return studentModel.ErrStudentNotFound
	}

	fn(&student)
	m.students[studentID] = student

	return nil
}

func (m *memStore) AssignRoomTx(_ context.Context, _ *sqlx.Tx, studentID, roomID string) error {
	if err := m.fail("AssignRoomTx"); err != nil {
		return err
	}

	return m.update(studentID, func(s *studentModel.Student) {
		s.RoomID = ptr(roomID)
		s.PaymentStatus = studentModel.PaymentStatusConfirmed
	})
}

func (m *memStore) ClearRoomTx(_ context.Context, _ *sqlx.Tx, studentID string) error {
	return m.update(studentID, func(s *studentModel.Student) { s.RoomID = nil })
}

func (m *memStore) SetPaymentStatusTx(_ context.Context, _ *sqlx.Tx, studentID, status string) error {
	return m.update(studentID, func(s *studentModel.Student) { s.PaymentStatus = status })
}

func (m *memStore) HoldRoomTx(_ context.Context, _ *sqlx.Tx, studentID, roomID string) error {
	if err := m.fail("HoldRoomTx"); err != nil {
		return err
	}

	return m.update(studentID, func(s *studentModel.Student) {
		s.RoomID = ptr(roomID)
		s.PaymentStatus = studentModel.PaymentStatusPending
	})
}

func (m *memStore) ResetToNoRequestTx(_ context.Context, _ *sqlx.Tx, studentID string) error {
	return m.update(studentID, func(s *studentModel.Student) { s.PaymentStatus = studentModel.PaymentStatusNoRequest })
}

func (m *memStore) GetStudentTx(_ context.Context, _ *sqlx.Tx, studentID string, _ bool) (studentModel.Student, error) {
	student, ok := m.students[studentID]
	if !ok {
		return student, studentModel.ErrStudentNotFound
	}

	return student, nil
}

// bookings

func (m *memStore) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.BookingRequest) error {
	m.bookings[booking.ID] = booking

	return nil
}

func (m *memStore) GetBookingTx(_ context.Context, _ *sqlx.Tx, bookingID string, _ bool) (model.BookingRequest, error) {
	booking, ok := m.bookings[bookingID]
	if !ok {
		return booking, model.ErrBookingNotFound
	}

	return booking, nil
}

func (m *memStore) FindPendingTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) ([]model.BookingRequest, error) {
	_, args := filter.GetWhereClause()

	var out []model.BookingRequest

	for _, b := range m.bookings {
		if b.Status != model.StatusPending {
			continue
		}

		if v, ok := args[model.FieldStudentID]; ok && v != b.StudentID {
			continue
		}

		if v, ok := args[model.FieldPaymentID]; ok && v != b.Payment() {
			continue
		}

		out = append(out, b)
	}

	return out, nil
}

func (m *memStore) TransitionTx(_ context.Context, _ *sqlx.Tx, bookingID, status, processedBy, notes string) error {
	booking, ok := m.bookings[bookingID]
	if !ok {
		return model.ErrBookingNotFound
	}

	if booking.Status != model.StatusPending {
		return model.ErrInvalidTransition
	}

	now := m.now
	booking.Status = status
	booking.AdminNotes = notes
	booking.ProcessedBy = ptr(processedBy)
	booking.ProcessedAt = &now
	m.bookings[bookingID] = booking

	return nil
}

func (m *memStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.BookingRequest, error) {
	_, args := filter.GetWhereClause()
	id, _ := args[model.FieldID].(string)

	return m.bookings[id], nil
}

func (m *memStore) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.BookingRequest, error) {
	return slices.Collect(maps.Values(m.bookings)), nil
}

func (m *memStore) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	return len(m.bookings), nil
}

func (m *memStore) bookingsOf(studentID string) []model.BookingRequest {
	var out []model.BookingRequest

	for _, b := range m.bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}

	return out
}

// nopCache satisfies cache.RedisCache for the invalidation goroutines.
type nopCache struct{}

func (nopCache) Save(context.Context, string, any, int) error          { return nil }
func (nopCache) Get(context.Context, string, any) error                { return errors.New("miss") }
func (nopCache) Delete(context.Context, string) error                  { return nil }
func (nopCache) Clear(context.Context, string) error                   { return nil }
func (nopCache) Increment(context.Context, string, int) (int64, error) { return 1, nil }

type sent struct {
	kind      notifModel.Kind
	recipient string
	fields    map[string]string
}

// recorder captures notifications sent from the post-commit goroutine.
type recorder struct {
	ch  chan sent
	err error
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan sent, 16)}
}

func (r *recorder) Send(_ context.Context, kind notifModel.Kind, recipient string, fields map[string]string) error {
	r.ch <- sent{kind: kind, recipient: recipient, fields: fields}

	return r.err
}

func (r *recorder) next(timeout time.Duration) (sent, bool) {
	select {
	case s := <-r.ch:
		return s, true
	case <-time.After(timeout):
		return sent{}, false
	}
}
