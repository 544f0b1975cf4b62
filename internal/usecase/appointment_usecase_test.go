package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"medicare-plus/config"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/service"
	"medicare-plus/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingConfig() config.BookingConfig {
	return config.BookingConfig{
		ConsultationFee: decimal.NewFromInt(500),
		Currency:        "INR",
	}
}

func ctxWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func slotKeyViolation() *pgconn.PgError {
	return &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_appointments_slot_key",
	}
}

func testDoctor(doctorID uuid.UUID) *entity.DoctorProfile {
	return &entity.DoctorProfile{
		UserID: doctorID,
		Gender: entity.GenderMale,
		User: entity.User{
			ID:       doctorID,
			FullName: "Dr. Asha Rao",
			Email:    "asha@clinic.example",
		},
	}
}

func TestAppointmentUsecase_BookAppointment(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	request := func(method string) *dto.BookAppointmentRequest {
		return &dto.BookAppointmentRequest{
			DoctorID:      doctorID,
			Date:          "2025-09-15",
			Time:          "10:00-10:30",
			Symptoms:      "persistent cough",
			PaymentMethod: method,
		}
	}

	t.Run("cash booking confirms with pending payment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		audit := new(MockAuditService)
		mail := new(MockMailService)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, audit, mail)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "10:00-10:30").Return(nil, nil)
		appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.Status == entity.AppointmentStatusConfirmed &&
				a.PaymentStatus == entity.PaymentStatusPending &&
				a.PaymentMethod == entity.PaymentMethodCash &&
				a.Amount.Equal(decimal.NewFromInt(500))
		})).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, &patientID, service.AuditActionBookAppointment, "appointment", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		resp, err := uc.BookAppointment(ctxWithUser(patientID), request("Cash"))

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "Pending", resp.PaymentStatus)
		assert.Equal(t, "Cash", resp.PaymentMethod)
		assert.Equal(t, "2025-09-15", resp.Date)
		assert.Equal(t, "10:00-10:30", resp.Time)
		assert.Equal(t, "Dr. Asha Rao", resp.DoctorName)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(500)))
		require.NoError(t, dbMock.ExpectationsWereMet())
		appointmentRepo.AssertExpectations(t)
		audit.AssertExpectations(t)
	})

	t.Run("online booking settles immediately", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		audit := new(MockAuditService)
		mail := new(MockMailService)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, audit, mail)

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "10:00-10:30").Return(nil, nil)
		appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.PaymentStatus == entity.PaymentStatusPaid &&
				a.PaymentMethod == entity.PaymentMethodRazorpay
		})).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, &patientID, service.AuditActionBookAppointment, "appointment", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		resp, err := uc.BookAppointment(ctxWithUser(patientID), request("Razorpay"))

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "Paid", resp.PaymentStatus)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rebooks a slot freed by cancellation", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		audit := new(MockAuditService)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, audit, new(MockMailService))

		// The cancelled holder is invisible to the active-slot lookup,
		// so the key is bookable again.
		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "10:00-10:30").Return(nil, nil)
		appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, &patientID, service.AuditActionBookAppointment, "appointment", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		resp, err := uc.BookAppointment(ctxWithUser(patientID), request("Cash"))

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown doctor", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, new(MockAuditService), new(MockMailService))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)
		dbMock.ExpectRollback()

		_, err := uc.BookAppointment(ctxWithUser(patientID), request("Cash"))

		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("slot already held by an active booking", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, new(MockAuditService), new(MockMailService))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "10:00-10:30").
			Return(&entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed}, nil)
		dbMock.ExpectRollback()

		_, err := uc.BookAppointment(ctxWithUser(patientID), request("Cash"))

		assert.ErrorIs(t, err, usecase.ErrSlotTaken)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique violation on insert maps to slot taken", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, new(MockAuditService), new(MockMailService))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "10:00-10:30").Return(nil, nil)
		appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(slotKeyViolation())
		dbMock.ExpectRollback()

		_, err := uc.BookAppointment(ctxWithUser(patientID), request("Cash"))

		assert.ErrorIs(t, err, usecase.ErrSlotTaken)
	})

	t.Run("malformed date", func(t *testing.T) {
		db, _ := newTestDB(t)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), new(MockAppointmentRepository), new(MockDoctorProfileRepository), new(MockAuditService), new(MockMailService))

		req := request("Cash")
		req.Date = "15-09-2025"
		_, err := uc.BookAppointment(ctxWithUser(patientID), req)

		assert.ErrorIs(t, err, usecase.ErrInvalidDate)
	})
}

// TestAppointmentUsecase_ConcurrentBooking drives N concurrent requests at
// one slot key. The advisory check sees a free slot for everyone, so the
// outcome rests entirely on the storage-level unique constraint: exactly one
// insert succeeds, every other caller gets ErrSlotTaken.
func TestAppointmentUsecase_ConcurrentBooking(t *testing.T) {
	const concurrency = 10

	doctorID := uuid.New()
	db, dbMock := newTestDB(t)
	dbMock.MatchExpectationsInOrder(false)

	appointmentRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorProfileRepository)
	audit := new(MockAuditService)
	uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, audit, new(MockMailService))

	for i := 0; i < concurrency; i++ {
		dbMock.ExpectBegin()
	}
	dbMock.ExpectCommit()
	for i := 0; i < concurrency-1; i++ {
		dbMock.ExpectRollback()
	}

	doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
	appointmentRepo.On("FindActiveBySlot", mock.Anything, doctorID, mock.Anything, "09:00-09:30").Return(nil, nil)
	// First insert wins the constraint, all others collide
	appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	appointmentRepo.On("Create", mock.Anything, mock.Anything).Return(slotKeyViolation())
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, service.AuditActionBookAppointment, "appointment", mock.Anything, mock.Anything).Return(nil)

	results := make(chan error, concurrency)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.BookAppointment(ctxWithUser(uuid.New()), &dto.BookAppointmentRequest{
				DoctorID:      doctorID,
				Date:          "2025-09-15",
				Time:          "09:00-09:30",
				Symptoms:      "checkup",
				PaymentMethod: "Cash",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var booked, rejected int
	for err := range results {
		switch {
		case err == nil:
			booked++
		case err == usecase.ErrSlotTaken:
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, concurrency-1, rejected)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	patientID := uuid.New()
	appointmentID := uuid.New()

	owned := func() *entity.Appointment {
		return &entity.Appointment{
			ID:        appointmentID,
			PatientID: patientID,
			Status:    entity.AppointmentStatusConfirmed,
		}
	}

	t.Run("owner cancels a confirmed appointment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		audit := new(MockAuditService)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, new(MockDoctorProfileRepository), audit, new(MockMailService))

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(owned(), nil)
		appointmentRepo.On("Cancel", mock.Anything, appointmentID).Return(int64(1), nil)
		audit.On("Record", mock.Anything, mock.Anything, &patientID, service.AuditActionCancelAppointment, "appointment", appointmentID.String(), mock.Anything).Return(nil)
		dbMock.ExpectCommit()

		err := uc.CancelAppointment(ctxWithUser(patientID), appointmentID)

		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		audit.AssertExpectations(t)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, new(MockDoctorProfileRepository), new(MockAuditService), new(MockMailService))

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(nil, nil)
		dbMock.ExpectRollback()

		err := uc.CancelAppointment(ctxWithUser(patientID), appointmentID)

		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})

	t.Run("someone else's appointment", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, new(MockDoctorProfileRepository), new(MockAuditService), new(MockMailService))

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(owned(), nil)
		dbMock.ExpectRollback()

		err := uc.CancelAppointment(ctxWithUser(uuid.New()), appointmentID)

		assert.ErrorIs(t, err, usecase.ErrAppointmentNotOwned)
		appointmentRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})

	t.Run("already cancelled", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, new(MockDoctorProfileRepository), new(MockAuditService), new(MockMailService))

		cancelled := owned()
		cancelled.Status = entity.AppointmentStatusCancelled

		dbMock.ExpectBegin()
		appointmentRepo.On("FindByID", mock.Anything, appointmentID).Return(cancelled, nil)
		appointmentRepo.On("Cancel", mock.Anything, appointmentID).Return(int64(0), nil)
		dbMock.ExpectRollback()

		err := uc.CancelAppointment(ctxWithUser(patientID), appointmentID)

		assert.ErrorIs(t, err, usecase.ErrAlreadyCancelled)
	})
}

func TestAppointmentUsecase_GetSlotOccupancy(t *testing.T) {
	doctorID := uuid.New()

	t.Run("declared ranges are zero filled", func(t *testing.T) {
		db, _ := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, new(MockAuditService), new(MockMailService))

		// 2025-09-15 is a Monday
		doctor := testDoctor(doctorID)
		doctor.Availability = []entity.DoctorAvailability{
			{DoctorID: doctorID, Weekday: "Monday", TimeRanges: entity.StringList{"09:00-09:30", "10:00-10:30", "11:00-11:30"}},
			{DoctorID: doctorID, Weekday: "Friday", TimeRanges: entity.StringList{"14:00-14:30"}},
		}

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(doctor, nil)
		appointmentRepo.On("CountByDoctorAndDate", mock.Anything, doctorID, mock.Anything).
			Return([]entity.SlotOccupancy{{Time: "10:00-10:30", Count: 1}}, nil)

		resp, err := uc.GetSlotOccupancy(ctxWithUser(uuid.New()), doctorID, "2025-09-15")

		require.NoError(t, err)
		assert.Equal(t, "2025-09-15", resp.Date)
		require.Len(t, resp.Slots, 3)
		assert.Equal(t, dto.SlotOccupancyEntry{Time: "09:00-09:30", Count: 0, Booked: false}, resp.Slots[0])
		assert.Equal(t, dto.SlotOccupancyEntry{Time: "10:00-10:30", Count: 1, Booked: true}, resp.Slots[1])
		assert.Equal(t, dto.SlotOccupancyEntry{Time: "11:00-11:30", Count: 0, Booked: false}, resp.Slots[2])
	})

	t.Run("bookings on withdrawn ranges still show", func(t *testing.T) {
		db, _ := newTestDB(t)
		appointmentRepo := new(MockAppointmentRepository)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, doctorRepo, new(MockAuditService), new(MockMailService))

		doctor := testDoctor(doctorID)
		doctor.Availability = []entity.DoctorAvailability{
			{DoctorID: doctorID, Weekday: "Monday", TimeRanges: entity.StringList{"09:00-09:30"}},
		}

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(doctor, nil)
		appointmentRepo.On("CountByDoctorAndDate", mock.Anything, doctorID, mock.Anything).
			Return([]entity.SlotOccupancy{{Time: "16:00-16:30", Count: 1}}, nil)

		resp, err := uc.GetSlotOccupancy(ctxWithUser(uuid.New()), doctorID, "2025-09-15")

		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "09:00-09:30", resp.Slots[0].Time)
		assert.Equal(t, dto.SlotOccupancyEntry{Time: "16:00-16:30", Count: 1, Booked: true}, resp.Slots[1])
	})

	t.Run("unknown doctor", func(t *testing.T) {
		db, _ := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), new(MockAppointmentRepository), doctorRepo, new(MockAuditService), new(MockMailService))

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)

		_, err := uc.GetSlotOccupancy(ctxWithUser(uuid.New()), doctorID, "2025-09-15")

		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	})
}

func TestAppointmentUsecase_GetMyAppointments(t *testing.T) {
	patientID := uuid.New()
	db, _ := newTestDB(t)
	appointmentRepo := new(MockAppointmentRepository)
	uc := usecase.NewAppointmentUsecase(db, testLogger(), bookingConfig(), appointmentRepo, new(MockDoctorProfileRepository), new(MockAuditService), new(MockMailService))

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	appointmentRepo.On("FindByPatientID", mock.Anything, patientID).Return([]entity.Appointment{
		{ID: uuid.New(), PatientID: patientID, Date: today, Time: "09:00-09:30", Status: entity.AppointmentStatusConfirmed},
		{ID: uuid.New(), PatientID: patientID, Date: today.AddDate(0, 0, 3), Time: "09:00-09:30", Status: entity.AppointmentStatusConfirmed},
		{ID: uuid.New(), PatientID: patientID, Date: today.AddDate(0, 0, -3), Time: "09:00-09:30", Status: entity.AppointmentStatusCompleted},
	}, nil)

	resp, err := uc.GetMyAppointments(ctxWithUser(patientID))

	require.NoError(t, err)
	assert.Len(t, resp.Today, 1)
	assert.Len(t, resp.Upcoming, 1)
	assert.Len(t, resp.History, 1)
}
