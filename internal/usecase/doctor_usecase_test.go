package usecase_test

import (
	"testing"
	"time"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_GetDoctorSlots(t *testing.T) {
	doctorID := uuid.New()

	t.Run("weekdays project onto strictly future dates", func(t *testing.T) {
		db, _ := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), appointmentRepo)

		doctor := testDoctor(doctorID)
		doctor.Availability = []entity.DoctorAvailability{
			{DoctorID: doctorID, Weekday: "Monday", TimeRanges: entity.StringList{"09:00-09:30", "10:00-10:30"}},
			{DoctorID: doctorID, Weekday: "Thursday", TimeRanges: entity.StringList{"14:00-14:30"}},
		}

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(doctor, nil)
		appointmentRepo.On("CountByDoctorAndDate", mock.Anything, doctorID, mock.Anything).Return([]entity.SlotOccupancy{}, nil)

		resp, err := uc.GetDoctorSlots(t.Context(), doctorID)

		require.NoError(t, err)
		require.Len(t, resp.Slots, 3)

		today := time.Now().UTC().Truncate(24 * time.Hour)
		for _, s := range resp.Slots {
			date, err := slot.ParseDate(s.Date)
			require.NoError(t, err)
			assert.True(t, date.After(today), "projected date %s must be strictly after today", s.Date)
			assert.LessOrEqual(t, date.Sub(today), 7*24*time.Hour)
			assert.Equal(t, s.Weekday, date.Weekday().String())
			assert.False(t, s.Booked)
		}
	})

	t.Run("occupied ranges are flagged", func(t *testing.T) {
		db, _ := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		appointmentRepo := new(MockAppointmentRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), appointmentRepo)

		doctor := testDoctor(doctorID)
		doctor.Availability = []entity.DoctorAvailability{
			{DoctorID: doctorID, Weekday: "Monday", TimeRanges: entity.StringList{"09:00-09:30", "10:00-10:30"}},
		}

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(doctor, nil)
		appointmentRepo.On("CountByDoctorAndDate", mock.Anything, doctorID, mock.Anything).
			Return([]entity.SlotOccupancy{{Time: "09:00-09:30", Count: 1}}, nil)

		resp, err := uc.GetDoctorSlots(t.Context(), doctorID)

		require.NoError(t, err)
		require.Len(t, resp.Slots, 2)
		assert.True(t, resp.Slots[0].Booked)
		assert.False(t, resp.Slots[1].Booked)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		db, _ := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), new(MockAppointmentRepository))

		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(nil, nil)

		_, err := uc.GetDoctorSlots(t.Context(), doctorID)

		assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
	})
}

func TestDoctorUsecase_UpdateProfile(t *testing.T) {
	doctorID := uuid.New()

	t.Run("availability is replaced atomically", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		availabilityRepo := new(MockAvailabilityRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, availabilityRepo, new(MockSpecializationRepository), new(MockAppointmentRepository))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		doctorRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		availabilityRepo.On("ReplaceForDoctor", mock.Anything, doctorID, mock.MatchedBy(func(entries []entity.DoctorAvailability) bool {
			return len(entries) == 2 &&
				entries[0].Weekday == "Monday" &&
				entries[1].Weekday == "Wednesday"
		})).Return(nil)
		dbMock.ExpectCommit()

		_, err := uc.UpdateProfile(ctxWithUser(doctorID), &dto.UpdateDoctorProfileRequest{
			Availability: []dto.AvailabilityEntryRequest{
				{Weekday: "Monday", TimeRanges: []string{"09:00-09:30"}},
				{Weekday: "Wednesday", TimeRanges: []string{"14:00-14:30", "15:00-15:30"}},
			},
		})

		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
		availabilityRepo.AssertExpectations(t)
	})

	t.Run("duplicate weekday is rejected", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		availabilityRepo := new(MockAvailabilityRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, availabilityRepo, new(MockSpecializationRepository), new(MockAppointmentRepository))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		doctorRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectRollback()

		_, err := uc.UpdateProfile(ctxWithUser(doctorID), &dto.UpdateDoctorProfileRequest{
			Availability: []dto.AvailabilityEntryRequest{
				{Weekday: "Monday", TimeRanges: []string{"09:00-09:30"}},
				{Weekday: "Monday", TimeRanges: []string{"10:00-10:30"}},
			},
		})

		assert.ErrorIs(t, err, usecase.ErrDuplicateWeekday)
		availabilityRepo.AssertNotCalled(t, "ReplaceForDoctor", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lowercase weekday is rejected", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), new(MockAppointmentRepository))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		doctorRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectRollback()

		_, err := uc.UpdateProfile(ctxWithUser(doctorID), &dto.UpdateDoctorProfileRequest{
			Availability: []dto.AvailabilityEntryRequest{
				{Weekday: "monday", TimeRanges: []string{"09:00-09:30"}},
			},
		})

		assert.ErrorIs(t, err, slot.ErrUnknownWeekday)
	})

	t.Run("inverted time range is rejected", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), new(MockAppointmentRepository))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		doctorRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		dbMock.ExpectRollback()

		_, err := uc.UpdateProfile(ctxWithUser(doctorID), &dto.UpdateDoctorProfileRequest{
			Availability: []dto.AvailabilityEntryRequest{
				{Weekday: "Monday", TimeRanges: []string{"10:00-09:00"}},
			},
		})

		assert.ErrorIs(t, err, slot.ErrInvalidTimeRange)
	})

	t.Run("unknown specialization is rejected", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		doctorRepo := new(MockDoctorProfileRepository)
		specializationRepo := new(MockSpecializationRepository)
		uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), specializationRepo, new(MockAppointmentRepository))

		dbMock.ExpectBegin()
		doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(testDoctor(doctorID), nil)
		specializationRepo.On("FindByName", mock.Anything, "Telepathy").Return(nil, nil)
		dbMock.ExpectRollback()

		_, err := uc.UpdateProfile(ctxWithUser(doctorID), &dto.UpdateDoctorProfileRequest{
			Specialization: "Telepathy",
		})

		assert.ErrorIs(t, err, usecase.ErrSpecializationNotFound)
	})
}

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	db, _ := newTestDB(t)
	doctorRepo := new(MockDoctorProfileRepository)
	uc := usecase.NewDoctorUsecase(db, testLogger(), doctorRepo, new(MockAvailabilityRepository), new(MockSpecializationRepository), new(MockAppointmentRepository))

	t.Run("filter is passed through", func(t *testing.T) {
		doctorRepo.On("FindAll", mock.Anything, &entity.DoctorFilter{Specialization: "Cardiology"}).
			Return([]entity.DoctorProfile{*testDoctor(uuid.New())}, nil).Once()

		resp, err := uc.ListDoctors(t.Context(), "Cardiology")

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("unmatched filter yields an empty list", func(t *testing.T) {
		doctorRepo.On("FindAll", mock.Anything, &entity.DoctorFilter{Specialization: "Astrology"}).
			Return([]entity.DoctorProfile{}, nil).Once()

		resp, err := uc.ListDoctors(t.Context(), "Astrology")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Doctors)
	})
}
