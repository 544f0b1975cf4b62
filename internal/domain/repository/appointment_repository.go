package repository

import (
	"time"

	"medicare-plus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveBySlot returns the non-cancelled appointment occupying the
	// exact (doctor, date, time) booking key, or nil when the slot is free.
	FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeRange string) (*entity.Appointment, error)
	// CountByDoctorAndDate groups active appointments by time string for
	// the slot occupancy query.
	CountByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.SlotOccupancy, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// Cancel flips status to cancelled only when not already cancelled.
	// Returns affected rows: 1 = success, 0 = already cancelled.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
}
