package repository

import (
	"medicare-plus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAvailability, error)
	// ReplaceForDoctor swaps the doctor's whole weekly availability in one
	// shot; callers run it inside a transaction.
	ReplaceForDoctor(db *gorm.DB, doctorID uuid.UUID, entries []entity.DoctorAvailability) error
}
