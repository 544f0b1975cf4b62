package repository

import (
	"medicare-plus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalReportRepository interface {
	Create(db *gorm.DB, report *entity.MedicalReport) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalReport, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalReport, error)
}
