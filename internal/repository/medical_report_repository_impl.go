package repository

import (
	"errors"

	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalReportRepository struct{}

func NewMedicalReportRepository() domainRepo.MedicalReportRepository {
	return &medicalReportRepository{}
}

func (r *medicalReportRepository) Create(db *gorm.DB, report *entity.MedicalReport) error {
	return db.Create(report).Error
}

func (r *medicalReportRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalReport, error) {
	var report entity.MedicalReport
	err := db.Preload("Doctor.User").
		Preload("Doctor.Specialization").
		Preload("Patient.User").
		Preload("Appointment").
		Where("appointment_id = ?", appointmentID).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *medicalReportRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	var reports []entity.MedicalReport
	err := db.Preload("Doctor.User").
		Preload("Doctor.Specialization").
		Preload("Appointment").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *medicalReportRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalReport, error) {
	var reports []entity.MedicalReport
	err := db.Preload("Patient.User").
		Preload("Appointment").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
