package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalReport is filed by a doctor after a consultation.
// Filing a report completes the underlying appointment.
type MedicalReport struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"appointment_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Diagnosis     string     `gorm:"type:text;not null" json:"diagnosis"`
	Prescriptions StringList `gorm:"type:jsonb" json:"prescriptions,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment    `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient     PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}
