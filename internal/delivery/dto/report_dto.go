package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReportRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Diagnosis     string    `json:"diagnosis" validate:"required"`
	Prescriptions []string  `json:"prescriptions" validate:"omitempty,dive,required"`
}

// Response DTOs

type ReportResponse struct {
	ID             uuid.UUID `json:"id"`
	AppointmentID  uuid.UUID `json:"appointment_id"`
	DoctorID       uuid.UUID `json:"doctor_id"`
	PatientID      uuid.UUID `json:"patient_id"`
	DoctorName     string    `json:"doctor_name,omitempty"`
	PatientName    string    `json:"patient_name,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Date           string    `json:"date,omitempty"`
	Time           string    `json:"time,omitempty"`
	Diagnosis      string    `json:"diagnosis"`
	Prescriptions  []string  `json:"prescriptions,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
