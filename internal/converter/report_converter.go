package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/slot"

	"github.com/google/uuid"
)

// ReportToResponse converts a MedicalReport entity to its DTO
func ReportToResponse(report *entity.MedicalReport) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	response := &dto.ReportResponse{
		ID:            report.ID,
		AppointmentID: report.AppointmentID,
		DoctorID:      report.DoctorID,
		PatientID:     report.PatientID,
		Diagnosis:     report.Diagnosis,
		Prescriptions: report.Prescriptions,
		CreatedAt:     report.CreatedAt,
	}

	if report.Doctor.UserID != uuid.Nil {
		response.DoctorName = report.Doctor.User.FullName
		if report.Doctor.Specialization.ID != 0 {
			response.Specialization = report.Doctor.Specialization.Name
		}
	}
	if report.Patient.UserID != uuid.Nil {
		response.PatientName = report.Patient.User.FullName
	}
	if report.Appointment.ID != uuid.Nil {
		response.Date = slot.FormatDate(report.Appointment.Date)
		response.Time = report.Appointment.Time
	}

	return response
}

// ReportsToResponses converts a slice of MedicalReport entities to DTOs
func ReportsToResponses(reports []entity.MedicalReport) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i, report := range reports {
		resp := ReportToResponse(&report)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
