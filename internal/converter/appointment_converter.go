package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/slot"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          slot.FormatDate(appointment.Date),
		Time:          appointment.Time,
		Status:        string(appointment.Status),
		Symptoms:      appointment.Symptoms,
		Amount:        appointment.Amount,
		PaymentMethod: string(appointment.PaymentMethod),
		PaymentStatus: string(appointment.PaymentStatus),
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}

	// Include related names when preloaded
	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName
		if appointment.Doctor.Specialization.ID != 0 {
			response.Specialization = appointment.Doctor.Specialization.Name
		}
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// OccupancyToResponse converts per-time counts into the occupancy DTO.
// A slot is booked as soon as one active appointment holds its key.
func OccupancyToResponse(doctorID uuid.UUID, date string, occupancy []entity.SlotOccupancy) *dto.SlotOccupancyResponse {
	slots := make([]dto.SlotOccupancyEntry, len(occupancy))
	for i, entry := range occupancy {
		slots[i] = dto.SlotOccupancyEntry{
			Time:   entry.Time,
			Count:  entry.Count,
			Booked: entry.Count >= 1,
		}
	}

	return &dto.SlotOccupancyResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    slots,
	}
}
