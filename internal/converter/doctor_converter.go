package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:        profile.UserID,
		FullName:  profile.User.FullName,
		Email:     profile.User.Email,
		Gender:    profile.Gender,
		Image:     profile.Image,
		Biography: profile.Biography,
	}

	if profile.Specialization.ID != 0 {
		response.Specialization = profile.Specialization.Name
	}

	for _, entry := range profile.Availability {
		response.Availability = append(response.Availability, dto.AvailabilityEntryResponse{
			Weekday:    entry.Weekday,
			TimeRanges: entry.TimeRanges,
		})
	}

	return response
}

// DoctorsToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
