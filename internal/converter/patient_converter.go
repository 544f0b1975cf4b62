package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/slot"
)

// PatientToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:          profile.UserID,
		FullName:    profile.User.FullName,
		Email:       profile.User.Email,
		Gender:      profile.Gender,
		BloodGroup:  profile.BloodGroup,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
		Image:       profile.Image,
	}

	if !profile.DateOfBirth.IsZero() {
		response.DateOfBirth = slot.FormatDate(profile.DateOfBirth)
	}

	return response
}
