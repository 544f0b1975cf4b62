package converter

import (
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
)

// SpecializationsToResponses converts Specialization entities to DTOs
func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, spec := range specializations {
		responses[i] = dto.SpecializationResponse{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
		}
	}
	return responses
}
