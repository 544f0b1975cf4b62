package handler

import (
	"net/http"

	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase) *SpecializationHandler {
	return &SpecializationHandler{specializationUsecase: specializationUsecase}
}

// List handles the specialization catalogue listing
// @Summary List specializations
// @Tags Specializations
// @Produce json
// @Success 200 {object} response.Response
// @Router /specializations [get]
func (h *SpecializationHandler) List(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.specializationUsecase.ListSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}
