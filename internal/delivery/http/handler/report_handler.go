package handler

import (
	"encoding/json"
	"net/http"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// Create handles filing a medical report
// @Summary File a medical report
// @Description File a consultation outcome, completing the appointment
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Create Report Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reports [post]
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.CreateReport(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrReportNotYourPatient:
			response.Forbidden(w, "Appointment belongs to another doctor")
		case usecase.ErrReportOnCancelledSlot:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrReportAlreadyFiled:
			response.Conflict(w, "Report already filed for this appointment")
		default:
			response.InternalServerError(w, "Failed to file report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report filed successfully", report)
}

// GetMine handles the patient's report listing
// @Summary Get own reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/me [get]
func (h *ReportHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetMyReports(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

// GetFiled handles the doctor's filed report listing
// @Summary Get filed reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/filed [get]
func (h *ReportHandler) GetFiled(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.GetReportsByDoctor(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

// GetByAppointment handles fetching one report by its appointment
// @Summary Get report by appointment
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/appointment/{id} [get]
func (h *ReportHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	report, err := h.reportUsecase.GetReportByAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}
