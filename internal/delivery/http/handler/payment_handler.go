package handler

import (
	"encoding/json"
	"net/http"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/service"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreateOrder handles opening a payment gateway order
// @Summary Create payment order
// @Description Open a gateway order for the consultation fee before booking online
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Router /payments/order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.paymentUsecase.CreateOrder(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to create payment order")
		return
	}

	response.Success(w, http.StatusCreated, "Payment order created successfully", order)
}

// Verify handles the gateway checkout callback verification
// @Summary Verify payment
// @Description Verify the gateway signature for a completed checkout
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.paymentUsecase.VerifyPayment(r.Context(), &req); err != nil {
		switch err {
		case service.ErrInvalidSignature:
			response.Error(w, http.StatusBadRequest, "Invalid payment signature", nil)
		default:
			response.InternalServerError(w, "Failed to verify payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment verified successfully", nil)
}
