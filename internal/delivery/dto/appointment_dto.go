package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID      uuid.UUID `json:"doctor_id" validate:"required"`
	Date          string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string    `json:"time" validate:"required,timerange"`
	Symptoms      string    `json:"symptoms" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=Cash Razorpay"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID       `json:"id"`
	PatientID      uuid.UUID       `json:"patient_id"`
	DoctorID       uuid.UUID       `json:"doctor_id"`
	DoctorName     string          `json:"doctor_name,omitempty"`
	PatientName    string          `json:"patient_name,omitempty"`
	Specialization string          `json:"specialization,omitempty"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Status         string          `json:"status"`
	Symptoms       string          `json:"symptoms"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  string          `json:"payment_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// CategorizedAppointmentsResponse splits a patient's appointments relative
// to the current day for the dashboard view.
type CategorizedAppointmentsResponse struct {
	Today    []AppointmentResponse `json:"today"`
	Upcoming []AppointmentResponse `json:"upcoming"`
	History  []AppointmentResponse `json:"history"`
}

// SlotOccupancyEntry is the occupancy of one declared time range on one
// date. Capacity is one booking per slot, so Booked = Count >= 1.
type SlotOccupancyEntry struct {
	Time   string `json:"time"`
	Count  int64  `json:"count"`
	Booked bool   `json:"booked"`
}

type SlotOccupancyResponse struct {
	DoctorID uuid.UUID            `json:"doctor_id"`
	Date     string               `json:"date"`
	Slots    []SlotOccupancyEntry `json:"slots"`
}
