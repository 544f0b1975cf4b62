package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// AvailabilityEntryRequest is one recurring weekly availability entry.
type AvailabilityEntryRequest struct {
	Weekday    string   `json:"weekday" validate:"required,weekday"`
	TimeRanges []string `json:"time_ranges" validate:"required,min=1,dive,timerange"`
}

type UpdateDoctorProfileRequest struct {
	Specialization string                     `json:"specialization" validate:"omitempty"`
	Gender         string                     `json:"gender" validate:"omitempty,oneof=male female"`
	Image          string                     `json:"image" validate:"omitempty"`
	Biography      string                     `json:"biography" validate:"omitempty"`
	Availability   []AvailabilityEntryRequest `json:"availability" validate:"omitempty,dive"`
}

// Response DTOs

type AvailabilityEntryResponse struct {
	Weekday    string   `json:"weekday"`
	TimeRanges []string `json:"time_ranges"`
}

// SlotResponse is one bookable slot: an availability entry projected onto
// its next concrete calendar date, with occupancy attached.
type SlotResponse struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Booked  bool   `json:"booked"`
}

type DoctorResponse struct {
	ID             uuid.UUID                   `json:"id"`
	FullName       string                      `json:"full_name"`
	Email          string                      `json:"email,omitempty"`
	Specialization string                      `json:"specialization,omitempty"`
	Gender         string                      `json:"gender,omitempty"`
	Image          string                      `json:"image,omitempty"`
	Biography      string                      `json:"biography,omitempty"`
	Availability   []AvailabilityEntryResponse `json:"availability,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DoctorSlotsResponse struct {
	DoctorID uuid.UUID      `json:"doctor_id"`
	Slots    []SlotResponse `json:"slots"`
}
