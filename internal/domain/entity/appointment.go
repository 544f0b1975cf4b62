package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	// AppointmentStatusPending is a legal value kept for a future manual
	// approval workflow; booking currently auto-confirms and never emits it.
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// PaymentMethod represents how the patient pays the consultation fee
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodRazorpay PaymentMethod = "Razorpay"
)

// PaymentStatus represents the settlement state of the consultation fee
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// Appointment represents a booked consultation slot.
//
// The partial unique index on (doctor_id, date, time) excluding cancelled
// rows is the storage-level guard against double-booking: two concurrent
// inserts for the same slot key cannot both commit, and a cancelled
// appointment frees the key for re-booking.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_slot_key,priority:1,where:status <> 'cancelled'" json:"doctor_id"`
	Date          time.Time         `gorm:"type:date;not null;uniqueIndex:idx_appointments_slot_key,priority:2" json:"date"`
	Time          string            `gorm:"type:varchar(20);not null;uniqueIndex:idx_appointments_slot_key,priority:3" json:"time"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Symptoms      string            `gorm:"type:text;not null" json:"symptoms"`
	Prescription  string            `gorm:"type:text;default:''" json:"prescription,omitempty"`
	Amount        decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(20);not null;default:'Cash'" json:"payment_method"`
	PaymentStatus PaymentStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
