package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SpecializationID int       `gorm:"not null;index" json:"specialization_id"`
	Gender           string    `gorm:"type:varchar(10);not null" json:"gender"`
	Image            string    `gorm:"type:text" json:"image,omitempty"`
	Biography        string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User           User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialization Specialization       `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Availability   []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availability,omitempty"`
	Appointments   []Appointment        `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)
