package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DoctorAvailability is one recurring weekly availability entry for a doctor:
// a weekday name plus the time ranges the doctor consults on that day.
// The unique index on (doctor_id, weekday) backs the "no duplicate weekday
// per doctor" rule; writes are validated in the usecase as well.
type DoctorAvailability struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_weekday" json:"doctor_id"`
	Weekday    string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_doctor_weekday" json:"weekday"`
	TimeRanges StringList `gorm:"type:jsonb;not null" json:"time_ranges"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}

// StringList is a JSONB-backed string slice for GORM
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, s)
}
