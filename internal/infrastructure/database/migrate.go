package database

import (
	"fmt"

	"medicare-plus/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// seededSpecializations is the fixed catalogue presented to patients when
// they start a booking. Idempotent: existing rows are left untouched.
var seededSpecializations = []entity.Specialization{
	{Name: "Cardiology", Description: "Heart and blood vessel care"},
	{Name: "Dermatology", Description: "Skin, hair, and nail care"},
	{Name: "General Medicine", Description: "Primary and preventive care"},
	{Name: "Neurology", Description: "Brain and nervous system care"},
	{Name: "Orthopedics", Description: "Bone, joint, and muscle care"},
	{Name: "Pediatrics", Description: "Medical care for children"},
}

var seededRoles = []entity.Role{
	{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "System administrator"},
	{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Consulting doctor"},
	{ID: entity.RoleIDPatient, RoleName: entity.RolePatient, Description: "Registered patient"},
}

// Migrate creates/updates the schema, including the partial unique index on
// the appointment booking key that guards against double-booking.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialization{},
		&entity.DoctorProfile{},
		&entity.DoctorAvailability{},
		&entity.PatientProfile{},
		&entity.Appointment{},
		&entity.MedicalReport{},
		&entity.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logrus.Info("Database schema migrated")
	return nil
}

// Seed inserts the fixed role and specialization catalogues.
func Seed(db *gorm.DB) error {
	for _, role := range seededRoles {
		if err := db.Where(entity.Role{RoleName: role.RoleName}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.RoleName, err)
		}
	}

	for _, spec := range seededSpecializations {
		if err := db.Where(entity.Specialization{Name: spec.Name}).FirstOrCreate(&spec).Error; err != nil {
			return fmt.Errorf("seed specialization %s: %w", spec.Name, err)
		}
	}

	logrus.Info("Role and specialization catalogues seeded")
	return nil
}
