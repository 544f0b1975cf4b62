package repository

import (
	"medicare-plus/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecializationRepository interface {
	Create(db *gorm.DB, specialization *entity.Specialization) error
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
	FindByID(db *gorm.DB, id int) (*entity.Specialization, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialization, error)
}
