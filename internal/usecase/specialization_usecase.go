package usecase

import (
	"context"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SpecializationUsecase interface {
	ListSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error)
}

type specializationUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
}

func NewSpecializationUsecase(db *gorm.DB, log *logrus.Logger, specializationRepo repository.SpecializationRepository) SpecializationUsecase {
	return &specializationUsecase{
		db:                 db,
		log:                log,
		specializationRepo: specializationRepo,
	}
}

func (u *specializationUsecase) ListSpecializations(ctx context.Context) (*dto.SpecializationListResponse, error) {
	specializations, err := u.specializationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}

	return &dto.SpecializationListResponse{
		Specializations: converter.SpecializationsToResponses(specializations),
		Total:           len(specializations),
	}, nil
}
