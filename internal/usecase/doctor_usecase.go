package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/pkg/slot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrDuplicateWeekday       = errors.New("availability lists the same weekday twice")
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetDoctorSlots(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorSlotsResponse, error)
	GetProfile(ctx context.Context) (*dto.DoctorResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorProfileRepository
	availabilityRepo   repository.AvailabilityRepository
	specializationRepo repository.SpecializationRepository
	appointmentRepo    repository.AppointmentRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	availabilityRepo repository.AvailabilityRepository,
	specializationRepo repository.SpecializationRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		availabilityRepo:   availabilityRepo,
		specializationRepo: specializationRepo,
		appointmentRepo:    appointmentRepo,
	}
}

// ListDoctors returns active doctors, optionally filtered by specialization
// name. A name matching no specialization yields an empty list, not an error.
func (u *doctorUsecase) ListDoctors(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), &entity.DoctorFilter{Specialization: specialization})
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(profile), nil
}

// GetDoctorSlots projects the doctor's weekly availability onto concrete
// dates. Each weekday maps to its next occurrence strictly after today, so a
// slot whose weekday is today points at next week, never at the current day.
// Occupancy is attached per projected date.
func (u *doctorUsecase) GetDoctorSlots(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorSlotsResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	response := &dto.DoctorSlotsResponse{
		DoctorID: doctorID,
		Slots:    []dto.SlotResponse{},
	}

	now := time.Now().UTC()
	for _, entry := range profile.Availability {
		date, err := slot.NextDate(entry.Weekday, now)
		if err != nil {
			// Stored weekdays are validated on write, so this is corruption
			u.log.Errorf("Invalid stored weekday %q for doctor %s: %+v", entry.Weekday, doctorID, err)
			return nil, err
		}

		counts, err := u.appointmentRepo.CountByDoctorAndDate(u.db.WithContext(ctx), doctorID, date)
		if err != nil {
			u.log.Warnf("Failed to count occupancy for doctor %s on %s: %+v", doctorID, slot.FormatDate(date), err)
			return nil, err
		}
		booked := make(map[string]bool, len(counts))
		for _, c := range counts {
			booked[c.Time] = c.Count >= 1
		}

		for _, timeRange := range entry.TimeRanges {
			response.Slots = append(response.Slots, dto.SlotResponse{
				Weekday: entry.Weekday,
				Date:    slot.FormatDate(date),
				Time:    timeRange,
				Booked:  booked[timeRange],
			})
		}
	}

	return response, nil
}

func (u *doctorUsecase) GetProfile(ctx context.Context) (*dto.DoctorResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	return u.GetDoctor(ctx, doctorID)
}

// UpdateProfile updates the logged-in doctor's profile. When the request
// carries availability, the whole weekly schedule is replaced in one
// transaction with the profile change.
func (u *doctorUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		specialization, err := u.specializationRepo.FindByName(tx, req.Specialization)
		if err != nil {
			u.log.Warnf("Failed to find specialization %s: %+v", req.Specialization, err)
			return nil, err
		}
		if specialization == nil {
			return nil, ErrSpecializationNotFound
		}
		profile.SpecializationID = specialization.ID
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Image != "" {
		profile.Image = req.Image
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	if req.Availability != nil {
		entries, err := buildAvailability(doctorID, req.Availability)
		if err != nil {
			return nil, err
		}
		if err := u.availabilityRepo.ReplaceForDoctor(tx, doctorID, entries); err != nil {
			u.log.Warnf("Failed to replace availability for doctor %s: %+v", doctorID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetDoctor(ctx, doctorID)
}

// buildAvailability converts request entries into rows, rejecting duplicate
// weekdays and malformed weekday or time range values. Format checks repeat
// the DTO validation because this is the last gate before storage.
func buildAvailability(doctorID uuid.UUID, entries []dto.AvailabilityEntryRequest) ([]entity.DoctorAvailability, error) {
	seen := make(map[string]bool, len(entries))
	rows := make([]entity.DoctorAvailability, 0, len(entries))

	for _, entry := range entries {
		if !slot.IsWeekday(entry.Weekday) {
			return nil, slot.ErrUnknownWeekday
		}
		if seen[entry.Weekday] {
			return nil, ErrDuplicateWeekday
		}
		seen[entry.Weekday] = true

		for _, timeRange := range entry.TimeRanges {
			if _, _, err := slot.ParseRange(timeRange); err != nil {
				return nil, err
			}
		}

		rows = append(rows, entity.DoctorAvailability{
			DoctorID:   doctorID,
			Weekday:    entry.Weekday,
			TimeRanges: entity.StringList(entry.TimeRanges),
		})
	}

	return rows, nil
}
