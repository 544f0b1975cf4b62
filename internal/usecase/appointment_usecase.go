package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-plus/config"
	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/internal/service"
	"medicare-plus/pkg/slot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrSlotTaken           = errors.New("slot already booked")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	GetSlotOccupancy(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotOccupancyResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.CategorizedAppointmentsResponse, error)
	GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cfg             config.BookingConfig
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
	mailService     service.MailService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.BookingConfig,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	mailService service.MailService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		cfg:             cfg,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		mailService:     mailService,
	}
}

// BookAppointment is the only path that creates an appointment.
//
// Flow:
// 1. Resolve the doctor
// 2. Advisory conflict check on the (doctor, date, time) booking key
// 3. Derive payment status from the payment method
// 4. Insert with status=confirmed, flat consultation fee, audit entry
//
// The insert and the audit entry share one transaction. The partial unique
// index on the booking key is the real double-booking guard: when two
// requests race past the advisory check, exactly one insert commits and the
// loser surfaces here as ErrSlotTaken.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := slot.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Step 1: the doctor must exist
	doctor, err := u.doctorRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Step 2: advisory conflict check, cancelled appointments free the slot
	existing, err := u.appointmentRepo.FindActiveBySlot(tx, req.DoctorID, date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot %s %s %s: %+v", req.DoctorID, req.Date, req.Time, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	// Step 3: Razorpay payments are verified by the payment collaborator
	// before this call, so they settle immediately; cash settles at the desk
	paymentStatus := entity.PaymentStatusPending
	if entity.PaymentMethod(req.PaymentMethod) == entity.PaymentMethodRazorpay {
		paymentStatus = entity.PaymentStatusPaid
	}

	appointment := &entity.Appointment{
		PatientID:     patientID,
		DoctorID:      req.DoctorID,
		Date:          date,
		Time:          req.Time,
		Status:        entity.AppointmentStatusConfirmed,
		Symptoms:      req.Symptoms,
		Amount:        u.cfg.ConsultationFee,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		PaymentStatus: paymentStatus,
	}

	// Step 4: insert; a unique violation on the slot key means a concurrent
	// request won the race
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "slot_key") {
			return nil, ErrSlotTaken
		}
		u.log.Errorf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &patientID, service.AuditActionBookAppointment, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id": req.DoctorID.String(),
		"date":      req.Date,
		"time":      req.Time,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s", appointment.ID, req.DoctorID, req.Date, req.Time)

	// Confirmation mail must never block or roll back the booking result
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		go u.mailService.SendBookingConfirmation(email, "", doctor.User.FullName, req.Date, req.Time)
	}

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment flips a confirmed appointment to cancelled, freeing its
// booking key for re-booking.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if appointment.PatientID != userID {
		return ErrAppointmentNotOwned
	}

	affected, err := u.appointmentRepo.Cancel(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAlreadyCancelled
	}

	if err := u.auditService.Record(ctx, tx, &userID, service.AuditActionCancelAppointment, "appointment", appointmentID.String(), nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}

// GetSlotOccupancy answers how many active bookings hold each declared time
// range of a doctor on one date. Declared ranges without bookings are
// reported with count 0 so the caller sees the full picture.
func (u *appointmentUsecase) GetSlotOccupancy(ctx context.Context, doctorID uuid.UUID, date string) (*dto.SlotOccupancyResponse, error) {
	day, err := slot.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	counts, err := u.appointmentRepo.CountByDoctorAndDate(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to count occupancy for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	counted := make(map[string]int64, len(counts))
	for _, c := range counts {
		counted[c.Time] = c.Count
	}

	// Declared ranges for the date's weekday come first, then any booked
	// time not declared anymore (availability may have changed since).
	weekday := day.Weekday().String()
	var occupancy []entity.SlotOccupancy
	seen := make(map[string]bool)
	for _, entry := range doctor.Availability {
		if entry.Weekday != weekday {
			continue
		}
		for _, timeRange := range entry.TimeRanges {
			occupancy = append(occupancy, entity.SlotOccupancy{Time: timeRange, Count: counted[timeRange]})
			seen[timeRange] = true
		}
	}
	for _, c := range counts {
		if !seen[c.Time] {
			occupancy = append(occupancy, c)
		}
	}

	return converter.OccupancyToResponse(doctorID, date, occupancy), nil
}

// GetMyAppointments returns the logged-in patient's appointments split into
// today / upcoming / history buckets.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.CategorizedAppointmentsResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	today := slot.FormatDate(time.Now().UTC())
	categorized := &dto.CategorizedAppointmentsResponse{
		Today:    []dto.AppointmentResponse{},
		Upcoming: []dto.AppointmentResponse{},
		History:  []dto.AppointmentResponse{},
	}

	for i := range appointments {
		resp := converter.AppointmentToResponse(&appointments[i])
		switch {
		case resp.Date == today:
			categorized.Today = append(categorized.Today, *resp)
		case resp.Date > today:
			categorized.Upcoming = append(categorized.Upcoming, *resp)
		default:
			categorized.History = append(categorized.History, *resp)
		}
	}

	return categorized, nil
}

// GetDoctorAppointments returns the logged-in doctor's schedule.
func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
