package usecase

import (
	"context"
	"errors"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound        = errors.New("report not found")
	ErrReportAlreadyFiled    = errors.New("report already filed for this appointment")
	ErrReportNotYourPatient  = errors.New("appointment belongs to another doctor")
	ErrReportOnCancelledSlot = errors.New("cannot file a report on a cancelled appointment")
)

type ReportUsecase interface {
	CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetMyReports(ctx context.Context) (*dto.ReportListResponse, error)
	GetReportsByDoctor(ctx context.Context) (*dto.ReportListResponse, error)
	GetReportByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reportRepo      repository.MedicalReportRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.MedicalReportRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		reportRepo:      reportRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// CreateReport files a consultation outcome. The report insert and the
// appointment's transition to completed commit together.
func (u *reportUsecase) CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrReportNotYourPatient
	}
	if appointment.IsCancelled() {
		return nil, ErrReportOnCancelledSlot
	}

	report := &entity.MedicalReport{
		AppointmentID: req.AppointmentID,
		DoctorID:      doctorID,
		PatientID:     appointment.PatientID,
		Diagnosis:     req.Diagnosis,
		Prescriptions: entity.StringList(req.Prescriptions),
	}

	if err := u.reportRepo.Create(tx, report); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrReportAlreadyFiled
		}
		u.log.Errorf("Failed to create report: %+v", err)
		return nil, err
	}

	if err := u.appointmentRepo.UpdateStatus(tx, req.AppointmentID, entity.AppointmentStatusCompleted); err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &doctorID, service.AuditActionFileReport, "medical_report", report.ID.String(), map[string]interface{}{
		"appointment_id": req.AppointmentID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Report filed: id=%s, appointment=%s", report.ID, req.AppointmentID)

	return u.GetReportByAppointment(ctx, req.AppointmentID)
}

// GetMyReports returns the logged-in patient's reports.
func (u *reportUsecase) GetMyReports(ctx context.Context) (*dto.ReportListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reports, err := u.reportRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find reports for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

// GetReportsByDoctor returns reports the logged-in doctor has filed.
func (u *reportUsecase) GetReportsByDoctor(ctx context.Context) (*dto.ReportListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	reports, err := u.reportRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reports for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

// GetReportByAppointment fetches one report. Patients may read their own,
// doctors the ones they filed.
func (u *reportUsecase) GetReportByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.ReportResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	report, err := u.reportRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find report for appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if report.PatientID != userID && report.DoctorID != userID {
		return nil, ErrReportNotFound
	}

	return converter.ReportToResponse(report), nil
}
