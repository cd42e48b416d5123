package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clinicService implements the ClinicUsecase interface.
type clinicService struct {
	txManager        repository.TransactionManager
	patientRepo      repository.PatientRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	logger           *slog.Logger
}

// ClinicServiceParams holds dependencies for clinicService, injected by Fx.
type ClinicServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	PatientRepo      repository.PatientRepository
	AppointmentRepo  repository.AppointmentRepository
	PrescriptionRepo repository.PrescriptionRepository
	Logger           *slog.Logger
}

// NewClinicService is the constructor for clinicService.
func NewClinicService(params ClinicServiceParams) usecase.ClinicUsecase {
	return &clinicService{
		txManager:        params.TxManager,
		patientRepo:      params.PatientRepo,
		appointmentRepo:  params.AppointmentRepo,
		prescriptionRepo: params.PrescriptionRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clinicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Patients ---

// ListPatients retrieves the doctor's patient records.
func (srv *clinicService) ListPatients(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error) {
	patients, err := srv.patientRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}

// GetPatient retrieves one patient record the doctor owns. Records owned by
// another doctor surface as not found.
func (srv *clinicService) GetPatient(ctx context.Context, doctorID, patientID uuid.UUID) (*entity.Patient, error) {
	return srv.loadOwnedPatient(ctx, srv.patientRepo, doctorID, patientID)
}

// CreatePatient adds a patient record for the doctor.
func (srv *clinicService) CreatePatient(ctx context.Context, doctorID uuid.UUID, input *usecase.PatientInput) (*entity.Patient, error) {
	srv.log(ctx).Debug("Creating patient", slog.Any("doctorID", doctorID))

	patient := patientFromInput(doctorID, input)
	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		srv.log(ctx).Error("Failed to create patient", slog.Any("error", err), slog.Any("doctorID", doctorID))

		return nil, errors.Wrap(err, "failed to create patient")
	}

	return patient, nil
}

// UpdatePatient replaces a patient record the doctor owns.
func (srv *clinicService) UpdatePatient(ctx context.Context, doctorID, patientID uuid.UUID, input *usecase.PatientInput) (*entity.Patient, error) {
	srv.log(ctx).Debug("Updating patient", slog.Any("patientID", patientID))

	var updated *entity.Patient
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()

		if _, err := srv.loadOwnedPatient(ctx, patientRepo, doctorID, patientID); err != nil {
			return err
		}

		patient := patientFromInput(doctorID, input)
		patient.ID = patientID

		if err := patientRepo.Update(ctx, patient); err != nil {
			return errors.Wrap(err, "failed to update patient")
		}

		updated = patient

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update patient", slog.Any("error", err), slog.Any("patientID", patientID))

		return nil, errors.Wrap(err, "failed to update patient")
	}

	return updated, nil
}

// DeletePatient removes a patient record the doctor owns.
func (srv *clinicService) DeletePatient(ctx context.Context, doctorID, patientID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting patient", slog.Any("patientID", patientID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()

		if _, err := srv.loadOwnedPatient(ctx, patientRepo, doctorID, patientID); err != nil {
			return err
		}

		if err := patientRepo.Delete(ctx, patientID); err != nil {
			return errors.Wrap(err, "failed to delete patient")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete patient", slog.Any("error", err), slog.Any("patientID", patientID))

		return errors.Wrap(err, "failed to delete patient")
	}

	return nil
}

// --- Appointments ---

// ListAppointments retrieves the doctor's appointments within [from, to).
func (srv *clinicService) ListAppointments(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.FindByDoctorID(ctx, doctorID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// GetAppointment retrieves one appointment the doctor owns.
func (srv *clinicService) GetAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	return srv.loadOwnedAppointment(ctx, srv.appointmentRepo, doctorID, appointmentID)
}

// BookAppointment books a slot. A slot overlapping any non-cancelled
// appointment of the same doctor is rejected; the overlap check and the
// insert run in one transaction.
func (srv *clinicService) BookAppointment(ctx context.Context, doctorID uuid.UUID, input *usecase.AppointmentInput) (*entity.Appointment, error) {
	srv.log(ctx).Debug("Booking appointment", slog.Any("doctorID", doctorID), slog.Time("startsAt", input.StartsAt))

	if input.Duration <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "appointment duration must be positive")
	}

	var booked *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()
		appointmentRepo := repoFactory.AppointmentRepo()

		if _, err := srv.loadOwnedPatient(ctx, patientRepo, doctorID, input.PatientID); err != nil {
			return err
		}

		if err := srv.rejectOverlap(ctx, appointmentRepo, doctorID, input.StartsAt, input.StartsAt.Add(input.Duration), uuid.Nil); err != nil {
			return err
		}

		appointment := &entity.Appointment{
			DoctorID:  doctorID,
			PatientID: input.PatientID,
			StartsAt:  input.StartsAt,
			Duration:  input.Duration,
			Status:    entity.AppointmentStatusScheduled,
			Reason:    input.Reason,
			Notes:     input.Notes,
		}

		if err := appointmentRepo.Create(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to create appointment")
		}

		booked = appointment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to book appointment", slog.Any("error", err), slog.Any("doctorID", doctorID))

		return nil, errors.Wrap(err, "failed to book appointment")
	}

	return booked, nil
}

// RescheduleAppointment moves an appointment to a new slot, re-running the
// overlap check with the appointment itself excluded.
func (srv *clinicService) RescheduleAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, input *usecase.AppointmentInput) (*entity.Appointment, error) {
	srv.log(ctx).Debug("Rescheduling appointment", slog.Any("appointmentID", appointmentID))

	if input.Duration <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "appointment duration must be positive")
	}

	var updated *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := srv.loadOwnedAppointment(ctx, appointmentRepo, doctorID, appointmentID)
		if err != nil {
			return err
		}

		if appointment.Status == entity.AppointmentStatusCancelled {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cancelled appointments cannot be rescheduled")
		}

		if err := srv.rejectOverlap(ctx, appointmentRepo, doctorID, input.StartsAt, input.StartsAt.Add(input.Duration), appointmentID); err != nil {
			return err
		}

		appointment.StartsAt = input.StartsAt
		appointment.Duration = input.Duration
		appointment.Reason = input.Reason
		appointment.Notes = input.Notes

		if err := appointmentRepo.Update(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to update appointment")
		}

		updated = appointment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to reschedule appointment", slog.Any("error", err), slog.Any("appointmentID", appointmentID))

		return nil, errors.Wrap(err, "failed to reschedule appointment")
	}

	return updated, nil
}

// SetAppointmentStatus marks an appointment completed or cancelled.
func (srv *clinicService) SetAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error) {
	srv.log(ctx).Debug("Setting appointment status", slog.Any("appointmentID", appointmentID), slog.Any("status", status))

	switch status {
	case entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled:
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown appointment status")
	}

	var updated *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := srv.loadOwnedAppointment(ctx, appointmentRepo, doctorID, appointmentID)
		if err != nil {
			return err
		}

		// Re-activating a cancelled slot must pass the overlap check again.
		if appointment.Status == entity.AppointmentStatusCancelled && status == entity.AppointmentStatusScheduled {
			if err := srv.rejectOverlap(ctx, appointmentRepo, doctorID, appointment.StartsAt, appointment.EndsAt(), appointmentID); err != nil {
				return err
			}
		}

		appointment.Status = status
		if err := appointmentRepo.Update(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to update appointment")
		}

		updated = appointment

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set appointment status", slog.Any("error", err), slog.Any("appointmentID", appointmentID))

		return nil, errors.Wrap(err, "failed to set appointment status")
	}

	return updated, nil
}

// DeleteAppointment removes an appointment the doctor owns.
func (srv *clinicService) DeleteAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting appointment", slog.Any("appointmentID", appointmentID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		if _, err := srv.loadOwnedAppointment(ctx, appointmentRepo, doctorID, appointmentID); err != nil {
			return err
		}

		if err := appointmentRepo.Delete(ctx, appointmentID); err != nil {
			return errors.Wrap(err, "failed to delete appointment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete appointment", slog.Any("error", err), slog.Any("appointmentID", appointmentID))

		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

// --- Prescriptions ---

// GetPrescription retrieves one prescription the doctor issued.
func (srv *clinicService) GetPrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID) (*entity.Prescription, error) {
	return srv.loadOwnedPrescription(ctx, srv.prescriptionRepo, doctorID, prescriptionID)
}

// ListPrescriptionsByPatient retrieves a patient's prescription history.
// The patient must belong to the acting doctor.
func (srv *clinicService) ListPrescriptionsByPatient(ctx context.Context, doctorID, patientID uuid.UUID) ([]*entity.Prescription, error) {
	if _, err := srv.loadOwnedPatient(ctx, srv.patientRepo, doctorID, patientID); err != nil {
		return nil, err
	}

	prescriptions, err := srv.prescriptionRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prescriptions")
	}

	return prescriptions, nil
}

// IssuePrescription writes a prescription for one of the doctor's patients.
func (srv *clinicService) IssuePrescription(ctx context.Context, doctorID uuid.UUID, input *usecase.PrescriptionInput) (*entity.Prescription, error) {
	srv.log(ctx).Debug("Issuing prescription", slog.Any("doctorID", doctorID), slog.Any("patientID", input.PatientID))

	if len(input.Medications) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "prescription requires at least one medication")
	}

	var issued *entity.Prescription
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()
		prescriptionRepo := repoFactory.PrescriptionRepo()

		if _, err := srv.loadOwnedPatient(ctx, patientRepo, doctorID, input.PatientID); err != nil {
			return err
		}

		prescription := prescriptionFromInput(doctorID, input)
		if err := prescriptionRepo.Create(ctx, prescription); err != nil {
			return errors.Wrap(err, "failed to create prescription")
		}

		issued = prescription

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to issue prescription", slog.Any("error", err), slog.Any("doctorID", doctorID))

		return nil, errors.Wrap(err, "failed to issue prescription")
	}

	return issued, nil
}

// UpdatePrescription revises a prescription the doctor issued, replacing its medications.
func (srv *clinicService) UpdatePrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID, input *usecase.PrescriptionInput) (*entity.Prescription, error) {
	srv.log(ctx).Debug("Updating prescription", slog.Any("prescriptionID", prescriptionID))

	if len(input.Medications) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "prescription requires at least one medication")
	}

	var updated *entity.Prescription
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		prescriptionRepo := repoFactory.PrescriptionRepo()

		if _, err := srv.loadOwnedPrescription(ctx, prescriptionRepo, doctorID, prescriptionID); err != nil {
			return err
		}

		prescription := prescriptionFromInput(doctorID, input)
		prescription.ID = prescriptionID

		if err := prescriptionRepo.Update(ctx, prescription); err != nil {
			return errors.Wrap(err, "failed to update prescription")
		}

		updated = prescription

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update prescription", slog.Any("error", err), slog.Any("prescriptionID", prescriptionID))

		return nil, errors.Wrap(err, "failed to update prescription")
	}

	return updated, nil
}

// DeletePrescription removes a prescription the doctor issued.
func (srv *clinicService) DeletePrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting prescription", slog.Any("prescriptionID", prescriptionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		prescriptionRepo := repoFactory.PrescriptionRepo()

		if _, err := srv.loadOwnedPrescription(ctx, prescriptionRepo, doctorID, prescriptionID); err != nil {
			return err
		}

		if err := prescriptionRepo.Delete(ctx, prescriptionID); err != nil {
			return errors.Wrap(err, "failed to delete prescription")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete prescription", slog.Any("error", err), slog.Any("prescriptionID", prescriptionID))

		return errors.Wrap(err, "failed to delete prescription")
	}

	return nil
}

// --- ownership helpers ---

func (srv *clinicService) loadOwnedPatient(ctx context.Context, patientRepo repository.PatientRepository, doctorID, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := patientRepo.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPatientNotFound, "patient not found")
		}

		return nil, errors.Wrap(err, "failed to find patient")
	}
	if patient.DoctorID != doctorID {
		return nil, errors.Wrap(domainerrors.ErrPatientNotFound, "patient not found")
	}

	return patient, nil
}

func (srv *clinicService) loadOwnedAppointment(ctx context.Context, appointmentRepo repository.AppointmentRepository, doctorID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAppointmentNotFound, "appointment not found")
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}
	if appointment.DoctorID != doctorID {
		return nil, errors.Wrap(domainerrors.ErrAppointmentNotFound, "appointment not found")
	}

	return appointment, nil
}

func (srv *clinicService) loadOwnedPrescription(ctx context.Context, prescriptionRepo repository.PrescriptionRepository, doctorID, prescriptionID uuid.UUID) (*entity.Prescription, error) {
	prescription, err := prescriptionRepo.FindByID(ctx, prescriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrescriptionNotFound, "prescription not found")
		}

		return nil, errors.Wrap(err, "failed to find prescription")
	}
	if prescription.DoctorID != doctorID {
		return nil, errors.Wrap(domainerrors.ErrPrescriptionNotFound, "prescription not found")
	}

	return prescription, nil
}

func (srv *clinicService) rejectOverlap(ctx context.Context, appointmentRepo repository.AppointmentRepository, doctorID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) error {
	overlapping, err := appointmentRepo.FindOverlapping(ctx, doctorID, startsAt, endsAt, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check for overlapping appointments")
	}
	if len(overlapping) > 0 {
		return errors.Wrap(domainerrors.ErrAppointmentConflict, "slot overlaps an existing appointment")
	}

	return nil
}

func patientFromInput(doctorID uuid.UUID, input *usecase.PatientInput) *entity.Patient {
	return &entity.Patient{
		DoctorID:    doctorID,
		UserID:      input.UserID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		History:     input.History,
	}
}

func prescriptionFromInput(doctorID uuid.UUID, input *usecase.PrescriptionInput) *entity.Prescription {
	medications := make([]*entity.Medication, 0, len(input.Medications))
	for _, med := range input.Medications {
		medications = append(medications, &entity.Medication{
			Name:         med.Name,
			Dosage:       med.Dosage,
			Frequency:    med.Frequency,
			Duration:     med.Duration,
			Instructions: med.Instructions,
		})
	}

	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	return &entity.Prescription{
		DoctorID:      doctorID,
		PatientID:     input.PatientID,
		AppointmentID: input.AppointmentID,
		Medications:   medications,
		Notes:         input.Notes,
		IssuedAt:      issuedAt,
	}
}
