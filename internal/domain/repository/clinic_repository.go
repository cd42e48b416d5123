package repository

import (
	"context"
	"time"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for doctor-portal persistence.
var (
	// ErrPatientNotFound is returned when a patient record is not found.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrPrescriptionNotFound is returned when a prescription is not found.
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

// PatientRepository defines persistence for doctor-owned patient records.
type PatientRepository interface {
	// FindByID retrieves a patient record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindByDoctorID retrieves all patients owned by a doctor.
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error)

	// Create persists a new patient record.
	Create(ctx context.Context, patient *entity.Patient) error

	// Update modifies an existing patient record.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	// FindByID retrieves an appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByDoctorID retrieves a doctor's appointments within [from, to).
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error)

	// FindOverlapping retrieves non-cancelled appointments for the doctor that
	// intersect [startsAt, endsAt), excluding the given appointment id (may be
	// uuid.Nil for creation). Used inside the booking transaction to reject
	// double-booking.
	FindOverlapping(ctx context.Context, doctorID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) ([]*entity.Appointment, error)

	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// Update modifies an existing appointment.
	Update(ctx context.Context, appointment *entity.Appointment) error

	// Delete removes an appointment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PrescriptionRepository defines persistence for prescriptions.
type PrescriptionRepository interface {
	// FindByID retrieves a prescription with its medications.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)

	// FindByPatientID retrieves a patient's prescription history, newest first.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error)

	// Create persists a new prescription with its medications.
	Create(ctx context.Context, prescription *entity.Prescription) error

	// Update modifies an existing prescription, replacing its medications.
	Update(ctx context.Context, prescription *entity.Prescription) error

	// Delete removes a prescription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
