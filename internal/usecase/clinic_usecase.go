// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"wellkart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PatientInput defines the data required to create or update a patient record.
type PatientInput struct {
	UserID      *uuid.UUID
	Name        string `validate:"required"`
	Email       string `validate:"omitempty,email"`
	Phone       string
	DateOfBirth *time.Time
	Gender      string
	History     string
}

// AppointmentInput defines the data required to book or reschedule an appointment.
type AppointmentInput struct {
	PatientID uuid.UUID     `validate:"required"`
	StartsAt  time.Time     `validate:"required"`
	Duration  time.Duration `validate:"gt=0"`
	Reason    string
	Notes     string
}

// MedicationInput is one prescribed item of a prescription.
type MedicationInput struct {
	Name         string `validate:"required"`
	Dosage       string
	Frequency    string
	Duration     string
	Instructions string
}

// PrescriptionInput defines the data required to issue or revise a prescription.
type PrescriptionInput struct {
	PatientID     uuid.UUID `validate:"required"`
	AppointmentID *uuid.UUID
	Medications   []*MedicationInput `validate:"required,min=1,dive,required"`
	Notes         string
	IssuedAt      time.Time
}

// ClinicUsecase defines the interface for the doctor portal: patients,
// appointments and prescriptions. Every operation is scoped to the acting
// doctor; records owned by another doctor are invisible.
type ClinicUsecase interface {
	// Patients.
	ListPatients(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error)
	GetPatient(ctx context.Context, doctorID, patientID uuid.UUID) (*entity.Patient, error)
	CreatePatient(ctx context.Context, doctorID uuid.UUID, input *PatientInput) (*entity.Patient, error)
	UpdatePatient(ctx context.Context, doctorID, patientID uuid.UUID, input *PatientInput) (*entity.Patient, error)
	DeletePatient(ctx context.Context, doctorID, patientID uuid.UUID) error

	// Appointments. Booking and rescheduling reject slots that overlap a
	// non-cancelled appointment of the same doctor.
	ListAppointments(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error)
	GetAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) (*entity.Appointment, error)
	BookAppointment(ctx context.Context, doctorID uuid.UUID, input *AppointmentInput) (*entity.Appointment, error)
	RescheduleAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID, input *AppointmentInput) (*entity.Appointment, error)
	SetAppointmentStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error)
	DeleteAppointment(ctx context.Context, doctorID, appointmentID uuid.UUID) error

	// Prescriptions.
	GetPrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID) (*entity.Prescription, error)
	ListPrescriptionsByPatient(ctx context.Context, doctorID, patientID uuid.UUID) ([]*entity.Prescription, error)
	IssuePrescription(ctx context.Context, doctorID uuid.UUID, input *PrescriptionInput) (*entity.Prescription, error)
	UpdatePrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID, input *PrescriptionInput) (*entity.Prescription, error)
	DeletePrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID) error
}
