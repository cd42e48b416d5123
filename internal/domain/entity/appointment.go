package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of a booked slot.
type AppointmentStatus string

const (
	// AppointmentStatusScheduled is a booked, upcoming appointment.
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	// AppointmentStatusCompleted is a held appointment.
	AppointmentStatusCompleted AppointmentStatus = "completed"
	// AppointmentStatusCancelled is a cancelled appointment; it frees the slot.
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a doctor to a patient for a time slot.
// Invariant: non-cancelled appointments for the same doctor never overlap.
type Appointment struct {
	ID        uuid.UUID
	DoctorID  uuid.UUID // The doctor's user id.
	PatientID uuid.UUID // The patient record id.
	StartsAt  time.Time
	Duration  time.Duration
	Status    AppointmentStatus
	Reason    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt is the exclusive end of the slot.
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(a.Duration)
}

// Overlaps reports whether two slots intersect in time.
func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.StartsAt.Before(other.EndsAt()) && other.StartsAt.Before(a.EndsAt())
}

// Patient is a doctor-owned record of a person under care. It may reference a
// platform user, but walk-in patients exist without one.
type Patient struct {
	ID          uuid.UUID
	DoctorID    uuid.UUID  // The doctor who owns this record.
	UserID      *uuid.UUID // Optional link to a platform account.
	Name        string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	Gender      string
	History     string // Free-form medical history notes.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Medication is one prescribed item within a prescription.
type Medication struct {
	ID             uuid.UUID
	PrescriptionID uuid.UUID
	Name           string
	Dosage         string // e.g. "500mg"
	Frequency      string // e.g. "twice daily"
	Duration       string // e.g. "5 days"
	Instructions   string
}

// Prescription is issued by a doctor for a patient, optionally tied to the
// appointment it was written in.
type Prescription struct {
	ID            uuid.UUID
	DoctorID      uuid.UUID
	PatientID     uuid.UUID
	AppointmentID *uuid.UUID
	Medications   []*Medication
	Notes         string
	IssuedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
