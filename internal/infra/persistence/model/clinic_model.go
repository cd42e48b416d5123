package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table. UserID is optional to allow
// walk-in patients without a platform account.
type PatientModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DoctorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Email       string     `gorm:"type:varchar(255)"`
	Phone       string     `gorm:"type:varchar(20)"`
	DateOfBirth *time.Time
	Gender      string `gorm:"type:varchar(20)"`
	History     string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}

// AppointmentModel mirrors the 'appointments' table. Duration is stored in minutes.
type AppointmentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_doctor_starts"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartsAt        time.Time `gorm:"not null;index:idx_appointments_doctor_starts"`
	DurationMinutes int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Reason          string    `gorm:"type:text"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// PrescriptionModel mirrors the 'prescriptions' table. AppointmentID is
// optional; a prescription may be written outside any booked slot.
type PrescriptionModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	AppointmentID *uuid.UUID `gorm:"type:uuid"`
	Notes         string     `gorm:"type:text"`
	IssuedAt      time.Time  `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Medications []*MedicationModel `gorm:"foreignKey:PrescriptionID"`
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}

// MedicationModel mirrors the 'medications' table, one row per prescribed item.
type MedicationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Dosage         string    `gorm:"type:varchar(100)"`
	Frequency      string    `gorm:"type:varchar(100)"`
	Duration       string    `gorm:"type:varchar(100)"`
	Instructions   string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "medications"
}
