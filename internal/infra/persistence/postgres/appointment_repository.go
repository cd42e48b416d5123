package postgres

import (
	"context"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// FindByID retrieves an appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// FindByDoctorID retrieves a doctor's appointments within [from, to).
func (repo *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	query := repo.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if !from.IsZero() {
		query = query.Where("starts_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("starts_at < ?", to)
	}

	if err := query.Order("starts_at ASC").Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by doctor")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// FindOverlapping retrieves non-cancelled appointments for the doctor that
// intersect [startsAt, endsAt), excluding the given appointment id.
// Interval intersection: existing.starts_at < endsAt AND existing end > startsAt.
func (repo *appointmentRepository) FindOverlapping(ctx context.Context, doctorID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	query := repo.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Where("status <> ?", string(entity.AppointmentStatusCancelled)).
		Where("starts_at < ?", endsAt).
		Where("starts_at + (duration_minutes * INTERVAL '1 minute') > ?", startsAt)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPatientNotFound.WrapMessage("invalid doctor or patient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// Update modifies an existing appointment.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Save(appointmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update appointment")
	}

	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// Delete removes an appointment by its ID.
func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete appointment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:        data.ID,
		DoctorID:  data.DoctorID,
		PatientID: data.PatientID,
		StartsAt:  data.StartsAt,
		Duration:  time.Duration(data.DurationMinutes) * time.Minute,
		Status:    entity.AppointmentStatus(data.Status),
		Reason:    data.Reason,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:              data.ID,
		DoctorID:        data.DoctorID,
		PatientID:       data.PatientID,
		StartsAt:        data.StartsAt,
		DurationMinutes: int(data.Duration / time.Minute),
		Status:          string(data.Status),
		Reason:          data.Reason,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
