package postgres

import (
	"context"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// FindByID retrieves a patient record by its unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// FindByDoctorID retrieves all patients owned by a doctor.
func (repo *patientRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Patient, error) {
	var patientModels []*model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&patientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find patients by doctor")
	}

	patients := make([]*entity.Patient, 0, len(patientModels))
	for _, patientM := range patientModels {
		patients = append(patients, toPatientDomain(patientM))
	}

	return patients, nil
}

// Create persists a new patient record.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid doctor or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Update modifies an existing patient record.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Save(patientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update patient")
	}

	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Delete removes a patient record by its ID.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete patient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPatientDomain converts a GORM PatientModel to a domain Patient entity.
func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:          data.ID,
		DoctorID:    data.DoctorID,
		UserID:      data.UserID,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		History:     data.History,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPatientDomain converts a domain Patient entity to a GORM PatientModel.
func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:          data.ID,
		DoctorID:    data.DoctorID,
		UserID:      data.UserID,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		History:     data.History,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
