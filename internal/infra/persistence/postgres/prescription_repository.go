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

// prescriptionRepository implements the repository.PrescriptionRepository interface.
type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository is the constructor for prescriptionRepository.
func NewPrescriptionRepository(db *gorm.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{
		db: db,
	}
}

// FindByID retrieves a prescription with its medications.
func (repo *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescriptionM model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Medications").
		Where("id = ?", id).
		First(&prescriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prescription by id")
	}

	return toPrescriptionDomain(&prescriptionM), nil
}

// FindByPatientID retrieves a patient's prescription history, newest first.
func (repo *prescriptionRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Medications").
		Where("patient_id = ?", patientID).
		Order("issued_at DESC").
		Find(&prescriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prescriptions by patient")
	}

	prescriptions := make([]*entity.Prescription, 0, len(prescriptionModels))
	for _, prescriptionM := range prescriptionModels {
		prescriptions = append(prescriptions, toPrescriptionDomain(prescriptionM))
	}

	return prescriptions, nil
}

// Create persists a new prescription with its medications.
func (repo *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM := fromPrescriptionDomain(prescription)

	if err := repo.db.WithContext(ctx).Create(prescriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPatientNotFound.WrapMessage("invalid doctor, patient or appointment reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prescription")
	}

	prescription.ID = prescriptionM.ID
	prescription.CreatedAt = prescriptionM.CreatedAt
	prescription.UpdatedAt = prescriptionM.UpdatedAt
	for i, medicationM := range prescriptionM.Medications {
		prescription.Medications[i].ID = medicationM.ID
		prescription.Medications[i].PrescriptionID = medicationM.PrescriptionID
	}

	return nil
}

// Update modifies an existing prescription, replacing its medications.
func (repo *prescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM := fromPrescriptionDomain(prescription)

	// Medications are replaced wholesale: delete the old rows, then save the
	// prescription with its new association set.
	if err := repo.db.WithContext(ctx).
		Where("prescription_id = ?", prescription.ID).
		Delete(&model.MedicationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace medications")
	}

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(prescriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update prescription")
	}

	prescription.UpdatedAt = prescriptionM.UpdatedAt

	return nil
}

// Delete removes a prescription by its ID.
func (repo *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("prescription_id = ?", id).
		Delete(&model.MedicationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete medications")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PrescriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete prescription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPrescriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPrescriptionDomain converts a GORM PrescriptionModel to a domain Prescription entity.
func toPrescriptionDomain(data *model.PrescriptionModel) *entity.Prescription {
	if data == nil {
		return nil
	}

	medications := make([]*entity.Medication, 0, len(data.Medications))
	for _, medicationM := range data.Medications {
		medications = append(medications, &entity.Medication{
			ID:             medicationM.ID,
			PrescriptionID: medicationM.PrescriptionID,
			Name:           medicationM.Name,
			Dosage:         medicationM.Dosage,
			Frequency:      medicationM.Frequency,
			Duration:       medicationM.Duration,
			Instructions:   medicationM.Instructions,
		})
	}

	return &entity.Prescription{
		ID:            data.ID,
		DoctorID:      data.DoctorID,
		PatientID:     data.PatientID,
		AppointmentID: data.AppointmentID,
		Medications:   medications,
		Notes:         data.Notes,
		IssuedAt:      data.IssuedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPrescriptionDomain converts a domain Prescription entity to a GORM PrescriptionModel.
func fromPrescriptionDomain(data *entity.Prescription) *model.PrescriptionModel {
	if data == nil {
		return nil
	}

	medications := make([]*model.MedicationModel, 0, len(data.Medications))
	for _, medication := range data.Medications {
		medications = append(medications, &model.MedicationModel{
			ID:             medication.ID,
			PrescriptionID: medication.PrescriptionID,
			Name:           medication.Name,
			Dosage:         medication.Dosage,
			Frequency:      medication.Frequency,
			Duration:       medication.Duration,
			Instructions:   medication.Instructions,
		})
	}

	return &model.PrescriptionModel{
		ID:            data.ID,
		DoctorID:      data.DoctorID,
		PatientID:     data.PatientID,
		AppointmentID: data.AppointmentID,
		Medications:   medications,
		Notes:         data.Notes,
		IssuedAt:      data.IssuedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
