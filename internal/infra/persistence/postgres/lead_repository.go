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

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// FindByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by id")
	}

	return toLeadDomain(&leadM), nil
}

// List retrieves leads matching the filter, newest first.
func (repo *leadRepository) List(ctx context.Context, filter repository.LeadFilter) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	query := repo.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

// Create persists a new lead.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required lead information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// Update modifies an existing lead (status progression).
func (repo *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Save(leadM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update lead")
	}

	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// Delete removes a lead by its ID.
func (repo *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LeadModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lead")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLeadDomain converts a GORM LeadModel to a domain Lead entity.
func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Source:    data.Source,
		Message:   data.Message,
		Status:    entity.LeadStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLeadDomain converts a domain Lead entity to a GORM LeadModel.
func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Source:    data.Source,
		Message:   data.Message,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
