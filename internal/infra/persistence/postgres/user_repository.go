// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading profiles and addresses.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading profiles and addresses.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByReferralCode resolves an influencer by their unique referral code.
func (repo *userRepository) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var profileM model.InfluencerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("referral_code = ?", code).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find influencer profile by referral code")
	}

	return repo.FindByID(ctx, profileM.UserID)
}

// List retrieves users matching the filter.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.applyFilter(repo.withProfiles(ctx), filter).
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count returns the number of users matching the filter.
func (repo *userRepository) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	var count int64

	query := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.UserModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// Create persists a new user entity, including its associated profiles.
// GORM's Create with associations inserts the users row and the profile rows together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or referral code already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	syncProfileOwners(user)

	return nil
}

// Update modifies an existing user entity, including its associated profiles.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update nested profile rows as well.
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Omit("Addresses").
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or referral code already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("DoctorProfile").
		Preload("InfluencerProfile").
		Preload("AdminProfile").
		Preload("Addresses")
}

func (repo *userRepository) applyFilter(query *gorm.DB, filter repository.UserFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	switch filter.Role {
	case entity.RoleCustomer:
		query = query.Where("id IN (SELECT user_id FROM customer_profiles)")
	case entity.RoleDoctor:
		query = query.Where("id IN (SELECT user_id FROM doctor_profiles)")
	case entity.RoleInfluencer:
		query = query.Where("id IN (SELECT user_id FROM influencer_profiles)")
	case entity.RoleAdmin:
		query = query.Where("id IN (SELECT user_id FROM admin_profiles WHERE NOT super)")
	case entity.RoleSuperAdmin:
		query = query.Where("id IN (SELECT user_id FROM admin_profiles WHERE super)")
	}

	return query
}

// syncProfileOwners propagates the generated user id into attached profiles.
func syncProfileOwners(user *entity.User) {
	if user.CustomerProfile != nil {
		user.CustomerProfile.UserID = user.ID
	}
	if user.DoctorProfile != nil {
		user.DoctorProfile.UserID = user.ID
	}
	if user.InfluencerProfile != nil {
		user.InfluencerProfile.UserID = user.ID
	}
	if user.AdminProfile != nil {
		user.AdminProfile.UserID = user.ID
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	addresses := make([]*entity.Address, 0, len(data.Addresses))
	for _, addrM := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addrM))
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		Status:    entity.UserStatus(data.Status),
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			UserID:    data.CustomerProfile.UserID,
			UpdatedAt: data.CustomerProfile.UpdatedAt,
		}
	}
	if data.DoctorProfile != nil {
		user.DoctorProfile = &entity.DoctorProfile{
			UserID:         data.DoctorProfile.UserID,
			Specialization: data.DoctorProfile.Specialization,
			LicenseNumber:  data.DoctorProfile.LicenseNumber,
			UpdatedAt:      data.DoctorProfile.UpdatedAt,
		}
	}
	if data.InfluencerProfile != nil {
		user.InfluencerProfile = &entity.InfluencerProfile{
			UserID:         data.InfluencerProfile.UserID,
			ReferralCode:   data.InfluencerProfile.ReferralCode,
			CommissionRate: data.InfluencerProfile.CommissionRate,
			UpdatedAt:      data.InfluencerProfile.UpdatedAt,
		}
	}
	if data.AdminProfile != nil {
		user.AdminProfile = &entity.AdminProfile{
			UserID:    data.AdminProfile.UserID,
			Super:     data.AdminProfile.Super,
			UpdatedAt: data.AdminProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:     data.ID,
		Email:  data.Email,
		Name:   data.Name,
		Phone:  data.Phone,
		Status: string(data.Status),
	}

	if data.CustomerProfile != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			UserID: data.CustomerProfile.UserID,
		}
	}
	if data.DoctorProfile != nil {
		userM.DoctorProfile = &model.DoctorProfileModel{
			UserID:         data.DoctorProfile.UserID,
			Specialization: data.DoctorProfile.Specialization,
			LicenseNumber:  data.DoctorProfile.LicenseNumber,
		}
	}
	if data.InfluencerProfile != nil {
		userM.InfluencerProfile = &model.InfluencerProfileModel{
			UserID:         data.InfluencerProfile.UserID,
			ReferralCode:   data.InfluencerProfile.ReferralCode,
			CommissionRate: data.InfluencerProfile.CommissionRate,
		}
	}
	if data.AdminProfile != nil {
		userM.AdminProfile = &model.AdminProfileModel{
			UserID: data.AdminProfile.UserID,
			Super:  data.AdminProfile.Super,
		}
	}

	return userM
}
