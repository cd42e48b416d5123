package postgres

import (
	"context"
	"strings"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByID retrieves a coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// FindByCode retrieves a coupon by its code, case-insensitive.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// List retrieves all coupons, newest first.
func (repo *couponRepository) List(ctx context.Context, limit, offset int) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create persists a new coupon. Codes are stored uppercase so the unique
// index doubles as the case-insensitive duplicate check.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCouponCode.WrapMessage("code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Update modifies an existing coupon.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	coupon.Code = strings.ToUpper(coupon.Code)
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Save(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCouponCode.WrapMessage("code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update coupon")
	}

	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Delete removes a coupon by its ID.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// Redeem atomically increments used_count. The validity window, active flag
// and usage cap all live in the UPDATE predicate, so concurrent checkouts can
// never push the count past the cap.
func (repo *couponRepository) Redeem(ctx context.Context, code string) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("LOWER(code) = LOWER(?)", code).
		Where("active").
		Where("valid_from <= ? AND valid_until >= ?", now, now).
		Where("max_uses = 0 OR used_count < max_uses").
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to redeem coupon")
	}

	if result.RowsAffected == 0 {
		// Disambiguate missing coupon from an exhausted one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CouponModel{}).
			Where("LOWER(code) = LOWER(?)", code).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check coupon existence")
		}
		if count == 0 {
			return repository.ErrCouponNotFound
		}

		return repository.ErrCouponExhausted
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:            data.ID,
		Code:          data.Code,
		Type:          entity.CouponType(data.Type),
		Value:         data.Value,
		MinOrderValue: data.MinOrderValue,
		MaxDiscount:   data.MaxDiscount,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		MaxUses:       data.MaxUses,
		UsedCount:     data.UsedCount,
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:            data.ID,
		Code:          data.Code,
		Type:          string(data.Type),
		Value:         data.Value,
		MinOrderValue: data.MinOrderValue,
		MaxDiscount:   data.MaxDiscount,
		ValidFrom:     data.ValidFrom,
		ValidUntil:    data.ValidUntil,
		MaxUses:       data.MaxUses,
		UsedCount:     data.UsedCount,
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
