package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager  repository.TransactionManager
	couponRepo repository.CouponRepository
	logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(
	txManager repository.TransactionManager,
	couponRepo repository.CouponRepository,
	logger *slog.Logger,
) usecase.CouponUsecase {
	return &couponService{
		txManager:  txManager,
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCoupons retrieves coupons, newest first.
func (srv *couponService) ListCoupons(ctx context.Context, limit, offset int) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// GetCoupon retrieves a coupon by id.
func (srv *couponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return coupon, nil
}

// CreateCoupon adds a coupon. Duplicate codes surface as a conflict.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CouponInput) (*entity.Coupon, error) {
	srv.log(ctx).Info("Creating coupon", slog.String("code", input.Code))

	if err := validateCouponInput(input); err != nil {
		return nil, err
	}

	coupon := couponFromInput(input)
	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		srv.log(ctx).Error("Failed to create coupon", slog.Any("error", err), slog.String("code", input.Code))

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return coupon, nil
}

// UpdateCoupon replaces a coupon's fields. The usage count is preserved.
func (srv *couponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *usecase.CouponInput) (*entity.Coupon, error) {
	srv.log(ctx).Info("Updating coupon", slog.Any("couponID", id))

	if err := validateCouponInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Coupon
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		existing, err := couponRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
			}

			return errors.Wrap(err, "failed to find coupon")
		}

		coupon := couponFromInput(input)
		coupon.ID = existing.ID
		coupon.UsedCount = existing.UsedCount

		if err := couponRepo.Update(ctx, coupon); err != nil {
			return errors.Wrap(err, "failed to update coupon")
		}

		updated = coupon

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update coupon", slog.Any("error", err), slog.Any("couponID", id))

		return nil, errors.Wrap(err, "failed to update coupon")
	}

	return updated, nil
}

// DeleteCoupon removes a coupon.
func (srv *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting coupon", slog.Any("couponID", id))

	if err := srv.couponRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

// ValidateCoupon is the read-only pre-check the storefront cart calls.
// It never consumes a use.
func (srv *couponService) ValidateCoupon(ctx context.Context, input *usecase.ValidateCouponInput) (*usecase.ValidateCouponOutput, error) {
	coupon, err := srv.couponRepo.FindByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	now := time.Now()
	state := coupon.State(now)

	out := &usecase.ValidateCouponOutput{State: state}

	switch {
	case state != entity.CouponStateActive:
		out.Reason = "coupon is " + string(state)
	case input.OrderAmount < coupon.MinOrderValue:
		out.Reason = "order amount is below the coupon minimum"
	default:
		out.Valid = true
		out.Discount = coupon.DiscountFor(input.OrderAmount)
	}

	return out, nil
}

func validateCouponInput(input *usecase.CouponInput) error {
	switch {
	case input.Code == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "coupon code is required")
	case input.Type != entity.CouponTypeFlat && input.Type != entity.CouponTypePercent:
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown coupon type")
	case input.Value <= 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "coupon value must be positive")
	case input.Type == entity.CouponTypePercent && input.Value > 100:
		return errors.Wrap(domainerrors.ErrValidationFailed, "percent value cannot exceed 100")
	case input.ValidUntil.Before(input.ValidFrom):
		return errors.Wrap(domainerrors.ErrValidationFailed, "validity window ends before it starts")
	case input.MaxUses < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "max uses cannot be negative")
	}

	return nil
}

func couponFromInput(input *usecase.CouponInput) *entity.Coupon {
	return &entity.Coupon{
		Code:          input.Code,
		Type:          input.Type,
		Value:         input.Value,
		MinOrderValue: input.MinOrderValue,
		MaxDiscount:   input.MaxDiscount,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		MaxUses:       input.MaxUses,
		Active:        input.Active,
	}
}
