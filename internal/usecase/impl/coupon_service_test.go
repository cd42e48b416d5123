package impl

import (
	"context"
	"testing"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	txManager  *mockRepo.MockTransactionManager
	couponRepo *mockRepo.MockCouponRepository
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)

	service := NewCouponService(txManager, couponRepo, newDiscardLogger())

	return couponServiceFixtures{
		service:    service,
		txManager:  txManager,
		couponRepo: couponRepo,
	}
}

func newTestCouponInput() *usecase.CouponInput {
	return &usecase.CouponInput{
		Code:          "WELCOME50",
		Type:          entity.CouponTypeFlat,
		Value:         5000,
		MinOrderValue: 20000,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(24 * time.Hour),
		MaxUses:       100,
		Active:        true,
	}
}

func TestCouponService_CreateCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	input := newTestCouponInput()

	fx.couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		RunAndReturn(func(ctx context.Context, coupon *entity.Coupon) error {
			assert.Equal(t, "WELCOME50", coupon.Code)
			assert.Zero(t, coupon.UsedCount)
			coupon.ID = uuid.New()

			return nil
		})

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, coupon)
	assert.NotEqual(t, uuid.Nil, coupon.ID)
}

func TestCouponService_CreateCoupon_InvalidInput(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*usecase.CouponInput)
	}{
		{"empty code", func(in *usecase.CouponInput) { in.Code = "" }},
		{"unknown type", func(in *usecase.CouponInput) { in.Type = "bogo" }},
		{"non-positive value", func(in *usecase.CouponInput) { in.Value = 0 }},
		{"percent over 100", func(in *usecase.CouponInput) {
			in.Type = entity.CouponTypePercent
			in.Value = 120
		}},
		{"inverted window", func(in *usecase.CouponInput) {
			in.ValidUntil = in.ValidFrom.Add(-time.Hour)
		}},
		{"negative max uses", func(in *usecase.CouponInput) { in.MaxUses = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := newTestCouponInput()
			tc.mutate(input)

			coupon, err := fx.service.CreateCoupon(ctx, input)

			require.Error(t, err)
			assert.Nil(t, coupon)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCouponService_UpdateCoupon_PreservesUsedCount(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()
	input := newTestCouponInput()
	existing := &entity.Coupon{ID: couponID, Code: "WELCOME50", UsedCount: 37}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)

			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockCouponRepo.EXPECT().FindByID(ctx, couponID).Return(existing, nil)
			mockCouponRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Coupon")).
				RunAndReturn(func(ctx context.Context, coupon *entity.Coupon) error {
					assert.Equal(t, couponID, coupon.ID)
					assert.Equal(t, 37, coupon.UsedCount)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateCoupon(ctx, couponID, input)

	require.NoError(t, err)
	assert.Equal(t, 37, updated.UsedCount)
}

func TestCouponService_ValidateCoupon_Valid(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{
		ID:            uuid.New(),
		Code:          "FESTIVE20",
		Type:          entity.CouponTypePercent,
		Value:         20,
		MinOrderValue: 50000,
		MaxDiscount:   15000,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		MaxUses:       100,
		Active:        true,
	}

	fx.couponRepo.EXPECT().FindByCode(ctx, "FESTIVE20").Return(coupon, nil)

	output, err := fx.service.ValidateCoupon(ctx, &usecase.ValidateCouponInput{
		Code:        "FESTIVE20",
		OrderAmount: 100000,
	})

	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, entity.CouponStateActive, output.State)
	assert.Equal(t, int64(15000), output.Discount)
	assert.Empty(t, output.Reason)
}

func TestCouponService_ValidateCoupon_BelowMinimum(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := newRedeemableCoupon("WELCOME50", 5000)
	coupon.MinOrderValue = 20000

	fx.couponRepo.EXPECT().FindByCode(ctx, "WELCOME50").Return(coupon, nil)

	output, err := fx.service.ValidateCoupon(ctx, &usecase.ValidateCouponInput{
		Code:        "WELCOME50",
		OrderAmount: 10000,
	})

	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, entity.CouponStateActive, output.State)
	assert.NotEmpty(t, output.Reason)
}

func TestCouponService_ValidateCoupon_Exhausted(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := newRedeemableCoupon("WELCOME50", 5000)
	coupon.MaxUses = 10
	coupon.UsedCount = 10

	fx.couponRepo.EXPECT().FindByCode(ctx, "WELCOME50").Return(coupon, nil)

	output, err := fx.service.ValidateCoupon(ctx, &usecase.ValidateCouponInput{
		Code:        "WELCOME50",
		OrderAmount: 100000,
	})

	require.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Equal(t, entity.CouponStateExpired, output.State)
}

func TestCouponService_ValidateCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().
		FindByCode(ctx, "NOPE").
		Return(nil, repository.ErrCouponNotFound)

	output, err := fx.service.ValidateCoupon(ctx, &usecase.ValidateCouponInput{Code: "NOPE"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponNotFound))
}
