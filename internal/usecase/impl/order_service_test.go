package impl

import (
	"context"
	"testing"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	mockSvc "wellkart/internal/mocks/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockSvc.MockEventPublisher
	mailer    *mockSvc.MockMailer
	qrcode    *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	mailer := mockSvc.NewMockMailer(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Publisher: publisher,
		Mailer:    mailer,
		QRCode:    qrcode,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		publisher: publisher,
		mailer:    mailer,
		qrcode:    qrcode,
	}
}

func newTestProduct(name string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		Slug:          name,
		Price:         entity.Price{Amount: price, MRP: price},
		StockQuantity: stock,
		Status:        entity.ProductStatusActive,
	}
}

func newRedeemableCoupon(code string, value int64) *entity.Coupon {
	return &entity.Coupon{
		ID:         uuid.New(),
		Code:       code,
		Type:       entity.CouponTypeFlat,
		Value:      value,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
		MaxUses:    100,
		Active:     true,
	}
}

func TestOrderService_Checkout_WithCouponAndReferral(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := &entity.User{
		ID:              userID,
		Name:            "Asha Patel",
		Email:           "asha@example.com",
		Status:          entity.UserStatusActive,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}
	product := newTestProduct("ashwagandha-capsules", 50000, 10)
	coupon := newRedeemableCoupon("WELCOME50", 5000)
	influencer := &entity.User{
		ID:                uuid.New(),
		InfluencerProfile: &entity.InfluencerProfile{ReferralCode: "PRIYA-3F7A2C", CommissionRate: 0.1},
	}

	input := &usecase.CheckoutInput{
		UserID:       userID,
		Items:        []*usecase.CheckoutItemInput{{ProductID: product.ID, Quantity: 2}},
		CouponCode:   "WELCOME50",
		ReferralCode: "priya-3f7a2c",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)
			mockCouponRepo.EXPECT().FindByCode(ctx, "WELCOME50").Return(coupon, nil)
			mockCouponRepo.EXPECT().Redeem(ctx, "WELCOME50").Return(nil)
			mockUserRepo.EXPECT().FindByReferralCode(ctx, "priya-3f7a2c").Return(influencer, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(ctx context.Context, order *entity.Order) error {
					order.ID = uuid.New()

					return nil
				})

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).Return(nil)

	output, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	order := output.Order
	assert.Equal(t, int64(100000), order.Subtotal)
	assert.Equal(t, int64(5000), order.Discount)
	assert.Equal(t, int64(95000), order.Total)
	assert.Equal(t, "WELCOME50", order.CouponCode)
	assert.Equal(t, "PRIYA-3F7A2C", order.ReferralCode)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(50000), order.Items[0].UnitPrice)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := &entity.User{ID: userID, Status: entity.UserStatusActive}
	product := newTestProduct("triphala-powder", 30000, 1)

	input := &usecase.CheckoutInput{
		UserID: userID,
		Items:  []*usecase.CheckoutItemInput{{ProductID: product.ID, Quantity: 5}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			mockProductRepo.EXPECT().
				DecrementStock(ctx, product.ID, 5).
				Return(repository.ErrInsufficientStock)

			return fn(mockFactory)
		})

	output, err := fx.service.Checkout(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_Checkout_NoItems(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.Checkout(context.Background(), &usecase.CheckoutInput{UserID: uuid.New()})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Checkout_UnknownReferralDropsAttribution(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := &entity.User{ID: userID, Status: entity.UserStatusActive}
	product := newTestProduct("triphala-powder", 30000, 10)

	input := &usecase.CheckoutInput{
		UserID:       userID,
		Items:        []*usecase.CheckoutItemInput{{ProductID: product.ID, Quantity: 1}},
		ReferralCode: "NO-SUCH-CODE",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCouponRepo := mockRepo.NewMockCouponRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CouponRepo().Return(mockCouponRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, product.ID, 1).Return(nil)
			mockUserRepo.EXPECT().
				FindByReferralCode(ctx, "NO-SUCH-CODE").
				Return(nil, repository.ErrUserNotFound)
			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, output.Order.ReferralCode)
}

func TestOrderService_UpdateOrderStatus_CancelRestocksItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
		Items: []*entity.OrderItem{
			{ProductID: productID, Name: "ashwagandha-capsules", UnitPrice: 50000, Quantity: 2},
		},
		Status: entity.OrderStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
			mockProductRepo.EXPECT().IncrementStock(ctx, productID, 2).Return(nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(ctx context.Context, updated *entity.Order) error {
					assert.Equal(t, entity.OrderStatusCancelled, updated.Status)

					return nil
				})

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelled)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ListOrdersInput{UserID: &userID, Limit: 20}
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	expectedFilter := repository.OrderFilter{UserID: &userID, Limit: 20}
	fx.orderRepo.EXPECT().List(ctx, expectedFilter).Return(orders, nil)
	fx.orderRepo.EXPECT().Count(ctx, expectedFilter).Return(int64(1), nil)

	output, err := fx.service.ListOrders(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, orders, output.Orders)
	assert.Equal(t, int64(1), output.Total)
}

func TestOrderService_GetInfluencerEarnings_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	influencer := &entity.User{
		ID: userID,
		InfluencerProfile: &entity.InfluencerProfile{
			UserID:         userID,
			ReferralCode:   "PRIYA-3F7A2C",
			CommissionRate: 0.1,
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(influencer, nil)
	fx.orderRepo.EXPECT().
		SumTotalsByReferralCode(ctx, "PRIYA-3F7A2C").
		Return(int64(250000), nil)

	output, err := fx.service.GetInfluencerEarnings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "PRIYA-3F7A2C", output.ReferralCode)
	assert.Equal(t, int64(250000), output.AttributedTotal)
	assert.Equal(t, int64(25000), output.Commission)
}

func TestOrderService_GetInfluencerEarnings_RoundsToNearestPaisa(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	influencer := &entity.User{
		ID: userID,
		InfluencerProfile: &entity.InfluencerProfile{
			UserID:         userID,
			ReferralCode:   "PRIYA-3F7A2C",
			CommissionRate: 0.1,
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(influencer, nil)
	fx.orderRepo.EXPECT().
		SumTotalsByReferralCode(ctx, "PRIYA-3F7A2C").
		Return(int64(2505), nil)

	output, err := fx.service.GetInfluencerEarnings(ctx, userID)

	// 2505 * 0.1 = 250.5, which rounds to 251, not down to 250.
	require.NoError(t, err)
	assert.Equal(t, int64(251), output.Commission)
}

func TestOrderService_GetInfluencerEarnings_NotInfluencer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, CustomerProfile: &entity.CustomerProfile{UserID: userID}}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := fx.service.GetInfluencerEarnings(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetReferralQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	influencer := &entity.User{
		ID:                userID,
		InfluencerProfile: &entity.InfluencerProfile{UserID: userID, ReferralCode: "PRIYA-3F7A2C"},
	}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(influencer, nil)
	fx.qrcode.EXPECT().GenerateReferralQR("PRIYA-3F7A2C").Return(png, nil)

	got, err := fx.service.GetReferralQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
