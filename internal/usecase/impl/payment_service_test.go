package impl

import (
	"context"
	"testing"

	"wellkart/config"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	mockRepo "wellkart/internal/mocks/repository"
	mockSvc "wellkart/internal/mocks/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Publisher: publisher,
		Config:    &config.Config{Payment: &config.PaymentConfig{Currency: "INR"}},
		Logger:    newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
	}
}

func TestPaymentService_StartPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Total: 95000, Status: entity.OrderStatusPending}
	providerOrder := &service.PaymentOrder{
		ProviderOrderID: "order_NXhT2x9vK",
		Amount:          95000,
		Currency:        "INR",
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.gateway.EXPECT().
		CreateOrder(ctx, int64(95000), "INR", orderID.String()).
		Return(providerOrder, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(ctx context.Context, updated *entity.Order) error {
					assert.Equal(t, "order_NXhT2x9vK", updated.PaymentOrderID)

					return nil
				})

			return fn(mockFactory)
		})

	output, err := fx.service.StartPayment(ctx, &usecase.StartPaymentInput{OrderID: orderID})

	require.NoError(t, err)
	assert.Equal(t, "order_NXhT2x9vK", output.ProviderOrderID)
	assert.Equal(t, int64(95000), output.Amount)
	assert.Equal(t, "INR", output.Currency)
}

func TestPaymentService_StartPayment_OrderNotPending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Total: 95000, Status: entity.OrderStatusPaid}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	output, err := fx.service.StartPayment(ctx, &usecase.StartPaymentInput{OrderID: orderID})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestPaymentService_StartPayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	output, err := fx.service.StartPayment(ctx, &usecase.StartPaymentInput{OrderID: orderID})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestPaymentService_VerifyPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:             orderID,
		UserID:         uuid.New(),
		Total:          95000,
		Status:         entity.OrderStatusPending,
		PaymentOrderID: "order_NXhT2x9vK",
	}
	input := &usecase.VerifyPaymentInput{
		PaymentOrderID: "order_NXhT2x9vK",
		PaymentID:      "pay_NXhUQx4mP",
		Signature:      "valid-signature",
	}

	fx.gateway.EXPECT().
		VerifySignature("order_NXhT2x9vK", "pay_NXhUQx4mP", "valid-signature").
		Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				FindByPaymentOrderID(ctx, "order_NXhT2x9vK").
				Return(order, nil)
			mockOrderRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(ctx context.Context, updated *entity.Order) error {
					assert.Equal(t, entity.OrderStatusPaid, updated.Status)
					assert.Equal(t, "pay_NXhUQx4mP", updated.PaymentID)

					return nil
				})

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		RunAndReturn(func(ctx context.Context, event *service.OrderEvent) error {
			assert.Equal(t, service.OrderEventPaid, event.Type)
			assert.Equal(t, orderID.String(), event.OrderID)

			return nil
		})

	paid, err := fx.service.VerifyPayment(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, paid.Status)
}

func TestPaymentService_VerifyPayment_SignatureMismatch(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.VerifyPaymentInput{
		PaymentOrderID: "order_NXhT2x9vK",
		PaymentID:      "pay_NXhUQx4mP",
		Signature:      "tampered",
	}

	fx.gateway.EXPECT().
		VerifySignature("order_NXhT2x9vK", "pay_NXhUQx4mP", "tampered").
		Return(false)

	paid, err := fx.service.VerifyPayment(ctx, input)

	require.Error(t, err)
	assert.Nil(t, paid)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentSignatureMismatch))
}

func TestPaymentService_VerifyPayment_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:             uuid.New(),
		Status:         entity.OrderStatusPaid,
		PaymentOrderID: "order_NXhT2x9vK",
	}
	input := &usecase.VerifyPaymentInput{
		PaymentOrderID: "order_NXhT2x9vK",
		PaymentID:      "pay_NXhUQx4mP",
		Signature:      "valid-signature",
	}

	fx.gateway.EXPECT().
		VerifySignature("order_NXhT2x9vK", "pay_NXhUQx4mP", "valid-signature").
		Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				FindByPaymentOrderID(ctx, "order_NXhT2x9vK").
				Return(order, nil)

			return fn(mockFactory)
		})

	paid, err := fx.service.VerifyPayment(ctx, input)

	require.Error(t, err)
	assert.Nil(t, paid)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}
