package impl

import (
	"context"
	"log/slog"

	"wellkart/config"
	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	currency  string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "INR"
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		currency:  currency,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartPayment mints a provider order for a pending order and records the
// provider order id on it. Calling it again replaces the provider order,
// which keeps abandoned checkout widgets harmless.
func (srv *paymentService) StartPayment(ctx context.Context, input *usecase.StartPaymentInput) (*usecase.StartPaymentOutput, error) {
	srv.log(ctx).Info("Starting payment", slog.Any("orderID", input.OrderID))

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.Status != entity.OrderStatusPending {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order is not awaiting payment")
	}

	// Provider call stays outside the transaction; only the id write is transactional.
	providerOrder, err := srv.gateway.CreateOrder(ctx, order.Total, srv.currency, order.ID.String())
	if err != nil {
		srv.log(ctx).Error("Payment provider rejected order creation", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create provider order")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		current, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}
		if current.Status != entity.OrderStatusPending {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order is not awaiting payment")
		}

		current.PaymentOrderID = providerOrder.ProviderOrderID
		if err := orderRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to record provider order id")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to record provider order", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute start payment transaction")
	}

	return &usecase.StartPaymentOutput{
		ProviderOrderID: providerOrder.ProviderOrderID,
		Amount:          providerOrder.Amount,
		Currency:        providerOrder.Currency,
	}, nil
}

// VerifyPayment checks the provider signature and, on success, marks the
// order paid. A bad signature changes nothing.
func (srv *paymentService) VerifyPayment(ctx context.Context, input *usecase.VerifyPaymentInput) (*entity.Order, error) {
	srv.log(ctx).Info("Verifying payment", slog.String("paymentOrderID", input.PaymentOrderID))

	if !srv.gateway.VerifySignature(input.PaymentOrderID, input.PaymentID, input.Signature) {
		srv.log(ctx).Warn("Payment signature mismatch", slog.String("paymentOrderID", input.PaymentOrderID))

		return nil, errors.Wrap(domainerrors.ErrPaymentSignatureMismatch, "signature verification failed")
	}

	var paidOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByPaymentOrderID(ctx, input.PaymentOrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "no order for this payment")
			}

			return errors.Wrap(err, "failed to find order by payment order id")
		}

		if !order.Status.CanTransitionTo(entity.OrderStatusPaid) {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order cannot be marked paid")
		}

		order.Status = entity.OrderStatusPaid
		order.PaymentID = input.PaymentID
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to mark order paid")
		}

		paidOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to verify payment", slog.String("paymentOrderID", input.PaymentOrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute verify payment transaction")
	}

	srv.log(ctx).Info("Order paid", slog.Any("orderID", paidOrder.ID))

	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.OrderEventPaid,
		OrderID:   paidOrder.ID.String(),
		UserID:    paidOrder.UserID.String(),
		Total:     paidOrder.Total,
		Status:    string(paidOrder.Status),
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order paid event", slog.Any("orderID", paidOrder.ID), slog.Any("error", err))
	}

	return paidOrder, nil
}
