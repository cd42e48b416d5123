package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	mailer    service.Mailer
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Mailer    service.Mailer
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		mailer:    params.Mailer,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order. Everything that mutates state (stock decrements,
// coupon redemption, the order row itself) happens in one transaction, so a
// failed line or an exhausted coupon leaves nothing behind.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", input.UserID), slog.Int("items", len(input.Items)))

	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "checkout requires at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
	}

	var placedOrder *entity.Order
	var buyer *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		productRepo := repoFactory.ProductRepo()
		couponRepo := repoFactory.CouponRepo()
		orderRepo := repoFactory.OrderRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		buyer = user

		orderItems, subtotal, err := srv.buildOrderLines(ctx, productRepo, input.Items)
		if err != nil {
			return err
		}

		var discount int64
		couponCode := ""
		if input.CouponCode != "" {
			discount, couponCode, err = srv.applyCoupon(ctx, couponRepo, input.CouponCode, subtotal)
			if err != nil {
				return err
			}
		}

		referralCode, err := srv.resolveReferral(ctx, userRepo, input.ReferralCode)
		if err != nil {
			return err
		}

		order := &entity.Order{
			UserID:       input.UserID,
			Items:        orderItems,
			Subtotal:     subtotal,
			Discount:     discount,
			Total:        subtotal - discount,
			CouponCode:   couponCode,
			ReferralCode: referralCode,
			Status:       entity.OrderStatusPending,
			AddressID:    input.AddressID,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		placedOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.Any("error", err), slog.Any("userID", input.UserID))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", placedOrder.ID), slog.Int64("total", placedOrder.Total))

	srv.publishOrderEvent(ctx, service.OrderEventCreated, placedOrder)
	srv.sendOrderConfirmation(ctx, buyer, placedOrder)

	return &usecase.CheckoutOutput{Order: placedOrder}, nil
}

// buildOrderLines snapshots name and unit price from the current catalog and
// decrements stock per line through the guarded update.
func (srv *orderService) buildOrderLines(
	ctx context.Context,
	productRepo repository.ProductRepository,
	items []*usecase.CheckoutItemInput,
) ([]*entity.OrderItem, int64, error) {
	orderItems := make([]*entity.OrderItem, 0, len(items))
	var subtotal int64

	for _, item := range items {
		product, err := productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return nil, 0, errors.Wrap(err, "failed to find product")
		}
		if product.Status != entity.ProductStatusActive {
			return nil, 0, errors.Wrap(domainerrors.ErrProductNotFound, "product is not available")
		}

		if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, 0, errors.Wrap(domainerrors.ErrInsufficientStock, product.Name)
			}

			return nil, 0, errors.Wrap(err, "failed to decrement stock")
		}

		line := &entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price.Amount,
			Quantity:  item.Quantity,
		}
		orderItems = append(orderItems, line)
		subtotal += line.Subtotal()
	}

	return orderItems, subtotal, nil
}

// applyCoupon validates the coupon against the subtotal and redeems it through
// the guarded update. Returns the discount and the stored (canonical) code.
func (srv *orderService) applyCoupon(
	ctx context.Context,
	couponRepo repository.CouponRepository,
	code string,
	subtotal int64,
) (int64, string, error) {
	coupon, err := couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return 0, "", errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
		}

		return 0, "", errors.Wrap(err, "failed to find coupon")
	}

	if !coupon.Redeemable(time.Now(), subtotal) {
		return 0, "", errors.Wrap(domainerrors.ErrCouponNotRedeemable, "coupon cannot be applied to this order")
	}

	if err := couponRepo.Redeem(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCouponExhausted) {
			return 0, "", errors.Wrap(domainerrors.ErrCouponNotRedeemable, "coupon exhausted")
		}

		return 0, "", errors.Wrap(err, "failed to redeem coupon")
	}

	return coupon.DiscountFor(subtotal), coupon.Code, nil
}

// resolveReferral maps a referral code to its canonical stored form. An
// unknown code drops the attribution rather than failing the checkout.
func (srv *orderService) resolveReferral(ctx context.Context, userRepo repository.UserRepository, code string) (string, error) {
	if code == "" {
		return "", nil
	}

	influencer, err := userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Unknown referral code on checkout, dropping attribution", slog.String("code", code))

			return "", nil
		}

		return "", errors.Wrap(err, "failed to resolve referral code")
	}

	return influencer.InfluencerProfile.ReferralCode, nil
}

// GetOrder retrieves an order with its items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders retrieves one page of orders matching the filter plus the total.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	filter := orderFilterFromInput(input)

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.ListOrdersOutput{Orders: orders, Total: total}, nil
}

// CountOrders returns the number of orders matching the filter.
func (srv *orderService) CountOrders(ctx context.Context, input *usecase.ListOrdersInput) (int64, error) {
	total, err := srv.orderRepo.Count(ctx, orderFilterFromInput(input))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return total, nil
}

// UpdateOrderStatus moves an order along the status machine. Cancelling
// restocks every line in the same transaction.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status", slog.Any("orderID", id), slog.Any("status", status))

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		productRepo := repoFactory.ProductRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !order.Status.CanTransitionTo(status) {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition,
				fmt.Sprintf("cannot change order from %s to %s", order.Status, status))
		}

		if status == entity.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					// The product may have been deleted since the order was placed.
					if errors.Is(err, repository.ErrProductNotFound) {
						srv.log(ctx).Warn("Skipping restock for missing product", slog.Any("productID", item.ProductID))

						continue
					}

					return errors.Wrap(err, "failed to restock cancelled order line")
				}
			}
		}

		order.Status = status
		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		updated = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update order status", slog.Any("error", err), slog.Any("orderID", id))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	if status == entity.OrderStatusCancelled {
		srv.publishOrderEvent(ctx, service.OrderEventCancelled, updated)
	}

	return updated, nil
}

// DeleteOrder hard-deletes an order. Operational cleanup only; normal flows cancel.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Warn("Hard-deleting order", slog.Any("orderID", id))

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// GetInfluencerEarnings computes commission over attributed, non-cancelled orders.
func (srv *orderService) GetInfluencerEarnings(ctx context.Context, influencerUserID uuid.UUID) (*usecase.EarningsOutput, error) {
	profile, err := srv.loadInfluencerProfile(ctx, influencerUserID)
	if err != nil {
		return nil, err
	}

	attributed, err := srv.orderRepo.SumTotalsByReferralCode(ctx, profile.ReferralCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum attributed order totals")
	}

	return &usecase.EarningsOutput{
		ReferralCode:    profile.ReferralCode,
		AttributedTotal: attributed,
		CommissionRate:  profile.CommissionRate,
		Commission:      int64(math.Round(float64(attributed) * profile.CommissionRate)),
	}, nil
}

// GetReferralQR renders a PNG QR code for the influencer's storefront link.
func (srv *orderService) GetReferralQR(ctx context.Context, influencerUserID uuid.UUID) ([]byte, error) {
	profile, err := srv.loadInfluencerProfile(ctx, influencerUserID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateReferralQR(profile.ReferralCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

func (srv *orderService) loadInfluencerProfile(ctx context.Context, userID uuid.UUID) (*entity.InfluencerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.InfluencerProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "account has no influencer profile")
	}

	return user.InfluencerProfile, nil
}

// publishOrderEvent emits an order lifecycle event. Failures are logged, not
// surfaced; the order itself is already committed.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         eventType,
		OrderID:      order.ID.String(),
		UserID:       order.UserID.String(),
		Total:        order.Total,
		Status:       string(order.Status),
		ReferralCode: order.ReferralCode,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.String("type", eventType), slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// sendOrderConfirmation emails the buyer. Best effort.
func (srv *orderService) sendOrderConfirmation(ctx context.Context, buyer *entity.User, order *entity.Order) {
	if buyer == nil || buyer.Email == "" {
		return
	}

	mail := &service.Mail{
		To:      buyer.Email,
		Subject: fmt.Sprintf("Order %s received", order.ID),
		Body: fmt.Sprintf("Hi %s,\r\n\r\nWe have received your order %s for a total of %d.\r\nWe will let you know as soon as it ships.\r\n",
			buyer.Name, order.ID, order.Total),
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send order confirmation", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

func orderFilterFromInput(input *usecase.ListOrdersInput) repository.OrderFilter {
	return repository.OrderFilter{
		UserID:       input.UserID,
		Status:       input.Status,
		ReferralCode: input.ReferralCode,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}
}
