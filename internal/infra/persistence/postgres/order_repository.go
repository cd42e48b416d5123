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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByPaymentOrderID resolves an order by the payment provider's order id.
func (repo *orderRepository) FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("payment_order_id = ?", paymentOrderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by payment order id")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := applyOrderFilter(repo.db.WithContext(ctx).Preload("Items"), filter).
		Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Count returns the number of orders matching the filter.
func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64

	query := applyOrderFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// SumTotalsByReferralCode sums order totals attributed to a referral code,
// excluding cancelled orders.
func (repo *orderRepository) SumTotalsByReferralCode(ctx context.Context, code string) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("referral_code = ? AND status <> ?", code, string(entity.OrderStatusCancelled)).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum referral order totals")
	}

	return total, nil
}

// Create persists a new order with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// Update modifies an existing order (status, payment fields).
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":           string(order.Status),
			"payment_order_id": order.PaymentOrderID,
			"payment_id":       order.PaymentID,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete hard-deletes an order and its items. Operational cleanup only.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindOrphaned lists orders whose user record no longer resolves.
func (repo *orderRepository) FindOrphaned(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id NOT IN (SELECT id FROM users)").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orphaned orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ReassignUser re-links an order to another user (guest-user repair).
func (repo *orderRepository) ReassignUser(ctx context.Context, orderID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("user_id", userID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reassign order user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func applyOrderFilter(query *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ReferralCode != "" {
		query = query.Where("referral_code = ?", filter.ReferralCode)
	}

	return query
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			UnitPrice: itemM.UnitPrice,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		Items:          items,
		Subtotal:       data.Subtotal,
		Discount:       data.Discount,
		Total:          data.Total,
		CouponCode:     data.CouponCode,
		ReferralCode:   data.ReferralCode,
		Status:         entity.OrderStatus(data.Status),
		AddressID:      data.AddressID,
		PaymentOrderID: data.PaymentOrderID,
		PaymentID:      data.PaymentID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Items:          items,
		Subtotal:       data.Subtotal,
		Discount:       data.Discount,
		Total:          data.Total,
		CouponCode:     data.CouponCode,
		ReferralCode:   data.ReferralCode,
		Status:         string(data.Status),
		AddressID:      data.AddressID,
		PaymentOrderID: data.PaymentOrderID,
		PaymentID:      data.PaymentID,
	}
}
