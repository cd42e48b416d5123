package handler

import (
	"log/slog"
	"net/http"

	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/entity"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order and earnings handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Checkout places an order for the authenticated customer.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID

	output, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order placed successfully")
}

// ListMyOrders returns the authenticated user's own order history.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	limit, offset := pagination(c)
	output, err := h.uc.ListOrders(c.Request().Context(), &usecase.ListOrdersInput{
		UserID: &userID,
		Status: entity.OrderStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": output.Orders,
		"total":  output.Total,
	}, "Orders retrieved successfully")
}

func listOrdersInput(c echo.Context) (*usecase.ListOrdersInput, error) {
	limit, offset := pagination(c)
	input := &usecase.ListOrdersInput{
		Status:       entity.OrderStatus(c.QueryParam("status")),
		ReferralCode: c.QueryParam("referralCode"),
		Limit:        limit,
		Offset:       offset,
	}
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.UserID = &id
	}

	return input, nil
}

// ListOrders returns one page of all orders for the admin dashboard.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input, err := listOrdersInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": output.Orders,
		"total":  output.Total,
	}, "Orders retrieved successfully")
}

// CountOrders returns the total matching the filters, for dashboard tiles.
func (h *OrderHandler) CountOrders(c echo.Context) error {
	input, err := listOrdersInput(c)
	if err != nil {
		return err
	}

	total, err := h.uc.CountOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": total}, "Order count retrieved successfully")
}

// GetOrder returns a single order by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateOrderStatus moves an order along its status machine.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Status entity.OrderStatus `json:"status" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// DeleteOrder hard-deletes an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order deleted"}, "Order deleted successfully")
}

// GetEarnings summarizes the authenticated influencer's commission.
func (h *OrderHandler) GetEarnings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetInfluencerEarnings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Earnings retrieved successfully")
}

// GetReferralQR streams the influencer's referral link as a PNG QR code.
func (h *OrderHandler) GetReferralQR(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.GetReferralQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
