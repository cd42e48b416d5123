package handler

import (
	"log/slog"
	"net/http"

	"wellkart/internal/delivery/http/response"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{uc: uc, logger: logger}
}

// ListCoupons returns one page of coupons for the admin dashboard.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	limit, offset := pagination(c)

	coupons, err := h.uc.ListCoupons(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}

// GetCoupon returns a single coupon by id.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.GetCoupon(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon retrieved successfully")
}

// CreateCoupon adds a coupon.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// UpdateCoupon replaces a coupon's fields. The redemption counter survives.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.UpdateCoupon(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon updated successfully")
}

// DeleteCoupon removes a coupon.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deleted"}, "Coupon deleted successfully")
}

// ValidateCoupon is the storefront cart's read-only pre-check.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var input *usecase.ValidateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ValidateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Coupon validated")
}
