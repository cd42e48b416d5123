package handler

import (
	"log/slog"
	"net/http"

	"wellkart/internal/delivery/http/response"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{uc: uc, logger: logger}
}

// ListAddresses returns the authenticated user's address book.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress adds an address to the authenticated user's address book.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress replaces one of the authenticated user's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addressID, err := pathUUID(c, "addressId")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress removes one of the authenticated user's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	addressID, err := pathUUID(c, "addressId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted"}, "Address deleted successfully")
}

// SetDefaultAddress marks one of the user's addresses as the default.
// The userID path parameter must match the authenticated user.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	pathUserID, err := pathUUID(c, "userId")
	if err != nil {
		return errors.WithStack(err)
	}
	if pathUserID != userID {
		return errors.WithStack(domainerrors.ErrAddressOwnershipViolation)
	}

	addressID, err := pathUUID(c, "addressId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default address updated"}, "Default address updated successfully")
}
