package handler

import (
	"log/slog"
	"net/http"

	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/entity"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingHandler holds dependencies for platform-settings handlers.
type SettingHandler struct {
	uc     usecase.SettingUsecase
	logger *slog.Logger
}

// NewSettingHandler is the constructor for SettingHandler, injected by Fx.
func NewSettingHandler(uc usecase.SettingUsecase, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{uc: uc, logger: logger}
}

// GetSetting returns the settings document for one concern.
func (h *SettingHandler) GetSetting(c echo.Context) error {
	setting, err := h.uc.GetSetting(c.Request().Context(), entity.SettingKey(c.Param("key")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Setting retrieved successfully")
}

// SaveSetting upserts the settings document for one concern.
func (h *SettingHandler) SaveSetting(c echo.Context) error {
	var input struct {
		Values map[string]string `json:"values" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	setting, err := h.uc.SaveSetting(c.Request().Context(), entity.SettingKey(c.Param("key")), input.Values)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Setting saved successfully")
}
