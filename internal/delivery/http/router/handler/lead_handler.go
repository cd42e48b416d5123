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

// LeadHandler holds dependencies for lead handlers.
type LeadHandler struct {
	uc     usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler, injected by Fx.
func NewLeadHandler(uc usecase.LeadUsecase, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{uc: uc, logger: logger}
}

// CaptureLead records a storefront or campaign form submission. Public route.
func (h *LeadHandler) CaptureLead(c echo.Context) error {
	var input *usecase.CaptureLeadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.CaptureLead(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead captured successfully")
}

// ListLeads returns one page of leads for the admin dashboard.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	limit, offset := pagination(c)

	leads, err := h.uc.ListLeads(c.Request().Context(), &usecase.ListLeadsInput{
		Status: entity.LeadStatus(c.QueryParam("status")),
		Source: c.QueryParam("source"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
}

// GetLead returns a single lead by id.
func (h *LeadHandler) GetLead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.GetLead(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead retrieved successfully")
}

// SetLeadStatus moves a lead along the triage pipeline.
func (h *LeadHandler) SetLeadStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Status entity.LeadStatus `json:"status" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.SetLeadStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead status updated successfully")
}

// DeleteLead removes a lead.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteLead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Lead deleted"}, "Lead deleted successfully")
}
