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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// SubmitReview records a customer's product review, held for moderation.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID

	review, err := h.uc.SubmitReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// ListProductReviews returns a product's approved reviews. Admins may pass
// includeUnapproved to see the moderation queue for the product.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	includeUnapproved := c.QueryParam("includeUnapproved") == "true" &&
		currentRoles(c).ContainsAny(entity.RoleAdmin, entity.RoleSuperAdmin)

	reviews, err := h.uc.ListProductReviews(c.Request().Context(), productID, includeUnapproved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListReviews returns one page of all reviews for the moderation queue.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	limit, offset := pagination(c)

	reviews, err := h.uc.ListReviews(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ModerateReview approves or rejects a pending review.
func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Approved bool `json:"approved"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.ModerateReview(c.Request().Context(), id, input.Approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review moderated successfully")
}

// DeleteReview removes a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}
