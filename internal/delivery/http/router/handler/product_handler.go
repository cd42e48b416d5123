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

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

func listProductsInput(c echo.Context) *usecase.ListProductsInput {
	limit, offset := pagination(c)

	return &usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Status:   entity.ProductStatus(c.QueryParam("status")),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	}
}

// ListProducts returns one page of the catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), listProductsInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": output.Products,
		"total":    output.Total,
	}, "Products retrieved successfully")
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// GetProductBySlug returns a single product by its URL slug.
func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct adds a product to the catalog.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct replaces a product's catalog fields.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// CountProducts returns the total matching the filters, for dashboard tiles.
func (h *ProductHandler) CountProducts(c echo.Context) error {
	total, err := h.uc.CountProducts(c.Request().Context(), listProductsInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": total}, "Product count retrieved successfully")
}
