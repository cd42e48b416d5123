package impl

import (
	"context"
	"log/slog"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   txManager,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves one page of products matching the filter plus the total.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	filter := productFilterFromInput(input)

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ListProductsOutput{Products: products, Total: total}, nil
}

// GetProduct retrieves a product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// GetProductBySlug retrieves a product by its public slug.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog. Duplicate slugs surface as a conflict.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("slug", input.Slug))

	product := productFromInput(input)
	if product.Status == "" {
		product.Status = entity.ProductStatusActive
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("slug", input.Slug))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces a product's catalog fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", id))

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		product := productFromInput(input)
		product.ID = existing.ID
		if product.Status == "" {
			product.Status = existing.Status
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("productID", id))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", id))

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.Any("productID", id))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// CountProducts returns the number of products matching the filter.
func (srv *catalogService) CountProducts(ctx context.Context, input *usecase.ListProductsInput) (int64, error) {
	total, err := srv.productRepo.Count(ctx, productFilterFromInput(input))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

func productFilterFromInput(input *usecase.ListProductsInput) repository.ProductFilter {
	return repository.ProductFilter{
		Category: input.Category,
		Status:   input.Status,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
}

func productFromInput(input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Name:          input.Name,
		Slug:          input.Slug,
		Description:   input.Description,
		Category:      input.Category,
		Price:         entity.Price{Amount: input.Price, MRP: input.MRP},
		StockQuantity: input.StockQuantity,
		Status:        input.Status,
		Images:        input.Images,
	}
}
