package impl

import (
	"context"
	"testing"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(txManager, productRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ListProductsInput{Category: "supplements", Limit: 20, Offset: 0}
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Ashwagandha Capsules", Slug: "ashwagandha-capsules"},
		{ID: uuid.New(), Name: "Triphala Powder", Slug: "triphala-powder"},
	}

	expectedFilter := repository.ProductFilter{Category: "supplements", Limit: 20, Offset: 0}
	fx.productRepo.EXPECT().List(ctx, expectedFilter).Return(products, nil)
	fx.productRepo.EXPECT().Count(ctx, expectedFilter).Return(int64(2), nil)

	output, err := fx.service.ListProducts(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, int64(2), output.Total)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindBySlug(ctx, "missing-product").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProductBySlug(ctx, "missing-product")

	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_DefaultsToActive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:          "Ashwagandha Capsules",
		Slug:          "ashwagandha-capsules",
		Category:      "supplements",
		Price:         49900,
		MRP:           59900,
		StockQuantity: 100,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(ctx context.Context, product *entity.Product) error {
			assert.Equal(t, entity.ProductStatusActive, product.Status)
			assert.Equal(t, int64(49900), product.Price.Amount)
			product.ID = uuid.New()

			return nil
		})

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, entity.ProductStatusActive, product.Status)
}

func TestCatalogService_UpdateProduct_KeepsStatusWhenUnset(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.ProductInput{
		Name:  "Ashwagandha Capsules",
		Slug:  "ashwagandha-capsules",
		Price: 44900,
	}
	existing := &entity.Product{ID: productID, Status: entity.ProductStatusInactive}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
			mockProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				RunAndReturn(func(ctx context.Context, product *entity.Product) error {
					assert.Equal(t, productID, product.ID)
					assert.Equal(t, entity.ProductStatusInactive, product.Status)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateProduct(ctx, productID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, updated.Status)
	assert.Equal(t, int64(44900), updated.Price.Amount)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateProduct(ctx, productID, &usecase.ProductInput{Slug: "x"})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CountProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ListProductsInput{Status: entity.ProductStatusActive}

	fx.productRepo.EXPECT().
		Count(ctx, repository.ProductFilter{Status: entity.ProductStatusActive}).
		Return(int64(42), nil)

	total, err := fx.service.CountProducts(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}
