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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewReviewService(txManager, reviewRepo, productRepo, newDiscardLogger())

	return reviewServiceFixtures{
		service:     service,
		txManager:   txManager,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func TestReviewService_SubmitReview_StartsUnapproved(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()
	product := &entity.Product{ID: productID, Status: entity.ProductStatusActive}

	input := &usecase.SubmitReviewInput{
		ProductID: productID,
		UserID:    userID,
		Rating:    5,
		Comment:   "Noticeably better sleep within a week.",
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(ctx context.Context, review *entity.Review) error {
			assert.False(t, review.Approved)
			assert.Equal(t, 5, review.Rating)
			review.ID = uuid.New()

			return nil
		})

	review, err := fx.service.SubmitReview(ctx, input)

	require.NoError(t, err)
	assert.False(t, review.Approved)
}

func TestReviewService_SubmitReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		review, err := fx.service.SubmitReview(context.Background(), &usecase.SubmitReviewInput{
			ProductID: uuid.New(),
			UserID:    uuid.New(),
			Rating:    rating,
		})

		require.Error(t, err)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestReviewService_SubmitReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	review, err := fx.service.SubmitReview(ctx, &usecase.SubmitReviewInput{
		ProductID: productID,
		UserID:    uuid.New(),
		Rating:    4,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_ListProductReviews_PublicOnlySeesApproved(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	approved := []*entity.Review{{ID: uuid.New(), ProductID: productID, Approved: true}}

	fx.reviewRepo.EXPECT().FindByProductID(ctx, productID, true).Return(approved, nil)

	got, err := fx.service.ListProductReviews(ctx, productID, false)

	require.NoError(t, err)
	assert.Equal(t, approved, got)
}

func TestReviewService_ListProductReviews_ModeratorSeesAll(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	all := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Approved: true},
		{ID: uuid.New(), ProductID: productID, Approved: false},
	}

	fx.reviewRepo.EXPECT().FindByProductID(ctx, productID, false).Return(all, nil)

	got, err := fx.service.ListProductReviews(ctx, productID, true)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReviewService_ModerateReview_Approve(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, Approved: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)
			mockReviewRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Review")).
				RunAndReturn(func(ctx context.Context, updated *entity.Review) error {
					assert.True(t, updated.Approved)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.ModerateReview(ctx, reviewID, true)

	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestReviewService_ModerateReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.ModerateReview(ctx, reviewID, true)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
