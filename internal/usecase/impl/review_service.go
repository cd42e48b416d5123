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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   txManager,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview records an unapproved review for moderation.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	srv.log(ctx).Debug("Submitting review", slog.Any("productID", input.ProductID), slog.Any("userID", input.UserID))

	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Approved:  false,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to submit review", slog.Any("error", err), slog.Any("productID", input.ProductID))

		return nil, errors.Wrap(err, "failed to submit review")
	}

	return review, nil
}

// ListProductReviews retrieves a product's reviews. The public product page
// passes includeUnapproved=false and only sees moderated reviews.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, includeUnapproved bool) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProductID(ctx, productID, !includeUnapproved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// ListReviews retrieves the moderation queue, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ModerateReview approves or rejects a review.
func (srv *reviewService) ModerateReview(ctx context.Context, id uuid.UUID, approved bool) (*entity.Review, error) {
	srv.log(ctx).Info("Moderating review", slog.Any("reviewID", id), slog.Bool("approved", approved))

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		review.Approved = approved
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		updated = review

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to moderate review", slog.Any("error", err), slog.Any("reviewID", id))

		return nil, errors.Wrap(err, "failed to moderate review")
	}

	return updated, nil
}

// DeleteReview removes a review.
func (srv *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.Any("reviewID", id))

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
