package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/mykafka"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/transport"
)

type ReviewService struct {
	Repo   *repo.GormRepo
	Events *mykafka.Producer
}

// AddReview inserts the review and recomputes the product's rating
// aggregate in the same transaction, so two concurrent reviews can
// never commit an inconsistent mean.
func (s *ReviewService) AddReview(ctx context.Context, userID uint, req transport.ReviewRequest) (*models.Review, error) {
	if req.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if _, err := s.Repo.GetActiveProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, req.ProductID)
		}
		return nil, err
	}

	review := models.Review{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	txErr := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		exists, err := tx.HasReview(ctx, userID, req.ProductID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateReview
		}

		if err := tx.CreateReview(ctx, &review); err != nil {
			// The unique (user, product) index closes the
			// check-then-insert race.
			return fmt.Errorf("%w: product %d", ErrDuplicateReview, req.ProductID)
		}

		return tx.RecomputeProductRating(ctx, req.ProductID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Events.TryPublish(ctx, mykafka.TopicReviewEvents, fmt.Sprint(userID), map[string]any{
		"type":       "review_created",
		"user_id":    userID,
		"product_id": req.ProductID,
		"rating":     req.Rating,
	})

	return &review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, productID uint, page, limit int) (*transport.ReviewListResponse, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	offset, limit := pageWindow(page, limit)
	total, reviews, err := s.Repo.ListReviews(ctx, productID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &transport.ReviewListResponse{
		Reviews:    reviews,
		Pagination: transport.NewPagination(pageOf(offset, limit), limit, total),
	}, nil
}
