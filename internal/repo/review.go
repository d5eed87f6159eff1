package repo

import (
	"context"

	"github.com/tprstore/storefront/internal/models"
)

func (r *GormRepo) HasReview(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *GormRepo) ListReviews(ctx context.Context, productID uint, offset, limit int) (int64, []models.Review, error) {
	q := r.DB.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var reviews []models.Review
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("User").
		Find(&reviews).Error; err != nil {
		return 0, nil, err
	}
	return total, reviews, nil
}

// RecomputeProductRating rewrites the product's rating and review count
// from the review rows. The contract is recompute-from-source-of-truth,
// not a running average.
func (r *GormRepo) RecomputeProductRating(ctx context.Context, productID uint) error {
	var stats struct {
		Avg float64
		Cnt int64
	}
	if err := r.DB.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"rating":       stats.Avg,
			"review_count": stats.Cnt,
		}).Error
}
