package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
)

func (r *GormRepo) GetSubscription(ctx context.Context, email string) (*models.Newsletter, error) {
	var sub models.Newsletter
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormRepo) CreateSubscription(ctx context.Context, sub *models.Newsletter) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *GormRepo) SetSubscriptionActive(ctx context.Context, email string, active bool) error {
	res := r.DB.WithContext(ctx).Model(&models.Newsletter{}).
		Where("email = ?", email).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) CreateCallbackRequest(ctx context.Context, req *models.CallbackRequest) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

func (r *GormRepo) ListCallbackRequests(ctx context.Context, userID uint) ([]models.CallbackRequest, error) {
	var out []models.CallbackRequest
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
