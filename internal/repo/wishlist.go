package repo

import (
	"context"

	"github.com/tprstore/storefront/internal/models"
)

func (r *GormRepo) GetWishlist(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Category").
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetWishlistItem(ctx context.Context, userID, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateWishlistItem(ctx context.Context, item *models.WishlistItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) DeleteWishlistItem(ctx context.Context, userID, productID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
