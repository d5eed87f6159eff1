package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Category").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertCartItem adds quantity to the user's line for this product, or
// creates the line. The stock ceiling is cumulative and checked inside
// the UPDATE so rapid double-submits cannot bypass it. Returns false
// when adding would exceed maxStock.
func (r *GormRepo) UpsertCartItem(ctx context.Context, item *models.CartItem, maxStock int) (bool, error) {
	ok := true
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ? AND quantity + ? <= ?",
				item.UserID, item.ProductID, item.Quantity, maxStock).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
				First(item).Error
		}

		// Either no row yet, or the ceiling blocked the increment.
		var existing models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			First(&existing).Error
		if err == nil {
			ok = false
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if item.Quantity > maxStock {
			ok = false
			return nil
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *GormRepo) UpdateCartQuantity(ctx context.Context, itemID uint, qty int) error {
	return r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", qty).Error
}

// DeleteCartItem is idempotent: deleting an absent line is not an error.
func (r *GormRepo) DeleteCartItem(ctx context.Context, userID, itemID uint) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
