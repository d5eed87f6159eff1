package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) OrderNumberTaken(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint, offset, limit int) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Items").
		Preload("Items.Product").
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) AdminListOrders(ctx context.Context, offset, limit int) (int64, []models.Order, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Preload("Items").
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

func (r *GormRepo) GetOrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
