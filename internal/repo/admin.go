package repo

import (
	"context"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/transport"
)

func (r *GormRepo) ListUsers(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var users []models.User
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

func (r *GormRepo) Stats(ctx context.Context, lowStockThreshold int) (*transport.StatsResponse, error) {
	var s transport.StatsResponse

	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&s.Products).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&s.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&s.Users).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&s.Revenue).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&s.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("is_active = ? AND stock <= ?", true, lowStockThreshold).
		Count(&s.LowStock).Error; err != nil {
		return nil, err
	}

	return &s, nil
}
