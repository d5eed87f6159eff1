package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/cache"
	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/mykafka"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/service/search"
	"github.com/tprstore/storefront/internal/transport"
)

const lowStockThreshold = 5

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusConfirmed:  true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

type AdminService struct {
	Repo    *repo.GormRepo
	Events  *mykafka.Producer
	Cache   *cache.ProductCache
	ES      *elasticsearch.Client
	ESIndex string
}

func (s *AdminService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, fmt.Errorf("%w: name and slug required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if req.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category_id required", ErrValidation)
	}

	prod := models.Product{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Images:        req.Images,
		Brand:         req.Brand,
		Type:          req.Type,
		Weight:        req.Weight,
		Flavor:        req.Flavor,
		Stock:         req.Stock,
		IsActive:      true,
		IsFeatured:    req.IsFeatured,
		CategoryID:    req.CategoryID,
	}
	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, &prod)
	s.Events.TryPublish(ctx, mykafka.TopicProductEvents, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	return &prod, nil
}

func (s *AdminService) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	prod, err := s.Repo.PatchProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}

	s.Cache.Invalidate(ctx, prod.Slug)
	s.syncIndex(ctx, prod)
	s.Events.TryPublish(ctx, mykafka.TopicProductEvents, fmt.Sprint(prod.ID), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	return prod, nil
}

// DeleteProduct deactivates. Order history references product rows, so
// hard deletes are not offered.
func (s *AdminService) DeleteProduct(ctx context.Context, id uint) error {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return err
	}

	if err := s.Repo.DeactivateProduct(ctx, id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, prod.Slug)
	if s.ES != nil {
		if err := search.DeleteProduct(ctx, s.ES, s.ESIndex, id); err != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "product_id", id, "error", err)
		}
	}
	s.Events.TryPublish(ctx, mykafka.TopicProductEvents, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return nil
}

func (s *AdminService) syncIndex(ctx context.Context, prod *models.Product) {
	if s.ES == nil {
		return
	}
	if !prod.IsActive {
		if err := search.DeleteProduct(ctx, s.ES, s.ESIndex, prod.ID); err != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "product_id", prod.ID, "error", err)
		}
		return
	}
	if err := search.IndexProduct(ctx, s.ES, s.ESIndex, prod); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "product_id", prod.ID, "error", err)
	}
}

func (s *AdminService) ListOrders(ctx context.Context, page, limit int) (*transport.OrderListResponse, error) {
	offset, limit := pageWindow(page, limit)
	total, orders, err := s.Repo.AdminListOrders(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &transport.OrderListResponse{
		Orders:     orders,
		Pagination: transport.NewPagination(pageOf(offset, limit), limit, total),
	}, nil
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	if !validOrderStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.Repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: order already %s", ErrInvalidStatus, order.Status)
	}

	if err := s.Repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.Events.TryPublish(ctx, mykafka.TopicOrderEvents, fmt.Sprint(order.UserID), map[string]any{
		"type":     "order_status_changed",
		"order_id": order.ID,
		"status":   status,
	})

	return order, nil
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (*transport.UserListResponse, error) {
	offset, limit := pageWindow(page, limit)
	total, users, err := s.Repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &transport.UserListResponse{
		Users:      users,
		Pagination: transport.NewPagination(pageOf(offset, limit), limit, total),
	}, nil
}

func (s *AdminService) Stats(ctx context.Context) (*transport.StatsResponse, error) {
	return s.Repo.Stats(ctx, lowStockThreshold)
}
