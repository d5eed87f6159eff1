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

type CartService struct {
	Repo   *repo.GormRepo
	Events *mykafka.Producer
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*transport.CartResponse, error) {
	items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, it := range items {
		if it.Product != nil {
			total += int64(it.Quantity) * it.Product.Price
		}
	}
	return &transport.CartResponse{Items: items, Total: total}, nil
}

// AddToCart merges quantity into the user's existing line for the
// product. The stock ceiling is cumulative: existing quantity plus the
// requested addition may not exceed current stock.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidQuantity)
	}

	product, err := s.Repo.GetActiveProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	ok, err := s.Repo.UpsertCartItem(ctx, &item, product.Stock)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (stock %d)", ErrInsufficientStock, product.Name, product.Stock)
	}
	item.Product = product

	s.Events.TryPublish(ctx, mykafka.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": productID,
		"quantity":   item.Quantity,
	})

	return &item, nil
}

// SetQuantity sets an absolute quantity. Zero deletes the line and is
// idempotent; negative is rejected; above stock conflicts.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidQuantity)
	}

	if quantity == 0 {
		if err := s.Repo.DeleteCartItem(ctx, userID, itemID); err != nil {
			return nil, err
		}
		s.Events.TryPublish(ctx, mykafka.TopicCartEvents, fmt.Sprint(userID), map[string]any{
			"type":    "cart_item_removed",
			"user_id": userID,
			"item_id": itemID,
		})
		return nil, nil
	}

	item, err := s.Repo.GetCartItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
		}
		return nil, err
	}

	product, err := s.Repo.GetActiveProduct(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, item.ProductID)
		}
		return nil, err
	}
	if quantity > product.Stock {
		return nil, fmt.Errorf("%w: %s (stock %d)", ErrInsufficientStock, product.Name, product.Stock)
	}

	if err := s.Repo.UpdateCartQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.Product = product
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.Repo.DeleteCartItem(ctx, userID, itemID)
}
