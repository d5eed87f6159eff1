package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/transport"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID uint) (*transport.WishlistResponse, error) {
	items, err := s.Repo.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &transport.WishlistResponse{Items: items}, nil
}

// Toggle removes the product if present, adds it otherwise. A
// concurrent duplicate insert trips the unique (user, product) index
// and is surfaced as a conflict, not silently ignored.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID uint) (*transport.ToggleWishlistResponse, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}

	existing, err := s.Repo.GetWishlistItem(ctx, userID, productID)
	if err == nil {
		if _, err := s.Repo.DeleteWishlistItem(ctx, userID, existing.ProductID); err != nil {
			return nil, err
		}
		return &transport.ToggleWishlistResponse{Added: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product, err := s.Repo.GetActiveProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	item := models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.Repo.CreateWishlistItem(ctx, &item); err != nil {
		// Lost the race against another add for the same pair.
		return nil, fmt.Errorf("%w: product %d", ErrDuplicateWishlist, productID)
	}
	item.Product = product

	return &transport.ToggleWishlistResponse{Added: true, Item: &item}, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) error {
	removed, err := s.Repo.DeleteWishlistItem(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: product %d not in wishlist", ErrNotFound, productID)
	}
	return nil
}
