package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/cache"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/transport"
)

const relatedProductLimit = 4

type CatalogService struct {
	Repo  *repo.GormRepo
	Cache *cache.ProductCache
}

type ProductQuery struct {
	Category string
	Brand    string
	Type     string
	MinPrice int64
	MaxPrice int64
	Search   string
	Sort     string
	Page     int
	Limit    int
}

func (s *CatalogService) ListProducts(ctx context.Context, q ProductQuery) (*transport.ProductListResponse, error) {
	offset, limit := pageWindow(q.Page, q.Limit)

	total, items, err := s.Repo.ListProducts(ctx, repo.ProductFilter{
		Category: q.Category,
		Brand:    q.Brand,
		Type:     q.Type,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Search:   q.Search,
		Sort:     q.Sort,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return &transport.ProductListResponse{
		Products:   items,
		Pagination: transport.NewPagination(pageOf(offset, limit), limit, total),
	}, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*transport.ProductDetailResponse, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug required", ErrValidation)
	}

	var cached transport.ProductDetailResponse
	if s.Cache.Get(ctx, slug, &cached) {
		return &cached, nil
	}

	product, err := s.Repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %q", ErrNotFound, slug)
		}
		return nil, err
	}

	related, err := s.Repo.RelatedProducts(ctx, product.CategoryID, product.ID, relatedProductLimit)
	if err != nil {
		return nil, err
	}

	resp := &transport.ProductDetailResponse{
		Product:         *product,
		RelatedProducts: related,
	}
	s.Cache.Set(ctx, slug, resp)
	return resp, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]transport.CategoryWithCount, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]transport.BrandCount, error) {
	return s.Repo.ListBrands(ctx)
}
