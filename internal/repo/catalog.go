package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/transport"
)

// Supported catalog sort keys. Anything else falls back to newest-first.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortRating    = "rating"
	SortPopular   = "popular"
	SortNewest    = "newest"
)

type ProductFilter struct {
	Category string
	Brand    string
	Type     string
	MinPrice int64
	MaxPrice int64
	Search   string
	Sort     string
	Offset   int
	Limit    int
}

// SortClause maps a sort key to its ORDER BY expression. Pure, so the
// sort enumeration is testable without a database.
func SortClause(sort string) string {
	switch sort {
	case SortPriceLow:
		return "products.price ASC"
	case SortPriceHigh:
		return "products.price DESC"
	case SortName:
		return "products.name ASC"
	case SortRating:
		return "products.rating DESC"
	case SortPopular:
		return "products.review_count DESC"
	default:
		return "products.created_at DESC"
	}
}

func (f ProductFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Where("products.is_active = ?", true)
	if f.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.Category)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(products.brand) LIKE LOWER(?)", "%"+f.Brand+"%")
	}
	if f.Type != "" {
		q = q.Where("LOWER(products.type) LIKE LOWER(?)", "%"+f.Type+"%")
	}
	if f.MinPrice > 0 {
		q = q.Where("products.price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("products.price <= ?", f.MaxPrice)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where(
			"LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?) OR LOWER(products.brand) LIKE LOWER(?)",
			pat, pat, pat,
		)
	}
	return q
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) (int64, []models.Product, error) {
	var total int64
	if err := f.apply(r.DB.WithContext(ctx).Model(&models.Product{})).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := f.apply(r.DB.WithContext(ctx).Model(&models.Product{})).
		Order(SortClause(f.Sort)).
		Offset(f.Offset).
		Limit(f.Limit).
		Preload("Category").
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		Preload("Category").
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetActiveProduct is the lookup used by cart/wishlist/review mutations:
// a deactivated product behaves as if it does not exist.
func (r *GormRepo) GetActiveProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) RelatedProducts(ctx context.Context, categoryID, excludeID uint, limit int) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("category_id = ? AND is_active = ? AND id <> ?", categoryID, true, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Category").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Slug != nil {
		prod.Slug = *req.Slug
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		prod.OriginalPrice = *req.OriginalPrice
	}
	if req.Images != nil {
		prod.Images = *req.Images
	}
	if req.Brand != nil {
		prod.Brand = *req.Brand
	}
	if req.Type != nil {
		prod.Type = *req.Type
	}
	if req.Weight != nil {
		prod.Weight = *req.Weight
	}
	if req.Flavor != nil {
		prod.Flavor = *req.Flavor
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	if req.IsActive != nil {
		prod.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		prod.IsFeatured = *req.IsFeatured
	}
	if req.CategoryID != nil {
		prod.CategoryID = *req.CategoryID
	}

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// DeactivateProduct is the only delete path. Order history keeps its
// snapshots, so product rows are never removed.
func (r *GormRepo) DeactivateProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock conditionally takes qty units off a product's stock.
// The guard runs inside the UPDATE itself, so a concurrent checkout can
// never drive stock negative; zero rows affected means not enough stock.
func (r *GormRepo) DecrementStock(ctx context.Context, productID uint, qty int) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]transport.CategoryWithCount, error) {
	var out []transport.CategoryWithCount
	err := r.DB.WithContext(ctx).Model(&models.Category{}).
		Select("categories.*, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.is_active = ?", true).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) ListBrands(ctx context.Context) ([]transport.BrandCount, error) {
	var out []transport.BrandCount
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("brand AS name, COUNT(*) AS products").
		Where("is_active = ? AND brand <> ''", true).
		Group("brand").
		Order("COUNT(*) DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
