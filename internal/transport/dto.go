package transport

import "github.com/tprstore/storefront/internal/models"

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type ProductListResponse struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type ProductDetailResponse struct {
	Product         models.Product   `json:"product"`
	RelatedProducts []models.Product `json:"related_products"`
}

type CategoryWithCount struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

type BrandCount struct {
	Name     string `json:"name"`
	Products int64  `json:"products"`
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartRequest struct {
	CartItemID uint `json:"cart_item_id"`
	Quantity   int  `json:"quantity"`
}

type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Total int64             `json:"total"`
}

type WishlistRequest struct {
	ProductID uint `json:"product_id"`
}

type WishlistResponse struct {
	Items []models.WishlistItem `json:"items"`
}

type ToggleWishlistResponse struct {
	Added bool                 `json:"added"`
	Item  *models.WishlistItem `json:"item,omitempty"`
}

type PlaceOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Phone           string                 `json:"phone"`
}

type OrderListResponse struct {
	Orders     []models.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

type ReviewRequest struct {
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewListResponse struct {
	Reviews    []models.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type CallbackRequestBody struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"original_price"`
	Images        string `json:"images"`
	Brand         string `json:"brand"`
	Type          string `json:"type"`
	Weight        string `json:"weight"`
	Flavor        string `json:"flavor"`
	Stock         int    `json:"stock"`
	IsFeatured    bool   `json:"is_featured"`
	CategoryID    uint   `json:"category_id"`
}

type PatchProductRequest struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	Description   *string `json:"description"`
	Price         *int64  `json:"price"`
	OriginalPrice *int64  `json:"original_price"`
	Images        *string `json:"images"`
	Brand         *string `json:"brand"`
	Type          *string `json:"type"`
	Weight        *string `json:"weight"`
	Flavor        *string `json:"flavor"`
	Stock         *int    `json:"stock"`
	IsActive      *bool   `json:"is_active"`
	IsFeatured    *bool   `json:"is_featured"`
	CategoryID    *uint   `json:"category_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type UserListResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

type StatsResponse struct {
	Products      int64 `json:"products"`
	Orders        int64 `json:"orders"`
	Users         int64 `json:"users"`
	Revenue       int64 `json:"revenue"`
	PendingOrders int64 `json:"pending_orders"`
	LowStock      int64 `json:"low_stock"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}
