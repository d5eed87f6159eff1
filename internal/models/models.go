package models

import (
	"time"
)

// All monetary fields are integer minor currency units.

const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

const PaymentMethodCOD = "COD"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null"                 json:"name"`
	Slug          string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Description   string    `gorm:"not null"                 json:"description"`
	Price         int64     `gorm:"not null"                 json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"`
	Images        string    `json:"images,omitempty"`
	Brand         string    `gorm:"index"                    json:"brand"`
	Type          string    `json:"type,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	Flavor        string    `json:"flavor,omitempty"`
	Stock         int       `gorm:"not null;default:0"       json:"stock"`
	IsActive      bool      `gorm:"not null;default:true"    json:"is_active"`
	IsFeatured    bool      `gorm:"not null;default:false"   json:"is_featured"`
	Rating        float64   `gorm:"not null;default:0"       json:"rating"`
	ReviewCount   int       `gorm:"not null;default:0"       json:"review_count"`
	CategoryID    uint      `gorm:"index;not null"           json:"category_id"`
	Category      *Category `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// User rows are owned by the external auth system. This service only
// reads them for admin listings.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null"      json:"email"`
	Role      string    `gorm:"not null;default:customer" json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey"                                 json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1;check:quantity>0"        json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey"                                     json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ShippingAddress is copied into the order row at placement so later
// profile edits never rewrite history.
type ShippingAddress struct {
	Name    string `json:"name"`
	Line    string `json:"line"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey"                    json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null"          json:"order_number"`
	UserID          uint            `gorm:"index;not null"                json:"user_id"`
	Email           string          `gorm:"not null"                      json:"email"`
	Phone           string          `gorm:"not null"                      json:"phone"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Subtotal        int64           `gorm:"not null"                      json:"subtotal"`
	Shipping        int64           `gorm:"not null"                      json:"shipping"`
	Tax             int64           `gorm:"not null"                      json:"tax"`
	Total           int64           `gorm:"not null"                      json:"total"`
	Status          string          `gorm:"not null;default:PENDING"      json:"status"`
	PaymentStatus   string          `gorm:"not null;default:PENDING"      json:"payment_status"`
	PaymentMethod   string          `gorm:"not null;default:COD"          json:"payment_method"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"            json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem.Price is the product price snapshot taken at placement.
// It is never recomputed from the live product row.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey"                json:"id"`
	OrderID   uint      `gorm:"index;not null"            json:"order_id"`
	ProductID uint      `gorm:"not null"                  json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity>0" json:"quantity"`
	Price     int64     `gorm:"not null"                  json:"price"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey"                                   json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_review_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_review_user_product;not null" json:"product_id"`
	Rating    int       `gorm:"not null;check:rating>=1 AND rating<=5"       json:"rating"`
	Comment   string    `json:"comment"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Newsletter struct {
	ID        uint      `gorm:"primaryKey"            json:"id"`
	Email     string    `gorm:"uniqueIndex;not null"  json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CallbackRequest struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	UserID    uint      `gorm:"index;not null"       json:"user_id"`
	Phone     string    `gorm:"not null"             json:"phone"`
	Message   string    `json:"message,omitempty"`
	Status    string    `gorm:"not null;default:NEW" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
