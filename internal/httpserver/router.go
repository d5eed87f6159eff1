package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/middleware/auth"
	"github.com/tprstore/storefront/internal/middleware/metrics"
)

type Deps struct {
	Auth      *auth.Auth
	Product   *ProductHTTP
	Cart      *CartHTTP
	Wishlist  *WishlistHTTP
	Order     *OrderHTTP
	Review    *ReviewHTTP
	Marketing *MarketingHTTP
	Admin     *AdminHTTP
	Search    *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/metrics", metrics.Handler())

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.Product.ListProducts)
	products.GET("/:slug", d.Product.GetProduct)
	products.GET("/:slug/reviews", d.Review.ListReviewsBySlug)

	v1.GET("/categories", d.Product.ListCategories)
	v1.GET("/brands", d.Product.ListBrands)
	v1.GET("/search", d.Search.Search)
	v1.GET("/reviews", d.Review.ListReviews)

	v1.POST("/newsletter", d.Marketing.Subscribe)
	v1.DELETE("/newsletter", d.Marketing.Unsubscribe)

	cart := v1.Group("/cart", d.Auth.RequireLogin)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.PUT("", d.Cart.UpdateCartItem)
	cart.DELETE("", d.Cart.RemoveCartItem)

	wishlist := v1.Group("/wishlist", d.Auth.RequireLogin)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.POST("", d.Wishlist.Toggle)
	wishlist.DELETE("", d.Wishlist.Remove)

	orders := v1.Group("/orders", d.Auth.RequireLogin)
	orders.POST("", d.Order.PlaceOrder)
	orders.GET("", d.Order.ListOrders)
	orders.GET("/:id", d.Order.GetOrder)

	v1.POST("/reviews", d.Review.AddReview, d.Auth.RequireLogin)

	callback := v1.Group("/callback", d.Auth.RequireLogin)
	callback.POST("", d.Marketing.RequestCallback)
	callback.GET("", d.Marketing.ListCallbacks)

	admin := v1.Group("/admin", d.Auth.AdminOnly)
	admin.POST("/products", d.Admin.CreateProduct)
	admin.PATCH("/products/:id", d.Admin.PatchProduct)
	admin.DELETE("/products/:id", d.Admin.DeleteProduct)
	admin.GET("/orders", d.Admin.ListOrders)
	admin.PATCH("/orders/:id/status", d.Admin.UpdateOrderStatus)
	admin.GET("/users", d.Admin.ListUsers)
	admin.GET("/stats", d.Admin.Stats)
}
