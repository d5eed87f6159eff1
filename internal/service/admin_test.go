package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/transport"
)

func TestCreateProductValidation(t *testing.T) {
	r := newTestRepo(t)
	cat := seedCategory(t, r, "Protein", "protein")
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Slug: "x", Price: 100, CategoryID: cat.ID})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "x", Slug: "x", Price: 0, CategoryID: cat.ID})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "x", Slug: "x", Price: 100, Stock: -1, CategoryID: cat.ID})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "x", Slug: "x", Price: 100})
	require.ErrorIs(t, err, ErrValidation)

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name: "Whey 1kg", Slug: "whey-1kg", Price: 2499, Stock: 10, Brand: "ON", CategoryID: cat.ID,
	})
	require.NoError(t, err)
	require.True(t, prod.IsActive)
	require.NotZero(t, prod.ID)
}

func TestPatchProduct(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "tweak", 1000, 5)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	price := int64(1200)
	stock := 8
	got, err := svc.PatchProduct(ctx, p.ID, transport.PatchProductRequest{Price: &price, Stock: &stock})
	require.NoError(t, err)
	require.EqualValues(t, 1200, got.Price)
	require.Equal(t, 8, got.Stock)
	// untouched fields keep their values
	require.Equal(t, p.Name, got.Name)

	bad := int64(0)
	_, err = svc.PatchProduct(ctx, p.ID, transport.PatchProductRequest{Price: &bad})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.PatchProduct(ctx, p.ID+99, transport.PatchProductRequest{Price: &price})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProductDeactivates(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "removed", 1000, 5)
	svc := &AdminService{Repo: r}
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	// the row survives for order history, it just stops being visible
	var got models.Product
	require.NoError(t, r.DB.First(&got, p.ID).Error)
	require.False(t, got.IsActive)

	_, err := r.GetActiveProduct(ctx, p.ID)
	require.Error(t, err)

	require.ErrorIs(t, svc.DeleteProduct(ctx, p.ID+99), ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "ordered", 1500, 5)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 1}).Error)

	checkout := &CheckoutService{Repo: r, Config: testCheckoutConfig()}
	ctx := context.Background()
	order, err := checkout.PlaceOrder(ctx, 1, "buyer@example.com", placeOrderReq())
	require.NoError(t, err)

	svc := &AdminService{Repo: r}

	got, err := svc.UpdateOrderStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, got.Status)

	_, err = svc.UpdateOrderStatus(ctx, order.ID, "LOST")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus(ctx, order.ID+99, models.OrderStatusConfirmed)
	require.ErrorIs(t, err, ErrNotFound)

	// delivered and cancelled are terminal
	_, err = svc.UpdateOrderStatus(ctx, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPending)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStats(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "counted", 1000, 2) // below the low stock threshold
	require.NoError(t, r.DB.Create(&models.User{Name: "A", Email: "a@example.com"}).Error)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 1}).Error)

	checkout := &CheckoutService{Repo: r, Config: testCheckoutConfig()}
	ctx := context.Background()
	order, err := checkout.PlaceOrder(ctx, 1, "a@example.com", placeOrderReq())
	require.NoError(t, err)

	svc := &AdminService{Repo: r}
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Products)
	require.EqualValues(t, 1, stats.Orders)
	require.EqualValues(t, 1, stats.Users)
	require.EqualValues(t, 1, stats.PendingOrders)
	require.EqualValues(t, 1, stats.LowStock)
	require.Equal(t, order.Total, stats.Revenue)

	// cancelled orders fall out of revenue
	_, err = svc.UpdateOrderStatus(ctx, order.ID, models.OrderStatusCancelled)
	require.NoError(t, err)
	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Revenue)
	require.Zero(t, stats.PendingOrders)
}
