package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tprstore/storefront/internal/models"
)

func seedOneProduct(t *testing.T, r *GormRepo, stock int) *models.Product {
	t.Helper()
	cat := models.Category{Name: "Protein", Slug: "protein"}
	require.NoError(t, r.DB.Create(&cat).Error)
	p := models.Product{
		Name: "Whey", Slug: "whey", Description: "d",
		Price: 1000, Stock: stock, IsActive: true, CategoryID: cat.ID,
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return &p
}

func TestUpsertCartItemMergesUnderCeiling(t *testing.T) {
	r := newTestRepo(t)
	p := seedOneProduct(t, r, 5)
	ctx := context.Background()

	item := models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 2}
	ok, err := r.UpsertCartItem(ctx, &item, p.Stock)
	require.NoError(t, err)
	require.True(t, ok)

	item2 := models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 3}
	ok, err = r.UpsertCartItem(ctx, &item2, p.Stock)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, item2.Quantity)

	// cumulative quantity now at the ceiling, any further add is refused
	item3 := models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 1}
	ok, err = r.UpsertCartItem(ctx, &item3, p.Stock)
	require.NoError(t, err)
	require.False(t, ok)

	items, err := r.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestUpsertCartItemFirstAddOverStock(t *testing.T) {
	r := newTestRepo(t)
	p := seedOneProduct(t, r, 2)

	item := models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 3}
	ok, err := r.UpsertCartItem(context.Background(), &item, p.Stock)
	require.NoError(t, err)
	require.False(t, ok)

	items, err := r.GetCart(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestDeleteCartItemScopedAndIdempotent(t *testing.T) {
	r := newTestRepo(t)
	p := seedOneProduct(t, r, 5)
	ctx := context.Background()

	item := models.CartItem{UserID: 1, ProductID: p.ID, Quantity: 1}
	ok, err := r.UpsertCartItem(ctx, &item, p.Stock)
	require.NoError(t, err)
	require.True(t, ok)

	// another user's delete must not touch the row
	require.NoError(t, r.DeleteCartItem(ctx, 2, item.ID))
	items, err := r.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, r.DeleteCartItem(ctx, 1, item.ID))
	require.NoError(t, r.DeleteCartItem(ctx, 1, item.ID))
	items, err = r.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	r := newTestRepo(t)
	p := seedOneProduct(t, r, 10)
	ctx := context.Background()

	for _, user := range []uint{1, 2} {
		item := models.CartItem{UserID: user, ProductID: p.ID, Quantity: 1}
		ok, err := r.UpsertCartItem(ctx, &item, p.Stock)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.NoError(t, r.ClearCart(ctx, 1))

	items, err := r.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = r.GetCart(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
