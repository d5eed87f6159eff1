package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tprstore/storefront/internal/models"
)

func TestWishlistToggle(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "wanted", 1499, 5)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	resp, err := svc.Toggle(ctx, 1, p.ID)
	require.NoError(t, err)
	require.True(t, resp.Added)
	require.NotNil(t, resp.Item)
	require.Equal(t, p.ID, resp.Item.ProductID)

	list, err := svc.GetWishlist(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	// second toggle removes it again
	resp, err = svc.Toggle(ctx, 1, p.ID)
	require.NoError(t, err)
	require.False(t, resp.Added)

	list, err = svc.GetWishlist(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list.Items)
}

func TestWishlistToggleUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &WishlistService{Repo: r}

	_, err := svc.Toggle(context.Background(), 1, 42)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Toggle(context.Background(), 1, 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestWishlistToggleInactiveProduct(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "retired", 1499, 5)
	require.NoError(t, r.DeactivateProduct(context.Background(), p.ID))
	svc := &WishlistService{Repo: r}

	_, err := svc.Toggle(context.Background(), 1, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistDuplicateInsertConflicts(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "raced", 1499, 5)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	// duplicate row slipped in between the service's check and insert
	resp, err := svc.Toggle(ctx, 1, p.ID)
	require.NoError(t, err)
	require.True(t, resp.Added)

	err = r.CreateWishlistItem(ctx, &models.WishlistItem{UserID: 1, ProductID: p.ID})
	require.Error(t, err)
}

func TestWishlistRemove(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "gone", 1499, 5)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 1, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 1, p.ID))
	require.ErrorIs(t, svc.Remove(ctx, 1, p.ID), ErrNotFound)
}

func TestWishlistIsPerUser(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "mine", 1499, 5)
	svc := &WishlistService{Repo: r}
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 1, p.ID)
	require.NoError(t, err)

	list, err := svc.GetWishlist(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, list.Items)
}
