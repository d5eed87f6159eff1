package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/transport"
)

func TestAddReviewRecomputesAggregate(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "rated", 1299, 5)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID, Rating: 4, Comment: "solid"})
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, r.DB.First(&got, p.ID).Error)
	require.Equal(t, 1, got.ReviewCount)
	require.InDelta(t, 4.0, got.Rating, 0.001)

	_, err = svc.AddReview(ctx, 2, transport.ReviewRequest{ProductID: p.ID, Rating: 2})
	require.NoError(t, err)

	require.NoError(t, r.DB.First(&got, p.ID).Error)
	require.Equal(t, 2, got.ReviewCount)
	require.InDelta(t, 3.0, got.Rating, 0.001)
}

func TestAddReviewDuplicateLeavesAggregateAlone(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "once", 1299, 5)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID, Rating: 1})
	require.ErrorIs(t, err, ErrDuplicateReview)

	var got models.Product
	require.NoError(t, r.DB.First(&got, p.ID).Error)
	require.Equal(t, 1, got.ReviewCount)
	require.InDelta(t, 5.0, got.Rating, 0.001)
}

func TestAddReviewValidation(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "strict", 1299, 5)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID, Rating: 0})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID, Rating: 6})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: 0, Rating: 3})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddReview(ctx, 1, transport.ReviewRequest{ProductID: p.ID + 9, Rating: 3})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListReviewsPaginated(t *testing.T) {
	r := newTestRepo(t)
	p := seedProduct(t, r, "popular", 1299, 5)
	svc := &ReviewService{Repo: r}
	ctx := context.Background()

	for user := uint(1); user <= 5; user++ {
		_, err := svc.AddReview(ctx, user, transport.ReviewRequest{ProductID: p.ID, Rating: 4})
		require.NoError(t, err)
	}

	resp, err := svc.ListReviews(ctx, p.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 2)
	require.EqualValues(t, 5, resp.Pagination.Total)
	require.EqualValues(t, 3, resp.Pagination.TotalPages)
	require.True(t, resp.Pagination.HasNext)
	require.False(t, resp.Pagination.HasPrev)

	resp, err = svc.ListReviews(ctx, p.ID, 3, 2)
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)
	require.False(t, resp.Pagination.HasNext)
}
