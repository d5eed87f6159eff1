package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
	"github.com/tprstore/storefront/internal/util"
)

type ReviewHTTP struct {
	Svc     *service.ReviewService
	Catalog *service.CatalogService
}

func (h *ReviewHTTP) AddReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.add_review")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.ReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_review_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.AddReview(ctx, userID, req)
	if err != nil {
		return mapServiceError(l, "add_review_error", err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list_reviews")

	productID := util.ParseIntDefault(c.QueryParam("productId"), 0)
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 10)

	resp, err := h.Svc.ListReviews(ctx, uint(productID), page, limit)
	if err != nil {
		return mapServiceError(l, "list_reviews_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReviewHTTP) ListReviewsBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list_reviews_by_slug")

	detail, err := h.Catalog.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return mapServiceError(l, "list_reviews_error", err)
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 10)

	resp, err := h.Svc.ListReviews(ctx, detail.Product.ID, page, limit)
	if err != nil {
		return mapServiceError(l, "list_reviews_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}
