package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/util"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	q := service.ProductQuery{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Type:     c.QueryParam("type"),
		MinPrice: util.ParseInt64Default(c.QueryParam("minPrice"), 0),
		MaxPrice: util.ParseInt64Default(c.QueryParam("maxPrice"), 0),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		Page:     util.ParseIntDefault(c.QueryParam("page"), 1),
		Limit:    util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize),
	}

	resp, err := h.Svc.ListProducts(ctx, q)
	if err != nil {
		return mapServiceError(l, "list_products_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	resp, err := h.Svc.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return mapServiceError(l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProductHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_categories")

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return mapServiceError(l, "list_categories_error", err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *ProductHTTP) ListBrands(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_brands")

	brands, err := h.Svc.ListBrands(ctx)
	if err != nil {
		return mapServiceError(l, "list_brands_error", err)
	}
	return c.JSON(http.StatusOK, brands)
}
