package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
	"github.com/tprstore/storefront/internal/util"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return mapServiceError(l, "create_product_error", err)
	}
	return c.JSON(http.StatusCreated, prod)
}

func (h *AdminHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.patch_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.PatchProduct(ctx, uint(id), req)
	if err != nil {
		return mapServiceError(l, "patch_product_error", err)
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return mapServiceError(l, "delete_product_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_orders")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 10)

	resp, err := h.Svc.ListOrders(ctx, page, limit)
	if err != nil {
		return mapServiceError(l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_order_status")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateOrderStatus(ctx, uint(id), req.Status)
	if err != nil {
		return mapServiceError(l, "update_order_status_error", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_users")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 20)

	resp, err := h.Svc.ListUsers(ctx, page, limit)
	if err != nil {
		return mapServiceError(l, "list_users_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.stats")

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		return mapServiceError(l, "stats_error", err)
	}
	return c.JSON(http.StatusOK, stats)
}
