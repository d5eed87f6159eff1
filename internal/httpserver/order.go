package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/middleware/metrics"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
	"github.com/tprstore/storefront/internal/util"
)

type OrderHTTP struct {
	Svc *service.CheckoutService
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, userID, currentEmail(c), req)
	if err != nil {
		return mapServiceError(l, "place_order_error", err)
	}

	metrics.OrderPlaced()
	l.Info("place_order_success", "order_number", order.OrderNumber, "total", order.Total)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_orders")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 10)

	resp, err := h.Svc.ListOrders(ctx, userID, page, limit)
	if err != nil {
		return mapServiceError(l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.Svc.GetOrder(ctx, userID, uint(id))
	if err != nil {
		return mapServiceError(l, "get_order_error", err)
	}
	return c.JSON(http.StatusOK, order)
}
