package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	resp, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		return mapServiceError(l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToCart(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return mapServiceError(l, "add_to_cart_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart_item")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.CartItemID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "cart_item_id required")
	}

	item, err := h.Svc.SetQuantity(ctx, userID, req.CartItemID, req.Quantity)
	if err != nil {
		return mapServiceError(l, "update_cart_error", err)
	}
	if item == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "item removed from cart"})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_cart_item")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.RemoveItem(ctx, userID, uint(id)); err != nil {
		return mapServiceError(l, "remove_cart_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "item removed from cart"})
}
