package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.get_wishlist")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	resp, err := h.Svc.GetWishlist(ctx, userID)
	if err != nil {
		return mapServiceError(l, "get_wishlist_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *WishlistHTTP) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.toggle")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.WishlistRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("toggle_wishlist_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.Toggle(ctx, userID, req.ProductID)
	if err != nil {
		return mapServiceError(l, "toggle_wishlist_error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.remove")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.QueryParam("productId"))
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	if err := h.Svc.Remove(ctx, userID, uint(productID)); err != nil {
		return mapServiceError(l, "remove_wishlist_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "item removed from wishlist"})
}
