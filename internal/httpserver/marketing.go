package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tprstore/storefront/internal/logging"
	"github.com/tprstore/storefront/internal/service"
	"github.com/tprstore/storefront/internal/transport"
)

type MarketingHTTP struct {
	Svc *service.MarketingService
}

func (h *MarketingHTTP) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "marketing.subscribe")

	var req transport.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("subscribe_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Subscribe(ctx, req.Email); err != nil {
		return mapServiceError(l, "subscribe_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "successfully subscribed to newsletter"})
}

func (h *MarketingHTTP) Unsubscribe(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "marketing.unsubscribe")

	email := c.QueryParam("email")
	if err := h.Svc.Unsubscribe(ctx, email); err != nil {
		return mapServiceError(l, "unsubscribe_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "successfully unsubscribed from newsletter"})
}

func (h *MarketingHTTP) RequestCallback(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "marketing.request_callback")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req transport.CallbackRequestBody
	if err := c.Bind(&req); err != nil {
		l.Warn("request_callback_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cb, err := h.Svc.RequestCallback(ctx, userID, req.Phone, req.Message)
	if err != nil {
		return mapServiceError(l, "request_callback_error", err)
	}
	return c.JSON(http.StatusCreated, cb)
}

func (h *MarketingHTTP) ListCallbacks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "marketing.list_callbacks")

	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.Svc.ListCallbacks(ctx, userID)
	if err != nil {
		return mapServiceError(l, "list_callbacks_error", err)
	}
	return c.JSON(http.StatusOK, out)
}
