package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/service"
)

func currentUser(c echo.Context) (uint, error) {
	v := c.Get("userID")
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

func currentEmail(c echo.Context) string {
	if email, ok := c.Get("email").(string); ok {
		return email
	}
	return ""
}

// mapServiceError translates the service error taxonomy into HTTP
// statuses. Store failures stay generic: the detail goes to the log,
// never to the caller.
func mapServiceError(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidQuantity):
		l.Warn(op, "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(op, "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrDuplicateWishlist),
		errors.Is(err, service.ErrAlreadySubscribed),
		errors.Is(err, service.ErrInvalidStatus):
		l.Warn(op, "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
