package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth verifies access tokens minted by the external auth service.
// This service never issues tokens itself.
type Auth struct {
	Secret []byte
}

func (a *Auth) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := a.parse(c)
		if err != nil {
			return err
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func (a *Auth) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := a.parse(c)
		if err != nil {
			return err
		}
		role, _ := claims["role"].(string)
		if role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		setUserContext(c, claims)
		return next(c)
	}
}

func (a *Auth) parse(c echo.Context) (jwt.MapClaims, error) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	if _, ok := claims["sub"].(float64); !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
	}
	return claims, nil
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	c.Set("userID", uint(claims["sub"].(float64)))
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
}
