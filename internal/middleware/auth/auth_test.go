package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func mintToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func run(t *testing.T, mw echo.MiddlewareFunc, decorate func(*http.Request)) (echo.Context, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, handler(c)
}

func TestRequireLoginFromCookie(t *testing.T) {
	a := &Auth{Secret: testSecret}
	token := mintToken(t, testSecret, jwt.MapClaims{"sub": float64(7), "email": "u@example.com"})

	c, err := run(t, a.RequireLogin, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), c.Get("userID"))
	require.Equal(t, "u@example.com", c.Get("email"))
}

func TestRequireLoginFromBearerHeader(t *testing.T) {
	a := &Auth{Secret: testSecret}
	token := mintToken(t, testSecret, jwt.MapClaims{"sub": float64(3)})

	c, err := run(t, a.RequireLogin, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.NoError(t, err)
	require.Equal(t, uint(3), c.Get("userID"))
}

func TestRequireLoginRejects(t *testing.T) {
	a := &Auth{Secret: testSecret}

	// no token at all
	_, err := run(t, a.RequireLogin, nil)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// wrong secret
	token := mintToken(t, []byte("other-secret"), jwt.MapClaims{"sub": float64(1)})
	_, err = run(t, a.RequireLogin, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// expired
	token = mintToken(t, testSecret, jwt.MapClaims{"sub": float64(1), "exp": time.Now().Add(-time.Hour).Unix()})
	_, err = run(t, a.RequireLogin, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// missing subject
	token = mintToken(t, testSecret, jwt.MapClaims{"email": "u@example.com"})
	_, err = run(t, a.RequireLogin, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnly(t *testing.T) {
	a := &Auth{Secret: testSecret}

	token := mintToken(t, testSecret, jwt.MapClaims{"sub": float64(1), "role": "admin"})
	c, err := run(t, a.AdminOnly, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.NoError(t, err)
	require.Equal(t, "admin", c.Get("role"))

	token = mintToken(t, testSecret, jwt.MapClaims{"sub": float64(2), "role": "customer"})
	_, err = run(t, a.AdminOnly, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)
}
