package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/config"
	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/service"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return repo.New(db)
}

func testContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func loginAs(c echo.Context, userID uint, email string) {
	c.Set("userID", userID)
	c.Set("email", email)
}

func checkoutConfig() service.CheckoutConfig {
	return service.CheckoutConfig{
		FreeShippingThreshold: 2999,
		FlatShippingFee:       199,
		TaxRateBP:             1800,
		OrderNumberPrefix:     "TPR",
	}
}

func seedCartForUser(t *testing.T, r *repo.GormRepo, userID uint) *models.Product {
	t.Helper()
	cat := models.Category{Name: "Protein", Slug: "protein"}
	require.NoError(t, r.DB.Create(&cat).Error)
	p := models.Product{
		Name: "Whey", Slug: "whey", Description: "d",
		Price: 1499, Stock: 10, IsActive: true, CategoryID: cat.ID,
	}
	require.NoError(t, r.DB.Create(&p).Error)
	require.NoError(t, r.DB.Create(&models.CartItem{UserID: userID, ProductID: p.ID, Quantity: 2}).Error)
	return &p
}

const placeOrderBody = `{
	"phone": "+919900112233",
	"shipping_address": {
		"name": "Buyer",
		"line": "12 High Street",
		"city": "Mumbai",
		"state": "MH",
		"pincode": "400001"
	}
}`

func TestPlaceOrderHandler(t *testing.T) {
	r := newTestRepo(t)
	seedCartForUser(t, r, 1)
	h := &OrderHTTP{Svc: &service.CheckoutService{Repo: r, Config: checkoutConfig()}}

	c, rec := testContext(t, http.MethodPost, "/api/v1/orders", placeOrderBody)
	loginAs(c, 1, "buyer@example.com")
	require.NoError(t, h.PlaceOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.True(t, strings.HasPrefix(order.OrderNumber, "TPR"))
	require.EqualValues(t, 2998, order.Subtotal)
	require.Equal(t, "buyer@example.com", order.Email)
}

func TestPlaceOrderHandlerEmptyCart(t *testing.T) {
	r := newTestRepo(t)
	h := &OrderHTTP{Svc: &service.CheckoutService{Repo: r, Config: checkoutConfig()}}

	c, _ := testContext(t, http.MethodPost, "/api/v1/orders", placeOrderBody)
	loginAs(c, 1, "buyer@example.com")

	err := h.PlaceOrder(c)
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestPlaceOrderHandlerUnauthorized(t *testing.T) {
	r := newTestRepo(t)
	h := &OrderHTTP{Svc: &service.CheckoutService{Repo: r, Config: checkoutConfig()}}

	c, _ := testContext(t, http.MethodPost, "/api/v1/orders", placeOrderBody)

	err := h.PlaceOrder(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestPlaceOrderHandlerValidation(t *testing.T) {
	r := newTestRepo(t)
	seedCartForUser(t, r, 1)
	h := &OrderHTTP{Svc: &service.CheckoutService{Repo: r, Config: checkoutConfig()}}

	c, _ := testContext(t, http.MethodPost, "/api/v1/orders", `{"phone": ""}`)
	loginAs(c, 1, "buyer@example.com")

	err := h.PlaceOrder(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetOrderHandler(t *testing.T) {
	r := newTestRepo(t)
	seedCartForUser(t, r, 1)
	svc := &service.CheckoutService{Repo: r, Config: checkoutConfig()}
	h := &OrderHTTP{Svc: svc}

	c, rec := testContext(t, http.MethodPost, "/api/v1/orders", placeOrderBody)
	loginAs(c, 1, "buyer@example.com")
	require.NoError(t, h.PlaceOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	c, rec = testContext(t, http.MethodGet, "/api/v1/orders/"+fmt.Sprint(order.ID), "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	loginAs(c, 1, "buyer@example.com")
	require.NoError(t, h.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// another user cannot read it
	c, _ = testContext(t, http.MethodGet, "/api/v1/orders/"+fmt.Sprint(order.ID), "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	loginAs(c, 2, "other@example.com")

	err := h.GetOrder(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusNotFound, he.Code)
}
