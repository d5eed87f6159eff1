package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/config"
	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return repo.New(db)
}

func seedCategory(t *testing.T, r *repo.GormRepo, name, slug string) *models.Category {
	t.Helper()
	cat := models.Category{Name: name, Slug: slug}
	require.NoError(t, r.DB.Create(&cat).Error)
	return &cat
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price int64, stock int) *models.Product {
	t.Helper()
	cat := seedCategory(t, r, name+" category", name+"-category")
	prod := models.Product{
		Name:        name,
		Slug:        name + "-slug",
		Description: name + " description",
		Price:       price,
		Stock:       stock,
		IsActive:    true,
		CategoryID:  cat.ID,
	}
	require.NoError(t, r.DB.Create(&prod).Error)
	return &prod
}

func testCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		FreeShippingThreshold: 2999,
		FlatShippingFee:       199,
		TaxRateBP:             1800,
		OrderNumberPrefix:     "TPR",
	}
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:    "Test Buyer",
		Line:    "12 High Street",
		City:    "Mumbai",
		State:   "MH",
		Pincode: "400001",
	}
}
