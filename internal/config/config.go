package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
)

type Config struct {
	HTTP_ADDR   string
	LOG_LEVEL   string
	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	ES_URL      string
	ES_USER     string
	ES_PASSWORD string
	ES_INDEX    string
	REDIS_ADDR  string
	REDIS_PASSWORD string
	KAFKA_ADDRESS  string
	JWT_SECRET     string

	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRateBP             int64
	OrderNumberPrefix     string
	ProductCacheTTL       time.Duration
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:      getenv("HTTP_ADDR", ":8080"),
		LOG_LEVEL:      getenv("LOG_LEVEL", "info"),
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        getenv("DB_PORT", "5432"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		ES_INDEX:       getenv("ES_INDEX", "products"),
		REDIS_ADDR:     os.Getenv("REDIS_ADDR"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),

		FreeShippingThreshold: getenvInt64("FREE_SHIPPING_THRESHOLD", 2999),
		FlatShippingFee:       getenvInt64("FLAT_SHIPPING_FEE", 199),
		TaxRateBP:             getenvInt64("TAX_RATE_BP", 1800),
		OrderNumberPrefix:     getenv("ORDER_NUMBER_PREFIX", "TPR"),
		ProductCacheTTL:       getenvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
	}

	return config, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_HOST, cfg.DB_PORT, cfg.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("db migration failed: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Newsletter{},
		&models.CallbackRequest{},
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
