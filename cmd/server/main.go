package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tprstore/storefront/internal/cache"
	"github.com/tprstore/storefront/internal/config"
	"github.com/tprstore/storefront/internal/es"
	"github.com/tprstore/storefront/internal/httpserver"
	"github.com/tprstore/storefront/internal/logging"
	authmw "github.com/tprstore/storefront/internal/middleware/auth"
	"github.com/tprstore/storefront/internal/middleware/loggingmw"
	"github.com/tprstore/storefront/internal/middleware/metrics"
	"github.com/tprstore/storefront/internal/mykafka"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
		defer producer.Close()
	} else {
		logger.Warn("kafka disabled, KAFKA_ADDRESS not set")
	}

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init failed: %v", err)
		}
	} else {
		logger.Warn("search disabled, ES_URL not set")
	}

	var productCache *cache.ProductCache
	if cfg.REDIS_ADDR != "" {
		rdb, err := cache.InitRedis(cfg.REDIS_ADDR, cfg.REDIS_PASSWORD)
		if err != nil {
			log.Fatalf("redis init failed: %v", err)
		}
		productCache = cache.NewProductCache(rdb, cfg.ProductCacheTTL)
	} else {
		logger.Warn("product cache disabled, REDIS_ADDR not set")
	}

	r := repo.New(db)
	catalogSvc := &service.CatalogService{Repo: r, Cache: productCache}

	deps := &httpserver.Deps{
		Auth:    &authmw.Auth{Secret: []byte(cfg.JWT_SECRET)},
		Product: &httpserver.ProductHTTP{Svc: catalogSvc},
		Cart:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r, Events: producer}},
		Wishlist: &httpserver.WishlistHTTP{
			Svc: &service.WishlistService{Repo: r},
		},
		Order: &httpserver.OrderHTTP{
			Svc: &service.CheckoutService{
				Repo:   r,
				Events: producer,
				Config: service.CheckoutConfig{
					FreeShippingThreshold: cfg.FreeShippingThreshold,
					FlatShippingFee:       cfg.FlatShippingFee,
					TaxRateBP:             cfg.TaxRateBP,
					OrderNumberPrefix:     cfg.OrderNumberPrefix,
				},
			},
		},
		Review:    &httpserver.ReviewHTTP{Svc: &service.ReviewService{Repo: r, Events: producer}, Catalog: catalogSvc},
		Marketing: &httpserver.MarketingHTTP{Svc: &service.MarketingService{Repo: r}},
		Admin: &httpserver.AdminHTTP{
			Svc: &service.AdminService{
				Repo:    r,
				Events:  producer,
				Cache:   productCache,
				ES:      esClient,
				ESIndex: cfg.ES_INDEX,
			},
		},
		Search: &httpserver.SearchHTTP{ES: esClient, Index: cfg.ES_INDEX},
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(metrics.Middleware())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         cfg.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "addr", cfg.HTTP_ADDR)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
