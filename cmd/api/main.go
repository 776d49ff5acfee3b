package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bencom-ar/storefront-backend/api/controllers"
	"github.com/bencom-ar/storefront-backend/api/routes"
	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
	"github.com/bencom-ar/storefront-backend/internal/catalog"
	checkoutsvc "github.com/bencom-ar/storefront-backend/internal/checkout"
	"github.com/bencom-ar/storefront-backend/internal/contact"
	"github.com/bencom-ar/storefront-backend/pkg/config"
	"github.com/bencom-ar/storefront-backend/pkg/db"
	"github.com/bencom-ar/storefront-backend/pkg/logger"
	"github.com/bencom-ar/storefront-backend/pkg/metrics"
	"github.com/bencom-ar/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	if err := catalog.Seed(context.Background(), catalogRepo, logg); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cartAdapter := cartsvc.NewRedisAdapter(redisClient, cfg.Cart.TTL, logg)
	cartService, err := cartsvc.NewService(cartAdapter, catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cartService, cfg.WhatsApp)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var mailer contact.Mailer
	if cfg.SMTP.Configured() {
		mailer, err = contact.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			logg.Error(context.Background(), "failed to create smtp mailer", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "smtp relay not configured, contact mail will only be logged")
		mailer = contact.NewLogMailer(logg)
	}
	contactService, err := contact.NewService(mailer, cfg.SMTP)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:         cfg,
			Logger:         logg,
			HTTPMetrics:    httpMetrics,
			MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			HealthChecks: map[string]controllers.Pinger{
				"database": dbClient,
				"redis":    redisClient,
			},
			Redis:    redisClient,
			Catalog:  catalogService,
			Cart:     cartService,
			Checkout: checkoutService,
			Contact:  contactService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
