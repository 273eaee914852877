package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Christian112b/costanzo-backend/api/routes"
	"github.com/Christian112b/costanzo-backend/internal/activity"
	"github.com/Christian112b/costanzo-backend/internal/addresses"
	"github.com/Christian112b/costanzo-backend/internal/cart"
	"github.com/Christian112b/costanzo-backend/internal/checkout"
	"github.com/Christian112b/costanzo-backend/internal/coupons"
	"github.com/Christian112b/costanzo-backend/internal/payments"
	"github.com/Christian112b/costanzo-backend/internal/products"
	"github.com/Christian112b/costanzo-backend/internal/reports"
	"github.com/Christian112b/costanzo-backend/pkg/auth/session"
	"github.com/Christian112b/costanzo-backend/pkg/config"
	"github.com/Christian112b/costanzo-backend/pkg/db"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
	"github.com/Christian112b/costanzo-backend/pkg/metrics"
	"github.com/Christian112b/costanzo-backend/pkg/migrate"
	"github.com/Christian112b/costanzo-backend/pkg/redis"
	"github.com/Christian112b/costanzo-backend/pkg/stripe"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	var stripeClient *stripe.Client
	if cfg.Stripe.APIKey != "" {
		stripeClient, err = stripe.NewClient(context.Background(), cfg.Stripe, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create stripe client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "stripe api key not set, online payments disabled")
	}

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	productRepo := products.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	couponRepo := coupons.NewRepository(dbClient.DB())
	addressRepo := addresses.NewRepository(dbClient.DB())
	activityRecorder := activity.NewRecorder(activity.NewRepository(dbClient.DB()), logg)

	cartService, err := cart.NewService(cartRepo, productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	couponService, err := coupons.NewService(couponRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create coupon service", err)
		os.Exit(1)
	}

	checkoutParams := checkout.ServiceParams{
		Tx:         dbClient,
		Carts:      cartRepo,
		Payments:   payments.NewRepository(dbClient.DB()),
		Settlement: checkout.NewSettlementRepository(dbClient.DB()),
		Coupons:    couponRepo,
		Addresses:  addressRepo,
		Activity:   activityRecorder,
		Metrics:    checkoutMetrics,
		Logger:     logg,
		TaxRate:    cfg.Checkout.TaxRate,
		Currency:   cfg.Checkout.Currency,
	}
	if stripeClient != nil {
		checkoutParams.Gateway = stripeClient
	}
	checkoutService, err := checkout.NewService(checkoutParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	reportsService, err := reports.NewService(reports.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Sessions: sessionManager,
			Registry: registry,
			Cart:     cartService,
			Checkout: checkoutService,
			Coupons:  couponService,
			Reports:  reportsService,
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var closeErr error
		if err := server.Shutdown(shutdownCtx); err != nil {
			closeErr = multierr.Append(closeErr, err)
		}
		if err := redisClient.Close(); err != nil {
			closeErr = multierr.Append(closeErr, err)
		}
		if err := dbClient.Close(); err != nil {
			closeErr = multierr.Append(closeErr, err)
		}
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
