package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Christian112b/costanzo-backend/api/controllers"
	"github.com/Christian112b/costanzo-backend/api/middleware"
	"github.com/Christian112b/costanzo-backend/internal/cart"
	checkoutsvc "github.com/Christian112b/costanzo-backend/internal/checkout"
	couponsvc "github.com/Christian112b/costanzo-backend/internal/coupons"
	reportsvc "github.com/Christian112b/costanzo-backend/internal/reports"
	"github.com/Christian112b/costanzo-backend/pkg/auth/session"
	"github.com/Christian112b/costanzo-backend/pkg/config"
	"github.com/Christian112b/costanzo-backend/pkg/db"
	"github.com/Christian112b/costanzo-backend/pkg/logger"
	"github.com/Christian112b/costanzo-backend/pkg/redis"
)

// RouterParams bundles everything the route table wires together.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       *db.Client
	Redis    *redis.Client
	Sessions session.AccessSessionChecker
	Registry *prometheus.Registry

	Cart     cart.Service
	Checkout checkoutsvc.Service
	Coupons  couponsvc.Service
	Reports  reportsvc.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.ClientIP(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.DB, p.Redis))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	requireAuth := middleware.Auth(p.Config.JWT, p.Sessions, p.Logger)
	optionalAuth := middleware.OptionalAuth(p.Config.JWT, p.Sessions, p.Logger)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/items", controllers.CartListItems(p.Cart, p.Logger))
		r.Post("/items", controllers.CartAddItem(p.Cart, p.Logger))
		r.Put("/", controllers.CartReplace(p.Cart, p.Logger))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(optionalAuth)
		r.Post("/payment-intent", controllers.CheckoutPaymentIntent(p.Checkout, p.Logger))
	})

	r.Route("/api/v1/coupons", func(r chi.Router) {
		r.Post("/validate", controllers.CouponValidate(p.Coupons, p.Logger))
	})

	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Use(requireAuth, middleware.RequireRole("admin", p.Logger))
		r.Get("/", controllers.ReportsGet(p.Reports, p.Logger))
	})

	return r
}
