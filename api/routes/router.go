package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bencom-ar/storefront-backend/api/controllers"
	cartcontrollers "github.com/bencom-ar/storefront-backend/api/controllers/cart"
	"github.com/bencom-ar/storefront-backend/api/middleware"
	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
	"github.com/bencom-ar/storefront-backend/internal/catalog"
	checkoutsvc "github.com/bencom-ar/storefront-backend/internal/checkout"
	contactsvc "github.com/bencom-ar/storefront-backend/internal/contact"
	"github.com/bencom-ar/storefront-backend/pkg/config"
	"github.com/bencom-ar/storefront-backend/pkg/logger"
	"github.com/bencom-ar/storefront-backend/pkg/metrics"
	"github.com/bencom-ar/storefront-backend/pkg/redis"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	HTTPMetrics *metrics.HTTPMetrics

	// MetricsHandler serves the Prometheus scrape endpoint. Nil disables it.
	MetricsHandler http.Handler

	// HealthChecks maps dependency names to their ping surface for readiness.
	HealthChecks map[string]controllers.Pinger

	Redis *redis.Client

	Catalog  catalog.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Contact  contactsvc.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.HealthChecks))
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	contactPolicy := middleware.NewRateLimitPolicy(
		"contact",
		cfg.Contact.RateLimitWindow,
		cfg.Contact.RateLimitIPLimit,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.Catalog, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(deps.Cart, logg))
				r.Delete("/", cartcontrollers.Clear(deps.Cart, logg))
				r.Post("/items", cartcontrollers.AddItem(deps.Cart, logg))
				r.Patch("/items/{itemId}", cartcontrollers.UpdateQty(deps.Cart, logg))
				r.Delete("/items/{itemId}", cartcontrollers.RemoveItem(deps.Cart, logg))
			})

			r.Post("/checkout/whatsapp", controllers.CheckoutWhatsApp(deps.Checkout, logg))
		})

		contactHandler := controllers.ContactSend(deps.Contact, logg)
		if deps.Redis != nil {
			r.With(middleware.RateLimit(contactPolicy, deps.Redis, logg)).
				Post("/contact", contactHandler)
		} else {
			r.Post("/contact", contactHandler)
		}
	})

	return r
}
