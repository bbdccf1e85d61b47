package api

import (
	"net/http"

	"modularcloset_server/api/cart"
	"modularcloset_server/api/collections"
	"modularcloset_server/api/content"
	"modularcloset_server/api/debug"
	"modularcloset_server/api/health"
	"modularcloset_server/api/middleware"
	"modularcloset_server/api/pages"
	"modularcloset_server/api/products"
	"modularcloset_server/api/search"
	"modularcloset_server/config"
	"modularcloset_server/services"
	"modularcloset_server/storefront"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// config
	cfg := config.GetConfig()

	// upstream client and services
	client := storefront.NewClient(cfg.Storefront, standardLogger)
	sm := services.NewServiceManager(standardLogger, cfg, client)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before the cart token handshake)
	r.Use(mw.SetupCORS().Handler)

	// Cart identity
	r.Use(mw.CartToken())

	// Rate limiting
	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(
		products.NewProductRoutesManager(standardLogger, sm.CatalogService),
		collections.NewCollectionRoutesManager(standardLogger, sm.CatalogService),
		search.NewSearchRoutesManager(standardLogger, sm.SearchService),
		cart.NewCartRoutesManager(standardLogger, sm.CartService),
		content.NewContentRoutesManager(standardLogger, sm.FAQService, sm.GalleryService, sm.MegamenuService, sm.TrustpilotService, sm.LightboxService, sm.ClosetsService),
		pages.NewPageRoutesManager(standardLogger, sm.PagesService, sm.EmailService),
		health.NewHealthRoutesManager(sm.HealthService),
		debug.NewDebugRoutesManager(sm.CacheService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the ModularCloset storefront API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
