// Package app contains the application setup for the storefront service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/cart"
	"github.com/duckydrinks/storefront/internal/catalog"
	"github.com/duckydrinks/storefront/internal/config"
	"github.com/duckydrinks/storefront/internal/content"
	"github.com/duckydrinks/storefront/internal/forms"
	"github.com/duckydrinks/storefront/internal/locator"
	"github.com/duckydrinks/storefront/internal/transport/rest"
	restclient "github.com/duckydrinks/storefront/pkg/client/rest"
	"github.com/duckydrinks/storefront/pkg/server"
	"github.com/go-chi/chi/v5"
)

// Dependencies holds the wired application services.
type Dependencies struct {
	Carts   *cart.Manager
	Catalog *catalog.Client
	Forms   *forms.Relay
	Locator *locator.Service
	Content *content.Registry
	Logger  *slog.Logger
}

// SetupDependencies wires the application services. Every outbound HTTP
// client goes through its own circuit breaker.
func SetupDependencies(cfg *config.Config, persister cart.Persister, logger *slog.Logger) *Dependencies {
	catalogDoer := restclient.NewBreakerDoer("catalog-cb", cfg.Resilience.CircuitBreaker,
		&http.Client{Timeout: cfg.Catalog.Timeout})
	webhookDoer := restclient.NewBreakerDoer("webhook-cb", cfg.Resilience.CircuitBreaker,
		&http.Client{Timeout: cfg.Webhook.Timeout})
	feedDoer := restclient.NewBreakerDoer("locator-cb", cfg.Resilience.CircuitBreaker,
		&http.Client{Timeout: cfg.Locator.Timeout})

	return &Dependencies{
		Carts:   cart.NewManager(persister, logger),
		Catalog: catalog.NewClient(cfg.Catalog, catalogDoer, logger),
		Forms:   forms.NewRelay(cfg.Webhook, webhookDoer, logger),
		Locator: locator.NewService(cfg.Locator, feedDoer, logger),
		Content: content.NewRegistry(),
		Logger:  logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the storefront service.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	rest.NewCartHandler(deps.Carts, deps.Logger).RegisterRoutes(mux)
	rest.NewCatalogHandler(deps.Catalog, deps.Logger).RegisterRoutes(mux)
	rest.NewFormsHandler(deps.Forms, deps.Logger).RegisterRoutes(mux)
	rest.NewLocatorHandler(deps.Locator, deps.Logger).RegisterRoutes(mux)
	rest.NewContentHandler(deps.Content, deps.Logger).RegisterRoutes(mux)
	mux.Get("/healthz", rest.HealthCheck)
}

// SetupHttpServer creates and configures the HTTP server for the storefront
// service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
