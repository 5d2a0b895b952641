// Package app contains the application setup for the storefront.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ventas/storefront/internal/catalog"
	"github.com/ventas/storefront/internal/config"
	"github.com/ventas/storefront/internal/transport/rest"
	"github.com/ventas/storefront/internal/ui"
	"github.com/ventas/storefront/internal/view"
	"github.com/ventas/storefront/pkg/server"
)

type Dependencies struct {
	Catalog  catalog.Service
	State    *ui.State
	Renderer *view.Renderer
	Logger   *slog.Logger
}

func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to set up renderer: %w", err)
	}

	return &Dependencies{
		Catalog:  catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout),
		State:    ui.NewState(),
		Renderer: renderer,
		Logger:   logger,
	}, nil
}

// SetupHttpHandler initializes the router and routes for the storefront.
// Also used by tests to exercise the full middleware chain.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger, server.SecurityOptions{
		Production:        cfg.Security.Production,
		RateLimitRequests: cfg.Security.RateLimit.Requests,
		RateLimitWindow:   cfg.Security.RateLimit.Window,
	})
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	storefrontHandler := rest.NewHandler(deps.Catalog, deps.State, deps.Renderer, deps.Logger)
	storefrontHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg)

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
