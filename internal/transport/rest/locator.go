package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/locator"
	"github.com/duckydrinks/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
)

// LocationService fetches the retail locations feed.
type LocationService interface {
	Locations(ctx context.Context) ([]locator.Location, error)
}

// LocatorHandler serves the store locator.
type LocatorHandler struct {
	service LocationService
	logger  *slog.Logger
}

// NewLocatorHandler creates a locator handler over the given service.
func NewLocatorHandler(service LocationService, logger *slog.Logger) *LocatorHandler {
	return &LocatorHandler{
		service: service,
		logger:  logger.With("component", "rest.locator"),
	}
}

// RegisterRoutes registers the locator route.
func (h *LocatorHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/locations", h.List)
}

// List returns mappable locations matching the q query parameter. Without q
// it lists every mappable location.
func (h *LocatorHandler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	locations, err := h.service.Locations(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to fetch locations feed", "error", err)
		web.RespondError(w, mLogger, http.StatusBadGateway, "Failed to fetch store locations")
		return
	}
	matched := locator.Search(locations, r.URL.Query().Get("q"))
	mLogger.DebugContext(r.Context(), "Locations listed", "matched", len(matched), "total", len(locations))
	web.RespondJSON(w, mLogger, http.StatusOK, matched)
}
