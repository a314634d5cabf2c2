package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/catalog"
	"github.com/duckydrinks/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
)

const defaultPageSize = 20

// CatalogService is the read-only product query surface the handler consumes.
type CatalogService interface {
	FetchProducts(ctx context.Context, first int) ([]catalog.Product, error)
	ProductByHandle(ctx context.Context, handle string) (*catalog.Product, error)
	CollectionProducts(ctx context.Context, handle string, first int) ([]catalog.Product, error)
}

// CatalogHandler exposes the external catalog to the storefront pages.
type CatalogHandler struct {
	service CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler over the given service.
func NewCatalogHandler(service CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With("component", "rest.catalog"),
	}
}

// RegisterRoutes registers the catalog routes.
func (h *CatalogHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/products", h.ListProducts)
	r.Get("/api/v1/products/{handle}", h.ProductByHandle)
	r.Get("/api/v1/collections/{handle}", h.CollectionProducts)
}

// ListProducts returns up to first products from the catalog.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	first, ok := web.ParseValidateGtDefault(r, w, mLogger, "first", 0, defaultPageSize)
	if !ok {
		return
	}
	products, err := h.service.FetchProducts(r.Context(), int(first))
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Fetched products", "count", len(products))
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

// ProductByHandle returns one product by its URL handle.
func (h *CatalogHandler) ProductByHandle(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	handle := chi.URLParam(r, "handle")
	product, err := h.service.ProductByHandle(r.Context(), handle)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "handle", handle)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product %q not found", handle))
			return
		}
		h.respondCatalogError(w, r, mLogger, err, fmt.Sprintf("Failed to fetch product %q", handle))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, product)
}

// CollectionProducts returns the products of a named collection. Unknown
// collections yield an empty list.
func (h *CatalogHandler) CollectionProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	first, ok := web.ParseValidateGtDefault(r, w, mLogger, "first", 0, 6)
	if !ok {
		return
	}
	handle := chi.URLParam(r, "handle")
	products, err := h.service.CollectionProducts(r.Context(), handle, int(first))
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err, fmt.Sprintf("Failed to fetch collection %q", handle))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, products)
}

func (h *CatalogHandler) respondCatalogError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, message string) {
	if errors.Is(err, catalog.ErrPaymentRequired) {
		mLogger.ErrorContext(r.Context(), "Catalog access requires a paid plan", "error", err)
		web.RespondError(w, mLogger, http.StatusBadGateway, "Catalog is temporarily unavailable")
		return
	}
	mLogger.ErrorContext(r.Context(), "Catalog request failed", "error", err)
	web.RespondError(w, mLogger, http.StatusBadGateway, message)
}
