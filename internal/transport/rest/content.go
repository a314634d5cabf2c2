package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/content"
	"github.com/duckydrinks/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
)

// ContentHandler serves the blog and recipe pages' editorial data.
type ContentHandler struct {
	registry *content.Registry
	logger   *slog.Logger
}

// NewContentHandler creates a content handler over the given registry.
func NewContentHandler(registry *content.Registry, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		registry: registry,
		logger:   logger.With("component", "rest.content"),
	}
}

// RegisterRoutes registers the content routes.
func (h *ContentHandler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/articles", h.ListArticles)
	r.Get("/api/v1/articles/{slug}", h.ArticleBySlug)
	r.Get("/api/v1/recipes", h.ListRecipes)
	r.Get("/api/v1/recipes/{id}", h.RecipeByID)
}

func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	web.RespondJSON(w, mLogger, http.StatusOK, h.registry.Articles())
}

func (h *ContentHandler) ArticleBySlug(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	slug := chi.URLParam(r, "slug")
	article, err := h.registry.ArticleBySlug(slug)
	if err != nil {
		if errors.Is(err, content.ErrArticleNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Article %q not found", slug))
			return
		}
		mLogger.ErrorContext(r.Context(), "Failed to load article", "slug", slug, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to load article")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, article)
}

func (h *ContentHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	web.RespondJSON(w, mLogger, http.StatusOK, h.registry.Recipes())
}

func (h *ContentHandler) RecipeByID(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	id := chi.URLParam(r, "id")
	recipe, err := h.registry.RecipeByID(id)
	if err != nil {
		if errors.Is(err, content.ErrRecipeNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Recipe %q not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Failed to load recipe", "id", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to load recipe")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, recipe)
}
