package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/duckydrinks/storefront/internal/content"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter() *chi.Mux {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewContentHandler(content.NewRegistry(), logger).RegisterRoutes(r)
	return r
}

func Test_ContentAPI_ListArticles(t *testing.T) {
	// given
	router := newContentRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	rr := httptest.NewRecorder()

	// when
	router.ServeHTTP(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	var articles []content.Article
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &articles))
	assert.NotEmpty(t, articles)
}

func Test_ContentAPI_ArticleBySlug(t *testing.T) {
	// given
	router := newContentRouter()
	registry := content.NewRegistry()
	known := registry.Articles()[0]

	t.Run("Success - article found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+known.Slug, nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		assert.Equal(t, http.StatusOK, rr.Code)
		var article content.Article
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &article))
		assert.Equal(t, known.Slug, article.Slug)
	})

	t.Run("Error - article not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/nope", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "Article \"nope\" not found"}`, rr.Body.String())
	})
}

func Test_ContentAPI_RecipeByID(t *testing.T) {
	// given
	router := newContentRouter()
	registry := content.NewRegistry()
	known := registry.Recipes()[0]

	t.Run("Success - recipe found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+known.ID, nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		assert.Equal(t, http.StatusOK, rr.Code)
		var recipe content.Recipe
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &recipe))
		assert.Equal(t, known.ID, recipe.ID)
	})

	t.Run("Error - recipe not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/nope", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "Recipe \"nope\" not found"}`, rr.Body.String())
	})
}
