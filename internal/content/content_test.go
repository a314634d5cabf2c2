package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ArticleBySlug(t *testing.T) {
	registry := NewRegistry()

	t.Run("known slug", func(t *testing.T) {
		article, err := registry.ArticleBySlug("the-science-of-refreshment")
		require.NoError(t, err)
		assert.Equal(t, "The Science Behind Ultimate Refreshment", article.Title)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := registry.ArticleBySlug("missing")
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestRegistry_RecipeByID(t *testing.T) {
	registry := NewRegistry()

	t.Run("known id", func(t *testing.T) {
		recipe, err := registry.RecipeByID("frozen-margarita")
		require.NoError(t, err)
		assert.Equal(t, "Frozen Margarita", recipe.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := registry.RecipeByID("missing")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestRegistry_ListsCopyData(t *testing.T) {
	registry := NewRegistry()

	// mutating a returned slice must not affect the registry
	articles := registry.Articles()
	require.NotEmpty(t, articles)
	articles[0].Title = "mutated"

	fresh, err := registry.ArticleBySlug(articles[0].Slug)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Title)
}
