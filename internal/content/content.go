// Package content serves the site's editorial data: blog articles and serving
// recipes. The data ships with the binary; there is no CMS behind it.
package content

import "errors"

var (
	// ErrArticleNotFound is returned when no article exists with the given slug.
	ErrArticleNotFound = errors.New("article not found")
	// ErrRecipeNotFound is returned when no recipe exists with the given id.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Article is one blog post.
type Article struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
	ImageURL string `json:"image_url"`
}

// Recipe is one serving suggestion from the recipes page.
type Recipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PrepTime    string `json:"prep_time"`
	Servings    string `json:"servings"`
	Difficulty  string `json:"difficulty"`
}

// Registry holds the editorial data and answers lookups.
type Registry struct {
	articles []Article
	recipes  []Recipe
}

// NewRegistry creates a registry over the built-in articles and recipes.
func NewRegistry() *Registry {
	return &Registry{articles: articles, recipes: recipes}
}

// Articles lists all articles, newest first as authored.
func (r *Registry) Articles() []Article {
	out := make([]Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// ArticleBySlug returns the article with the given slug.
// Returns ErrArticleNotFound if no article exists with the given slug.
func (r *Registry) ArticleBySlug(slug string) (*Article, error) {
	for i := range r.articles {
		if r.articles[i].Slug == slug {
			article := r.articles[i]
			return &article, nil
		}
	}
	return nil, ErrArticleNotFound
}

// Recipes lists all recipes.
func (r *Registry) Recipes() []Recipe {
	out := make([]Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out
}

// RecipeByID returns the recipe with the given id.
// Returns ErrRecipeNotFound if no recipe exists with the given id.
func (r *Registry) RecipeByID(id string) (*Recipe, error) {
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			recipe := r.recipes[i]
			return &recipe, nil
		}
	}
	return nil, ErrRecipeNotFound
}
