// Package catalog holds the server-seeded recipe catalog. The catalog is
// loaded once at startup and is immutable at runtime: no endpoint writes
// back into it.
package catalog

import (
	"saison/internal/models"
)

// Catalog is the immutable seeded set of categories and recipes.
type Catalog struct {
	categories []models.Category
	recipes    []models.Recipe
	byID       map[int]models.Recipe
}

// New builds a catalog from the built-in seed data.
func New() *Catalog {
	return fromSeed(seedCategories(), seedRecipes())
}

func fromSeed(categories []models.Category, recipes []models.Recipe) *Catalog {
	c := &Catalog{
		categories: categories,
		recipes:    recipes,
		byID:       make(map[int]models.Recipe, len(recipes)),
	}
	for _, r := range recipes {
		c.byID[r.ID] = r
	}
	return c
}

// Categories returns all seeded categories in seed order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoriesBySeason returns the categories for one season in seed order.
func (c *Catalog) CategoriesBySeason(season string) []models.Category {
	var out []models.Category
	for _, cat := range c.categories {
		if cat.Season == season {
			out = append(out, cat)
		}
	}
	return out
}

// RecipesBySeasonAndCategory returns the seeded recipes for a (season, name
// slug) pair. An unknown slug yields an empty result, not an error.
func (c *Catalog) RecipesBySeasonAndCategory(season, slug string) []models.Recipe {
	var categoryID int
	found := false
	for _, cat := range c.categories {
		if cat.Matches(season, slug) {
			categoryID = cat.ID
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var out []models.Recipe
	for _, r := range c.recipes {
		if r.Season == season && r.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	return out
}

// Recipe looks up a seeded recipe by id.
func (c *Catalog) Recipe(id int) (models.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// RecipesByIDs resolves the given ids against the seed, preserving request
// order. Ids with no seeded recipe are silently dropped.
func (c *Catalog) RecipesByIDs(ids []int) []models.Recipe {
	var out []models.Recipe
	for _, id := range ids {
		if r, ok := c.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
