package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saison/internal/models"
	"saison/internal/reconcile"
)

// GetCategories returns the seeded categories for one season.
func (a *API) GetCategories(c *gin.Context) {
	season := c.Param("season")
	categories := a.Catalog.CategoriesBySeason(season)
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetRecipes returns the reconciled recipe view for a (season, category
// slug) pair: seeded recipes first, then the caller's matching local ones.
func (a *API) GetRecipes(c *gin.Context) {
	season := c.Param("season")
	slug := c.Param("category")
	user := a.userID(c)

	local, err := a.Store.Recipes(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	seeded := a.Catalog.RecipesBySeasonAndCategory(season, slug)
	recipes := reconcile.ByCategory(season, slug, a.Catalog.CategoriesBySeason(season), seeded, local)
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// CreateRecipe stores a user-added recipe in the caller's local collection.
// The category is normalized to a canonical id plus cached name at write
// time, and the total time is recomputed from prep and cook time.
func (a *API) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.KnownSeason(recipe.Season) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown season"})
		return
	}
	if recipe.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if recipe.ID == 0 {
		recipe.ID = int(a.now().UnixMilli())
	}
	reconcile.Normalize(&recipe, a.Catalog.Categories())

	user := a.userID(c)
	local, err := a.Store.Recipes(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	local = append(local, recipe)
	if err := a.Store.SaveRecipes(user, local); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Metrics.RecordRecipeCreated()
	a.Logger.Info("recipe created",
		zap.Int("id", recipe.ID),
		zap.String("season", recipe.Season),
		zap.String("category", recipe.CategoryName),
	)
	c.JSON(http.StatusCreated, recipe)
}

// GetRecipe looks a recipe up by id, in the seed catalog first and the
// caller's local collection second.
func (a *API) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if recipe, ok := a.Catalog.Recipe(id); ok {
		c.JSON(http.StatusOK, recipe)
		return
	}

	local, err := a.Store.Recipes(a.userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, recipe := range local {
		if recipe.ID == id {
			c.JSON(http.StatusOK, recipe)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
}

// GetRecipesByIDs resolves a comma-separated id set. Ids with no recipe in
// either source are dropped from the response rather than reported.
func (a *API) GetRecipesByIDs(c *gin.Context) {
	ids := parseIDList(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusOK, []models.Recipe{})
		return
	}

	local, err := a.Store.Recipes(a.userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recipes := reconcile.ByIDs(ids, a.Catalog, local)
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// parseIDList parses "5,9001" into ids, skipping blanks and non-numbers.
func parseIDList(raw string) []int {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.Atoi(part); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
