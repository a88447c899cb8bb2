package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saison/internal/models"
)

// Favorites handlers

func (a *API) GetFavorites(c *gin.Context) {
	favorites, err := a.Store.Favorites(a.userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}

func (a *API) AddFavorite(c *gin.Context) {
	var req struct {
		RecipeID int `json:"recipeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := a.userID(c)
	favorites, err := a.Store.Favorites(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	favorite := models.Favorite{ID: nextID(favoriteIDs(favorites)), RecipeID: req.RecipeID}
	favorites = append(favorites, favorite)
	if err := a.Store.SaveFavorites(user, favorites); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, favorite)
}

func (a *API) RemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return
	}

	user := a.userID(c)
	favorites, err := a.Store.Favorites(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	kept := favorites[:0]
	for _, f := range favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if err := a.Store.SaveFavorites(user, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Meal plan handlers

func (a *API) GetMealPlan(c *gin.Context) {
	items, err := a.Store.MealPlan(a.userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.MealPlanItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddMealPlanItem schedules a recipe onto a day/meal slot. The recipe id is
// a weak reference: no existence check is made, and consumers skip entries
// that no longer resolve.
func (a *API) AddMealPlanItem(c *gin.Context) {
	var req struct {
		RecipeID int    `json:"recipeId"`
		DayID    string `json:"dayId"`
		MealType string `json:"mealType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.KnownDayID(req.DayID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown day"})
		return
	}
	if !models.KnownMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type"})
		return
	}

	user := a.userID(c)
	items, err := a.Store.MealPlan(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	item := models.MealPlanItem{
		ID:       nextID(mealPlanIDs(items)),
		RecipeID: req.RecipeID,
		DayID:    req.DayID,
		MealType: req.MealType,
	}
	items = append(items, item)
	if err := a.Store.SaveMealPlan(user, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *API) RemoveMealPlanItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	user := a.userID(c)
	items, err := a.Store.MealPlan(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if err := a.Store.SaveMealPlan(user, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// id helpers: collections are small, so the next id is one past the max.

func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func favoriteIDs(favorites []models.Favorite) []int {
	ids := make([]int, len(favorites))
	for i, f := range favorites {
		ids[i] = f.ID
	}
	return ids
}

func mealPlanIDs(items []models.MealPlanItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
