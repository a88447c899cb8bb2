package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saison/internal/grocery"
	"saison/internal/models"
	"saison/internal/reconcile"
)

// GetGroceryList returns the caller's shopping list.
func (a *API) GetGroceryList(c *gin.Context) {
	items, err := a.Store.ShoppingList(a.userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.GroceryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddGroceryItem adds one manually entered item. When no category is given
// the item name is run through the categorizer.
func (a *API) AddGroceryItem(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.Category == "" {
		req.Category = grocery.Categorize(req.Name)
	}

	user := a.userID(c)
	items, err := a.Store.ShoppingList(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	item := models.GroceryItem{
		ID:       nextID(groceryIDs(items)),
		Name:     req.Name,
		Quantity: req.Quantity,
		Checked:  false,
		Category: req.Category,
	}
	items = append(items, item)
	if err := a.Store.SaveShoppingList(user, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Hub.BroadcastShoppingList(user, items)
	c.JSON(http.StatusOK, item)
}

// GenerateGroceryList builds shopping-list items from every recipe the
// caller's meal plan references. Regenerating from an unchanged plan adds
// nothing: candidates whose names are already on the list are dropped.
func (a *API) GenerateGroceryList(c *gin.Context) {
	user := a.userID(c)

	plan, err := a.Store.MealPlan(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	local, err := a.Store.Recipes(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items, err := a.Store.ShoppingList(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Distinct recipe ids in plan order. Entries whose recipe no longer
	// resolves fall out inside the reconciler.
	seen := make(map[int]bool, len(plan))
	var ids []int
	for _, entry := range plan {
		if !seen[entry.RecipeID] {
			seen[entry.RecipeID] = true
			ids = append(ids, entry.RecipeID)
		}
	}
	recipes := reconcile.ByIDs(ids, a.Catalog, local)

	id := nextID(groceryIDs(items))
	before := len(items)
	items = grocery.Generate(items, recipes, func() int {
		v := id
		id++
		return v
	})
	added := len(items) - before

	if err := a.Store.SaveShoppingList(user, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	a.Metrics.RecordItemsGenerated(added)
	a.Hub.BroadcastShoppingList(user, items)
	a.Logger.Info("shopping list generated",
		zap.Int("recipes", len(recipes)),
		zap.Int("added", added),
	)
	c.JSON(http.StatusOK, gin.H{"added": added, "items": items})
}

// UpdateGroceryItem toggles an item's checked state, the only mutation a
// grocery item supports.
func (a *API) UpdateGroceryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req struct {
		Checked bool `json:"checked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := a.userID(c)
	items, err := a.Store.ShoppingList(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Checked = req.Checked
		if err := a.Store.SaveShoppingList(user, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		a.Hub.BroadcastShoppingList(user, items)
		c.JSON(http.StatusOK, items[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Grocery item not found"})
}

// RemoveGroceryItem deletes one item by id.
func (a *API) RemoveGroceryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	user := a.userID(c)
	items, err := a.Store.ShoppingList(user)
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
	if err := a.Store.SaveShoppingList(user, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a.Hub.BroadcastShoppingList(user, kept)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearCheckedGroceryItems removes every checked item in one pass.
func (a *API) ClearCheckedGroceryItems(c *gin.Context) {
	user := a.userID(c)
	items, err := a.Store.ShoppingList(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	kept := items[:0]
	for _, item := range items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	if err := a.Store.SaveShoppingList(user, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	a.Hub.BroadcastShoppingList(user, kept)
	c.JSON(http.StatusOK, gin.H{"success": true, "remaining": len(kept)})
}

func groceryIDs(items []models.GroceryItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
