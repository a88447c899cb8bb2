package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saison/internal/catalog"
	"saison/internal/models"
	"saison/internal/monitoring"
)

// memStore keeps collections in memory, scoped by user like the real store.
type memStore struct {
	recipes   map[string][]models.Recipe
	mealPlans map[string][]models.MealPlanItem
	favorites map[string][]models.Favorite
	shopping  map[string][]models.GroceryItem
}

func newMemStore() *memStore {
	return &memStore{
		recipes:   make(map[string][]models.Recipe),
		mealPlans: make(map[string][]models.MealPlanItem),
		favorites: make(map[string][]models.Favorite),
		shopping:  make(map[string][]models.GroceryItem),
	}
}

func (m *memStore) Recipes(user string) ([]models.Recipe, error) { return m.recipes[user], nil }
func (m *memStore) SaveRecipes(user string, recipes []models.Recipe) error {
	m.recipes[user] = recipes
	return nil
}
func (m *memStore) MealPlan(user string) ([]models.MealPlanItem, error) {
	return m.mealPlans[user], nil
}
func (m *memStore) SaveMealPlan(user string, items []models.MealPlanItem) error {
	m.mealPlans[user] = items
	return nil
}
func (m *memStore) Favorites(user string) ([]models.Favorite, error) { return m.favorites[user], nil }
func (m *memStore) SaveFavorites(user string, favorites []models.Favorite) error {
	m.favorites[user] = favorites
	return nil
}
func (m *memStore) ShoppingList(user string) ([]models.GroceryItem, error) {
	return m.shopping[user], nil
}
func (m *memStore) SaveShoppingList(user string, items []models.GroceryItem) error {
	m.shopping[user] = items
	return nil
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	a := New(catalog.New(), newMemStore(), monitoring.NewMetricsCollector(), zap.NewNop())
	a.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return a
}

func doJSON(t *testing.T, a *API, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t)
	w := doJSON(t, a, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCategories(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/v1/categories/autumn-winter", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	decode(t, w, &categories)
	assert.Len(t, categories, 9)

	// Unknown seasons answer with an empty list, not an error.
	w = doJSON(t, a, http.MethodGet, "/api/v1/categories/monsoon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateRecipeAndReconciledListing(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"id":          9001,
		"title":       "Miso Soup",
		"season":      "autumn-winter",
		"category":    "soups",
		"prepTime":    5,
		"cookTime":    10,
		"ingredients": []string{"2 tablespoons miso paste", "1 block tofu"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Recipe
	decode(t, w, &created)
	assert.Equal(t, 2, created.CategoryID, "slug normalized to the canonical id")
	assert.Equal(t, "soups", created.CategoryName)
	assert.Equal(t, 15, created.Time, "total time recomputed from prep and cook")

	// Seeded recipes come first, local additions after.
	w = doJSON(t, a, http.MethodGet, "/api/v1/recipes/autumn-winter/soups", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipes []models.Recipe
	decode(t, w, &recipes)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Pumpkin Soup", recipes[0].Title)
	assert.Equal(t, "Miso Soup", recipes[1].Title)

	// The local recipe stays out of other seasons and categories.
	w = doJSON(t, a, http.MethodGet, "/api/v1/recipes/spring-summer/soups", nil)
	decode(t, w, &recipes)
	for _, r := range recipes {
		assert.NotEqual(t, "Miso Soup", r.Title)
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":  "No Season",
		"season": "monsoon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"season": "autumn-winter",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipeAssignsID(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":  "Untitled Stew",
		"season": "autumn-winter",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Recipe
	decode(t, w, &created)
	assert.Equal(t, 1700000000000, created.ID)
}

func TestGetRecipe(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/v1/recipe/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recipe models.Recipe
	decode(t, w, &recipe)
	assert.Equal(t, "Pumpkin Soup", recipe.Title)

	w = doJSON(t, a, http.MethodGet, "/api/v1/recipe/404404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Recipe not found", body["message"])
}

func TestGetRecipesByIDsDropsOrphans(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/v1/recipes/byIds?ids=5,404404,1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipes []models.Recipe
	decode(t, w, &recipes)
	require.Len(t, recipes, 2)
	assert.Equal(t, 5, recipes[0].ID)
	assert.Equal(t, 1, recipes[1].ID)

	w = doJSON(t, a, http.MethodGet, "/api/v1/recipes/byIds?ids=", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestMealPlanLifecycle(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/meal-plan", map[string]interface{}{
		"recipeId": 5, "dayId": "monday", "mealType": "dinner",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var item models.MealPlanItem
	decode(t, w, &item)
	assert.Equal(t, 1, item.ID)

	// Weak reference: a recipe nobody knows is still accepted.
	w = doJSON(t, a, http.MethodPost, "/api/v1/meal-plan", map[string]interface{}{
		"recipeId": 424242, "dayId": "tuesday", "mealType": "lunch",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/v1/meal-plan", map[string]interface{}{
		"recipeId": 5, "dayId": "someday", "mealType": "dinner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/meal-plan", nil)
	var items []models.MealPlanItem
	decode(t, w, &items)
	require.Len(t, items, 2)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/meal-plan/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/meal-plan", nil)
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 424242, items[0].RecipeID)
}

func TestFavoritesLifecycle(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/favorites", map[string]interface{}{"recipeId": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/favorites", nil)
	var favorites []models.Favorite
	decode(t, w, &favorites)
	require.Len(t, favorites, 1)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/favorites/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/favorites", nil)
	decode(t, w, &favorites)
	assert.Empty(t, favorites)
}

func TestGenerateGroceryList(t *testing.T) {
	a := newTestAPI(t)

	// A local recipe plus a seeded one on the plan.
	w := doJSON(t, a, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"id":          9001,
		"title":       "Miso Soup",
		"season":      "autumn-winter",
		"category":    "soups",
		"ingredients": []string{"2 tablespoons soy sauce"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, plan := range []map[string]interface{}{
		{"recipeId": 5, "dayId": "monday", "mealType": "dinner"},
		{"recipeId": 9001, "dayId": "tuesday", "mealType": "dinner"},
		{"recipeId": 424242, "dayId": "friday", "mealType": "lunch"}, // dangling
	} {
		w = doJSON(t, a, http.MethodPost, "/api/v1/meal-plan", plan)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, a, http.MethodPost, "/api/v1/grocery-list/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Added int                  `json:"added"`
		Items []models.GroceryItem `json:"items"`
	}
	decode(t, w, &result)
	// 10 Pumpkin Soup ingredients plus the soy sauce; the dangling plan
	// entry contributes nothing.
	assert.Equal(t, 11, result.Added)
	require.Len(t, result.Items, 11)

	byName := make(map[string]models.GroceryItem, len(result.Items))
	for _, item := range result.Items {
		byName[item.Name] = item
	}
	assert.Equal(t, "dairy", byName["1 cup heavy cream"].Category)
	assert.Equal(t, "other", byName["2 pounds pumpkin, peeled and cut into chunks"].Category)
	assert.Equal(t, "pantry", byName["2 tablespoons soy sauce"].Category)

	// Regenerating from the unchanged plan adds nothing.
	w = doJSON(t, a, http.MethodPost, "/api/v1/grocery-list/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &result)
	assert.Equal(t, 0, result.Added)
	assert.Len(t, result.Items, 11)
}

func TestGroceryItemLifecycle(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/grocery-list", map[string]interface{}{
		"name": "1 baguette, sliced",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var item models.GroceryItem
	decode(t, w, &item)
	assert.Equal(t, "bakery", item.Category, "category inferred when omitted")

	w = doJSON(t, a, http.MethodPost, "/api/v1/grocery-list", map[string]interface{}{
		"name": "candles", "category": "household",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &item)
	assert.Equal(t, "household", item.Category, "explicit category respected")

	w = doJSON(t, a, http.MethodPut, "/api/v1/grocery-list/1", map[string]interface{}{"checked": true})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &item)
	assert.True(t, item.Checked)

	w = doJSON(t, a, http.MethodPut, "/api/v1/grocery-list/999", map[string]interface{}{"checked": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/grocery-list/checked", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/grocery-list", nil)
	var items []models.GroceryItem
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "candles", items[0].Name)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/grocery-list/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/grocery-list", nil)
	decode(t, w, &items)
	assert.Empty(t, items)
}

func TestUserScoping(t *testing.T) {
	a := newTestAPI(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]interface{}{
		"recipeId": 5, "dayId": "monday", "mealType": "dinner",
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/meal-plan", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The default scope sees none of alice's plan.
	w = doJSON(t, a, http.MethodGet, "/api/v1/meal-plan", nil)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateSession(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.NotEmpty(t, body["userId"])
}
