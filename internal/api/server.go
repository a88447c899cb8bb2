// Package api exposes the catalog, meal plan and shopping list over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"saison/internal/catalog"
	"saison/internal/models"
	"saison/internal/monitoring"
)

// defaultUser scopes requests that carry no user id. Auth is out of scope;
// the id only partitions collections.
const defaultUser = "local"

// Store is the collection store the API persists user data through.
type Store interface {
	Recipes(user string) ([]models.Recipe, error)
	SaveRecipes(user string, recipes []models.Recipe) error
	MealPlan(user string) ([]models.MealPlanItem, error)
	SaveMealPlan(user string, items []models.MealPlanItem) error
	Favorites(user string) ([]models.Favorite, error)
	SaveFavorites(user string, favorites []models.Favorite) error
	ShoppingList(user string) ([]models.GroceryItem, error)
	SaveShoppingList(user string, items []models.GroceryItem) error
}

// API represents the main HTTP handler for the catalog service
type API struct {
	Router  *gin.Engine
	Catalog *catalog.Catalog
	Store   Store
	Metrics *monitoring.MetricsCollector
	Hub     *Hub
	Logger  *zap.Logger

	now func() time.Time
}

// New creates a new API instance and wires up its routes.
func New(cat *catalog.Catalog, store Store, metrics *monitoring.MetricsCollector, logger *zap.Logger) *API {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	a := &API{
		Router:  router,
		Catalog: cat,
		Store:   store,
		Metrics: metrics,
		Hub:     NewHub(metrics, logger),
		Logger:  logger,
		now:     time.Now,
	}

	router.Use(RequestLogger(logger, metrics))
	router.Use(Recovery(logger))

	a.setupRoutes()
	return a
}

// setupRoutes configures all API endpoints
func (a *API) setupRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Saison API is running"})
	})

	a.Router.GET("/ws", a.HandleWebSocket)

	v1 := a.Router.Group("/api/v1")
	{
		// Session scoping
		v1.POST("/session", a.CreateSession)

		// Catalog
		v1.GET("/categories/:season", a.GetCategories)
		v1.GET("/recipes/byIds", a.GetRecipesByIDs)
		v1.GET("/recipes/:season/:category", a.GetRecipes)
		v1.POST("/recipes", a.CreateRecipe)
		v1.GET("/recipe/:id", a.GetRecipe)

		// Favorites
		v1.GET("/favorites", a.GetFavorites)
		v1.POST("/favorites", a.AddFavorite)
		v1.DELETE("/favorites/:id", a.RemoveFavorite)

		// Meal plan
		v1.GET("/meal-plan", a.GetMealPlan)
		v1.POST("/meal-plan", a.AddMealPlanItem)
		v1.DELETE("/meal-plan/:id", a.RemoveMealPlanItem)

		// Shopping list
		v1.GET("/grocery-list", a.GetGroceryList)
		v1.POST("/grocery-list", a.AddGroceryItem)
		v1.POST("/grocery-list/generate", a.GenerateGroceryList)
		v1.PUT("/grocery-list/:id", a.UpdateGroceryItem)
		v1.DELETE("/grocery-list/checked", a.ClearCheckedGroceryItems)
		v1.DELETE("/grocery-list/:id", a.RemoveGroceryItem)
	}
}

// userID returns the collection scope for a request.
func (a *API) userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return defaultUser
}

// CreateSession issues a fresh user id for clients that want their own
// collection scope.
func (a *API) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"userId": uuid.NewString()})
}
