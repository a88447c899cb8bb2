package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// ApiClient handles requests to the Saison API.
type ApiClient struct {
	http *resty.Client
}

// NewApiClient creates a client for the server named by SAISON_API_URL,
// defaulting to a local instance.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("SAISON_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	if user := os.Getenv("SAISON_USER_ID"); user != "" {
		client.SetHeader("X-User-ID", user)
	}

	return &ApiClient{http: client}
}

// Category mirrors the server's category record.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Season string `json:"season"`
}

// Recipe mirrors the server's recipe record, trimmed to the fields the CLI
// displays.
type Recipe struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Time        int      `json:"time"`
	Servings    int      `json:"servings"`
	Rating      string   `json:"rating"`
	Season      string   `json:"season"`
	Ingredients []string `json:"ingredients"`
	Preparation []string `json:"preparation"`
	Cooking     []string `json:"cooking"`
	Tips        []string `json:"tips"`
}

// MealPlanItem mirrors the server's meal plan entry.
type MealPlanItem struct {
	ID       int    `json:"id"`
	RecipeID int    `json:"recipeId"`
	DayID    string `json:"dayId"`
	MealType string `json:"mealType"`
}

// GroceryItem mirrors the server's shopping list entry.
type GroceryItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
	Category string `json:"category"`
}

// GenerateResult is the response of a shopping-list generation.
type GenerateResult struct {
	Added int           `json:"added"`
	Items []GroceryItem `json:"items"`
}

func (c *ApiClient) get(path string, out interface{}) error {
	resp, err := c.http.R().SetResult(out).Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %s", path, resp.Status())
	}
	return nil
}

// Categories fetches the categories for a season.
func (c *ApiClient) Categories(season string) ([]Category, error) {
	var categories []Category
	err := c.get("/api/v1/categories/"+season, &categories)
	return categories, err
}

// Recipes fetches the reconciled recipe list for a season and category.
func (c *ApiClient) Recipes(season, category string) ([]Recipe, error) {
	var recipes []Recipe
	err := c.get(fmt.Sprintf("/api/v1/recipes/%s/%s", season, category), &recipes)
	return recipes, err
}

// Recipe fetches one recipe by id.
func (c *ApiClient) Recipe(id string) (*Recipe, error) {
	var recipe Recipe
	if err := c.get("/api/v1/recipe/"+id, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// MealPlan fetches the current meal plan.
func (c *ApiClient) MealPlan() ([]MealPlanItem, error) {
	var items []MealPlanItem
	err := c.get("/api/v1/meal-plan", &items)
	return items, err
}

// ShoppingList fetches the current shopping list.
func (c *ApiClient) ShoppingList() ([]GroceryItem, error) {
	var items []GroceryItem
	err := c.get("/api/v1/grocery-list", &items)
	return items, err
}

// GenerateShoppingList asks the server to build the shopping list from the
// meal plan.
func (c *ApiClient) GenerateShoppingList() (*GenerateResult, error) {
	var result GenerateResult
	resp, err := c.http.R().SetResult(&result).Post("/api/v1/grocery-list/generate")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("generate: %s", resp.Status())
	}
	return &result, nil
}
