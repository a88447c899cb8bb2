package models

// GroceryItem is a single entry on a user's shopping list. Name holds the
// full ingredient line verbatim when the item was generated from a meal plan;
// Quantity is free text and may be empty. After creation the only mutation is
// the Checked toggle.
type GroceryItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
	Category string `json:"category"`
}

// Favorite marks a recipe as a user favorite.
type Favorite struct {
	ID       int `json:"id"`
	RecipeID int `json:"recipeId"`
}
