// Package store persists each user's local collections as whole JSON
// documents in SQLite. Every write replaces the full document for a
// (user, collection) pair; there is no partial-update protocol.
package store

import (
	"encoding/json"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"saison/internal/models"
)

// Fixed collection names, mirroring the storage keys used by clients.
const (
	CollectionRecipes      = "recipes"
	CollectionMealPlan     = "mealPlan"
	CollectionFavorites    = "favorites"
	CollectionShoppingList = "shoppingList"
)

// document is one stored collection for one user.
type document struct {
	ID     uint   `gorm:"primary_key"`
	UserID string `gorm:"unique_index:idx_user_collection"`
	Name   string `gorm:"unique_index:idx_user_collection"`
	Doc    string `gorm:"type:text"`
}

// TableName sets the table name for document rows
func (document) TableName() string {
	return "collections"
}

// Store provides read and whole-document replace access to user collections.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at dbPath and migrates the
// collections table.
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&document{}).Error; err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// get unmarshals a collection document into out. A missing row or a document
// that does not parse both read as the zero value: absent local data is an
// empty collection, never an error.
func (s *Store) get(user, name string, out interface{}) error {
	var row document
	err := s.db.Where(&document{UserID: user, Name: name}).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if jsonErr := json.Unmarshal([]byte(row.Doc), out); jsonErr != nil {
		// Malformed document: treated as empty, not propagated.
		return nil
	}
	return nil
}

// put replaces the whole document for a (user, collection) pair.
func (s *Store) put(user, name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var row document
	err = s.db.Where(&document{UserID: user, Name: name}).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return s.db.Create(&document{UserID: user, Name: name, Doc: string(data)}).Error
	}
	if err != nil {
		return err
	}
	row.Doc = string(data)
	return s.db.Save(&row).Error
}

// Recipes returns the user's locally added recipes.
func (s *Store) Recipes(user string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.get(user, CollectionRecipes, &recipes)
	return recipes, err
}

// SaveRecipes replaces the user's local recipe collection.
func (s *Store) SaveRecipes(user string, recipes []models.Recipe) error {
	return s.put(user, CollectionRecipes, recipes)
}

// MealPlan returns the user's meal plan entries.
func (s *Store) MealPlan(user string) ([]models.MealPlanItem, error) {
	var items []models.MealPlanItem
	err := s.get(user, CollectionMealPlan, &items)
	return items, err
}

// SaveMealPlan replaces the user's meal plan.
func (s *Store) SaveMealPlan(user string, items []models.MealPlanItem) error {
	return s.put(user, CollectionMealPlan, items)
}

// Favorites returns the user's favorites.
func (s *Store) Favorites(user string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.get(user, CollectionFavorites, &favorites)
	return favorites, err
}

// SaveFavorites replaces the user's favorites.
func (s *Store) SaveFavorites(user string, favorites []models.Favorite) error {
	return s.put(user, CollectionFavorites, favorites)
}

// ShoppingList returns the user's shopping list.
func (s *Store) ShoppingList(user string) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := s.get(user, CollectionShoppingList, &items)
	return items, err
}

// SaveShoppingList replaces the user's shopping list.
func (s *Store) SaveShoppingList(user string, items []models.GroceryItem) error {
	return s.put(user, CollectionShoppingList, items)
}
