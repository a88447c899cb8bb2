package store

import (
	"path/filepath"
	"testing"

	"saison/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	recipes := []models.Recipe{
		{ID: 9001, Title: "Miso Soup", Season: models.SeasonAutumnWinter, CategoryID: 2, CategoryName: "soups"},
	}
	if err := s.SaveRecipes("alice", recipes); err != nil {
		t.Fatalf("SaveRecipes() failed: %v", err)
	}

	loaded, err := s.Recipes("alice")
	if err != nil {
		t.Fatalf("Recipes() failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "Miso Soup" {
		t.Errorf("Recipes() = %+v, want the saved recipe", loaded)
	}
}

func TestStoreMissingCollectionIsEmpty(t *testing.T) {
	s := openTestStore(t)

	recipes, err := s.Recipes("nobody")
	if err != nil {
		t.Fatalf("Recipes() failed: %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("Recipes() for an unknown user = %+v, want empty", recipes)
	}
}

func TestStoreMalformedDocumentIsEmpty(t *testing.T) {
	s := openTestStore(t)

	// Corrupt the stored document directly.
	row := document{UserID: "alice", Name: CollectionShoppingList, Doc: "{not json"}
	if err := s.db.Create(&row).Error; err != nil {
		t.Fatalf("seeding corrupt row failed: %v", err)
	}

	items, err := s.ShoppingList("alice")
	if err != nil {
		t.Fatalf("ShoppingList() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("ShoppingList() over a corrupt document = %+v, want empty", items)
	}
}

func TestStoreWholeDocumentReplace(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveMealPlan("alice", []models.MealPlanItem{
		{ID: 1, RecipeID: 5, DayID: "monday", MealType: models.MealDinner},
		{ID: 2, RecipeID: 9001, DayID: "tuesday", MealType: models.MealLunch},
	}); err != nil {
		t.Fatalf("SaveMealPlan() failed: %v", err)
	}

	// A save replaces the document entirely, not merges into it.
	if err := s.SaveMealPlan("alice", []models.MealPlanItem{
		{ID: 3, RecipeID: 1, DayID: "friday", MealType: models.MealBreakfast},
	}); err != nil {
		t.Fatalf("SaveMealPlan() failed: %v", err)
	}

	items, err := s.MealPlan("alice")
	if err != nil {
		t.Fatalf("MealPlan() failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Errorf("MealPlan() = %+v, want only the second document", items)
	}
}

func TestStoreUsersAreIsolated(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveFavorites("alice", []models.Favorite{{ID: 1, RecipeID: 5}}); err != nil {
		t.Fatalf("SaveFavorites() failed: %v", err)
	}

	favorites, err := s.Favorites("bob")
	if err != nil {
		t.Fatalf("Favorites() failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("Favorites() for bob = %+v, want empty", favorites)
	}
}
