package models

// Weekday slugs for meal plan slots, in display order.
var DayIDs = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Meal types a recipe can be scheduled as.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// KnownMealType reports whether t is a valid meal type.
func KnownMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// KnownDayID reports whether d is one of the seven weekday slugs.
func KnownDayID(d string) bool {
	for _, id := range DayIDs {
		if id == d {
			return true
		}
	}
	return false
}

// MealPlanItem schedules a recipe onto a weekday/meal slot. RecipeID is a
// weak reference: the recipe may have been deleted since, and consumers must
// skip entries that no longer resolve.
type MealPlanItem struct {
	ID       int    `json:"id"`
	RecipeID int    `json:"recipeId"`
	DayID    string `json:"dayId"`
	MealType string `json:"mealType"`
}
