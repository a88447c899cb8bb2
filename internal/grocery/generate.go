package grocery

import (
	"strings"

	"saison/internal/models"
)

// Generate appends shopping-list items for every ingredient line of the
// given recipes, in per-recipe then per-ingredient order. Each candidate
// keeps the full ingredient line verbatim as its name, an empty quantity,
// and starts unchecked. Candidates whose name already exists on the list,
// compared case-insensitively, are dropped, which makes regeneration from
// the same meal plan a no-op.
//
// nextID allocates ids for the new items. Existing items are never touched.
func Generate(existing []models.GroceryItem, recipes []models.Recipe, nextID func() int) []models.GroceryItem {
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[strings.ToLower(item.Name)] = true
	}

	out := existing
	for _, r := range recipes {
		for _, ingredient := range r.Ingredients {
			key := strings.ToLower(ingredient)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, models.GroceryItem{
				ID:       nextID(),
				Name:     ingredient,
				Quantity: "",
				Checked:  false,
				Category: Categorize(ingredient),
			})
		}
	}
	return out
}
