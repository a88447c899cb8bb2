// Package grocery classifies free-text ingredient lines into grocery-aisle
// categories and generates shopping-list items from meal-plan recipes.
package grocery

import "regexp"

// The fixed category slugs, in rule order. Other is the fallback.
const (
	CategoryProduce = "produce"
	CategoryDairy   = "dairy"
	CategoryBakery  = "bakery"
	CategoryMeat    = "meat"
	CategoryFrozen  = "frozen"
	CategoryPantry  = "pantry"
	CategoryOther   = "other"
)

// Categories lists every category slug Categorize can return.
var Categories = []string{
	CategoryProduce,
	CategoryDairy,
	CategoryBakery,
	CategoryMeat,
	CategoryFrozen,
	CategoryPantry,
	CategoryOther,
}

// rule matches an ingredient line against one category. A line matching
// except is passed over so a later rule can claim it ("ice cream" must not
// be caught by dairy's "cream").
type rule struct {
	category string
	match    *regexp.Regexp
	except   *regexp.Regexp
}

// Ordered category rules. The first matching rule wins, so the order is a
// tie-break policy and must not be rearranged. Short tokens that occur
// inside common words ("ice" in "sliced", "rice") are word-bounded.
var rules = []rule{
	{
		category: CategoryProduce,
		match:    regexp.MustCompile(`(?i)apple|banana|orange|lemon|carrot|onion|garlic|tomato|potato|lettuce|spinach|broccoli|pepper|cucumber|avocado|fruit|vegetable|berries|greens`),
	},
	{
		category: CategoryDairy,
		match:    regexp.MustCompile(`(?i)milk|cheese|yogurt|cream|butter|egg|kefir|cheddar|mozzarella|parmesan|ricotta`),
		except:   regexp.MustCompile(`(?i)ice cream`),
	},
	{
		category: CategoryBakery,
		match:    regexp.MustCompile(`(?i)bread|roll|bun|bagel|baguette|croissant|pastry|cake|muffin|toast|loaf|dough`),
	},
	{
		category: CategoryMeat,
		match:    regexp.MustCompile(`(?i)chicken|beef|pork|lamb|fish|shrimp|salmon|tuna|meat|steak|sausage|bacon|turkey|seafood|crab|lobster|clam|mussel`),
	},
	{
		category: CategoryFrozen,
		match:    regexp.MustCompile(`(?i)frozen|ice cream|popsicle|\bice\b`),
	},
	{
		category: CategoryPantry,
		match:    regexp.MustCompile(`(?i)flour|sugar|salt|spice|herb|oil|vinegar|sauce|pasta|rice|bean|grain|canned|dry|powder|tea|coffee`),
	},
}

// Categorize assigns one grocery category to a free-text ingredient line.
// It is a total function: any input, including the empty string, yields a
// member of Categories. Same input, same output, always.
func Categorize(ingredient string) string {
	for _, r := range rules {
		if !r.match.MatchString(ingredient) {
			continue
		}
		if r.except != nil && r.except.MatchString(ingredient) {
			continue
		}
		return r.category
	}
	return CategoryOther
}

// displayNames maps category slugs to the labels shown on the list.
var displayNames = map[string]string{
	CategoryProduce: "Fruits & Vegetables",
	CategoryDairy:   "Dairy & Eggs",
	CategoryBakery:  "Bakery",
	CategoryMeat:    "Meat & Seafood",
	CategoryFrozen:  "Frozen Foods",
	CategoryPantry:  "Pantry",
	CategoryOther:   "Other Items",
}

// DisplayName returns the human-readable label for a category slug.
func DisplayName(category string) string {
	if name, ok := displayNames[category]; ok {
		return name
	}
	return displayNames[CategoryOther]
}
