// Package reconcile merges the seeded catalog with a user's locally added
// recipes into one view. It is pure: no I/O, no state, and absence is always
// expressed structurally (an empty or shorter slice), never as an error.
package reconcile

import (
	"strings"

	"saison/internal/models"
)

// ByCategory returns the recipes for a (season, category slug) pair: the
// seeded recipes first, then every local recipe that belongs to the same
// season and category, in stored order. No de-duplication is performed
// across the two sources.
//
// The season gate is exact and case-sensitive. Category matching is
// tolerant of the three encodings found in stored recipes: the canonical
// CategoryID/CategoryName pair written by current clients, and the legacy
// Category field (numeric id or name slug) written by older ones. The
// legacy branches are a compatibility shim for documents that predate
// write-time normalization.
func ByCategory(season, slug string, categories []models.Category, seeded, local []models.Recipe) []models.Recipe {
	// Resolve the slug to this season's category id. An unknown slug is not
	// an error: id-based matching simply never fires and the string-based
	// branches still apply.
	categoryID := 0
	for _, cat := range categories {
		if cat.Matches(season, slug) {
			categoryID = cat.ID
			break
		}
	}

	out := make([]models.Recipe, 0, len(seeded))
	out = append(out, seeded...)

	for _, r := range local {
		if r.Season != season {
			continue
		}
		if matchesCategory(r, categoryID, slug) {
			out = append(out, r)
		}
	}
	return out
}

// matchesCategory reports whether a local recipe belongs to the requested
// category, checking the canonical fields first and the legacy encodings
// after.
func matchesCategory(r models.Recipe, categoryID int, slug string) bool {
	if categoryID != 0 && r.CategoryID == categoryID {
		return true
	}
	if r.CategoryName != "" && strings.EqualFold(r.CategoryName, slug) {
		return true
	}
	if categoryID != 0 && r.Category.MatchesID(categoryID) {
		return true
	}
	return r.Category.MatchesSlug(slug)
}

// CatalogLookup resolves recipe ids against the seeded catalog.
type CatalogLookup interface {
	Recipe(id int) (models.Recipe, bool)
}

// ByIDs resolves a set of recipe ids against the catalog first and the local
// collection second. All catalog-resolved recipes come first, in request
// order, followed by the local ones. Ids found in neither source are dropped
// silently: callers treat missing recipes as unavailable, not as a failure.
func ByIDs(ids []int, catalog CatalogLookup, local []models.Recipe) []models.Recipe {
	localByID := make(map[int]models.Recipe, len(local))
	for _, r := range local {
		if _, dup := localByID[r.ID]; !dup {
			localByID[r.ID] = r
		}
	}

	var fromCatalog, fromLocal []models.Recipe
	for _, id := range ids {
		if r, ok := catalog.Recipe(id); ok {
			fromCatalog = append(fromCatalog, r)
			continue
		}
		if r, ok := localByID[id]; ok {
			fromLocal = append(fromLocal, r)
		}
	}
	return append(fromCatalog, fromLocal...)
}

// Normalize canonicalizes a user-added recipe before it is stored: the
// selected category becomes a CategoryID plus a cached CategoryName, and the
// derived total time is recomputed from prep and cook time. Recipes written
// through here never need the legacy read-side matching.
func Normalize(r *models.Recipe, categories []models.Category) {
	if r.CategoryID == 0 && r.Category != nil {
		for _, cat := range categories {
			if r.Category.MatchesID(cat.ID) || (cat.Season == r.Season && r.Category.MatchesSlug(cat.Name)) {
				r.CategoryID = cat.ID
				break
			}
		}
	}
	if r.CategoryName == "" && r.CategoryID != 0 {
		for _, cat := range categories {
			if cat.ID == r.CategoryID {
				r.CategoryName = cat.Name
				break
			}
		}
	}
	r.Time = r.TotalTime()
}
