package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Season identifiers used throughout the catalog.
const (
	SeasonAutumnWinter = "autumn-winter"
	SeasonSpringSummer = "spring-summer"
)

// KnownSeason reports whether s is one of the two catalog seasons.
func KnownSeason(s string) bool {
	return s == SeasonAutumnWinter || s == SeasonSpringSummer
}

// Recipe represents a recipe in the catalog or in a user's local collection.
//
// Seeded recipes always carry a canonical CategoryID. User-added recipes
// created by current clients do too (plus a cached CategoryName), but older
// locally stored recipes may instead encode their category in the legacy
// Category field as either a numeric id or a name slug. The reconciler
// tolerates all three encodings on read.
type Recipe struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Icon         string          `json:"icon"`
	Time         int             `json:"time"`
	PrepTime     int             `json:"prepTime"`
	CookTime     int             `json:"cookTime"`
	Servings     int             `json:"servings"`
	Rating       string          `json:"rating"`
	Reviews      int             `json:"reviews"`
	Season       string          `json:"season"`
	CategoryID   int             `json:"categoryId,omitempty"`
	CategoryName string          `json:"categoryName,omitempty"`
	Category     *LegacyCategory `json:"category,omitempty"`
	Image        string          `json:"image,omitempty"`
	Ingredients  []string        `json:"ingredients"`
	Preparation  []string        `json:"preparation"`
	Cooking      []string        `json:"cooking"`
	Tips         []string        `json:"tips"`
}

// TotalTime returns the recipe's total time in minutes. It is always derived
// from prep and cook time rather than read from the stored Time field, so the
// value cannot drift when either input is edited.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// LegacyCategory is the heterogeneous category field found on user-added
// recipes stored by older clients: either a numeric category id or a
// lowercase name slug. The original encoding is preserved so documents
// round-trip unchanged.
type LegacyCategory struct {
	Value   string
	Numeric bool
}

// UnmarshalJSON accepts a JSON number or string.
func (lc *LegacyCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*lc = LegacyCategory{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*lc = LegacyCategory{Value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*lc = LegacyCategory{Value: n.String(), Numeric: true}
	return nil
}

// MarshalJSON re-emits the value in its original encoding.
func (lc LegacyCategory) MarshalJSON() ([]byte, error) {
	if lc.Numeric {
		if _, err := strconv.Atoi(lc.Value); err == nil {
			return []byte(lc.Value), nil
		}
	}
	return json.Marshal(lc.Value)
}

// MatchesID reports whether the legacy value, stringified, equals the given
// category id, stringified.
func (lc *LegacyCategory) MatchesID(id int) bool {
	if lc == nil || lc.Value == "" {
		return false
	}
	return lc.Value == strconv.Itoa(id)
}

// MatchesSlug reports whether the legacy value is a name slug equal to the
// given one, case-insensitively. Numeric values never match a slug.
func (lc *LegacyCategory) MatchesSlug(slug string) bool {
	if lc == nil || lc.Value == "" || lc.Numeric {
		return false
	}
	return strings.EqualFold(lc.Value, slug)
}
