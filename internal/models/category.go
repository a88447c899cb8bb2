package models

import "strings"

// Category represents a recipe category for one season. Category identity is
// the (season, name) pair: the same name carries a different id per season.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Season string `json:"season"`
}

// Matches reports whether the category belongs to the given season and has
// the given name slug (case-insensitive on the name, exact on the season).
func (c Category) Matches(season, slug string) bool {
	return c.Season == season && strings.EqualFold(c.Name, slug)
}
