package catalog

import (
	"sort"
	"strings"
)

// SortMode orders a catalog snapshot for display.
type SortMode string

const (
	SortPopularity SortMode = "popularity"
	SortRating     SortMode = "rating"
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortTime       SortMode = "time"
)

// Categories is the fixed set of browsable menu categories.
var Categories = []string{
	"Pizza",
	"Burger",
	"Garlic Bread",
	"Salads",
	"Cold Drinks",
	"Chinese Food",
	"Punjabi Food",
}

// MatchCategory reports whether the search term names a category
// exactly (case-insensitive). A match is a category switch, not a
// filter over the current snapshot.
func MatchCategory(term string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c, term) {
			return c, true
		}
	}
	return "", false
}

// Search filters items by case-insensitive substring match on name.
// An empty term returns the full set.
func Search(items []Item, term string) []Item {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a sorted copy of items. Popularity is the catalog's
// natural order; all sorts are stable so ties keep that order.
func Sort(items []Item, mode SortMode) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return SelectedPrice(out[i]) < SelectedPrice(out[j])
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return SelectedPrice(out[i]) > SelectedPrice(out[j])
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PreparationTime < out[j].PreparationTime
		})
	default: // popularity
	}
	return out
}

// Query filters then sorts one catalog snapshot. Pure transformation,
// the snapshot itself is never mutated.
func Query(items []Item, term string, mode SortMode) []Item {
	return Sort(Search(items, term), mode)
}
