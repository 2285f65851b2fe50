package catalog

import "math"

// ResolvePrice applies the size multiplier to the item's base price,
// rounded to two decimal places for display.
func ResolvePrice(item Item, size Size) float64 {
	return math.Round(item.Price*size.Multiplier()*100) / 100
}

// SelectedPrice resolves the price for the item's currently selected size.
func SelectedPrice(item Item) float64 {
	return ResolvePrice(item, item.SelectedSize)
}
