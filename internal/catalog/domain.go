package catalog

// Size is a per-item price variant selected by the shopper.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Multiplier returns the price multiplier for the size. Unknown sizes
// resolve to the base price.
func (s Size) Multiplier() float64 {
	switch s {
	case SizeMedium:
		return 1.2
	case SizeLarge:
		return 1.5
	default:
		return 1.0
	}
}

// Item is one purchasable menu entry as last fetched for a category.
// Rating, Reviews and PreparationTime are display-only metrics; they
// must never feed monetary computation.
type Item struct {
	ID             string  `json:"_id"`
	Name           string  `json:"foodname"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"imageUrl"`
	RestaurantName string  `json:"restaurantName"`

	SelectedSize    Size    `json:"selectedSize"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	PreparationTime int     `json:"preparationTime"`
}
