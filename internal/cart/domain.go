package cart

import "time"

// LineItem is one cart entry. UnitPrice is locked at add time: later
// catalog price changes never alter a line that is already in the cart.
type LineItem struct {
	ItemID      string    `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (l LineItem) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
