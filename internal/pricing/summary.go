package pricing

import (
	"errors"
	"strings"
	"time"

	"github.com/VasaraSujal/king-hub/internal/cart"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Coupon is the discount resolved the last time a code was applied.
// AppliedSubtotal and AppliedAt record the snapshot the discount was
// computed from: the discount is intentionally NOT recomputed when the
// cart changes afterwards, only an explicit re-apply refreshes it.
type Coupon struct {
	Code            string    `json:"code"`
	Discount        float64   `json:"discount"`
	AppliedSubtotal float64   `json:"applied_subtotal"`
	AppliedAt       time.Time `json:"applied_at"`
}

// ApplyCoupon resolves a coupon code against the subtotal at the
// moment of application. "first10" grants 10% of the subtotal, "free"
// a flat 50, both case-insensitive. Anything else resolves to a zero
// discount with ErrInvalidCoupon, a reported and recoverable
// condition. An empty subtotal is permitted.
func ApplyCoupon(code string, subtotal float64) (Coupon, error) {
	c := Coupon{
		Code:            code,
		AppliedSubtotal: subtotal,
		AppliedAt:       time.Now(),
	}

	switch strings.ToLower(code) {
	case "first10":
		c.Discount = subtotal * 0.10
		return c, nil
	case "free":
		c.Discount = 50
		return c, nil
	default:
		return c, ErrInvalidCoupon
	}
}

// Summary is the derived order pricing. It is computed on demand and
// never stored.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"delivery_fee"`
	GrandTotal  float64 `json:"grand_total"`
}

// Summarize derives the order pricing from the current cart, the last
// applied coupon and the active delivery option. The grand total is
// subtotal - discount + fee verbatim; it is deliberately not floored
// at zero when the discount exceeds everything else.
func Summarize(ledger *cart.Ledger, coupon Coupon, delivery DeliveryOption) Summary {
	subtotal := ledger.Total()
	fee := delivery.Kind.Fee()
	return Summary{
		Subtotal:    subtotal,
		Discount:    coupon.Discount,
		DeliveryFee: fee,
		GrandTotal:  subtotal - coupon.Discount + fee,
	}
}
