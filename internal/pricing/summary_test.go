package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VasaraSujal/king-hub/internal/cart"
	"github.com/VasaraSujal/king-hub/internal/catalog"
)

func ledgerWithSubtotal200(t *testing.T) *cart.Ledger {
	t.Helper()
	l := cart.NewLedger()
	l.Add(catalog.Item{ID: "p1", Name: "Pizza Margherita", Price: 100}, 100)
	l.Add(catalog.Item{ID: "p1", Name: "Pizza Margherita", Price: 100}, 100)
	require.Equal(t, 200.0, l.Total())
	return l
}

func TestApplyCoupon_First10TenPercent(t *testing.T) {
	c, err := ApplyCoupon("FIRST10", 200)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, c.Discount, 1e-9)
	assert.Equal(t, 200.0, c.AppliedSubtotal)
}

func TestApplyCoupon_FreeFlatFifty(t *testing.T) {
	c, err := ApplyCoupon("free", 10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, c.Discount)

	c, err = ApplyCoupon("FREE", 10000)
	require.NoError(t, err)
	assert.Equal(t, 50.0, c.Discount)
}

func TestApplyCoupon_UnknownCodeReportsInvalid(t *testing.T) {
	c, err := ApplyCoupon("bogus", 200)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, 0.0, c.Discount)
}

func TestApplyCoupon_EmptyCodeReportsInvalid(t *testing.T) {
	c, err := ApplyCoupon("", 200)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, 0.0, c.Discount)
}

func TestApplyCoupon_EmptySubtotalPermitted(t *testing.T) {
	c, err := ApplyCoupon("first10", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Discount)
}

func TestApplyCoupon_NotReactiveToCartChanges(t *testing.T) {
	ledger := ledgerWithSubtotal200(t)

	c, err := ApplyCoupon("first10", ledger.Total())
	require.NoError(t, err)
	require.InDelta(t, 20.0, c.Discount, 1e-9)

	// The cart changes; the discount stays what it was at apply time.
	ledger.Add(catalog.Item{ID: "b1", Name: "Burger", Price: 130}, 130)
	s := Summarize(ledger, c, DeliveryOption{Kind: DeliveryStandard})

	assert.Equal(t, 330.0, s.Subtotal)
	assert.InDelta(t, 20.0, s.Discount, 1e-9)
}

func TestDeliveryFees(t *testing.T) {
	assert.Equal(t, 0.0, DeliveryStandard.Fee())
	assert.Equal(t, 49.0, DeliveryExpress.Fee())
	assert.Equal(t, 29.0, DeliveryScheduled.Fee())
	assert.Equal(t, 0.0, DeliveryKind("carrier-pigeon").Fee())
}

func TestDeliveryOption_Validate(t *testing.T) {
	assert.NoError(t, DeliveryOption{Kind: DeliveryStandard}.Validate())
	assert.NoError(t, DeliveryOption{Kind: DeliveryExpress}.Validate())
	assert.NoError(t, DeliveryOption{Kind: DeliveryScheduled}.Validate())
	assert.NoError(t, DeliveryOption{Kind: DeliveryScheduled, TimeSlot: "9am-12pm"}.Validate())

	assert.ErrorIs(t, DeliveryOption{Kind: DeliveryScheduled, TimeSlot: "midnight"}.Validate(), ErrUnknownTimeSlot)
	assert.ErrorIs(t, DeliveryOption{Kind: "drone"}.Validate(), ErrUnknownDeliveryKind)
}

func TestSummarize_FeeIndependentOfCartContents(t *testing.T) {
	empty := cart.NewLedger()
	full := ledgerWithSubtotal200(t)

	assert.Equal(t, 49.0, Summarize(empty, Coupon{}, DeliveryOption{Kind: DeliveryExpress}).DeliveryFee)
	assert.Equal(t, 49.0, Summarize(full, Coupon{}, DeliveryOption{Kind: DeliveryExpress}).DeliveryFee)
}

func TestSummarize_GrandTotal(t *testing.T) {
	ledger := ledgerWithSubtotal200(t)
	c, err := ApplyCoupon("first10", ledger.Total())
	require.NoError(t, err)

	s := Summarize(ledger, c, DeliveryOption{Kind: DeliveryScheduled, TimeSlot: "12pm-3pm"})

	assert.Equal(t, 200.0, s.Subtotal)
	assert.InDelta(t, 20.0, s.Discount, 1e-9)
	assert.Equal(t, 29.0, s.DeliveryFee)
	assert.InDelta(t, 209.0, s.GrandTotal, 1e-9)
}

func TestSummarize_GrandTotalNotFlooredAtZero(t *testing.T) {
	ledger := cart.NewLedger()
	ledger.Add(catalog.Item{ID: "d1", Name: "Cold Drink", Price: 20}, 20)

	c, err := ApplyCoupon("free", ledger.Total())
	require.NoError(t, err)

	s := Summarize(ledger, c, DeliveryOption{Kind: DeliveryStandard})
	assert.Equal(t, -30.0, s.GrandTotal, "grand total is deliberately allowed to go negative")
}

func TestSummarize_PureOverIdenticalInputs(t *testing.T) {
	ledger := ledgerWithSubtotal200(t)
	c, _ := ApplyCoupon("free", ledger.Total())
	opt := DeliveryOption{Kind: DeliveryExpress}

	first := Summarize(ledger, c, opt)
	second := Summarize(ledger, c, opt)
	assert.Equal(t, first, second)
}
