package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrice_Multipliers(t *testing.T) {
	item := Item{ID: "1", Name: "Pizza Margherita", Price: 100}

	assert.Equal(t, 100.0, ResolvePrice(item, SizeSmall))
	assert.Equal(t, 120.0, ResolvePrice(item, SizeMedium))
	assert.Equal(t, 150.0, ResolvePrice(item, SizeLarge))
}

func TestResolvePrice_RoundsToTwoDecimals(t *testing.T) {
	item := Item{ID: "1", Name: "Garlic Bread", Price: 99.99}

	assert.Equal(t, 119.99, ResolvePrice(item, SizeMedium))
	// 99.99 * 1.5 sits just below 149.985 in float64, so it rounds down.
	assert.Equal(t, 149.98, ResolvePrice(item, SizeLarge))
}

func TestResolvePrice_UnknownSizeUsesBasePrice(t *testing.T) {
	item := Item{ID: "1", Name: "Cold Drink", Price: 45}

	assert.Equal(t, 45.0, ResolvePrice(item, Size("XXL")))
	assert.Equal(t, 45.0, ResolvePrice(item, Size("")))
}

func TestSelectedPrice_UsesSelectedSize(t *testing.T) {
	item := Item{ID: "1", Name: "Burger", Price: 80, SelectedSize: SizeLarge}

	assert.Equal(t, 120.0, SelectedPrice(item))
}
