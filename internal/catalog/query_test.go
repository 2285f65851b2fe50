package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []Item {
	return []Item{
		{ID: "1", Name: "Pizza Margherita", Price: 200, SelectedSize: SizeSmall, Rating: 4.2, PreparationTime: 25},
		{ID: "2", Name: "Burger", Price: 130, SelectedSize: SizeSmall, Rating: 4.8, PreparationTime: 12},
		{ID: "3", Name: "Veg Pizza", Price: 180, SelectedSize: SizeSmall, Rating: 4.2, PreparationTime: 18},
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "Pizza Margherita"},
		{ID: "2", Name: "Burger"},
	}

	got := Search(items, "piz")
	require.Len(t, got, 1)
	assert.Equal(t, "Pizza Margherita", got[0].Name)

	got = Search(items, "PIZZA")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestSearch_EmptyTermReturnsAll(t *testing.T) {
	items := sampleItems()
	got := Search(items, "")
	assert.Len(t, got, len(items))
}

func TestSort_Popularity_KeepsNaturalOrder(t *testing.T) {
	got := Sort(sampleItems(), SortPopularity)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestSort_PriceUsesSelectedSize(t *testing.T) {
	items := sampleItems()
	// Large burger resolves to 195, above the small veg pizza.
	items[1].SelectedSize = SizeLarge

	got := Sort(items, SortPriceAsc)
	assert.Equal(t, []string{"3", "2", "1"}, ids(got))

	got = Sort(items, SortPriceDesc)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestSort_RatingDescending_TiesKeepOriginalOrder(t *testing.T) {
	got := Sort(sampleItems(), SortRating)
	// Items 1 and 3 share a rating; 1 came first in the catalog.
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestSort_TimeAscending(t *testing.T) {
	got := Sort(sampleItems(), SortTime)
	assert.Equal(t, []string{"2", "3", "1"}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	Sort(items, SortPriceAsc)
	assert.Equal(t, "1", items[0].ID)
}

func TestMatchCategory(t *testing.T) {
	cat, ok := MatchCategory("pizza")
	require.True(t, ok)
	assert.Equal(t, "Pizza", cat)

	cat, ok = MatchCategory("COLD DRINKS")
	require.True(t, ok)
	assert.Equal(t, "Cold Drinks", cat)

	_, ok = MatchCategory("margherita")
	assert.False(t, ok)

	_, ok = MatchCategory("")
	assert.False(t, ok)
}

func TestQuery_FilterThenSort(t *testing.T) {
	got := Query(sampleItems(), "pizza", SortPriceAsc)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
