package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clothes := Category{ID: 1, Name: "Clothes"}
	shoes := Category{ID: 4, Name: "Shoes"}

	return []Product{
		{ID: 1, Title: "Classic Red Hoodie", Price: decimal.NewFromInt(40), Category: clothes, CreationAt: base},
		{ID: 2, Title: "Running Sneakers", Price: decimal.NewFromInt(90), Category: shoes, CreationAt: base.Add(2 * time.Hour)},
		{ID: 3, Title: "basic tee", Price: decimal.NewFromInt(15), Category: clothes, Description: "soft cotton", CreationAt: base.Add(time.Hour)},
		{ID: 4, Title: "Leather Boots", Price: decimal.NewFromInt(90), Category: shoes, CreationAt: base.Add(3 * time.Hour)},
	}
}

func ids(products []Product) []int64 {
	res := make([]int64, 0, len(products))
	for _, p := range products {
		res = append(res, p.ID)
	}
	return res
}

func TestApplyFilter_DefaultKeepsOrder(t *testing.T) {
	res := ApplyFilter(catalog(), ProductFilter{})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(res.Products))
	assert.Equal(t, 4, res.Total)
}

func TestApplyFilter_Search(t *testing.T) {
	res := ApplyFilter(catalog(), ProductFilter{Search: "  COTTON "})
	assert.Equal(t, []int64{3}, ids(res.Products))

	res = ApplyFilter(catalog(), ProductFilter{Search: "shoes"})
	assert.Equal(t, []int64{2, 4}, ids(res.Products))
}

func TestApplyFilter_CategoryAndPrice(t *testing.T) {
	minPrice := decimal.NewFromInt(20)
	maxPrice := decimal.NewFromInt(90)

	res := ApplyFilter(catalog(), ProductFilter{CategoryID: 4, PriceMin: &minPrice, PriceMax: &maxPrice})
	assert.Equal(t, []int64{2, 4}, ids(res.Products))

	res = ApplyFilter(catalog(), ProductFilter{PriceMin: &minPrice})
	assert.Equal(t, []int64{1, 2, 4}, ids(res.Products))
}

func TestApplyFilter_Sort(t *testing.T) {
	cases := map[string][]int64{
		SortPriceAsc:  {3, 1, 2, 4},
		SortPriceDesc: {2, 4, 1, 3},
		SortTitleAsc:  {3, 1, 4, 2},
		SortTitleDesc: {2, 4, 1, 3},
		SortNewest:    {4, 2, 3, 1},
		SortOldest:    {1, 3, 2, 4},
		"unknown":     {1, 2, 3, 4},
	}

	for sort, want := range cases {
		t.Run(sort, func(t *testing.T) {
			res := ApplyFilter(catalog(), ProductFilter{Sort: sort})
			assert.Equal(t, want, ids(res.Products))
		})
	}
}

func TestApplyFilter_Window(t *testing.T) {
	res := ApplyFilter(catalog(), ProductFilter{Sort: SortPriceAsc, Offset: 1, Limit: 2})
	assert.Equal(t, []int64{1, 2}, ids(res.Products))
	assert.Equal(t, 4, res.Total)

	res = ApplyFilter(catalog(), ProductFilter{Offset: 10})
	require.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.Equal(t, 4, res.Total)
}

func TestIsKnownSort(t *testing.T) {
	assert.True(t, IsKnownSort(""))
	assert.True(t, IsKnownSort(SortNewest))
	assert.False(t, IsKnownSort("rating"))
}
