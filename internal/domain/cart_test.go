package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id int64, price string, qty int) CartItem {
	return CartItem{ProductID: id, Title: "p", Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestCart_AddMergesSameProduct(t *testing.T) {
	var cart Cart
	cart = cart.Add(item(1, "10", 0), 2)
	cart = cart.Add(item(2, "5", 0), 1)
	cart = cart.Add(item(1, "10", 0), 3)

	require.Len(t, cart, 2)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.Equal(t, 6, cart.Count())
}

func TestCart_AddDoesNotMutateOriginal(t *testing.T) {
	orig := Cart{item(1, "10", 1)}
	_ = orig.Add(item(1, "10", 0), 4)

	assert.Equal(t, 1, orig[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := Cart{item(1, "10", 1), item(2, "3", 2)}

	updated, ok := cart.SetQuantity(2, 7)
	require.True(t, ok)
	assert.Equal(t, 7, updated[1].Quantity)

	removed, ok := cart.SetQuantity(1, 0)
	require.True(t, ok)
	require.Len(t, removed, 1)
	assert.Equal(t, int64(2), removed[0].ProductID)

	_, ok = cart.SetQuantity(42, 3)
	assert.False(t, ok)

	_, ok = cart.SetQuantity(42, 0)
	assert.False(t, ok)
}

func TestCart_Merge(t *testing.T) {
	user := Cart{item(1, "10", 1), item(2, "3", 1)}
	guest := Cart{item(2, "4", 2), item(3, "1", 1)}

	merged := user.Merge(guest)
	require.Len(t, merged, 3)
	assert.Equal(t, 3, merged[1].Quantity)
	assert.Equal(t, "4", merged[1].Price.String())
	assert.Equal(t, int64(3), merged[2].ProductID)
}

func TestCart_AddCapsQuantity(t *testing.T) {
	cart := Cart{}.Add(item(1, "2", 0), 5).Add(item(1, "2", 0), math.MaxInt)

	require.Len(t, cart, 1)
	assert.Equal(t, MaxItemQuantity, cart[0].Quantity)
	assert.Equal(t, MaxItemQuantity, cart.Count())
	assert.True(t, cart.Total().IsPositive())
	assert.Len(t, cart.Normalize(), 1)

	assert.False(t, cart.CanAdd(1, 1))
	assert.True(t, cart.CanAdd(2, MaxItemQuantity))
	assert.False(t, cart.CanAdd(2, 0))
}

func TestCart_MergeAndNormalizeCapQuantity(t *testing.T) {
	merged := Cart{item(1, "1", MaxItemQuantity)}.Merge(Cart{item(1, "1", math.MaxInt)})
	require.Len(t, merged, 1)
	assert.Equal(t, MaxItemQuantity, merged[0].Quantity)

	norm := Cart{item(2, "1", MaxItemQuantity+10)}.Normalize()
	require.Len(t, norm, 1)
	assert.Equal(t, MaxItemQuantity, norm[0].Quantity)
}

func TestCart_Total(t *testing.T) {
	cart := Cart{item(1, "19.99", 3), item(2, "0.015", 1)}

	assert.Equal(t, "59.99", cart.Total().StringFixed(2))
	assert.True(t, Cart{}.Total().IsZero())
}

func TestCart_Normalize(t *testing.T) {
	cart := Cart{item(1, "1", 0), item(0, "1", 2), item(3, "1", 1)}

	norm := cart.Normalize()
	require.Len(t, norm, 1)
	assert.Equal(t, int64(3), norm[0].ProductID)
}

func TestNewCartItem(t *testing.T) {
	p := &Product{
		ID:       9,
		Title:    "Classic Tee",
		Price:    decimal.NewFromInt(25),
		Category: Category{Name: "Clothes"},
		Images:   []string{"https://i.imgur.com/a.jpeg", "https://i.imgur.com/b.jpeg"},
	}

	ci := NewCartItem(p)
	assert.Equal(t, int64(9), ci.ProductID)
	assert.Equal(t, "https://i.imgur.com/a.jpeg", ci.Image)
	assert.Equal(t, "Clothes", ci.Category)
	assert.Zero(t, ci.Quantity)
}
