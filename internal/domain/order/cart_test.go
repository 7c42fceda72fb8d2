package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mazdaratti/bestbuy/internal/domain/product"
)

func TestCart_AggregatesEqualProducts(t *testing.T) {
	apple1, err := product.NewStandard("Apple", decimal.RequireFromString("1.5"), 10)
	require.NoError(t, err)
	apple2, err := product.NewStandard("Apple", decimal.RequireFromString("1.5"), 3)
	require.NoError(t, err)
	orange, err := product.NewStandard("Orange", decimal.RequireFromString("1.2"), 5)
	require.NoError(t, err)

	cart := NewCart()
	assert.True(t, cart.Empty())

	cart.Add(apple1, 2)
	cart.Add(orange, 1)
	// A distinct instance of the same catalog line merges into one entry.
	cart.Add(apple2, 3)

	assert.False(t, cart.Empty())
	assert.Equal(t, 2, cart.Len())

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Apple", lines[0].Product.Name())
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "Orange", lines[1].Product.Name())
	assert.Equal(t, 1, lines[1].Quantity)
}
