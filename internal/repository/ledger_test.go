package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mazdaratti/bestbuy/internal/domain/order"
)

func TestMemoryLedger(t *testing.T) {
	ledger := NewMemoryLedger()
	ctx := context.Background()

	receipts, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)

	first := &order.Receipt{
		ID:        "r1",
		Total:     decimal.RequireFromString("19.50"),
		CreatedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	second := &order.Receipt{
		ID:        "r2",
		Total:     decimal.RequireFromString("5.00"),
		CreatedAt: time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC),
	}

	require.NoError(t, ledger.Record(ctx, first))
	require.NoError(t, ledger.Record(ctx, second))

	receipts, err = ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "r1", receipts[0].ID)
	assert.Equal(t, "r2", receipts[1].ID)

	// The returned slice is a copy.
	receipts[0].ID = "mutated"
	fresh, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r1", fresh[0].ID)
}
