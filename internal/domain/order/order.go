package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mazdaratti/bestbuy/internal/domain/store"
)

// Receipt is the record of a committed order batch.
type Receipt struct {
	ID        string
	Lines     []store.Line
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Ledger records committed orders. Only fully processed batches are
// recorded; a batch that failed partway through never reaches the ledger
// even though its earlier stock decrements stand.
type Ledger interface {
	Record(ctx context.Context, r *Receipt) error
	List(ctx context.Context) ([]Receipt, error)
}
