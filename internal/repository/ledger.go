package repository

import (
	"context"
	"sync"

	"github.com/Mazdaratti/bestbuy/internal/domain/order"
)

var _ order.Ledger = (*MemoryLedger)(nil)

// MemoryLedger implements order.Ledger in process memory. Receipts live as
// long as the process; there is no persistence by design.
type MemoryLedger struct {
	mu       sync.Mutex
	receipts []order.Receipt
}

// NewMemoryLedger returns an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Record appends a committed receipt.
func (l *MemoryLedger) Record(_ context.Context, r *order.Receipt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receipts = append(l.receipts, *r)
	return nil
}

// List returns all recorded receipts in commit order.
func (l *MemoryLedger) List(_ context.Context) ([]order.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]order.Receipt, len(l.receipts))
	copy(out, l.receipts)
	return out, nil
}
